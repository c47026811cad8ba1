package systems

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/decker502/heartfx/pkg/config"
)

func newTestEffect(t *testing.T) *Effect {
	t.Helper()
	effect, err := NewEffect(config.DefaultEffectConfig(), rand.New(rand.NewPCG(3, 4)))
	if err != nil {
		t.Fatalf("NewEffect() error: %v", err)
	}
	return effect
}

func TestNewEffect_Invalid(t *testing.T) {
	if _, err := NewEffect(nil, nil); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("nil config: expected ErrInvalidConfig, got %v", err)
	}

	cfg := config.DefaultEffectConfig()
	cfg.Particles.Length = 0
	if _, err := NewEffect(cfg, nil); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("zero capacity: expected ErrInvalidConfig, got %v", err)
	}
}

// TestEffect_Frame 首帧不发射，100ms 后发射 rate·dt 个
func TestEffect_Frame(t *testing.T) {
	effect := newTestEffect(t)
	surface := newFakeSurface(800, 600)
	t0 := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)

	if n := effect.Frame(t0, surface); n != 0 {
		t.Fatalf("first frame drew %d, want 0", n)
	}

	n := effect.Frame(t0.Add(100*time.Millisecond), surface)
	if n != 110 {
		t.Fatalf("second frame drew %d, want 110", n)
	}
	if len(surface.draws) != n {
		t.Errorf("surface recorded %d draws, want %d", len(surface.draws), n)
	}

	// 所有粒子以窗口中心为原点
	for _, d := range surface.draws {
		if d.X < 400-200 || d.X > 400+200 || d.Y < 300-200 || d.Y > 300+200 {
			t.Fatalf("sprite at (%v, %v) not around the surface center", d.X, d.Y)
		}
		if d.Alpha >= 1 || d.Alpha <= 0 {
			t.Fatalf("alpha = %v, want in (0, 1)", d.Alpha)
		}
	}
}

func TestEffect_StepUsesSurfaceCenter(t *testing.T) {
	effect := newTestEffect(t)
	t0 := time.Now()

	effect.Step(t0, 200, 100)
	dt := effect.Step(t0.Add(50*time.Millisecond), 200, 100)
	if dt != 0.05 {
		t.Fatalf("dt = %v, want 0.05", dt)
	}

	sumX, sumY, n := 0.0, 0.0, 0
	for p := range effect.Pool.Particles() {
		sumX += p.Position.X
		sumY += p.Position.Y
		n++
	}
	if n != 55 {
		t.Fatalf("spawned %d, want 55", n)
	}
	// 曲线左右对称，横坐标均值应接近中心
	if mean := sumX / float64(n); mean < 100-60 || mean > 100+60 {
		t.Errorf("mean X = %v, want near 100", mean)
	}
}

func TestEffect_Reset(t *testing.T) {
	effect := newTestEffect(t)
	t0 := time.Now()

	effect.Step(t0, 800, 600)
	effect.Step(t0.Add(time.Second), 800, 600)
	if effect.Pool.Len() == 0 {
		t.Fatal("expected live particles before Reset")
	}

	effect.Reset()
	if effect.Pool.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", effect.Pool.Len())
	}

	// 重置后首帧间隔为 0
	if dt := effect.Step(t0.Add(time.Hour), 800, 600); dt != 0 {
		t.Errorf("dt after Reset = %v, want 0", dt)
	}
}

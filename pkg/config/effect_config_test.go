package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultEffectConfig(t *testing.T) {
	cfg := DefaultEffectConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Particles.Length != 2200 || cfg.Particles.Duration != 2 {
		t.Errorf("unexpected particle defaults: %+v", cfg.Particles)
	}
	if cfg.StartupDelay != 10*time.Millisecond {
		t.Errorf("StartupDelay = %v, want 10ms", cfg.StartupDelay)
	}
	if got := cfg.Particles.Rate(); got != 1100 {
		t.Errorf("Rate() = %v, want 1100", got)
	}
}

func TestParseEffectConfig(t *testing.T) {
	data := []byte(`
particles:
  length: 500
  duration: 1.5
  velocity: 90
  effect: -0.8
  size: 20
color: "#f0a"
startupDelay: 250ms
window:
  width: 1024
  height: 768
  title: Heart
`)

	cfg, err := ParseEffectConfig(data)
	if err != nil {
		t.Fatalf("ParseEffectConfig() error: %v", err)
	}

	want := ParticleSettings{Length: 500, Duration: 1.5, Velocity: 90, Effect: -0.8, Size: 20}
	if cfg.Particles != want {
		t.Errorf("Particles = %+v, want %+v", cfg.Particles, want)
	}
	if cfg.StartupDelay != 250*time.Millisecond {
		t.Errorf("StartupDelay = %v, want 250ms", cfg.StartupDelay)
	}
	if cfg.Window != (WindowSettings{Width: 1024, Height: 768, Title: "Heart"}) {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if got := cfg.FillColor(); got != (color.RGBA{R: 0xff, G: 0x00, B: 0xaa, A: 0xff}) {
		t.Errorf("FillColor() = %v", got)
	}
}

// TestParseEffectConfig_PartialKeepsDefaults 缺省字段保留默认值
func TestParseEffectConfig_PartialKeepsDefaults(t *testing.T) {
	cfg, err := ParseEffectConfig([]byte("particles:\n  velocity: 200\n"))
	if err != nil {
		t.Fatalf("ParseEffectConfig() error: %v", err)
	}

	if cfg.Particles.Velocity != 200 {
		t.Errorf("Velocity = %v, want 200", cfg.Particles.Velocity)
	}
	if cfg.Particles.Length != DefaultParticleLength {
		t.Errorf("Length = %d, want default %d", cfg.Particles.Length, DefaultParticleLength)
	}
	if cfg.Color != DefaultParticleColor {
		t.Errorf("Color = %q, want default", cfg.Color)
	}
}

func TestParseEffectConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero length", "particles:\n  length: 0\n"},
		{"negative length", "particles:\n  length: -10\n"},
		{"zero duration", "particles:\n  duration: 0\n"},
		{"infinite duration", "particles:\n  duration: .inf\n"},
		{"NaN effect", "particles:\n  effect: .nan\n"},
		{"zero size", "particles:\n  size: 0\n"},
		{"bad color", "color: pink\n"},
		{"negative delay", "startupDelay: -5ms\n"},
		{"zero window", "window:\n  width: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEffectConfig([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseEffectConfig_Malformed(t *testing.T) {
	_, err := ParseEffectConfig([]byte("particles: [1, 2"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("syntax error should not be reported as ErrInvalidConfig")
	}
}

func TestLoadEffectConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heart.yaml")
	if err := os.WriteFile(path, []byte("particles:\n  length: 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEffectConfig(path)
	if err != nil {
		t.Fatalf("LoadEffectConfig() error: %v", err)
	}
	if cfg.Particles.Length != 64 {
		t.Errorf("Length = %d, want 64", cfg.Particles.Length)
	}

	if _, err := LoadEffectConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: expected os.ErrNotExist, got %v", err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ea80b0", color.RGBA{R: 0xea, G: 0x80, B: 0xb0, A: 0xff}, false},
		{"EA80B0", color.RGBA{R: 0xea, G: 0x80, B: 0xb0, A: 0xff}, false},
		{"#fff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{" #000000 ", color.RGBA{A: 0xff}, false},
		{"#12345", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFillColor_FallsBackToDefault(t *testing.T) {
	cfg := DefaultEffectConfig()
	cfg.Color = "not a color"

	want, _ := ParseHexColor(DefaultParticleColor)
	if got := cfg.FillColor(); got != want {
		t.Errorf("FillColor() = %v, want default %v", got, want)
	}
}

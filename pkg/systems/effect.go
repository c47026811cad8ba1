package systems

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/decker502/heartfx/internal/particle"
	"github.com/decker502/heartfx/pkg/config"
)

// Effect wires one pool, one emitter and one renderer into the frame
// pipeline: elapsed time → emit → update → draw.
//
// Effect is driven by a single host callback (ebiten's Update/Draw or
// loop.Run) and is not safe for concurrent use.
type Effect struct {
	Pool     *particle.ParticlePool
	Emitter  *EmitterSystem
	Renderer *RenderSystem

	clock FrameClock
}

// NewEffect builds the pipeline from cfg. The particle settings are shared by
// pointer with the pool and the emitter. rng may be nil.
func NewEffect(cfg *config.EffectConfig, rng *rand.Rand) (*Effect, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: effect config is nil", config.ErrInvalidConfig)
	}

	pool, err := particle.NewParticlePool(&cfg.Particles)
	if err != nil {
		return nil, fmt.Errorf("failed to create particle pool: %w", err)
	}

	return &Effect{
		Pool:     pool,
		Emitter:  NewEmitterSystem(pool, &cfg.Particles, rng),
		Renderer: NewRenderSystem(pool),
	}, nil
}

// Step advances the simulation to now for a surface of the given size.
// It returns the delta time that was applied.
func (e *Effect) Step(now time.Time, width, height int) float64 {
	dt := e.clock.Elapsed(now)
	e.Emitter.Update(dt, float64(width)/2, float64(height)/2)
	return dt
}

// Frame runs one full frame against surface and returns the number of
// particles drawn.
func (e *Effect) Frame(now time.Time, surface Surface) int {
	w, h := surface.Size()
	e.Step(now, w, h)
	return e.Renderer.Draw(surface)
}

// Reset clears all live particles and restarts frame timing.
func (e *Effect) Reset() {
	e.Pool.Reset()
	e.clock.Reset()
}

package particle

import (
	"fmt"
	"iter"

	"github.com/decker502/heartfx/pkg/config"
)

// ParticlePool is a fixed-capacity circular buffer of particle slots.
//
// Live particles occupy the circular range [firstActive, firstFree). Equal
// cursors always mean "empty", so at most Cap()-1 particles are live at once.
// Spawning into a saturated pool evicts the oldest live particle instead of
// failing or growing.
//
// Spawns happen in time order, so ages are non-decreasing from the back of
// the live range to the front and retirement only has to look at the front.
type ParticlePool struct {
	particles   []Particle
	firstActive int
	firstFree   int

	// duration and baseSize are copied at construction; the effect
	// coefficient is read from settings on every spawn so that runtime
	// tweaks apply to new particles.
	duration float64
	baseSize float64
	settings *config.ParticleSettings
}

// NewParticlePool preallocates settings.Length particle slots.
//
// Returns an error wrapping config.ErrInvalidConfig when the capacity or the
// particle duration is not positive.
func NewParticlePool(settings *config.ParticleSettings) (*ParticlePool, error) {
	if settings == nil {
		return nil, fmt.Errorf("%w: particle settings are nil", config.ErrInvalidConfig)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &ParticlePool{
		particles: make([]Particle, settings.Length),
		duration:  settings.Duration,
		baseSize:  float64(settings.Size),
		settings:  settings,
	}, nil
}

// Spawn initializes the slot at firstFree and makes it the newest live particle.
// If the pool was saturated the oldest live particle is evicted. Spawn never fails.
func (pool *ParticlePool) Spawn(x, y, dx, dy float64) {
	pool.particles[pool.firstFree].Initialize(x, y, dx, dy, pool.settings.Effect)

	// handle circular queue
	pool.firstFree = pool.next(pool.firstFree)
	if pool.firstActive == pool.firstFree {
		pool.firstActive = pool.next(pool.firstActive)
	}
}

// Update integrates every live particle by deltaTime seconds and then retires
// expired particles from the front of the live range.
//
// A negative deltaTime is treated as zero: nothing moves or ages, but
// particles that already expired are still retired.
func (pool *ParticlePool) Update(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}

	pool.forEachLive(func(p *Particle) bool {
		p.Update(deltaTime)
		return true
	})

	for pool.firstActive != pool.firstFree && pool.particles[pool.firstActive].Age >= pool.duration {
		pool.firstActive = pool.next(pool.firstActive)
	}
}

// All returns the render parameters of every live particle, oldest first.
//
// The sequence is derived from the cursors each time it is ranged over, so it
// can be iterated once per frame without holding any iterator state.
func (pool *ParticlePool) All() iter.Seq[RenderParams] {
	return func(yield func(RenderParams) bool) {
		pool.forEachLive(func(p *Particle) bool {
			return yield(p.RenderParams(pool.duration, pool.baseSize))
		})
	}
}

// Particles returns copies of the live particles, oldest first.
func (pool *ParticlePool) Particles() iter.Seq[Particle] {
	return func(yield func(Particle) bool) {
		pool.forEachLive(func(p *Particle) bool {
			return yield(*p)
		})
	}
}

// Len returns the number of live particles.
func (pool *ParticlePool) Len() int {
	n := len(pool.particles)
	return (pool.firstFree - pool.firstActive + n) % n
}

// Cap returns the number of slots. The pool holds at most Cap()-1 live particles.
func (pool *ParticlePool) Cap() int {
	return len(pool.particles)
}

// Duration returns the particle lifetime in seconds.
func (pool *ParticlePool) Duration() float64 {
	return pool.duration
}

// Reset retires every live particle. Slots are kept for reuse.
func (pool *ParticlePool) Reset() {
	pool.firstActive = 0
	pool.firstFree = 0
}

func (pool *ParticlePool) next(i int) int {
	return (i + 1) % len(pool.particles)
}

// forEachLive calls fn for each live slot, oldest first, splitting a wrapped
// range into its two contiguous parts. It stops early when fn returns false.
func (pool *ParticlePool) forEachLive(fn func(p *Particle) bool) {
	if pool.firstActive <= pool.firstFree {
		for i := pool.firstActive; i < pool.firstFree; i++ {
			if !fn(&pool.particles[i]) {
				return
			}
		}
		return
	}

	for i := pool.firstActive; i < len(pool.particles); i++ {
		if !fn(&pool.particles[i]) {
			return
		}
	}
	for i := 0; i < pool.firstFree; i++ {
		if !fn(&pool.particles[i]) {
			return
		}
	}
}

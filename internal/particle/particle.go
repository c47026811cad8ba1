// Package particle implements the particle lifecycle engine of the heart
// effect: a point-mass Particle, and a fixed-capacity circular ParticlePool
// that recycles particle slots without per-frame allocation.
//
// The engine is single-threaded. A pool is owned by exactly one driver
// (see pkg/systems.EmitterSystem) and must not be shared between goroutines.
package particle

// Particle is one physical point mass with an age.
//
// Particles are created once per pool slot when the pool is constructed and
// are never destroyed, only re-initialized by Initialize.
type Particle struct {
	Position     Vector2
	Velocity     Vector2 // pixels per second
	Acceleration Vector2 // pixels per second², fixed at spawn time
	Age          float64 // seconds since the last Initialize
}

// RenderParams carries what a drawing surface needs to blit one particle.
// X and Y are the sprite center in surface coordinates.
type RenderParams struct {
	X     float64
	Y     float64
	Size  float64
	Alpha float64
}

// Initialize resets the particle to position (x, y) moving with velocity
// (dx, dy). Acceleration is the velocity scaled by effect, which is normally
// negative so that particles slow down and curl back along their path.
func (p *Particle) Initialize(x, y, dx, dy, effect float64) {
	p.Position.X = x
	p.Position.Y = y
	p.Velocity.X = dx
	p.Velocity.Y = dy
	p.Acceleration.X = dx * effect
	p.Acceleration.Y = dy * effect
	p.Age = 0
}

// Update advances the particle by deltaTime seconds using semi-implicit Euler.
//
// Position moves with the velocity from before this step, then velocity is
// updated. Swapping the two changes the shape of the trajectory.
func (p *Particle) Update(deltaTime float64) {
	p.Position.X += p.Velocity.X * deltaTime
	p.Position.Y += p.Velocity.Y * deltaTime
	p.Velocity.X += p.Acceleration.X * deltaTime
	p.Velocity.Y += p.Acceleration.Y * deltaTime
	p.Age += deltaTime
}

// RenderParams computes the draw parameters for a particle whose lifetime
// is duration seconds and whose full-grown sprite is baseSize pixels wide.
func (p *Particle) RenderParams(duration, baseSize float64) RenderParams {
	t := p.Age / duration
	return RenderParams{
		X:     p.Position.X,
		Y:     p.Position.Y,
		Size:  baseSize * EaseOutCubic(t),
		Alpha: 1 - t,
	}
}

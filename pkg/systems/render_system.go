package systems

import (
	"github.com/decker502/heartfx/internal/particle"
)

// Surface is the drawing target of the effect.
//
// The particle sprite is bound to the surface when it is created, so
// DrawSprite only receives the per-particle parameters. DrawSprite composites
// with alpha blending; centerX/centerY are the sprite center and size is its
// edge length, all in surface pixels.
type Surface interface {
	// Size returns the current surface dimensions in pixels.
	Size() (width, height int)
	// Clear erases the previous frame.
	Clear()
	// DrawSprite blits the particle sprite.
	DrawSprite(centerX, centerY, size, alpha float64)
}

// RenderSystem draws every live particle of a pool onto a Surface.
type RenderSystem struct {
	pool *particle.ParticlePool
}

// NewRenderSystem creates a render system for pool.
func NewRenderSystem(pool *particle.ParticlePool) *RenderSystem {
	return &RenderSystem{pool: pool}
}

// Draw clears the surface and draws the live particles oldest first, so
// newer particles end up on top. It returns the number of sprites drawn.
func (rs *RenderSystem) Draw(surface Surface) int {
	surface.Clear()

	drawn := 0
	for p := range rs.pool.All() {
		surface.DrawSprite(p.X, p.Y, p.Size, p.Alpha)
		drawn++
	}
	return drawn
}


// Package heart holds the parametric heart curve shared by the emitter and
// the sprite generator.
package heart

import (
	"math"

	"github.com/decker502/heartfx/internal/particle"
)

// OutlineStep is the parameter increment used when tracing the outline.
const OutlineStep = 0.01

// PointOnHeart returns the point on the heart curve at parameter t, with
// -π <= t <= π. The curve is in a Y-up coordinate system centered roughly on
// the origin:
//
//	x = 160·sin³(t)
//	y = 130·cos(t) − 50·cos(2t) − 20·cos(3t) − 10·cos(4t) + 25
func PointOnHeart(t float64) particle.Vector2 {
	sin := math.Sin(t)
	return particle.Vector2{
		X: 160 * sin * sin * sin,
		Y: 130*math.Cos(t) -
			50*math.Cos(2*t) -
			20*math.Cos(3*t) -
			10*math.Cos(4*t) +
			25,
	}
}

// Sample maps u in [0, 1) to a point on the curve with t = π − 2π·u.
// A uniform u gives a uniform parameter, not a uniform arc length.
func Sample(u float64) particle.Vector2 {
	return PointOnHeart(math.Pi - 2*math.Pi*u)
}

// Outline traces the closed curve from −π in OutlineStep increments until t
// reaches π. The first and last points coincide within floating point error.
func Outline() []particle.Vector2 {
	n := int(math.Ceil(2*math.Pi/OutlineStep)) + 1
	points := make([]particle.Vector2, 0, n)

	t := -math.Pi
	points = append(points, PointOnHeart(t))
	for t < math.Pi {
		t += OutlineStep
		points = append(points, PointOnHeart(t))
	}
	return points
}

// Extent returns the width and height of the curve's bounding box in curve units.
func Extent() (width, height float64) {
	outline := Outline()
	minX, maxX := outline[0].X, outline[0].X
	minY, maxY := outline[0].Y, outline[0].Y
	for _, p := range outline[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return maxX - minX, maxY - minY
}

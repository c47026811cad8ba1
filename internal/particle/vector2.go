package particle

import "math"

// Vector2 is a 2D point or vector used for particle position, velocity and
// acceleration, and as a scratch value for emission direction.
type Vector2 struct {
	X float64
	Y float64
}

// Length returns the Euclidean norm of v.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// SetLength rescales v in place to the target magnitude and returns v for chaining.
//
// The vector is normalized first, so calling SetLength on a zero vector yields
// NaN components. Callers must not pass a zero vector; emission points on the
// heart curve never coincide with the emitter center.
func (v *Vector2) SetLength(target float64) *Vector2 {
	v.Normalize()
	v.X *= target
	v.Y *= target
	return v
}

// Normalize divides both components by the current length.
func (v *Vector2) Normalize() *Vector2 {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return v
}

// Clone returns an independent copy of v.
func (v Vector2) Clone() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

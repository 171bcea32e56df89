// Package vec provides the small amount of 2D vector math used by agent steering.
package vec

import "math"

// Vec2 is a 2D float vector in world space.
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vec2{}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// LengthSquared returns |v|².
func (v Vec2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Length returns |v|.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// is too short (or not finite) to normalize.
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.Length()
	if l <= 1e-12 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Zero
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perp returns v rotated by 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Lerp moves v toward o by fraction t. t is not clamped.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

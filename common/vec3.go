package common

import "math"

// Vec2 is a 2D float32 vector, used for look deltas from mouse or analog stick input.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3D float32 vector for world-space positions, velocities, and directions.
type Vec3 struct {
	X, Y, Z float32
}

// WorldUp is the global up direction (+Y).
var WorldUp = Vec3{0, 1, 0}

// WorldRight is the global right direction (+X), used as the fallback up
// vector when a look direction is nearly vertical.
var WorldRight = Vec3{1, 0, 0}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v multiplied by the scalar s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// LengthSq returns the squared length of v.
func (v Vec3) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of v.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSq())))
}

// HorizontalLength returns the length of v projected onto the XZ plane.
func (v Vec3) HorizontalLength() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Z*v.Z)))
}

// Horizontal returns v with its Y component zeroed.
func (v Vec3) Horizontal() Vec3 {
	return Vec3{v.X, 0, v.Z}
}

// Normalized returns v scaled to unit length.
// A zero-length vector normalizes to the zero vector rather than NaN.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	inv := 1.0 / l
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// LerpTo linearly interpolates from v toward o by weight t.
//
// Parameters:
//   - o: destination vector
//   - t: interpolation weight (0 = v, 1 = o)
//
// Returns:
//   - Vec3: the interpolated vector
func (v Vec3) LerpTo(o Vec3, t float32) Vec3 {
	return Vec3{
		Lerp(v.X, o.X, t),
		Lerp(v.Y, o.Y, t),
		Lerp(v.Z, o.Z, t),
	}
}

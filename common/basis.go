package common

import "math"

// Basis is a 3x3 rotation matrix stored as three column vectors.
// X is the local right axis, Y the local up axis, and Z the local back axis,
// so the basis faces along -Z (the OpenGL/WebGPU view convention the rest of
// the engine math follows).
type Basis struct {
	X, Y, Z Vec3
}

// IdentityBasis returns the identity rotation.
//
// Returns:
//   - Basis: right = +X, up = +Y, back = +Z
func IdentityBasis() Basis {
	return Basis{
		X: Vec3{1, 0, 0},
		Y: Vec3{0, 1, 0},
		Z: Vec3{0, 0, 1},
	}
}

// Forward returns the facing direction of the basis (-Z column).
func (b Basis) Forward() Vec3 {
	return b.Z.Neg()
}

// MulVec transforms a vector from basis-local space to parent space.
//
// Parameters:
//   - v: the vector in basis-local coordinates
//
// Returns:
//   - Vec3: the vector in parent coordinates
func (b Basis) MulVec(v Vec3) Vec3 {
	return b.X.Scale(v.X).Add(b.Y.Scale(v.Y)).Add(b.Z.Scale(v.Z))
}

// Mul composes two rotations: the result applies o first, then b.
//
// Parameters:
//   - o: the inner rotation
//
// Returns:
//   - Basis: b * o
func (b Basis) Mul(o Basis) Basis {
	return Basis{
		X: b.MulVec(o.X),
		Y: b.MulVec(o.Y),
		Z: b.MulVec(o.Z),
	}
}

// Rotated returns the basis rotated by angle radians around the given axis.
// The axis is expressed in the same space as the basis columns, so passing
// one of the basis' own columns performs a local-axis rotation.
//
// Parameters:
//   - axis: rotation axis (normalized internally)
//   - angle: rotation angle in radians (right-hand rule)
//
// Returns:
//   - Basis: the rotated basis
func (b Basis) Rotated(axis Vec3, angle float32) Basis {
	a := axis.Normalized()
	sin := float32(math.Sin(float64(angle)))
	cos := float32(math.Cos(float64(angle)))

	rotate := func(v Vec3) Vec3 {
		// Rodrigues' rotation formula.
		term1 := v.Scale(cos)
		term2 := a.Cross(v).Scale(sin)
		term3 := a.Scale(a.Dot(v) * (1 - cos))
		return term1.Add(term2).Add(term3)
	}

	return Basis{
		X: rotate(b.X),
		Y: rotate(b.Y),
		Z: rotate(b.Z),
	}
}

// Orthonormalized re-orthogonalizes the basis columns via Gram-Schmidt.
// Repeated incremental rotations accumulate float32 error; calling this
// after a rotation keeps the columns unit-length and mutually perpendicular.
//
// Returns:
//   - Basis: the orthonormalized basis
func (b Basis) Orthonormalized() Basis {
	x := b.X.Normalized()
	y := b.Y.Sub(x.Scale(x.Dot(b.Y))).Normalized()
	z := x.Cross(y)
	return Basis{X: x, Y: y, Z: z}
}

// LookAtBasis constructs an orthonormal basis facing along direction with the
// given up hint. The caller is responsible for rejecting degenerate inputs;
// SafeLookAt wraps this with the full fallback handling.
//
// Parameters:
//   - direction: facing direction (need not be normalized, must be non-zero)
//   - up: up hint (must not be colinear with direction)
//
// Returns:
//   - Basis: basis whose Forward() points along direction
func LookAtBasis(direction, up Vec3) Basis {
	z := direction.Normalized().Neg()
	x := up.Cross(z).Normalized()
	y := z.Cross(x)
	return Basis{X: x, Y: y, Z: z}
}

// InterpolateTo spherically interpolates from b toward target by weight t.
// Both bases are converted through quaternions, so inputs should be close to
// orthonormal.
//
// Parameters:
//   - target: destination rotation
//   - t: interpolation weight (clamped to [0, 1])
//
// Returns:
//   - Basis: the interpolated rotation
func (b Basis) InterpolateTo(target Basis, t float32) Basis {
	t = Clamp(t, 0, 1)
	from := QuatFromBasis(b)
	to := QuatFromBasis(target)
	return from.Slerp(to, t).Basis()
}

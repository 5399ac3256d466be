package common

import "math"

// Quat is a rotation quaternion (x, y, z, w). Used as the intermediate
// representation for basis interpolation; animation keyframe rotations use
// the same [4]float32 layout.
type Quat struct {
	X, Y, Z, W float32
}

// QuatFromBasis converts an orthonormal basis to a unit quaternion using
// Shepperd's method (branch on the largest diagonal term for stability).
//
// Parameters:
//   - b: the basis to convert (must be orthonormal)
//
// Returns:
//   - Quat: the equivalent unit quaternion
func QuatFromBasis(b Basis) Quat {
	m00, m01, m02 := b.X.X, b.Y.X, b.Z.X
	m10, m11, m12 := b.X.Y, b.Y.Y, b.Z.Y
	m20, m21, m22 := b.X.Z, b.Y.Z, b.Z.Z

	trace := m00 + m11 + m22
	var q Quat
	switch {
	case trace > 0:
		s := float32(math.Sqrt(float64(trace+1))) * 2
		q.W = 0.25 * s
		q.X = (m21 - m12) / s
		q.Y = (m02 - m20) / s
		q.Z = (m10 - m01) / s
	case m00 > m11 && m00 > m22:
		s := float32(math.Sqrt(float64(1+m00-m11-m22))) * 2
		q.W = (m21 - m12) / s
		q.X = 0.25 * s
		q.Y = (m01 + m10) / s
		q.Z = (m02 + m20) / s
	case m11 > m22:
		s := float32(math.Sqrt(float64(1+m11-m00-m22))) * 2
		q.W = (m02 - m20) / s
		q.X = (m01 + m10) / s
		q.Y = 0.25 * s
		q.Z = (m12 + m21) / s
	default:
		s := float32(math.Sqrt(float64(1+m22-m00-m11))) * 2
		q.W = (m10 - m01) / s
		q.X = (m02 + m20) / s
		q.Y = (m12 + m21) / s
		q.Z = 0.25 * s
	}
	return q.Normalized()
}

// Basis converts the quaternion back to a 3x3 rotation basis.
//
// Returns:
//   - Basis: the equivalent rotation basis
func (q Quat) Basis() Basis {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Basis{
		X: Vec3{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy)},
		Y: Vec3{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx)},
		Z: Vec3{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy)},
	}
}

// Normalized returns the quaternion scaled to unit length.
// A zero quaternion normalizes to identity.
func (q Quat) Normalized() Quat {
	l := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if l == 0 {
		return Quat{W: 1}
	}
	inv := 1.0 / l
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Slerp spherically interpolates from q toward target by weight t.
// Falls back to normalized linear interpolation when the quaternions are
// nearly parallel, where the slerp formula loses precision.
//
// Parameters:
//   - target: destination rotation
//   - t: interpolation weight in [0, 1]
//
// Returns:
//   - Quat: the interpolated unit quaternion
func (q Quat) Slerp(target Quat, t float32) Quat {
	dot := q.X*target.X + q.Y*target.Y + q.Z*target.Z + q.W*target.W

	// Take the short way around.
	if dot < 0 {
		target = Quat{-target.X, -target.Y, -target.Z, -target.W}
		dot = -dot
	}

	if dot > 0.9995 {
		return Quat{
			Lerp(q.X, target.X, t),
			Lerp(q.Y, target.Y, t),
			Lerp(q.Z, target.Z, t),
			Lerp(q.W, target.W, t),
		}.Normalized()
	}

	theta0 := float32(math.Acos(float64(Clamp(dot, -1, 1))))
	theta := theta0 * t
	sinTheta := float32(math.Sin(float64(theta)))
	sinTheta0 := float32(math.Sin(float64(theta0)))

	s0 := float32(math.Cos(float64(theta))) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quat{
		q.X*s0 + target.X*s1,
		q.Y*s0 + target.Y*s1,
		q.Z*s0 + target.Z*s1,
		q.W*s0 + target.W*s1,
	}.Normalized()
}

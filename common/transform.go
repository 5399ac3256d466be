package common

import "math"

// DegenerateEpsilon is the length below which a direction or cross product is
// treated as degenerate by SafeLookAt.
const DegenerateEpsilon = 0.001

// NearVerticalDot is the |normalized direction Y| threshold above which a look
// direction counts as nearly vertical, forcing the world-right up fallback.
const NearVerticalDot = 0.9

// Transform is a rigid transform: a rotation basis plus a world-space origin.
type Transform struct {
	Basis  Basis
	Origin Vec3
}

// IdentityTransform returns the identity transform at the world origin.
func IdentityTransform() Transform {
	return Transform{Basis: IdentityBasis()}
}

// Forward returns the transform's facing direction.
func (t Transform) Forward() Vec3 {
	return t.Basis.Forward()
}

// SafeLookAt constructs a transform at origin facing along direction, guarding
// every degenerate-geometry case instead of producing NaN columns:
//
//   - direction shorter than DegenerateEpsilon: no transform
//   - origin and origin+direction equal within float32 tolerance: no transform
//   - direction colinear with up: the up hint is replaced by world up, or by
//     world right when the direction itself is nearly vertical
//
// Callers treat a false return as "skip this orientation update".
//
// Parameters:
//   - origin: transform origin in world space
//   - direction: facing direction (need not be normalized)
//   - up: up hint for the basis construction
//
// Returns:
//   - Transform: the look-at transform (zero value when ok is false)
//   - bool: false when the inputs are degenerate and no transform was built
func SafeLookAt(origin, direction, up Vec3) (Transform, bool) {
	if direction.Length() < DegenerateEpsilon {
		return Transform{}, false
	}

	// At large origin magnitudes a short direction can vanish entirely in
	// float32 addition, leaving target == origin.
	target := origin.Add(direction)
	if target.Sub(origin).Length() < DegenerateEpsilon {
		return Transform{}, false
	}

	dir := direction.Normalized()
	if dir.Cross(up).Length() < DegenerateEpsilon {
		if float32(math.Abs(float64(dir.Y))) >= NearVerticalDot {
			up = WorldRight
		} else {
			up = WorldUp
		}
	}

	return Transform{
		Basis:  LookAtBasis(dir, up),
		Origin: origin,
	}, true
}

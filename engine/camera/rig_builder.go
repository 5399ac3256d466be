package camera

import "github.com/TomWoodling/pippis-poc/common"

// RigOption is a functional option for configuring a Rig.
type RigOption func(*rig)

// WithMaxPitch sets the pitch limit for the inner gimbal.
//
// Parameters:
//   - maxPitch: maximum |pitch| in radians
//
// Returns:
//   - RigOption: functional option to set the pitch limit
func WithMaxPitch(maxPitch float32) RigOption {
	return func(r *rig) {
		r.maxPitch = maxPitch
	}
}

// WithArmLength sets the spring-arm distance from rig origin to camera eye.
//
// Parameters:
//   - length: arm length in world units
//
// Returns:
//   - RigOption: functional option to set the arm length
func WithArmLength(length float32) RigOption {
	return func(r *rig) {
		r.armLength = length
	}
}

// WithFollowSpeed sets the exponential position-follow smoothing rate.
//
// Parameters:
//   - speed: smoothing rate (higher = tighter follow)
//
// Returns:
//   - RigOption: functional option to set the follow speed
func WithFollowSpeed(speed float32) RigOption {
	return func(r *rig) {
		r.followSpeed = speed
	}
}

// WithInitialPosition sets the rig position before the first Follow call.
//
// Parameters:
//   - p: initial rig origin in world space
//
// Returns:
//   - RigOption: functional option to set the starting position
func WithInitialPosition(p common.Vec3) RigOption {
	return func(r *rig) {
		r.position = p
	}
}

// WithInitialYaw rotates the outer gimbal before the first look delta.
//
// Parameters:
//   - yaw: initial yaw in radians about the outer stage's up axis
//
// Returns:
//   - RigOption: functional option to set the starting yaw
func WithInitialYaw(yaw float32) RigOption {
	return func(r *rig) {
		r.outer = r.outer.Rotated(r.outer.Y, yaw).Orthonormalized()
	}
}

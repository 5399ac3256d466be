package camera

import (
	"math"

	"github.com/TomWoodling/pippis-poc/common"
)

// pitchEpsilon suppresses sub-milliradian pitch applications that would
// otherwise jitter the inner gimbal at rest.
const pitchEpsilon = 0.001

// rig is the single implementation of Rig.
// The gimbal is split across two stages: the outer stage only ever rotates
// about its local up axis (yaw) and the inner stage only about its local
// right axis (pitch). Combined with re-deriving the current pitch from the
// actual forward vector on every look application, this keeps the camera out
// of gimbal lock and free of roll or accumulated drift.
type rig struct {
	outer common.Basis // yaw stage
	inner common.Basis // pitch stage

	// position lags the followed body via exponential smoothing.
	position common.Vec3

	maxPitch    float32
	armLength   float32
	followSpeed float32
}

// Rig is a two-axis gimbal follow camera: yaw on the outer stage, clamped
// pitch on the inner stage, a spring-arm eye offset, and exponential
// position smoothing toward the followed body.
type Rig interface {
	// ApplyLookDelta rotates the gimbal by a 2D look delta.
	// Yaw (-delta.X * sensitivity) is always applied in full. Pitch
	// (-delta.Y * sensitivity) is clamped so the total pitch, re-derived
	// from the actual forward vector, stays within [-maxPitch, +maxPitch].
	//
	// Parameters:
	//   - delta: per-tick relative look motion (mouse or scaled stick)
	//   - sensitivity: radians per delta unit
	ApplyLookDelta(delta common.Vec2, sensitivity float32)

	// Follow moves the rig position toward the target by exponential
	// smoothing: pos = lerp(pos, target, followSpeed * dt).
	//
	// Parameters:
	//   - target: the followed body position
	//   - dt: tick delta time in seconds
	Follow(target common.Vec3, dt float32)

	// Forward returns the combined gimbal facing direction.
	//
	// Returns:
	//   - common.Vec3: unit forward vector
	Forward() common.Vec3

	// Pitch returns the current total pitch, derived from the forward
	// vector rather than from stored deltas.
	//
	// Returns:
	//   - float32: pitch in radians, positive looking up
	Pitch() float32

	// PitchDegrees returns Pitch converted to degrees for debug display.
	//
	// Returns:
	//   - float32: pitch in degrees
	PitchDegrees() float32

	// Position returns the smoothed rig position.
	//
	// Returns:
	//   - common.Vec3: the rig origin in world space
	Position() common.Vec3

	// SetPosition snaps the rig position without smoothing.
	//
	// Parameters:
	//   - p: new rig origin in world space
	SetPosition(p common.Vec3)

	// Eye returns the spring-arm camera eye: the rig position pushed back
	// along the forward vector by the arm length.
	//
	// Returns:
	//   - common.Vec3: camera eye position in world space
	Eye() common.Vec3

	// MaxPitch returns the configured pitch limit.
	//
	// Returns:
	//   - float32: maximum |pitch| in radians
	MaxPitch() float32

	// ArmLength returns the spring-arm distance.
	//
	// Returns:
	//   - float32: distance from rig origin to camera eye
	ArmLength() float32

	// Reset zeroes both gimbal stages, returning the camera to a level,
	// forward-facing orientation.
	Reset()
}

var _ Rig = &rig{}

// NewRig creates a camera rig with the provided options applied over
// defaults (1.2 rad pitch limit, 4 unit arm, follow speed 5).
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig
func NewRig(options ...RigOption) Rig {
	r := &rig{
		outer:       common.IdentityBasis(),
		inner:       common.IdentityBasis(),
		maxPitch:    1.2,
		armLength:   4.0,
		followSpeed: 5.0,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *rig) ApplyLookDelta(delta common.Vec2, sensitivity float32) {
	yawDelta := -delta.X * sensitivity
	pitchDelta := -delta.Y * sensitivity

	if yawDelta != 0 {
		r.outer = r.outer.Rotated(r.outer.Y, yawDelta).Orthonormalized()
	}

	// Clamp against the pitch derived from the actual forward vector, not a
	// stored accumulator, so float error can never walk past the limit.
	current := r.Pitch()
	applied := common.Clamp(current+pitchDelta, -r.maxPitch, r.maxPitch) - current
	if float32(math.Abs(float64(applied))) > pitchEpsilon {
		r.inner = r.inner.Rotated(r.inner.X, applied).Orthonormalized()
	}
}

func (r *rig) Follow(target common.Vec3, dt float32) {
	r.position = r.position.LerpTo(target, common.Clamp(r.followSpeed*dt, 0, 1))
}

func (r *rig) Forward() common.Vec3 {
	return r.outer.Mul(r.inner).Forward()
}

func (r *rig) Pitch() float32 {
	fwd := r.Forward()
	if fwd.HorizontalLength() < 1e-6 {
		// Forward is (numerically) vertical; asin would be exact ±90° anyway
		// but the horizontal projection carries no yaw information.
		if fwd.Y >= 0 {
			return float32(math.Pi / 2)
		}
		return float32(-math.Pi / 2)
	}
	return float32(math.Asin(float64(common.Clamp(fwd.Y, -1, 1))))
}

func (r *rig) PitchDegrees() float32 {
	return r.Pitch() * 180 / float32(math.Pi)
}

func (r *rig) Position() common.Vec3 {
	return r.position
}

func (r *rig) SetPosition(p common.Vec3) {
	r.position = p
}

func (r *rig) Eye() common.Vec3 {
	return r.position.Sub(r.Forward().Scale(r.armLength))
}

func (r *rig) MaxPitch() float32 {
	return r.maxPitch
}

func (r *rig) ArmLength() float32 {
	return r.armLength
}

func (r *rig) Reset() {
	r.outer = common.IdentityBasis()
	r.inner = common.IdentityBasis()
}

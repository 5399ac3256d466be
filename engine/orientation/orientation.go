package orientation

import (
	"github.com/TomWoodling/pippis-poc/common"
	"github.com/TomWoodling/pippis-poc/engine/locomotion"
)

// speedDeadzone is the body speed below which the creature counts as idle
// and switches from velocity alignment to idle stabilization.
const speedDeadzone = 0.5

// flatForwardMin is the minimum horizontal forward length required for the
// grounded idle leveling target.
const flatForwardMin = 0.1

// controller is the single implementation of Controller.
type controller struct {
	alignSpeed        float32
	idleStabilization float32
}

// Controller smoothly reorients a body transform: toward its velocity
// direction while moving, or toward a level rest pose while idle. All
// degenerate geometry (zero velocity direction, vanishing cross products)
// results in the update being skipped for the tick, never in a NaN basis.
type Controller interface {
	// Align advances the body orientation one tick.
	//
	// Moving (speed > deadzone): the facing target is the normalized
	// velocity, flattened to the horizontal plane when grounded, and the
	// basis is interpolated toward a safe look-at at alignSpeed * dt.
	//
	// Idle FLOATING: the up vector is eased toward world up while the
	// forward direction is preserved, reconstructing an orthonormal basis.
	//
	// Idle GROUNDED: the basis levels toward the flattened current forward
	// at the idle stabilization rate.
	//
	// Parameters:
	//   - transform: the body transform to mutate
	//   - velocity: the body's current velocity
	//   - state: the active locomotion state
	//   - dt: tick delta time in seconds
	Align(transform *common.Transform, velocity common.Vec3, state locomotion.State, dt float32)

	// AlignSpeed returns the moving-alignment interpolation rate.
	//
	// Returns:
	//   - float32: alignment rate (higher = snappier turns)
	AlignSpeed() float32

	// IdleStabilization returns the idle leveling rate.
	//
	// Returns:
	//   - float32: idle stabilization rate
	IdleStabilization() float32
}

var _ Controller = &controller{}

// NewController creates an orientation controller with the provided options
// applied over defaults (align speed 4, idle stabilization 2).
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerOption) Controller {
	c := &controller{
		alignSpeed:        4.0,
		idleStabilization: 2.0,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controller) Align(transform *common.Transform, velocity common.Vec3, state locomotion.State, dt float32) {
	if velocity.Length() > speedDeadzone {
		c.alignToVelocity(transform, velocity, state, dt)
		return
	}

	switch state {
	case locomotion.StateGrounded:
		c.levelGrounded(transform, dt)
	default:
		c.levelFloating(transform, dt)
	}
}

// alignToVelocity turns the body toward its direction of travel.
func (c *controller) alignToVelocity(transform *common.Transform, velocity common.Vec3, state locomotion.State, dt float32) {
	facing := velocity.Normalized()
	if state == locomotion.StateGrounded {
		facing = facing.Horizontal().Normalized()
	}

	target, ok := common.SafeLookAt(transform.Origin, facing, common.WorldUp)
	if !ok {
		return
	}
	transform.Basis = transform.Basis.InterpolateTo(target.Basis, c.alignSpeed*dt)
}

// levelFloating eases the up vector toward world up while keeping the
// current forward, so an idle swimmer slowly rights itself without turning.
func (c *controller) levelFloating(transform *common.Transform, dt float32) {
	fwd := transform.Forward()
	up := transform.Basis.Y.LerpTo(common.WorldUp, common.Clamp(c.idleStabilization*dt, 0, 1)).Normalized()

	back := fwd.Neg()
	right := up.Cross(back)
	if right.Length() < common.DegenerateEpsilon {
		// Forward is (nearly) parallel to the corrected up; leave the
		// orientation alone this tick rather than fabricate a basis.
		return
	}
	right = right.Normalized()
	transform.Basis = common.Basis{
		X: right,
		Y: back.Cross(right),
		Z: back,
	}
}

// levelGrounded settles the body flat on the seabed, facing wherever its
// horizontal forward already points.
func (c *controller) levelGrounded(transform *common.Transform, dt float32) {
	flat := transform.Forward().Horizontal()
	if flat.Length() <= flatForwardMin {
		return
	}
	target, ok := common.SafeLookAt(transform.Origin, flat, common.WorldUp)
	if !ok {
		return
	}
	transform.Basis = transform.Basis.InterpolateTo(target.Basis, c.idleStabilization*dt)
}

func (c *controller) AlignSpeed() float32 {
	return c.alignSpeed
}

func (c *controller) IdleStabilization() float32 {
	return c.idleStabilization
}

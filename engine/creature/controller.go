// package creature assembles the aquatic character controller: one kinematic
// body, a gimbal follow camera, the FLOATING/GROUNDED locomotion machine,
// the body orientation controller, the animation clip selector, and the
// seabed proximity signal, advanced together in a fixed per-tick order.
package creature

import (
	"log"

	"github.com/TomWoodling/pippis-poc/common"
	"github.com/TomWoodling/pippis-poc/engine/animation"
	"github.com/TomWoodling/pippis-poc/engine/camera"
	"github.com/TomWoodling/pippis-poc/engine/config"
	"github.com/TomWoodling/pippis-poc/engine/input"
	"github.com/TomWoodling/pippis-poc/engine/locomotion"
	"github.com/TomWoodling/pippis-poc/engine/orientation"
	"github.com/TomWoodling/pippis-poc/engine/zone"
)

// controller is the single implementation of Controller.
// All state is instance-owned; any number of controllers simulate
// independently within one process.
type controller struct {
	id uint64

	body     *Body
	rig      camera.Rig
	machine  locomotion.Machine
	orient   orientation.Controller
	selector animation.Selector
	sampler  input.Sampler
	signal   *zone.Signal

	mouseSensitivity float32

	// onFloor mirrors the host's collision resolution contact flag; it is
	// written between ticks and read by the transition policy.
	onFloor bool

	onStateChanged func(prev, next locomotion.State)
}

// Controller is the per-creature simulation aggregate. The host owns the
// loop and drives the lifecycle: Initialize once, OnInputEvent for each
// queued event, OnTick once per fixed physics step.
type Controller interface {
	// Initialize snaps the camera to the body and selects the initial
	// animation clip. Call once before the first tick.
	Initialize()

	// OnTick advances one simulation step in the fixed order: sample
	// intent, apply look, advance the transition cooldown, evaluate the
	// transition policy, integrate velocity, reorient the body, follow
	// with the camera, advance position, and update the clip selection.
	//
	// Parameters:
	//   - dt: fixed physics step in seconds
	OnTick(dt float32)

	// OnInputEvent folds a host input event into the tick's intent.
	//
	// Parameters:
	//   - ev: the input event
	OnInputEvent(ev input.Event)

	// SetOnFloor updates the ground-contact flag from the host's collision
	// resolution.
	//
	// Parameters:
	//   - onFloor: true while standing on solid ground
	SetOnFloor(onFloor bool)

	// ID returns the controller's entity identifier, matched against
	// trigger-volume events.
	//
	// Returns:
	//   - uint64: the entity ID
	ID() uint64

	// Body returns the kinematic body.
	//
	// Returns:
	//   - *Body: the creature's body
	Body() *Body

	// Rig returns the camera rig.
	//
	// Returns:
	//   - camera.Rig: the follow camera
	Rig() camera.Rig

	// Signal returns the seabed proximity signal, for the host to wire
	// into its trigger volumes.
	//
	// Returns:
	//   - *zone.Signal: the proximity signal
	Signal() *zone.Signal

	// Selector returns the animation clip selector, for the host to attach
	// its animation backend through SetPlayer.
	//
	// Returns:
	//   - animation.Selector: the clip selector
	Selector() animation.Selector

	// State returns the active locomotion state.
	//
	// Returns:
	//   - locomotion.State: the current state
	State() locomotion.State

	// StateName returns the active state's name for debug display.
	//
	// Returns:
	//   - string: "FLOATING" or "GROUNDED"
	StateName() string

	// Speed returns the mode-relevant speed: full velocity magnitude while
	// floating, horizontal magnitude while grounded.
	//
	// Returns:
	//   - float32: the current speed
	Speed() float32

	// CameraForward returns the camera facing direction.
	//
	// Returns:
	//   - common.Vec3: unit camera forward
	CameraForward() common.Vec3

	// BodyForward returns the body facing direction.
	//
	// Returns:
	//   - common.Vec3: unit body forward
	BodyForward() common.Vec3

	// CameraPitchDegrees returns the camera pitch for debug display.
	//
	// Returns:
	//   - float32: pitch in degrees
	CameraPitchDegrees() float32

	// ForceState overrides the locomotion state, bypassing cooldown and
	// policy. Debug and test tooling only.
	//
	// Parameters:
	//   - s: the state to force
	ForceState(s locomotion.State)

	// ResetCamera zeroes both camera gimbals.
	ResetCamera()

	// Retune applies a hot-reloaded tuning set to the live controller.
	// Locomotion forces, reorientation rates, and mouse sensitivity update;
	// camera geometry is left alone so a tuning save never snaps the view.
	//
	// Parameters:
	//   - t: the tuning set, usually from a config.Watcher update
	Retune(t config.Tuning)
}

var _ Controller = &controller{}

// NewController creates a creature controller. Unconfigured collaborators
// are built with their package defaults, so a bare NewController() is a
// fully simulatable creature.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerOption) Controller {
	c := &controller{
		mouseSensitivity: 0.002,
	}
	for _, option := range options {
		option(c)
	}

	if c.body == nil {
		c.body = NewBody(common.Vec3{})
	}
	if c.rig == nil {
		c.rig = camera.NewRig()
	}
	if c.machine == nil {
		c.machine = locomotion.NewMachine()
	}
	if c.orient == nil {
		c.orient = orientation.NewController()
	}
	if c.selector == nil {
		c.selector = animation.NewSelector()
	}
	if c.sampler == nil {
		c.sampler = input.NewSampler()
	}
	if c.signal == nil {
		c.signal = zone.NewSignal(c.id)
	}

	c.machine.SetStateChangedCallback(c.stateChanged)

	return c
}

// stateChanged logs every accepted transition and forwards it to the host's
// callback when one is registered.
func (c *controller) stateChanged(prev, next locomotion.State) {
	log.Printf("creature %d: %s -> %s", c.id, prev, next)
	if c.onStateChanged != nil {
		c.onStateChanged(prev, next)
	}
}

func (c *controller) Initialize() {
	c.rig.SetPosition(c.body.Position())
	c.selector.Update(c.machine.State(), c.Speed())
}

func (c *controller) OnTick(dt float32) {
	move := c.sampler.Move()
	look := c.sampler.DrainLook(dt)

	c.rig.ApplyLookDelta(look, c.mouseSensitivity)

	c.machine.AdvanceCooldown(dt)
	c.machine.Evaluate(c.onFloor, c.signal.Active(), c.body.Velocity.Y)

	c.body.Velocity = c.machine.Integrate(
		c.body.Velocity,
		c.body.Position().Y,
		c.rig.Forward(),
		move,
		dt,
	)

	c.orient.Align(&c.body.Transform, c.body.Velocity, c.machine.State(), dt)
	c.rig.Follow(c.body.Position(), dt)
	c.body.Advance(dt)

	c.selector.Update(c.machine.State(), c.Speed())
}

func (c *controller) OnInputEvent(ev input.Event) {
	c.sampler.Apply(ev)
}

func (c *controller) SetOnFloor(onFloor bool) {
	c.onFloor = onFloor
}

func (c *controller) ID() uint64 {
	return c.id
}

func (c *controller) Body() *Body {
	return c.body
}

func (c *controller) Rig() camera.Rig {
	return c.rig
}

func (c *controller) Signal() *zone.Signal {
	return c.signal
}

func (c *controller) Selector() animation.Selector {
	return c.selector
}

func (c *controller) State() locomotion.State {
	return c.machine.State()
}

func (c *controller) StateName() string {
	return c.machine.State().String()
}

func (c *controller) Speed() float32 {
	if c.machine.State() == locomotion.StateGrounded {
		return c.body.HorizontalSpeed()
	}
	return c.body.Speed()
}

func (c *controller) CameraForward() common.Vec3 {
	return c.rig.Forward()
}

func (c *controller) BodyForward() common.Vec3 {
	return c.body.Forward()
}

func (c *controller) CameraPitchDegrees() float32 {
	return c.rig.PitchDegrees()
}

func (c *controller) ForceState(s locomotion.State) {
	c.machine.ForceState(s)
}

func (c *controller) ResetCamera() {
	c.rig.Reset()
}

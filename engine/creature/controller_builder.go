package creature

import (
	"github.com/TomWoodling/pippis-poc/common"
	"github.com/TomWoodling/pippis-poc/engine/animation"
	"github.com/TomWoodling/pippis-poc/engine/camera"
	"github.com/TomWoodling/pippis-poc/engine/input"
	"github.com/TomWoodling/pippis-poc/engine/locomotion"
	"github.com/TomWoodling/pippis-poc/engine/orientation"
	"github.com/TomWoodling/pippis-poc/engine/zone"
)

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controller)

// WithID sets the controller's entity identifier, matched against
// trigger-volume events.
//
// Parameters:
//   - id: the entity ID
//
// Returns:
//   - ControllerOption: functional option to set the ID
func WithID(id uint64) ControllerOption {
	return func(c *controller) {
		c.id = id
	}
}

// WithStartPosition sets the body's starting position.
//
// Parameters:
//   - position: starting position in world space
//
// Returns:
//   - ControllerOption: functional option to set the start position
func WithStartPosition(position common.Vec3) ControllerOption {
	return func(c *controller) {
		c.body = NewBody(position)
	}
}

// WithRig supplies a pre-configured camera rig.
//
// Parameters:
//   - rig: the follow camera
//
// Returns:
//   - ControllerOption: functional option to set the rig
func WithRig(rig camera.Rig) ControllerOption {
	return func(c *controller) {
		c.rig = rig
	}
}

// WithMachine supplies a pre-configured locomotion machine.
//
// Parameters:
//   - machine: the locomotion state machine
//
// Returns:
//   - ControllerOption: functional option to set the machine
func WithMachine(machine locomotion.Machine) ControllerOption {
	return func(c *controller) {
		c.machine = machine
	}
}

// WithOrientation supplies a pre-configured orientation controller.
//
// Parameters:
//   - orient: the body orientation controller
//
// Returns:
//   - ControllerOption: functional option to set the orientation controller
func WithOrientation(orient orientation.Controller) ControllerOption {
	return func(c *controller) {
		c.orient = orient
	}
}

// WithSelector supplies a pre-configured animation selector.
//
// Parameters:
//   - selector: the animation clip selector
//
// Returns:
//   - ControllerOption: functional option to set the selector
func WithSelector(selector animation.Selector) ControllerOption {
	return func(c *controller) {
		c.selector = selector
	}
}

// WithSampler supplies a pre-configured input sampler.
//
// Parameters:
//   - sampler: the input sampler
//
// Returns:
//   - ControllerOption: functional option to set the sampler
func WithSampler(sampler input.Sampler) ControllerOption {
	return func(c *controller) {
		c.sampler = sampler
	}
}

// WithSignal supplies a pre-built proximity signal. The signal's owner ID
// should match the controller's ID for trigger events to register.
//
// Parameters:
//   - signal: the seabed proximity signal
//
// Returns:
//   - ControllerOption: functional option to set the signal
func WithSignal(signal *zone.Signal) ControllerOption {
	return func(c *controller) {
		c.signal = signal
	}
}

// WithMouseSensitivity sets the radians-per-pixel look sensitivity.
//
// Parameters:
//   - sensitivity: radians of rotation per pixel of mouse motion
//
// Returns:
//   - ControllerOption: functional option to set the mouse sensitivity
func WithMouseSensitivity(sensitivity float32) ControllerOption {
	return func(c *controller) {
		c.mouseSensitivity = sensitivity
	}
}

// WithStateChangedCallback registers a notification fired on every locomotion
// state transition, after the controller's own logging.
//
// Parameters:
//   - callback: function receiving the previous and new state
//
// Returns:
//   - ControllerOption: functional option to set the callback
func WithStateChangedCallback(callback func(prev, next locomotion.State)) ControllerOption {
	return func(c *controller) {
		c.onStateChanged = callback
	}
}

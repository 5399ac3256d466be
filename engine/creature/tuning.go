package creature

import (
	"github.com/TomWoodling/pippis-poc/engine/animation"
	"github.com/TomWoodling/pippis-poc/engine/camera"
	"github.com/TomWoodling/pippis-poc/engine/config"
	"github.com/TomWoodling/pippis-poc/engine/input"
	"github.com/TomWoodling/pippis-poc/engine/locomotion"
	"github.com/TomWoodling/pippis-poc/engine/orientation"
)

// WithTuning builds the camera rig, locomotion machine, orientation
// controller, animation selector, and input sampler from a loaded tuning
// set. Apply it before options that supply individual collaborators, so
// those can still override; hosts with a real animation backend attach it
// through the selector's SetPlayer.
//
// Parameters:
//   - t: the tuning set, usually from config.Load
//
// Returns:
//   - ControllerOption: functional option applying the tuning
func WithTuning(t config.Tuning) ControllerOption {
	return func(c *controller) {
		c.mouseSensitivity = t.Camera.MouseSensitivity
		c.rig = camera.NewRig(
			camera.WithMaxPitch(t.Camera.MaxPitch),
			camera.WithArmLength(t.Camera.ArmLength),
			camera.WithFollowSpeed(t.Camera.FollowSpeed),
		)
		c.machine = machineFromTuning(t)
		c.orient = orientation.NewController(
			orientation.WithAlignSpeed(t.Body.AlignSpeed),
			orientation.WithIdleStabilization(t.Body.IdleStabilization),
		)
		c.selector = animation.NewSelector(
			animation.WithBlendTime(t.Animation.BlendTime),
		)
		c.sampler = input.NewSampler(
			input.WithStickSensitivity(t.Input.StickSensitivity),
		)
	}
}

// Retune applies a hot-reloaded tuning set to a live controller: locomotion
// forces, body reorientation rates, and mouse sensitivity. The active
// locomotion state is carried over; the transition cooldown restarts at zero.
// Camera geometry is left alone so a tuning save never snaps the view.
func (c *controller) Retune(t config.Tuning) {
	state := c.machine.State()
	c.machine = machineFromTuning(t)
	c.machine.ForceState(state)
	c.machine.SetStateChangedCallback(c.stateChanged)

	c.orient = orientation.NewController(
		orientation.WithAlignSpeed(t.Body.AlignSpeed),
		orientation.WithIdleStabilization(t.Body.IdleStabilization),
	)
	c.mouseSensitivity = t.Camera.MouseSensitivity
}

func machineFromTuning(t config.Tuning) locomotion.Machine {
	return locomotion.NewMachine(
		locomotion.WithTransitionDelay(t.Transition.Delay),
		locomotion.WithSinkThreshold(t.Transition.SinkThreshold),
		locomotion.WithSwimForces(t.Swim.Power, t.Swim.Resistance, t.Swim.Buoyancy, t.Swim.MaxSpeed),
		locomotion.WithCrawlForces(t.Crawl.Power, t.Crawl.Resistance, t.Crawl.MaxSpeed),
		locomotion.WithGravity(t.Swim.AirGravity, t.Crawl.Gravity),
		locomotion.WithWaterSurface(t.Swim.WaterSurfaceY),
	)
}

package orientation

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controller)

// WithAlignSpeed sets the interpolation rate used while the body is moving.
//
// Parameters:
//   - speed: alignment rate (higher = snappier turns)
//
// Returns:
//   - ControllerOption: functional option to set the align speed
func WithAlignSpeed(speed float32) ControllerOption {
	return func(c *controller) {
		c.alignSpeed = speed
	}
}

// WithIdleStabilization sets the leveling rate used while the body is idle.
//
// Parameters:
//   - speed: idle stabilization rate
//
// Returns:
//   - ControllerOption: functional option to set the idle stabilization rate
func WithIdleStabilization(speed float32) ControllerOption {
	return func(c *controller) {
		c.idleStabilization = speed
	}
}

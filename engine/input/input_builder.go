package input

// SamplerOption is a functional option for configuring a Sampler.
type SamplerOption func(*sampler)

// WithStickSensitivity sets the analog look-stick sensitivity multiplier.
//
// Parameters:
//   - sensitivity: multiplier applied before the dt*100 rate scaling
//
// Returns:
//   - SamplerOption: functional option to set the stick sensitivity
func WithStickSensitivity(sensitivity float32) SamplerOption {
	return func(s *sampler) {
		s.stickSensitivity = sensitivity
	}
}

// WithMoveKeys rebinds the forward and backward movement keys.
//
// Parameters:
//   - forward: virtual key code for forward movement
//   - backward: virtual key code for backward movement
//
// Returns:
//   - SamplerOption: functional option to set the key bindings
func WithMoveKeys(forward, backward uint32) SamplerOption {
	return func(s *sampler) {
		s.forwardKey = forward
		s.backwardKey = backward
	}
}

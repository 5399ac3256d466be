package zone

// VolumeOption is a functional option for configuring a Volume.
type VolumeOption func(*volume)

// WithEventCallback registers the crossing-event receiver at construction.
//
// Parameters:
//   - callback: function receiving enter/exit events
//
// Returns:
//   - VolumeOption: functional option to set the callback
func WithEventCallback(callback func(Event)) VolumeOption {
	return func(v *volume) {
		v.onEvent = callback
	}
}

// WithSignal wires a volume's events straight into a proximity signal.
//
// Parameters:
//   - s: the signal to feed
//
// Returns:
//   - VolumeOption: functional option to connect the signal
func WithSignal(s *Signal) VolumeOption {
	return func(v *volume) {
		v.onEvent = s.Handle
	}
}

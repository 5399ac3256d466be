package animation

// SelectorOption is a functional option for configuring a Selector.
type SelectorOption func(*selector)

// WithPlayer assigns the playback collaborator at construction time.
//
// Parameters:
//   - p: the player to attach
//
// Returns:
//   - SelectorOption: functional option to set the player
func WithPlayer(p Player) SelectorOption {
	return func(s *selector) {
		s.player = p
	}
}

// WithBlendTime sets the cross-blend duration used on clip changes.
//
// Parameters:
//   - blend: transition duration in seconds
//
// Returns:
//   - SelectorOption: functional option to set the blend time
func WithBlendTime(blend float32) SelectorOption {
	return func(s *selector) {
		s.blendTime = blend
	}
}

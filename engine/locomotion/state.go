package locomotion

// State identifies the active locomotion mode.
type State int

const (
	// StateFloating is the initial mode: free swimming in open water.
	StateFloating State = iota
	// StateGrounded is seabed crawling.
	StateGrounded
)

// String returns the state name for logging and the debug surface.
//
// Returns:
//   - string: "FLOATING", "GROUNDED", or "UNKNOWN"
func (s State) String() string {
	switch s {
	case StateFloating:
		return "FLOATING"
	case StateGrounded:
		return "GROUNDED"
	default:
		return "UNKNOWN"
	}
}

package animation

import (
	"log"

	"github.com/TomWoodling/pippis-poc/engine/locomotion"
)

// Clip names selected by the controller. The host's animation library must
// provide clips under these names.
const (
	ClipSwim      = "swim"
	ClipFloatIdle = "float_idle"
	ClipCrawl     = "crawl"
	ClipIdle      = "idle"
)

// movingSpeedThreshold separates the moving clips from the idle clips.
const movingSpeedThreshold = 0.1

// DefaultBlendTime is the transition duration used when switching clips.
const DefaultBlendTime = 0.3

// Player is the animation playback collaborator. Playback internals live in
// the host; the selector only asks whether a clip exists and requests plays.
type Player interface {
	// HasClip reports whether a clip with the given name exists.
	//
	// Parameters:
	//   - name: the clip name
	//
	// Returns:
	//   - bool: true if the clip can be played
	HasClip(name string) bool

	// Play starts the named clip, cross-blending from the current pose over
	// the given duration. A blend of 0 switches immediately.
	//
	// Parameters:
	//   - name: the clip name
	//   - blend: transition duration in seconds
	Play(name string, blend float32)
}

// ClipFor maps a locomotion state and speed to the clip that should play.
// Pure function; the Selector layers change detection and playback on top.
//
// Parameters:
//   - state: the active locomotion state
//   - speed: the body's current speed (full speed floating, horizontal
//     speed grounded)
//
// Returns:
//   - string: the target clip name
func ClipFor(state locomotion.State, speed float32) string {
	moving := speed > movingSpeedThreshold
	if state == locomotion.StateGrounded {
		if moving {
			return ClipCrawl
		}
		return ClipIdle
	}
	if moving {
		return ClipSwim
	}
	return ClipFloatIdle
}

// selector is the single implementation of Selector.
type selector struct {
	player    Player
	current   string
	started   bool
	blendTime float32
}

// Selector tracks the current clip selection and issues exactly one blended
// play request per clip change. Missing players and missing clips are
// warnings, never tick failures.
type Selector interface {
	// Update recomputes the target clip for this tick and, if it differs
	// from the current selection, requests playback. The very first clip
	// plays without blending; every later change blends over the
	// configured duration.
	//
	// Parameters:
	//   - state: the active locomotion state
	//   - speed: the body's current speed
	Update(state locomotion.State, speed float32)

	// Current returns the currently selected clip name.
	//
	// Returns:
	//   - string: the clip name, or "" before the first Update
	Current() string

	// SetPlayer assigns the playback collaborator. May be nil; selection
	// still advances and playback requests are skipped with a warning.
	//
	// Parameters:
	//   - p: the player, or nil to detach
	SetPlayer(p Player)
}

var _ Selector = &selector{}

// NewSelector creates a clip selector with the provided options applied over
// defaults (0.3 s blend, no player).
//
// Parameters:
//   - options: functional options to configure the selector
//
// Returns:
//   - Selector: the newly created selector
func NewSelector(options ...SelectorOption) Selector {
	s := &selector{
		blendTime: DefaultBlendTime,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *selector) Update(state locomotion.State, speed float32) {
	target := ClipFor(state, speed)
	if target == s.current {
		return
	}
	s.current = target

	if s.player == nil {
		log.Printf("animation: no player assigned, skipping %q", target)
		return
	}
	if !s.player.HasClip(target) {
		log.Printf("animation: clip %q not found, skipping playback", target)
		return
	}

	if !s.started {
		s.player.Play(target, 0)
		s.started = true
		return
	}
	s.player.Play(target, s.blendTime)
}

func (s *selector) Current() string {
	return s.current
}

func (s *selector) SetPlayer(p Player) {
	s.player = p
}

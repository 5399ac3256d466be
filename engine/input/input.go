// package input turns raw host events (key presses, mouse motion, analog
// stick axes) into the two abstract intents the controller consumes each
// tick: a forward intent in [-1, 1] and a 2D look delta.
package input

import (
	"sync"

	"github.com/TomWoodling/pippis-poc/common"
)

// stickScale matches analog stick rates to mouse-delta magnitude
// conventions: stick deflection is multiplied by sensitivity * dt * 100.
const stickScale = 100.0

// EventKind discriminates input events.
type EventKind int

const (
	// KindKey is a key press or release; Code and Pressed are set.
	KindKey EventKind = iota
	// KindLook is relative mouse motion; X and Y are the pixel deltas.
	KindLook
	// KindStick is an analog look-stick sample; X and Y are deflections
	// in [-1, 1].
	KindStick
	// KindMoveAxis is an analog move sample; X is the forward strength and
	// Y the backward strength, each in [0, 1].
	KindMoveAxis
)

// Event is a single host input event, delivered through the controller's
// OnInputEvent lifecycle hook.
type Event struct {
	Kind    EventKind
	Code    uint32
	Pressed bool
	X, Y    float32
}

// sampler is the single implementation of Sampler.
// Events arrive on the window thread while the simulation samples from its
// own goroutine, so all state sits behind the mutex.
type sampler struct {
	mu sync.Mutex

	keyState map[uint32]bool

	lookAccum common.Vec2 // queued mouse deltas, drained once per tick
	stick     common.Vec2 // held analog look deflection, sampled per tick

	analogForward  float32
	analogBackward float32

	stickSensitivity float32
	forwardKey       uint32
	backwardKey      uint32
}

// Sampler accumulates input events between ticks and serves them to the
// simulation exactly once per tick: discrete mouse deltas are queued and
// drained, held keys and stick deflections are sampled. Safe for concurrent
// use: Apply runs on the window thread, sampling on the simulation goroutine.
type Sampler interface {
	// Apply folds one host event into the sampler.
	//
	// Parameters:
	//   - ev: the input event
	Apply(ev Event)

	// Move returns the forward intent for this tick: forward strength
	// minus backward strength. Held keys count as full strength and
	// combine with the analog axes by magnitude.
	//
	// Returns:
	//   - float32: forward intent in [-1, 1]
	Move() float32

	// DrainLook returns this tick's look delta: all mouse motion queued
	// since the last drain, plus the held stick deflection scaled by
	// stickSensitivity * dt * 100. The mouse queue is cleared.
	//
	// Parameters:
	//   - dt: tick delta time in seconds
	//
	// Returns:
	//   - common.Vec2: the combined look delta
	DrainLook(dt float32) common.Vec2

	// KeyDown reports whether a key is currently held.
	//
	// Parameters:
	//   - code: the virtual key code
	//
	// Returns:
	//   - bool: true while the key is held
	KeyDown(code uint32) bool
}

var _ Sampler = &sampler{}

// NewSampler creates an input sampler with the provided options applied over
// defaults (W/S movement keys, stick sensitivity 2).
//
// Parameters:
//   - options: functional options to configure the sampler
//
// Returns:
//   - Sampler: the newly created sampler
func NewSampler(options ...SamplerOption) Sampler {
	s := &sampler{
		keyState:         make(map[uint32]bool),
		stickSensitivity: 2.0,
		forwardKey:       common.KeyW,
		backwardKey:      common.KeyS,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *sampler) Apply(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Kind {
	case KindKey:
		s.keyState[ev.Code] = ev.Pressed
	case KindLook:
		s.lookAccum.X += ev.X
		s.lookAccum.Y += ev.Y
	case KindStick:
		s.stick = common.Vec2{X: common.Clamp(ev.X, -1, 1), Y: common.Clamp(ev.Y, -1, 1)}
	case KindMoveAxis:
		s.analogForward = common.Clamp(ev.X, 0, 1)
		s.analogBackward = common.Clamp(ev.Y, 0, 1)
	}
}

func (s *sampler) Move() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	forward := s.analogForward
	if s.keyState[s.forwardKey] {
		forward = max(forward, 1)
	}
	backward := s.analogBackward
	if s.keyState[s.backwardKey] {
		backward = max(backward, 1)
	}
	return forward - backward
}

func (s *sampler) DrainLook(dt float32) common.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()

	look := s.lookAccum
	s.lookAccum = common.Vec2{}

	look.X += s.stick.X * s.stickSensitivity * dt * stickScale
	look.Y += s.stick.Y * s.stickSensitivity * dt * stickScale
	return look
}

func (s *sampler) KeyDown(code uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keyState[code]
}

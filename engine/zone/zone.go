// package zone provides seabed proximity signalling: trigger volumes owned by
// the host world emit enter/exit events, and a Signal folds the events for
// one entity into the boolean the locomotion state machine reads.
package zone

import "github.com/TomWoodling/pippis-poc/common"

// Event is a discrete trigger-volume crossing, carrying the identity of the
// entity that crossed.
type Event struct {
	// EntityID identifies the entity that entered or exited the volume.
	EntityID uint64
	// Entered is true on entry, false on exit.
	Entered bool
}

// Signal is the binary proximity flag for a single entity. Events naming any
// other entity are ignored; the locomotion state machine treats the flag as
// read-only input. Multiple volumes may feed one signal (seabed patches and
// island shallows share it), so entries are counted rather than latched.
type Signal struct {
	ownerID uint64
	inside  int
}

// NewSignal creates a proximity signal for the given entity.
//
// Parameters:
//   - ownerID: the entity whose crossings this signal tracks
//
// Returns:
//   - *Signal: the newly created signal
func NewSignal(ownerID uint64) *Signal {
	return &Signal{ownerID: ownerID}
}

// Handle folds a trigger event into the signal. Events for other entities
// are ignored; unmatched exits are clamped rather than driving the count
// negative.
//
// Parameters:
//   - ev: the trigger-volume event
func (s *Signal) Handle(ev Event) {
	if ev.EntityID != s.ownerID {
		return
	}
	if ev.Entered {
		s.inside++
		return
	}
	if s.inside > 0 {
		s.inside--
	}
}

// Active reports whether the entity is currently inside any feeding volume.
//
// Returns:
//   - bool: true while inside at least one trigger volume
func (s *Signal) Active() bool {
	return s.inside > 0
}

// OwnerID returns the entity this signal tracks.
//
// Returns:
//   - uint64: the owning entity ID
func (s *Signal) OwnerID() uint64 {
	return s.ownerID
}

// volume is the single implementation of Volume.
type volume struct {
	min, max common.Vec3
	inside   map[uint64]bool
	onEvent  func(Event)
}

// Volume is an axis-aligned trigger box. The host calls Step with each
// entity's position every physics tick; crossings produce enter/exit events
// on the registered callback.
type Volume interface {
	// Contains reports whether a point is inside the box.
	//
	// Parameters:
	//   - p: the point in world space
	//
	// Returns:
	//   - bool: true if p is inside
	Contains(p common.Vec3) bool

	// Step updates the tracked inside/outside status for an entity and
	// emits an event if it crossed the boundary since the last call.
	//
	// Parameters:
	//   - entityID: the entity being tracked
	//   - p: the entity's current position
	Step(entityID uint64, p common.Vec3)

	// SetEventCallback registers the crossing-event receiver.
	//
	// Parameters:
	//   - callback: function receiving enter/exit events
	SetEventCallback(callback func(Event))
}

var _ Volume = &volume{}

// NewVolume creates a trigger box spanning the given corners.
//
// Parameters:
//   - min: box corner with the smallest coordinates
//   - max: box corner with the largest coordinates
//   - options: functional options to configure the volume
//
// Returns:
//   - Volume: the newly created volume
func NewVolume(min, max common.Vec3, options ...VolumeOption) Volume {
	v := &volume{
		min:    min,
		max:    max,
		inside: make(map[uint64]bool),
	}
	for _, option := range options {
		option(v)
	}
	return v
}

func (v *volume) Contains(p common.Vec3) bool {
	return p.X >= v.min.X && p.X <= v.max.X &&
		p.Y >= v.min.Y && p.Y <= v.max.Y &&
		p.Z >= v.min.Z && p.Z <= v.max.Z
}

func (v *volume) Step(entityID uint64, p common.Vec3) {
	now := v.Contains(p)
	was := v.inside[entityID]
	if now == was {
		return
	}
	v.inside[entityID] = now
	if v.onEvent != nil {
		v.onEvent(Event{EntityID: entityID, Entered: now})
	}
}

func (v *volume) SetEventCallback(callback func(Event)) {
	v.onEvent = callback
}

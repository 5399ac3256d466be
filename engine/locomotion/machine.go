package locomotion

import (
	"github.com/TomWoodling/pippis-poc/common"
)

// moveDeadzone is the forward-intent magnitude below which input is ignored.
const moveDeadzone = 0.1

// machine is the single implementation of Machine.
// Owns the locomotion state and its transition cooldown; velocity itself is
// owned by the caller's kinematic body and passed through Integrate.
type machine struct {
	state    State
	cooldown float32

	transitionDelay float32
	sinkThreshold   float32

	swimPower       float32
	waterResistance float32
	buoyancy        float32
	airGravity      float32
	maxSwimSpeed    float32
	waterSurfaceY   float32

	crawlPower       float32
	groundResistance float32
	groundGravity    float32
	maxCrawlSpeed    float32

	onStateChanged func(prev, next State)
}

// Machine is the FLOATING/GROUNDED locomotion state machine with
// cooldown-gated transitions and per-state velocity integration.
type Machine interface {
	// State returns the active locomotion state.
	//
	// Returns:
	//   - State: the current state
	State() State

	// Cooldown returns the remaining transition cooldown.
	//
	// Returns:
	//   - float32: seconds until the next transition is allowed
	Cooldown() float32

	// AdvanceCooldown counts the transition cooldown down by dt, clamped
	// at zero.
	//
	// Parameters:
	//   - dt: tick delta time in seconds
	AdvanceCooldown(dt float32)

	// RequestTransition attempts a state change. The request is refused
	// while the cooldown is running or when next equals the current state.
	// An accepted transition resets the cooldown and fires the state-change
	// notification.
	//
	// Parameters:
	//   - next: the requested state
	//
	// Returns:
	//   - bool: true if the transition was accepted
	RequestTransition(next State) bool

	// Evaluate applies the transition policy for this tick: become
	// GROUNDED on solid ground contact, or when sinking near the seabed;
	// otherwise return to FLOATING from GROUNDED.
	//
	// Parameters:
	//   - onFloor: ground-contact flag from the host's collision resolution
	//   - nearGround: seabed proximity signal
	//   - verticalVel: the body's current vertical velocity
	Evaluate(onFloor, nearGround bool, verticalVel float32)

	// Integrate advances a velocity one tick under the active state's
	// forces and returns the capped result. FLOATING applies swim thrust
	// along the camera forward, air gravity above the water surface, water
	// drag and rate-limited buoyancy below it. GROUNDED applies gravity,
	// sets horizontal velocity toward the camera heading under crawl power,
	// and lets ground friction decay it.
	//
	// Parameters:
	//   - vel: the velocity entering this tick
	//   - posY: the body's vertical position (for the water-surface test)
	//   - camForward: the camera forward direction
	//   - move: forward intent in [-1, 1]
	//   - dt: tick delta time in seconds
	//
	// Returns:
	//   - common.Vec3: the integrated, speed-capped velocity
	Integrate(vel common.Vec3, posY float32, camForward common.Vec3, move, dt float32) common.Vec3

	// ForceState overrides the state directly, bypassing cooldown and
	// policy. Debug and test tooling only.
	//
	// Parameters:
	//   - s: the state to force
	ForceState(s State)

	// SetStateChangedCallback registers a notification fired on every
	// accepted transition. Telemetry only; correctness never depends on it.
	//
	// Parameters:
	//   - callback: function receiving the previous and new state
	SetStateChangedCallback(callback func(prev, next State))
}

var _ Machine = &machine{}

// NewMachine creates a locomotion machine in StateFloating with the provided
// options applied over defaults.
//
// Parameters:
//   - options: functional options to configure forces and thresholds
//
// Returns:
//   - Machine: the newly created machine
func NewMachine(options ...MachineOption) Machine {
	m := &machine{
		state:           StateFloating,
		transitionDelay: 0.5,
		sinkThreshold:   -0.15,

		swimPower:       8.0,
		waterResistance: 0.88,
		buoyancy:        0.9,
		airGravity:      9.8,
		maxSwimSpeed:    6.0,
		waterSurfaceY:   0.0,

		crawlPower:       2.5,
		groundResistance: 0.85,
		groundGravity:    9.8,
		maxCrawlSpeed:    3.0,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *machine) State() State {
	return m.state
}

func (m *machine) Cooldown() float32 {
	return m.cooldown
}

func (m *machine) AdvanceCooldown(dt float32) {
	m.cooldown -= dt
	if m.cooldown < 0 {
		m.cooldown = 0
	}
}

func (m *machine) RequestTransition(next State) bool {
	if m.cooldown > 0 || next == m.state {
		return false
	}
	prev := m.state
	m.state = next
	m.cooldown = m.transitionDelay
	if m.onStateChanged != nil {
		m.onStateChanged(prev, next)
	}
	return true
}

func (m *machine) Evaluate(onFloor, nearGround bool, verticalVel float32) {
	if onFloor || (nearGround && verticalVel <= m.sinkThreshold) {
		m.RequestTransition(StateGrounded)
		return
	}
	if m.state == StateGrounded {
		m.RequestTransition(StateFloating)
	}
}

func (m *machine) Integrate(vel common.Vec3, posY float32, camForward common.Vec3, move, dt float32) common.Vec3 {
	switch m.state {
	case StateGrounded:
		return m.integrateGrounded(vel, camForward, move, dt)
	default:
		return m.integrateFloating(vel, posY, camForward, move, dt)
	}
}

func (m *machine) integrateFloating(vel common.Vec3, posY float32, camForward common.Vec3, move, dt float32) common.Vec3 {
	if move > moveDeadzone {
		vel = vel.Add(camForward.Scale(m.swimPower * move * dt))
	}

	if posY > m.waterSurfaceY {
		// Breaching: plain gravity, no drag or buoyancy until resubmerged.
		vel.Y -= m.airGravity * dt
	} else {
		vel = vel.Scale(m.waterResistance)
		if move < moveDeadzone {
			// Rate-limited buoyancy: idle ascent speed tops out at the
			// buoyancy constant instead of growing without bound.
			vel.Y = min(vel.Y+m.buoyancy*dt, m.buoyancy)
		}
	}

	if speed := vel.Length(); speed > m.maxSwimSpeed {
		vel = vel.Scale(m.maxSwimSpeed / speed)
	}
	return vel
}

func (m *machine) integrateGrounded(vel common.Vec3, camForward common.Vec3, move, dt float32) common.Vec3 {
	vel.Y -= m.groundGravity * dt

	if move > moveDeadzone || move < -moveDeadzone {
		heading := camForward.Horizontal().Normalized()
		// Horizontal velocity is set toward the target, not accumulated;
		// the friction pass below turns release into a geometric decay.
		vel.X = heading.X * move * m.crawlPower
		vel.Z = heading.Z * move * m.crawlPower
	}
	vel.X *= m.groundResistance
	vel.Z *= m.groundResistance

	if hSpeed := vel.HorizontalLength(); hSpeed > m.maxCrawlSpeed {
		scale := m.maxCrawlSpeed / hSpeed
		vel.X *= scale
		vel.Z *= scale
	}
	return vel
}

func (m *machine) ForceState(s State) {
	m.state = s
}

func (m *machine) SetStateChangedCallback(callback func(prev, next State)) {
	m.onStateChanged = callback
}

package locomotion

// MachineOption is a functional option for configuring a Machine.
type MachineOption func(*machine)

// WithTransitionDelay sets the cooldown reset value applied on every
// accepted transition.
//
// Parameters:
//   - delay: minimum simulated seconds between accepted transitions
//
// Returns:
//   - MachineOption: functional option to set the transition delay
func WithTransitionDelay(delay float32) MachineOption {
	return func(m *machine) {
		m.transitionDelay = delay
	}
}

// WithSinkThreshold sets the vertical velocity at or below which a body near
// the seabed counts as actively sinking.
//
// Parameters:
//   - threshold: vertical velocity threshold (negative = sinking)
//
// Returns:
//   - MachineOption: functional option to set the sink threshold
func WithSinkThreshold(threshold float32) MachineOption {
	return func(m *machine) {
		m.sinkThreshold = threshold
	}
}

// WithSwimForces sets the FLOATING-state force constants.
//
// Parameters:
//   - power: thrust acceleration along the camera forward
//   - resistance: per-tick water drag factor (velocity multiplier)
//   - buoyancy: idle upward acceleration and its ascent-speed cap
//   - maxSpeed: swim speed cap
//
// Returns:
//   - MachineOption: functional option to set the swim forces
func WithSwimForces(power, resistance, buoyancy, maxSpeed float32) MachineOption {
	return func(m *machine) {
		m.swimPower = power
		m.waterResistance = resistance
		m.buoyancy = buoyancy
		m.maxSwimSpeed = maxSpeed
	}
}

// WithCrawlForces sets the GROUNDED-state force constants.
//
// Parameters:
//   - power: horizontal target speed per unit of forward intent
//   - resistance: per-tick ground friction factor (velocity multiplier)
//   - maxSpeed: horizontal crawl speed cap
//
// Returns:
//   - MachineOption: functional option to set the crawl forces
func WithCrawlForces(power, resistance, maxSpeed float32) MachineOption {
	return func(m *machine) {
		m.crawlPower = power
		m.groundResistance = resistance
		m.maxCrawlSpeed = maxSpeed
	}
}

// WithGravity sets the above-surface and grounded gravity accelerations.
//
// Parameters:
//   - air: downward acceleration while breaching the water surface
//   - ground: downward acceleration while grounded
//
// Returns:
//   - MachineOption: functional option to set the gravities
func WithGravity(air, ground float32) MachineOption {
	return func(m *machine) {
		m.airGravity = air
		m.groundGravity = ground
	}
}

// WithWaterSurface sets the world-space height of the water surface used by
// the breach test. The default of 0 matches a world authored with the water
// plane at the origin.
//
// Parameters:
//   - y: water surface height in world space
//
// Returns:
//   - MachineOption: functional option to set the water surface height
func WithWaterSurface(y float32) MachineOption {
	return func(m *machine) {
		m.waterSurfaceY = y
	}
}

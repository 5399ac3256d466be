package locomotion

import (
	"math"
	"testing"

	"github.com/TomWoodling/pippis-poc/common"
)

const dt = float32(1.0 / 60.0)

// --- transitions ---

func TestMachine_StartsFloating(t *testing.T) {
	m := NewMachine()
	if m.State() != StateFloating {
		t.Fatalf("initial state should be FLOATING, got %s", m.State())
	}
}

func TestMachine_OnFloorGrounds(t *testing.T) {
	m := NewMachine()
	m.Evaluate(true, false, 0)
	if m.State() != StateGrounded {
		t.Fatalf("on-floor contact should ground, got %s", m.State())
	}
	if m.Cooldown() != 0.5 {
		t.Fatalf("accepted transition should reset cooldown to 0.5, got %.3f", m.Cooldown())
	}
}

func TestMachine_SinkingNearSeabedGrounds(t *testing.T) {
	m := NewMachine()
	m.Evaluate(false, true, -0.2)
	if m.State() != StateGrounded {
		t.Fatalf("sinking near the seabed should ground, got %s", m.State())
	}
}

func TestMachine_NearSeabedButRisingStaysFloating(t *testing.T) {
	m := NewMachine()
	m.Evaluate(false, true, 0.5)
	if m.State() != StateFloating {
		t.Fatalf("rising near the seabed should stay FLOATING, got %s", m.State())
	}
}

func TestMachine_GroundedReleasesToFloating(t *testing.T) {
	m := NewMachine()
	m.ForceState(StateGrounded)
	m.Evaluate(false, false, 0)
	if m.State() != StateFloating {
		t.Fatalf("no contact and no proximity should float, got %s", m.State())
	}
}

func TestMachine_TransitionsRateLimited(t *testing.T) {
	m := NewMachine(WithTransitionDelay(0.5))

	var changes int
	m.SetStateChangedCallback(func(prev, next State) { changes++ })

	// Alternate floor contact on and off every tick for one simulated
	// second. With a 0.5 s cooldown no two accepted transitions may land
	// within less than 0.5 s of simulated time.
	var sinceLast float32 = 1
	for i := 0; i < 60; i++ {
		m.AdvanceCooldown(dt)
		sinceLast += dt
		before := changes
		m.Evaluate(i%2 == 0, false, 0)
		if changes > before {
			if sinceLast < 0.5-1e-3 {
				t.Fatalf("transition accepted only %.3f s after the previous one", sinceLast)
			}
			sinceLast = 0
		}
	}
	if changes == 0 {
		t.Fatal("expected at least one accepted transition")
	}
}

func TestMachine_RequestRefusedDuringCooldown(t *testing.T) {
	m := NewMachine()
	if !m.RequestTransition(StateGrounded) {
		t.Fatal("first transition should be accepted")
	}
	if m.RequestTransition(StateFloating) {
		t.Fatal("transition during cooldown should be refused")
	}
	// Burn the cooldown down, then the request goes through.
	for i := 0; i < 31; i++ {
		m.AdvanceCooldown(dt)
	}
	if !m.RequestTransition(StateFloating) {
		t.Fatal("transition after cooldown expiry should be accepted")
	}
}

func TestMachine_SameStateRequestIgnored(t *testing.T) {
	m := NewMachine()
	var changes int
	m.SetStateChangedCallback(func(prev, next State) { changes++ })
	if m.RequestTransition(StateFloating) {
		t.Fatal("requesting the current state should be refused")
	}
	if changes != 0 {
		t.Fatal("refused request should not notify")
	}
}

func TestMachine_CooldownClampsAtZero(t *testing.T) {
	m := NewMachine()
	m.RequestTransition(StateGrounded)
	m.AdvanceCooldown(10)
	if m.Cooldown() != 0 {
		t.Fatalf("cooldown should clamp at zero, got %.4f", m.Cooldown())
	}
}

// --- floating integration ---

func TestMachine_SwimThrustThenDrag(t *testing.T) {
	m := NewMachine(WithSwimForces(8, 0.88, 0.9, 6))
	camFwd := common.Vec3{X: 0, Y: 0, Z: -1}

	// m=1.0, submerged at y=-5: velocity gains camForward*8*1*dt, then the
	// whole vector is scaled by the water resistance.
	got := m.Integrate(common.Vec3{}, -5, camFwd, 1.0, dt)
	want := camFwd.Scale(8 * dt).Scale(0.88)
	if got.Sub(want).Length() > 1e-5 {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestMachine_IdleBuoyancyRateLimited(t *testing.T) {
	m := NewMachine(WithSwimForces(8, 1.0, 0.9, 6))
	vel := common.Vec3{}
	// Idle and submerged for five simulated seconds: ascent speed must
	// never exceed the buoyancy constant on any tick.
	for i := 0; i < 300; i++ {
		vel = m.Integrate(vel, -5, common.Vec3{Z: -1}, 0, dt)
		if vel.Y > 0.9+1e-5 {
			t.Fatalf("buoyant ascent %.4f exceeded the buoyancy constant at tick %d", vel.Y, i)
		}
	}
	if vel.Y < 0.5 {
		t.Fatalf("idle submerged body should be ascending, vel.Y=%.4f", vel.Y)
	}
}

func TestMachine_BuoyancySkippedWhileSwimming(t *testing.T) {
	m := NewMachine()
	camDown := common.Vec3{Y: -1}
	vel := m.Integrate(common.Vec3{}, -5, camDown, 1.0, dt)
	// Thrusting downward: no buoyancy term, so vel.Y is thrust*drag only.
	want := float32(-8.0*1.0*dt) * 0.88
	if math.Abs(float64(vel.Y-want)) > 1e-5 {
		t.Fatalf("expected vel.Y %.5f with buoyancy suppressed, got %.5f", want, vel.Y)
	}
}

func TestMachine_AirGravityAboveSurface(t *testing.T) {
	m := NewMachine(WithGravity(9.8, 9.8))
	vel := m.Integrate(common.Vec3{X: 2, Y: 1}, 0.5, common.Vec3{Z: -1}, 0, dt)
	// Above the surface: gravity only. No drag on X, no buoyancy.
	if vel.X != 2 {
		t.Fatalf("no drag should apply above the surface, vel.X=%.4f", vel.X)
	}
	want := float32(1 - 9.8*dt)
	if math.Abs(float64(vel.Y-want)) > 1e-5 {
		t.Fatalf("expected vel.Y %.5f under air gravity, got %.5f", want, vel.Y)
	}
}

func TestMachine_SurfaceBoundaryIsExclusive(t *testing.T) {
	m := NewMachine()
	// Exactly at the surface counts as submerged (y > 0 is the breach test).
	vel := m.Integrate(common.Vec3{X: 1}, 0, common.Vec3{Z: -1}, 0, dt)
	if vel.X != 1*0.88 {
		t.Fatalf("y=0 should take the submerged branch, vel.X=%.4f", vel.X)
	}
}

func TestMachine_SwimSpeedCapped(t *testing.T) {
	m := NewMachine(WithSwimForces(1000, 1.0, 0.9, 6))
	vel := common.Vec3{}
	for i := 0; i < 120; i++ {
		vel = m.Integrate(vel, -5, common.Vec3{Z: -1}, 1.0, dt)
		if vel.Length() > 6+1e-4 {
			t.Fatalf("speed %.4f exceeded the swim cap at tick %d", vel.Length(), i)
		}
	}
	if math.Abs(float64(vel.Length()-6)) > 1e-3 {
		t.Fatalf("sustained thrust should pin speed at the cap, got %.4f", vel.Length())
	}
}

func TestMachine_SpeedCapPreservesDirection(t *testing.T) {
	m := NewMachine(WithSwimForces(1000, 1.0, 0.9, 6))
	dir := common.Vec3{X: 0.6, Y: -0.4, Z: -0.8}.Normalized()
	vel := m.Integrate(common.Vec3{}, -5, dir, 1.0, dt)
	if vel.Normalized().Sub(dir).Length() > 1e-4 {
		t.Fatalf("cap rescale should preserve direction, got %+v", vel.Normalized())
	}
}

// --- grounded integration ---

func TestMachine_GroundedFrictionDecay(t *testing.T) {
	m := NewMachine(WithCrawlForces(2.5, 0.85, 3))
	m.ForceState(StateGrounded)

	vel := common.Vec3{X: 2, Z: -1}
	for i := 0; i < 10; i++ {
		prevX, prevZ := vel.X, vel.Z
		vel = m.Integrate(vel, -10, common.Vec3{Z: -1}, 0, dt)
		if math.Abs(float64(vel.X-prevX*0.85)) > 1e-5 || math.Abs(float64(vel.Z-prevZ*0.85)) > 1e-5 {
			t.Fatalf("horizontal velocity should decay by exactly the friction factor per tick, tick %d", i)
		}
	}
}

func TestMachine_GroundedGravityUnconditional(t *testing.T) {
	m := NewMachine(WithGravity(9.8, 9.8))
	m.ForceState(StateGrounded)
	vel := m.Integrate(common.Vec3{}, -10, common.Vec3{Z: -1}, 0, dt)
	want := float32(-9.8 * dt)
	if math.Abs(float64(vel.Y-want)) > 1e-6 {
		t.Fatalf("grounded gravity should always apply, vel.Y=%.5f", vel.Y)
	}
}

func TestMachine_CrawlSetsHorizontalFromCameraHeading(t *testing.T) {
	m := NewMachine(WithCrawlForces(2.5, 0.85, 3))
	m.ForceState(StateGrounded)

	// Camera pitched down 45°: heading must be the flattened, renormalized
	// forward, so full intent still yields full crawl speed.
	camFwd := common.Vec3{X: 0, Y: -0.707, Z: -0.707}
	vel := m.Integrate(common.Vec3{}, -10, camFwd, 1.0, dt)
	if math.Abs(float64(vel.X)) > 1e-5 {
		t.Fatalf("heading should have no X component, got %.5f", vel.X)
	}
	want := float32(-2.5 * 0.85)
	if math.Abs(float64(vel.Z-want)) > 1e-4 {
		t.Fatalf("expected vel.Z %.4f, got %.4f", want, vel.Z)
	}
}

func TestMachine_CrawlHorizontalSpeedCapped(t *testing.T) {
	m := NewMachine(WithCrawlForces(100, 1.0, 3))
	m.ForceState(StateGrounded)

	vel := m.Integrate(common.Vec3{Y: -4}, -10, common.Vec3{Z: -1}, 1.0, dt)
	if vel.HorizontalLength() > 3+1e-4 {
		t.Fatalf("horizontal speed %.4f exceeded the crawl cap", vel.HorizontalLength())
	}
	// The cap must leave vertical velocity untouched.
	wantY := float32(-4 - 9.8*dt)
	if math.Abs(float64(vel.Y-wantY)) > 1e-4 {
		t.Fatalf("crawl cap should not touch vertical velocity, got %.4f", vel.Y)
	}
}

func TestMachine_ForceStateBypassesCooldown(t *testing.T) {
	m := NewMachine()
	m.RequestTransition(StateGrounded)
	m.ForceState(StateFloating)
	if m.State() != StateFloating {
		t.Fatal("ForceState should override during cooldown")
	}
}

package engine

import (
	"testing"

	"github.com/TomWoodling/pippis-poc/common"
	"github.com/TomWoodling/pippis-poc/engine/creature"
	"github.com/TomWoodling/pippis-poc/engine/input"
	"github.com/TomWoodling/pippis-poc/engine/locomotion"
	"github.com/TomWoodling/pippis-poc/engine/zone"
)

const dt = float32(1.0 / 60.0)

func TestEngine_TickAdvancesEveryCreature(t *testing.T) {
	a := creature.NewController(creature.WithID(1), creature.WithStartPosition(common.Vec3{X: -5, Y: -5}))
	b := creature.NewController(creature.WithID(2), creature.WithStartPosition(common.Vec3{X: 5, Y: -5}))
	e := NewEngine(WithCreature(a), WithCreature(b)).(*engine)

	a.OnInputEvent(input.Event{Kind: input.KindKey, Code: common.KeyW, Pressed: true})
	for i := 0; i < 60; i++ {
		e.tick(dt)
	}

	if a.Body().Speed() < 0.1 {
		t.Fatal("driven creature should be moving after a second of ticks")
	}
	// The idle creature still simulates: buoyancy drifts it upward.
	if b.Body().Velocity.Y <= 0 {
		t.Fatalf("idle submerged creature should drift up, vel %+v", b.Body().Velocity)
	}
}

func TestEngine_SeabedContactGrounds(t *testing.T) {
	c := creature.NewController(creature.WithStartPosition(common.Vec3{Y: -19.9}))
	c.Body().Velocity = common.Vec3{Y: -2}
	e := NewEngine(WithCreature(c), WithSeabed(-20)).(*engine)

	for i := 0; i < 10; i++ {
		e.tick(dt)
	}

	if c.Body().Position().Y < -20 {
		t.Fatalf("body should be clamped to the seabed, got y=%.3f", c.Body().Position().Y)
	}
	if c.State() != locomotion.StateGrounded {
		t.Fatalf("seabed contact should ground the creature, got %s", c.StateName())
	}
}

func TestEngine_VolumesFeedProximitySignals(t *testing.T) {
	c := creature.NewController(creature.WithID(3), creature.WithStartPosition(common.Vec3{Y: -18}))
	v := zone.NewVolume(
		common.Vec3{X: -50, Y: -30, Z: -50},
		common.Vec3{X: 50, Y: -15, Z: 50},
		zone.WithSignal(c.Signal()),
	)
	e := NewEngine(WithCreature(c), WithVolume(v)).(*engine)

	e.tick(dt)
	if !c.Signal().Active() {
		t.Fatal("creature inside the volume should have an active signal after a tick")
	}

	c.Body().Transform.Origin = common.Vec3{Y: -5}
	e.tick(dt)
	if c.Signal().Active() {
		t.Fatal("leaving the volume should clear the signal")
	}
}

func TestEngine_InputRoutedToTargetOnly(t *testing.T) {
	a := creature.NewController(creature.WithID(1), creature.WithStartPosition(common.Vec3{Y: -5}))
	b := creature.NewController(creature.WithID(2), creature.WithStartPosition(common.Vec3{Y: -5}))
	e := NewEngine(WithCreature(a), WithCreature(b)).(*engine)

	e.dispatchInput(input.Event{Kind: input.KindKey, Code: common.KeyW, Pressed: true})
	e.tick(dt)

	if a.Body().Speed() == 0 {
		t.Fatal("first registered creature should be the default input target")
	}
	if hs := b.Body().Velocity.HorizontalLength(); hs != 0 {
		t.Fatalf("non-target creature must not receive input, horizontal speed %.5f", hs)
	}

	e.SetInputTarget(2)
	e.dispatchInput(input.Event{Kind: input.KindKey, Code: common.KeyW, Pressed: true})
	e.tick(dt)
	if b.Body().Velocity.HorizontalLength() == 0 {
		t.Fatal("retargeted creature should receive input")
	}
}

func TestEngine_RemoveCreatureDropsInputTarget(t *testing.T) {
	a := creature.NewController(creature.WithID(1))
	e := NewEngine(WithCreature(a)).(*engine)

	e.RemoveCreature(1)
	// Must not panic or route anywhere.
	e.dispatchInput(input.Event{Kind: input.KindKey, Code: common.KeyW, Pressed: true})
	e.tick(dt)

	if got := e.Creature(1); got != nil {
		t.Fatal("removed creature should be gone from the registry")
	}
}

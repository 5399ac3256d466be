package input

import (
	"math"
	"sync"
	"testing"

	"github.com/TomWoodling/pippis-poc/common"
)

func TestSampler_MoveCombinesForwardAndBackward(t *testing.T) {
	s := NewSampler()
	if s.Move() != 0 {
		t.Fatal("no input should yield zero intent")
	}

	s.Apply(Event{Kind: KindMoveAxis, X: 0.8, Y: 0.3})
	if got := s.Move(); math.Abs(float64(got-0.5)) > 1e-6 {
		t.Fatalf("analog intent should be forward-backward, got %.4f", got)
	}
}

func TestSampler_KeysOverrideWeakAnalog(t *testing.T) {
	s := NewSampler()
	s.Apply(Event{Kind: KindMoveAxis, X: 0.3, Y: 0})
	s.Apply(Event{Kind: KindKey, Code: common.KeyW, Pressed: true})
	if got := s.Move(); got != 1 {
		t.Fatalf("held forward key should dominate weak analog, got %.4f", got)
	}

	s.Apply(Event{Kind: KindKey, Code: common.KeyS, Pressed: true})
	if got := s.Move(); got != 0 {
		t.Fatalf("both keys held should cancel, got %.4f", got)
	}

	s.Apply(Event{Kind: KindKey, Code: common.KeyW, Pressed: false})
	if got := s.Move(); got != -1 {
		t.Fatalf("backward key alone should yield -1, got %.4f", got)
	}
}

func TestSampler_MoveAxisClamped(t *testing.T) {
	s := NewSampler()
	s.Apply(Event{Kind: KindMoveAxis, X: 5, Y: -2})
	if got := s.Move(); got != 1 {
		t.Fatalf("axis strengths should clamp to [0,1], got %.4f", got)
	}
}

func TestSampler_DrainLookClearsMouseQueue(t *testing.T) {
	s := NewSampler()
	s.Apply(Event{Kind: KindLook, X: 3, Y: -2})
	s.Apply(Event{Kind: KindLook, X: 1, Y: 1})

	got := s.DrainLook(1.0 / 60.0)
	if got != (common.Vec2{X: 4, Y: -1}) {
		t.Fatalf("queued mouse deltas should accumulate, got %+v", got)
	}
	if again := s.DrainLook(1.0 / 60.0); again != (common.Vec2{}) {
		t.Fatalf("second drain in a tick should be empty, got %+v", again)
	}
}

func TestSampler_StickScaledBySensitivityAndDt(t *testing.T) {
	s := NewSampler(WithStickSensitivity(2))
	s.Apply(Event{Kind: KindStick, X: 0.5, Y: -1})

	dt := float32(1.0 / 60.0)
	got := s.DrainLook(dt)
	wantX := 0.5 * 2 * dt * 100
	wantY := -1 * 2 * dt * 100
	if math.Abs(float64(got.X-wantX)) > 1e-4 || math.Abs(float64(got.Y-wantY)) > 1e-4 {
		t.Fatalf("stick should scale by sensitivity*dt*100, got %+v want (%.4f, %.4f)", got, wantX, wantY)
	}

	// Held stick keeps contributing every tick, unlike drained mouse deltas.
	if again := s.DrainLook(dt); math.Abs(float64(again.X-wantX)) > 1e-4 {
		t.Fatalf("held stick should contribute each tick, got %+v", again)
	}
}

// Events arrive on the window thread while the simulation goroutine samples;
// the race detector flags any unguarded access.
func TestSampler_ConcurrentApplyAndSample(t *testing.T) {
	s := NewSampler()

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		pressed := false
		for {
			select {
			case <-stop:
				return
			default:
			}
			pressed = !pressed
			s.Apply(Event{Kind: KindKey, Code: common.KeyW, Pressed: pressed})
			s.Apply(Event{Kind: KindLook, X: 1, Y: -1})
			s.Apply(Event{Kind: KindStick, X: 0.5, Y: 0.5})
		}
	}()

	for i := 0; i < 1000; i++ {
		_ = s.Move()
		_ = s.DrainLook(1.0 / 60.0)
		_ = s.KeyDown(common.KeyW)
	}
	close(stop)
	wg.Wait()
}

func TestSampler_RebindMoveKeys(t *testing.T) {
	s := NewSampler(WithMoveKeys(common.KeyD, common.KeyA))
	s.Apply(Event{Kind: KindKey, Code: common.KeyW, Pressed: true})
	if s.Move() != 0 {
		t.Fatal("unbound key should not move")
	}
	s.Apply(Event{Kind: KindKey, Code: common.KeyD, Pressed: true})
	if s.Move() != 1 {
		t.Fatal("rebound forward key should move")
	}
}

package animation

import (
	"testing"

	"github.com/TomWoodling/pippis-poc/engine/locomotion"
)

type playRequest struct {
	name  string
	blend float32
}

type fakePlayer struct {
	clips    map[string]bool
	requests []playRequest
}

func (f *fakePlayer) HasClip(name string) bool {
	return f.clips[name]
}

func (f *fakePlayer) Play(name string, blend float32) {
	f.requests = append(f.requests, playRequest{name, blend})
}

func allClips() map[string]bool {
	return map[string]bool{
		ClipSwim: true, ClipFloatIdle: true, ClipCrawl: true, ClipIdle: true,
	}
}

// --- pure mapping ---

func TestClipFor_Mapping(t *testing.T) {
	cases := []struct {
		state locomotion.State
		speed float32
		want  string
	}{
		{locomotion.StateFloating, 2.0, ClipSwim},
		{locomotion.StateFloating, 0.1, ClipFloatIdle},
		{locomotion.StateFloating, 0.0, ClipFloatIdle},
		{locomotion.StateGrounded, 1.5, ClipCrawl},
		{locomotion.StateGrounded, 0.05, ClipIdle},
	}
	for _, tc := range cases {
		if got := ClipFor(tc.state, tc.speed); got != tc.want {
			t.Fatalf("ClipFor(%s, %.2f) = %q, want %q", tc.state, tc.speed, got, tc.want)
		}
	}
}

// --- selector behavior ---

func TestSelector_FirstPlayIsUnblended(t *testing.T) {
	p := &fakePlayer{clips: allClips()}
	s := NewSelector(WithPlayer(p))

	s.Update(locomotion.StateFloating, 0)
	if len(p.requests) != 1 {
		t.Fatalf("expected 1 play request, got %d", len(p.requests))
	}
	if p.requests[0] != (playRequest{ClipFloatIdle, 0}) {
		t.Fatalf("first play should be unblended float_idle, got %+v", p.requests[0])
	}
}

func TestSelector_OneBlendPerChangeNotPerTick(t *testing.T) {
	p := &fakePlayer{clips: allClips()}
	s := NewSelector(WithPlayer(p))

	s.Update(locomotion.StateFloating, 0) // float_idle, unblended
	for i := 0; i < 10; i++ {
		s.Update(locomotion.StateFloating, 3.0) // swim
	}
	for i := 0; i < 10; i++ {
		s.Update(locomotion.StateGrounded, 2.0) // crawl
	}

	if len(p.requests) != 3 {
		t.Fatalf("expected 3 play requests (one per change), got %d: %+v", len(p.requests), p.requests)
	}
	if p.requests[1] != (playRequest{ClipSwim, DefaultBlendTime}) {
		t.Fatalf("second request should blend into swim, got %+v", p.requests[1])
	}
	if p.requests[2] != (playRequest{ClipCrawl, DefaultBlendTime}) {
		t.Fatalf("third request should blend into crawl, got %+v", p.requests[2])
	}
}

func TestSelector_MissingClipWarnsAndSkips(t *testing.T) {
	p := &fakePlayer{clips: map[string]bool{ClipSwim: true}}
	s := NewSelector(WithPlayer(p))

	s.Update(locomotion.StateFloating, 0) // float_idle missing
	if len(p.requests) != 0 {
		t.Fatalf("missing clip should not be played, got %+v", p.requests)
	}
	if s.Current() != ClipFloatIdle {
		t.Fatalf("selection should still advance, got %q", s.Current())
	}

	// The next change to an existing clip plays normally.
	s.Update(locomotion.StateFloating, 3.0)
	if len(p.requests) != 1 || p.requests[0].name != ClipSwim {
		t.Fatalf("existing clip should play after a miss, got %+v", p.requests)
	}
}

func TestSelector_NilPlayerIsNonFatal(t *testing.T) {
	s := NewSelector()
	s.Update(locomotion.StateFloating, 3.0)
	if s.Current() != ClipSwim {
		t.Fatalf("selection should advance without a player, got %q", s.Current())
	}
}

func TestSelector_CustomBlendTime(t *testing.T) {
	p := &fakePlayer{clips: allClips()}
	s := NewSelector(WithPlayer(p), WithBlendTime(0.75))

	s.Update(locomotion.StateFloating, 0)
	s.Update(locomotion.StateFloating, 3.0)
	if p.requests[1].blend != 0.75 {
		t.Fatalf("expected configured blend 0.75, got %.2f", p.requests[1].blend)
	}
}

// --- indexed player adapter ---

func TestIndexedPlayer_RoutesByBlend(t *testing.T) {
	var plays, blends []uint32
	p := NewIndexedPlayer(0,
		map[string]uint32{ClipSwim: 2, ClipIdle: 0},
		func(instance, clip uint32, loop bool) { plays = append(plays, clip) },
		func(instance, clip uint32, blend float32) { blends = append(blends, clip) },
	)

	if !p.HasClip(ClipSwim) || p.HasClip(ClipCrawl) {
		t.Fatal("HasClip should reflect the registered mapping")
	}

	p.Play(ClipSwim, 0)
	p.Play(ClipIdle, 0.3)
	p.Play(ClipCrawl, 0.3) // unregistered: silently ignored

	if len(plays) != 1 || plays[0] != 2 {
		t.Fatalf("unblended play should route to the play callback, got %v", plays)
	}
	if len(blends) != 1 || blends[0] != 0 {
		t.Fatalf("blended play should route to the blend callback, got %v", blends)
	}
}

package animation

// indexedPlayer adapts a clip-index animation backend to the name-based
// Player interface. GPU animators address clips by the index they were added
// under; this keeps that detail out of the selector.
type indexedPlayer struct {
	instance uint32
	clips    map[string]uint32

	playFunc  func(instance, clip uint32, loop bool)
	blendFunc func(instance, clip uint32, blend float32)
}

var _ Player = &indexedPlayer{}

// NewIndexedPlayer creates a Player that resolves clip names to indices and
// forwards playback to index-based callbacks, typically an animator's
// PlayAnimation and BlendToAnimation methods bound to one instance.
//
// Parameters:
//   - instance: the animator instance index this player drives
//   - clips: clip name to clip index mapping
//   - playFunc: unblended playback callback (looped)
//   - blendFunc: cross-blend playback callback
//
// Returns:
//   - Player: the adapter
func NewIndexedPlayer(
	instance uint32,
	clips map[string]uint32,
	playFunc func(instance, clip uint32, loop bool),
	blendFunc func(instance, clip uint32, blend float32),
) Player {
	return &indexedPlayer{
		instance:  instance,
		clips:     clips,
		playFunc:  playFunc,
		blendFunc: blendFunc,
	}
}

func (p *indexedPlayer) HasClip(name string) bool {
	_, ok := p.clips[name]
	return ok
}

func (p *indexedPlayer) Play(name string, blend float32) {
	clip, ok := p.clips[name]
	if !ok {
		return
	}
	if blend <= 0 {
		if p.playFunc != nil {
			p.playFunc(p.instance, clip, true)
		}
		return
	}
	if p.blendFunc != nil {
		p.blendFunc(p.instance, clip, blend)
	}
}

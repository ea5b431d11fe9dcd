package system

import (
	"github.com/milk9111/cheaters/ecs"
)

// Cue plays a named sound effect. Frontends supply the backend.
type Cue interface {
	Play(name string)
}

// AudioSystem turns gameplay events into sound cues.
type AudioSystem struct {
	cue Cue
}

func NewAudioSystem(cue Cue) *AudioSystem {
	return &AudioSystem{cue: cue}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || a.cue == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Events() {
		switch evt.Type {
		case EventCheatActivated:
			a.cue.Play(CuePowerup)
		case EventPickupCollected:
			a.cue.Play(CuePickup)
		}
	}
}

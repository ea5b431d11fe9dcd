package main

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/cheaters/ecs/system"
	"github.com/milk9111/cheaters/sfx"
	"github.com/rs/zerolog/log"
)

// audioCue plays synthesized cues through ebiten's audio context. One player
// per cue is kept and rewound, so repeated cues restart instead of stacking.
type audioCue struct {
	players map[string]*audio.Player
}

func newAudioCue() *audioCue {
	ctx := audio.NewContext(int(sfx.SampleRate))
	c := &audioCue{players: make(map[string]*audio.Player)}
	for _, name := range []string{system.CuePowerup, system.CuePickup} {
		stream, err := sfx.New(name, sfx.SampleRate)
		if err != nil {
			log.Warn().Err(err).Str("cue", name).Msg("synthesize cue")
			continue
		}
		c.players[name] = ctx.NewPlayerFromBytes(sfx.PCM16(stream))
	}
	return c
}

func (c *audioCue) Play(name string) {
	player := c.players[name]
	if player == nil {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Warn().Err(err).Str("cue", name).Msg("rewind cue")
	}
	player.Play()
}

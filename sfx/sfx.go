// Package sfx synthesizes the game's sound cues so no audio assets ship with
// the binary. Both frontends play the same streams.
package sfx

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const SampleRate = beep.SampleRate(44100)

var ErrUnknownCue = errors.New("sfx: unknown cue")

type tone struct {
	freq float64
	dur  time.Duration
}

var cues = map[string][]tone{
	// Rising C major arpeggio.
	"powerup": {
		{523.25, 70 * time.Millisecond},
		{659.25, 70 * time.Millisecond},
		{783.99, 70 * time.Millisecond},
		{1046.50, 160 * time.Millisecond},
	},
	"pickup": {
		{987.77, 50 * time.Millisecond},
		{1318.51, 90 * time.Millisecond},
	},
}

const cueVolume = 0.4

// New builds a fresh, finite stream for the named cue.
func New(name string, sr beep.SampleRate) (beep.Streamer, error) {
	notes, ok := cues[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCue, name)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s, err := note(sr, n.freq, n.dur)
		if err != nil {
			return nil, fmt.Errorf("sfx: %s: %w", name, err)
		}
		parts = append(parts, s)
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: math.Log2(cueVolume)}, nil
}

// Duration is the length of the named cue.
func Duration(name string) time.Duration {
	var d time.Duration
	for _, n := range cues[name] {
		d += n.dur
	}
	return d
}

func note(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	n := sr.N(d)
	return &release{streamer: beep.Take(n, sine), total: n}, nil
}

// release fades a note linearly to silence so notes do not click.
type release struct {
	streamer beep.Streamer
	pos      int
	total    int
}

func (r *release) Stream(samples [][2]float64) (int, bool) {
	n, ok := r.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(r.pos)/float64(r.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		r.pos++
	}
	return n, ok
}

func (r *release) Err() error { return r.streamer.Err() }

// PCM16 drains s into signed 16-bit little-endian stereo, the layout ebiten's
// audio players read.
func PCM16(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

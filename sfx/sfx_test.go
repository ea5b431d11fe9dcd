package sfx

import (
	"errors"
	"testing"
)

func TestCueLengths(t *testing.T) {
	for _, name := range []string{"powerup", "pickup"} {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, SampleRate)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			pcm := PCM16(s)
			want := SampleRate.N(Duration(name)) * 4
			// Each note rounds to whole samples independently.
			if diff := len(pcm) - want; diff < -16 || diff > 16 {
				t.Fatalf("pcm length %d, want about %d", len(pcm), want)
			}
		})
	}
}

func TestCueIsNotSilent(t *testing.T) {
	s, err := New("pickup", SampleRate)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pcm := PCM16(s)
	for _, b := range pcm {
		if b != 0 {
			return
		}
	}
	t.Fatalf("pickup cue rendered silence")
}

func TestUnknownCue(t *testing.T) {
	if _, err := New("fanfare", SampleRate); !errors.Is(err, ErrUnknownCue) {
		t.Fatalf("expected ErrUnknownCue, got %v", err)
	}
}

func TestToInt16Clamps(t *testing.T) {
	cases := map[float64]int16{2: 32767, -2: -32767, 0: 0}
	for in, want := range cases {
		if got := toInt16(in); got != want {
			t.Fatalf("toInt16(%v) = %d, want %d", in, got, want)
		}
	}
}

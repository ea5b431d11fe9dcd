package session

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/milk9111/cheaters/cheatcode"
	"github.com/milk9111/cheaters/config"
	"github.com/milk9111/cheaters/ecs/system"
	"github.com/milk9111/cheaters/prefabs"
)

type cueLog []string

func (c *cueLog) Play(name string) { *c = append(*c, name) }

func seededConfig(seed uint64) config.Config {
	return config.Config{Seed: seed, HasSeed: true, LogLevel: "info"}
}

func newSession(t *testing.T, cfg config.Config, cue system.Cue) *Session {
	t.Helper()
	s, err := New(cfg, cue)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestSameSeedSameCodes(t *testing.T) {
	a := newSession(t, seededConfig(3), nil).Codes()
	b := newSession(t, seededConfig(3), nil).Codes()
	if len(a) != len(cheatcode.Kinds()) {
		t.Fatalf("expected %d codes, got %d", len(cheatcode.Kinds()), len(a))
	}
	for i := range a {
		if a[i].Text != b[i].Text {
			t.Fatalf("%s: %q vs %q", a[i].Kind, a[i].Text, b[i].Text)
		}
	}
}

func TestCollectThenActivate(t *testing.T) {
	var cues cueLog
	s := newSession(t, seededConfig(5), &cues)

	var jump cheatcode.CheatCode
	for _, c := range s.Codes() {
		if c.Kind == cheatcode.Jump {
			jump = c
		}
	}
	for _, w := range jump.Words() {
		s.Collect(w)
	}
	s.Update()
	s.Submit("cheat " + jump.Text)
	s.Update()

	if !s.IsActive(cheatcode.Jump) || !s.Abilities().Unlocked[cheatcode.Jump] {
		t.Fatalf("jump should be active; console:\n%q", s.Lines())
	}
	want := append(slices.Repeat([]string{system.CuePickup}, len(jump.Words())), system.CuePowerup)
	if !slices.Equal([]string(cues), want) {
		t.Fatalf("cues %v, want %v", cues, want)
	}
	if len(s.Inventory().SortedWords()) != 0 {
		t.Fatalf("inventory should be spent, got %v", s.Inventory().SortedWords())
	}
}

func TestAbilitiesSnapshotIsCopy(t *testing.T) {
	s := newSession(t, seededConfig(1), nil)
	a := s.Abilities()
	a.Lives = 99
	if s.Abilities().Lives == 99 {
		t.Fatalf("Abilities should return a copy")
	}
	if s.Abilities().Lives != 6 || s.Abilities().SpeedMultiplier != 1 {
		t.Fatalf("unexpected starting abilities %+v", s.Abilities())
	}
}

func TestStarterInventory(t *testing.T) {
	if n := len(newSession(t, seededConfig(1), nil).Inventory().SortedWords()); n != 0 {
		t.Fatalf("default inventory should be empty, got %d words", n)
	}
	cfg := seededConfig(1)
	cfg.StarterInventory = true
	if n := len(newSession(t, cfg, nil).Inventory().SortedWords()); n == 0 {
		t.Fatalf("starter inventory should hold words")
	}
}

func TestConsoleGreetingAndToggle(t *testing.T) {
	s := newSession(t, seededConfig(1), nil)
	if len(s.Lines()) == 0 {
		t.Fatalf("expected greeting lines")
	}
	s.SetConsoleOpen(true)
	s.Submit("exit")
	s.Update()
	if s.ConsoleOpen() {
		t.Fatalf("exit should close the console")
	}
}

func TestDataDirOverridesWordList(t *testing.T) {
	dir := t.TempDir()
	body := "words: [alfa, bravo, charlie, delta, echo, foxtrot, golf, hotel, india, juliet]\n"
	if err := os.WriteFile(filepath.Join(dir, prefabs.WordListFile), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := seededConfig(2)
	cfg.DataDir = dir

	s := newSession(t, cfg, nil)
	allowed := []string{"alfa", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel", "india", "juliet"}
	for _, c := range s.Codes() {
		for _, w := range c.Words() {
			if !slices.Contains(allowed, w) {
				t.Fatalf("%s uses %q outside the override list", c.Kind, w)
			}
		}
	}
	if s.Store().Dir != dir {
		t.Fatalf("store dir %q, want %q", s.Store().Dir, dir)
	}
}

func TestNewFailsOnBadData(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, prefabs.WordListFile), []byte("words: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := seededConfig(1)
	cfg.DataDir = dir
	if _, err := New(cfg, nil); err == nil {
		t.Fatalf("expected error for empty word list")
	}
}

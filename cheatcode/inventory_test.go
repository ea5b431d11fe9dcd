package cheatcode

import (
	"maps"
	"testing"
)

func inventoryOf(words map[string]int, keycaps map[rune]int) *Inventory {
	inv := NewInventory()
	for w, n := range words {
		inv.Words[w] = n
	}
	for r, n := range keycaps {
		inv.Keycaps[r] = n
	}
	return inv
}

func assertUnchanged(t *testing.T, before, after *Inventory) {
	t.Helper()
	if !maps.Equal(before.Words, after.Words) {
		t.Fatalf("word counts changed: before=%v after=%v", before.Words, after.Words)
	}
	if !maps.Equal(before.Keycaps, after.Keycaps) {
		t.Fatalf("keycap counts changed: before=%v after=%v", before.Keycaps, after.Keycaps)
	}
}

func TestTryConsume(t *testing.T) {
	cases := []struct {
		name        string
		phrase      []string
		words       map[string]int
		keycaps     map[rune]int
		ok          bool
		wantWords   map[string]int
		wantKeycaps map[rune]int
	}{
		{
			name:        "all_whole_words",
			phrase:      []string{"dawn", "till", "core"},
			words:       map[string]int{"dawn": 1, "till": 2, "core": 1},
			ok:          true,
			wantWords:   map[string]int{"dawn": 0, "till": 1, "core": 0},
			wantKeycaps: map[rune]int{},
		},
		{
			name:    "middle_word_missing_one_keycap",
			phrase:  []string{"dawn", "till", "core"},
			words:   map[string]int{"dawn": 1, "core": 1},
			keycaps: map[rune]int{'t': 1, 'i': 1, 'l': 1},
			ok:      false,
		},
		{
			name:    "unsupported_last_word",
			phrase:  []string{"dawn", "till", "core"},
			words:   map[string]int{"dawn": 1},
			keycaps: map[rune]int{'t': 1, 'i': 1, 'l': 1},
			ok:      false,
		},
		{
			name:        "keycaps_cover_two_words",
			phrase:      []string{"dawn", "till", "kick"},
			words:       map[string]int{"dawn": 1},
			keycaps:     map[rune]int{'t': 1, 'i': 2, 'l': 2, 'k': 2, 'c': 1},
			ok:          true,
			wantWords:   map[string]int{"dawn": 0},
			wantKeycaps: map[rune]int{'t': 0, 'i': 0, 'l': 0, 'k': 0, 'c': 0},
		},
		{
			// 'i' is needed once by till and once by kick.
			name:    "shared_keycap_counted_across_phrase",
			phrase:  []string{"dawn", "till", "kick"},
			words:   map[string]int{"dawn": 1},
			keycaps: map[rune]int{'t': 1, 'i': 1, 'l': 2, 'k': 2, 'c': 1},
			ok:      false,
		},
		{
			name:        "repeated_word_needs_two_units",
			phrase:      []string{"core", "core", "dawn"},
			words:       map[string]int{"core": 1, "dawn": 1},
			keycaps:     map[rune]int{'c': 1, 'o': 1, 'r': 1, 'e': 1},
			ok:          true,
			wantWords:   map[string]int{"core": 0, "dawn": 0},
			wantKeycaps: map[rune]int{'c': 0, 'o': 0, 'r': 0, 'e': 0},
		},
		{
			name:   "repeated_word_without_keycaps",
			phrase: []string{"core", "core", "dawn"},
			words:  map[string]int{"core": 1, "dawn": 1},
			ok:     false,
		},
		{
			name:        "zero_count_word_falls_back_to_keycaps",
			phrase:      []string{"zero", "upon", "show"},
			words:       map[string]int{"zero": 0, "upon": 1, "show": 1},
			keycaps:     map[rune]int{'z': 1, 'e': 1, 'r': 1, 'o': 1},
			ok:          true,
			wantWords:   map[string]int{"zero": 0, "upon": 0, "show": 0},
			wantKeycaps: map[rune]int{'z': 0, 'e': 0, 'r': 0, 'o': 0},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			inv := inventoryOf(c.words, c.keycaps)
			before := inv.Clone()

			if got := inv.TryConsume(c.phrase); got != c.ok {
				t.Fatalf("TryConsume(%v) = %v, want %v", c.phrase, got, c.ok)
			}
			if !c.ok {
				assertUnchanged(t, before, inv)
				return
			}
			for w, n := range c.wantWords {
				if inv.Word(w) != n {
					t.Fatalf("word %q: got %d want %d", w, inv.Word(w), n)
				}
			}
			for r, n := range c.wantKeycaps {
				if inv.Keycap(r) != n {
					t.Fatalf("keycap %q: got %d want %d", r, inv.Keycap(r), n)
				}
			}
			for w, n := range inv.Words {
				if n < 0 {
					t.Fatalf("word %q went negative", w)
				}
			}
			for r, n := range inv.Keycaps {
				if n < 0 {
					t.Fatalf("keycap %q went negative", r)
				}
			}
		})
	}
}

func TestInventoryCollect(t *testing.T) {
	inv := NewInventory()
	inv.Collect("k")
	inv.Collect("k")
	inv.Collect("kick")
	inv.Collect("")

	if inv.Keycap('k') != 2 {
		t.Fatalf("expected 2 'k' keycaps, got %d", inv.Keycap('k'))
	}
	if inv.Word("kick") != 1 {
		t.Fatalf("expected 1 'kick' word, got %d", inv.Word("kick"))
	}
	if len(inv.Words) != 1 || len(inv.Keycaps) != 1 {
		t.Fatalf("unexpected entries: words=%v keycaps=%v", inv.Words, inv.Keycaps)
	}
}

func TestInventorySortedViews(t *testing.T) {
	inv := inventoryOf(
		map[string]int{"zero": 1, "back": 2, "gone": 0},
		map[rune]int{'w': 1, 'a': 3, 'q': 0},
	)

	words := inv.SortedWords()
	if len(words) != 2 || words[0] != "back" || words[1] != "zero" {
		t.Fatalf("unexpected words %v", words)
	}
	keys := inv.SortedKeycaps()
	if len(keys) != 2 || keys[0] != 'a' || keys[1] != 'w' {
		t.Fatalf("unexpected keycaps %q", keys)
	}
}

package cheatcode

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// KeycapAlphabet is every character that exists as a keycap pickup.
const KeycapAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func IsKeycap(r rune) bool {
	return strings.ContainsRune(KeycapAlphabet, r)
}

// Inventory is the player's store of collected words and single-character
// keycaps. Counts only go down through TryConsume.
type Inventory struct {
	Words   map[string]int
	Keycaps map[rune]int
}

func NewInventory() *Inventory {
	return &Inventory{
		Words:   make(map[string]int),
		Keycaps: make(map[rune]int),
	}
}

func (inv *Inventory) AddWord(word string, n int) {
	if n <= 0 || word == "" {
		return
	}
	if inv.Words == nil {
		inv.Words = make(map[string]int)
	}
	inv.Words[word] += n
}

func (inv *Inventory) AddKeycap(r rune, n int) {
	if n <= 0 {
		return
	}
	if inv.Keycaps == nil {
		inv.Keycaps = make(map[rune]int)
	}
	inv.Keycaps[r] += n
}

// Collect stores a picked-up value: one character is a keycap, anything
// longer is a whole word.
func (inv *Inventory) Collect(value string) {
	switch utf8.RuneCountInString(value) {
	case 0:
		return
	case 1:
		r, _ := utf8.DecodeRuneInString(value)
		inv.AddKeycap(r, 1)
	default:
		inv.AddWord(value, 1)
	}
}

func (inv *Inventory) Word(word string) int {
	return inv.Words[word]
}

func (inv *Inventory) Keycap(r rune) int {
	return inv.Keycaps[r]
}

// Clone returns a deep copy.
func (inv *Inventory) Clone() *Inventory {
	out := NewInventory()
	for w, n := range inv.Words {
		out.Words[w] = n
	}
	for r, n := range inv.Keycaps {
		out.Keycaps[r] = n
	}
	return out
}

// SortedWords lists words with a positive count in lexical order.
func (inv *Inventory) SortedWords() []string {
	out := make([]string, 0, len(inv.Words))
	for w, n := range inv.Words {
		if n > 0 {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

// SortedKeycaps lists keycaps with a positive count in rune order.
func (inv *Inventory) SortedKeycaps() []rune {
	out := make([]rune, 0, len(inv.Keycaps))
	for r, n := range inv.Keycaps {
		if n > 0 {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TryConsume pays for a phrase or changes nothing.
//
// Words held whole are reserved first. Every other word is paid for one
// keycap per character occurrence, so "till" needs two 'l' units. Reservations
// accumulate across the whole phrase before anything is decremented.
func (inv *Inventory) TryConsume(words []string) bool {
	byWord := make(map[string]int, len(words))
	byWordIdx := make([]bool, len(words))
	for i, w := range words {
		if inv.Words[w]-byWord[w] > 0 {
			byWord[w]++
			byWordIdx[i] = true
		}
	}

	byKeycap := make(map[rune]int)
	for i, w := range words {
		if byWordIdx[i] {
			continue
		}
		for _, r := range w {
			if inv.Keycaps[r]-byKeycap[r] <= 0 {
				return false
			}
			byKeycap[r]++
		}
	}

	for w, n := range byWord {
		inv.Words[w] -= n
	}
	for r, n := range byKeycap {
		inv.Keycaps[r] -= n
	}
	return true
}

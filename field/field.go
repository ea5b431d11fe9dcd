// Package field scatters pickups over a rectangular play area. Typing the
// first character of a pickup collects it.
package field

import (
	"math/rand/v2"
	"unicode"
	"unicode/utf8"

	"github.com/milk9111/cheaters/cheatcode"
)

// Item is a pickup at a cell position.
type Item struct {
	Value string
	X, Y  int
}

// Lead is the character that collects the item.
func (it Item) Lead() rune {
	r, _ := utf8.DecodeRuneInString(it.Value)
	return r
}

type Field struct {
	rng   *rand.Rand
	words []string
	items []Item
	max   int
	// WordChance is the probability a spawn is a whole word rather than a
	// keycap.
	WordChance float64
}

func New(rng *rand.Rand, words []string, max int) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{
		rng:        rng,
		words:      append([]string(nil), words...),
		max:        max,
		WordChance: 0.35,
	}
}

// Spawn places one pickup inside width x height, keeping it clear of the
// avoid cell. Nothing spawns once the field is full.
func (f *Field) Spawn(width, height, avoidX, avoidY int) (Item, bool) {
	if len(f.items) >= f.max || width <= 0 || height <= 0 {
		return Item{}, false
	}

	value := f.nextValue()
	maxX := width - utf8.RuneCountInString(value)
	if maxX < 1 {
		return Item{}, false
	}

	var x, y int
	for tries := 0; tries < 8; tries++ {
		x, y = f.rng.IntN(maxX), f.rng.IntN(height)
		if abs(x-avoidX) > 5 || abs(y-avoidY) > 3 {
			break
		}
	}

	it := Item{Value: value, X: x, Y: y}
	f.items = append(f.items, it)
	return it, true
}

func (f *Field) nextValue() string {
	if len(f.words) > 0 && f.rng.Float64() < f.WordChance {
		return f.words[f.rng.IntN(len(f.words))]
	}
	return string(cheatcode.KeycapAlphabet[f.rng.IntN(len(cheatcode.KeycapAlphabet))])
}

// Take removes and returns the oldest item led by r.
func (f *Field) Take(r rune) (Item, bool) {
	r = unicode.ToLower(r)
	for i, it := range f.items {
		if it.Lead() == r {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return it, true
		}
	}
	return Item{}, false
}

// Clamp drops items that no longer fit after a resize.
func (f *Field) Clamp(width, height int) {
	kept := f.items[:0]
	for _, it := range f.items {
		if it.X+utf8.RuneCountInString(it.Value) <= width && it.Y < height {
			kept = append(kept, it)
		}
	}
	f.items = kept
}

func (f *Field) Items() []Item {
	return append([]Item(nil), f.items...)
}

func (f *Field) Len() int {
	return len(f.items)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

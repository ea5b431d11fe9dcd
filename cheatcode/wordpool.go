package cheatcode

import (
	"math/rand/v2"
	"strings"
)

const (
	// Separator joins the words of a phrase.
	Separator = "-"
	// PhraseWords is the number of words drawn per phrase.
	PhraseWords = 3
)

// WordPool is the working set phrases are drawn from. Draws remove words;
// once the pool runs dry it is refilled from the master list.
type WordPool struct {
	master []string
	words  []string
	rng    *rand.Rand
	epoch  int
}

// NewWordPool copies master so later edits to the caller's slice do not leak
// into refills.
func NewWordPool(master []string, rng *rand.Rand) (*WordPool, error) {
	if len(master) == 0 {
		return nil, ErrEmptyWordList
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	p := &WordPool{
		master: append([]string(nil), master...),
		rng:    rng,
	}
	p.refill()
	return p, nil
}

func (p *WordPool) refill() {
	p.words = append(p.words[:0], p.master...)
	p.epoch++
}

// Len reports how many words are left before the next refill.
func (p *WordPool) Len() int {
	return len(p.words)
}

// Epoch counts refills, starting at 1 for the initial fill.
func (p *WordPool) Epoch() int {
	return p.epoch
}

// Draw removes and returns a uniformly chosen word. The pool is refilled as
// soon as it becomes empty, so it never returns with zero words.
func (p *WordPool) Draw() string {
	i := p.rng.IntN(len(p.words))
	word := p.words[i]
	p.words = append(p.words[:i], p.words[i+1:]...)
	if len(p.words) == 0 {
		p.refill()
	}
	return word
}

// GeneratePhrase draws PhraseWords words and joins them with Separator.
// A refill can happen between draws, which means a word may appear twice in
// the same phrase.
func GeneratePhrase(pool *WordPool) string {
	var b strings.Builder
	for i := 0; i < PhraseWords; i++ {
		b.WriteString(pool.Draw())
		if i != PhraseWords-1 {
			b.WriteString(Separator)
		}
	}
	return b.String()
}

// SplitPhrase is the inverse of GeneratePhrase.
func SplitPhrase(phrase string) []string {
	return strings.Split(phrase, Separator)
}

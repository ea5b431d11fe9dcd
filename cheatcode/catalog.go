package cheatcode

import (
	"fmt"
	"strings"
)

const maxPhraseAttempts = 16

// Definition is the static description of a cheat code. The phrase is not
// part of it; phrases are generated per catalog.
type Definition struct {
	Kind     Kind
	Image    string
	HelpText string
	Mode     Mode
	Script   string
}

// CheatCode is a definition bound to its generated phrase.
type CheatCode struct {
	Kind     Kind
	Text     string
	Image    string
	HelpText string
	Mode     Mode
	Script   string
	Active   bool
}

// Words splits the phrase into its words.
func (c CheatCode) Words() []string {
	return SplitPhrase(c.Text)
}

// Catalog holds exactly one code per Kind for the lifetime of a session.
type Catalog struct {
	codes    map[Kind]*CheatCode
	byPhrase map[string]Kind
}

// NewCatalog generates one phrase per kind, in Kind order, from the shared
// pool. Every kind must be defined exactly once.
func NewCatalog(defs []Definition, pool *WordPool) (*Catalog, error) {
	if pool == nil {
		return nil, ErrNilWordPool
	}

	byKind := make(map[Kind]Definition, len(defs))
	for _, d := range defs {
		if !d.Kind.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(d.Kind))
		}
		if _, dup := byKind[d.Kind]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKind, d.Kind)
		}
		byKind[d.Kind] = d
	}

	c := &Catalog{
		codes:    make(map[Kind]*CheatCode, len(byKind)),
		byPhrase: make(map[string]Kind, len(byKind)),
	}
	for _, k := range Kinds() {
		d, ok := byKind[k]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingKind, k)
		}

		phrase, err := c.uniquePhrase(pool)
		if err != nil {
			return nil, fmt.Errorf("%w for %s", err, k)
		}

		c.codes[k] = &CheatCode{
			Kind:     k,
			Text:     phrase,
			Image:    d.Image,
			HelpText: d.HelpText,
			Mode:     d.Mode,
			Script:   d.Script,
		}
		c.byPhrase[phrase] = k
	}
	return c, nil
}

func (c *Catalog) uniquePhrase(pool *WordPool) (string, error) {
	for i := 0; i < maxPhraseAttempts; i++ {
		phrase := strings.ToLower(GeneratePhrase(pool))
		if _, taken := c.byPhrase[phrase]; !taken {
			return phrase, nil
		}
	}
	return "", ErrDuplicatePhrase
}

// IsActive reports whether the code for kind has been activated.
func (c *Catalog) IsActive(kind Kind) bool {
	code, ok := c.codes[kind]
	return ok && code.Active
}

// Code returns a copy of the code for kind.
func (c *Catalog) Code(kind Kind) (CheatCode, bool) {
	code, ok := c.codes[kind]
	if !ok {
		return CheatCode{}, false
	}
	return *code, true
}

// Codes returns copies of all codes in Kind order.
func (c *Catalog) Codes() []CheatCode {
	out := make([]CheatCode, 0, len(c.codes))
	for _, k := range Kinds() {
		if code, ok := c.codes[k]; ok {
			out = append(out, *code)
		}
	}
	return out
}

// Lookup finds the kind whose phrase matches text, ignoring case.
func (c *Catalog) Lookup(text string) (Kind, bool) {
	k, ok := c.byPhrase[normalize(text)]
	return k, ok
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

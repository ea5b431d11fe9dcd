package cheatcode

import (
	"errors"
	"strings"
	"testing"
)

var testWords = []string{
	"till", "rich", "weak", "mode", "upon", "core",
	"dawn", "tiny", "zero", "kick", "back", "show",
}

func testDefinitions() []Definition {
	return []Definition{
		{Kind: Jump, Image: "jump.png", HelpText: "Press the spacebar to jump.", Mode: Once},
		{Kind: MoveLeft, Image: "move_left.png", HelpText: "Press 'A' to move left.", Mode: Once},
		{Kind: SpeedBoost, Image: "speed.png", HelpText: "Movement enhanced.", Mode: Multiple},
		{Kind: Dash, Image: "dash.png", HelpText: "Double tap 'D' to dash.", Mode: Once},
		{Kind: ExtraLife, Image: "extra_life.png", HelpText: "Extra life granted.", Mode: Multiple},
	}
}

func newTestCatalog(t *testing.T, seed uint64) *Catalog {
	t.Helper()
	pool, err := NewWordPool(testWords, seeded(seed))
	if err != nil {
		t.Fatalf("NewWordPool: %v", err)
	}
	c, err := NewCatalog(testDefinitions(), pool)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func TestNewCatalogBuildsOneCodePerKind(t *testing.T) {
	c := newTestCatalog(t, 11)

	codes := c.Codes()
	if len(codes) != len(Kinds()) {
		t.Fatalf("expected %d codes, got %d", len(Kinds()), len(codes))
	}

	phrases := map[string]bool{}
	for i, code := range codes {
		if code.Kind != Kinds()[i] {
			t.Fatalf("codes out of kind order: %v at %d", code.Kind, i)
		}
		if code.Active {
			t.Fatalf("%s starts active", code.Kind)
		}
		if code.Text != strings.ToLower(code.Text) {
			t.Fatalf("%s phrase %q is not lowercase", code.Kind, code.Text)
		}
		if len(code.Words()) != PhraseWords {
			t.Fatalf("%s phrase %q does not have %d words", code.Kind, code.Text, PhraseWords)
		}
		if phrases[code.Text] {
			t.Fatalf("phrase %q used twice", code.Text)
		}
		phrases[code.Text] = true

		k, ok := c.Lookup(strings.ToUpper(code.Text))
		if !ok || k != code.Kind {
			t.Fatalf("Lookup(%q) = %v,%v", code.Text, k, ok)
		}
	}

	if code, _ := c.Code(SpeedBoost); code.Mode != Multiple {
		t.Fatalf("SpeedBoost should be Multiple, got %v", code.Mode)
	}
	if code, _ := c.Code(Dash); code.HelpText != "Double tap 'D' to dash." {
		t.Fatalf("unexpected help text %q", code.HelpText)
	}
}

// Five codes take fifteen draws from a twelve word pool, so later codes are
// drawn after the shared pool has been refilled.
func TestNewCatalogSharesPoolAcrossCodes(t *testing.T) {
	pool, err := NewWordPool(testWords, seeded(5))
	if err != nil {
		t.Fatalf("NewWordPool: %v", err)
	}
	if _, err := NewCatalog(testDefinitions(), pool); err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if pool.Epoch() != 2 {
		t.Fatalf("expected one refill, epoch=%d", pool.Epoch())
	}
	if pool.Len() != len(testWords)-3 {
		t.Fatalf("expected %d words left, got %d", len(testWords)-3, pool.Len())
	}
}

func TestNewCatalogErrors(t *testing.T) {
	pool := func() *WordPool {
		p, err := NewWordPool(testWords, seeded(1))
		if err != nil {
			t.Fatalf("NewWordPool: %v", err)
		}
		return p
	}

	cases := []struct {
		name string
		defs []Definition
		pool *WordPool
		want error
	}{
		{"missing_kind", testDefinitions()[:4], pool(), ErrMissingKind},
		{"duplicate_kind", append(testDefinitions(), Definition{Kind: Jump}), pool(), ErrDuplicateKind},
		{"invalid_kind", append(testDefinitions(), Definition{Kind: Kind(42)}), pool(), ErrUnknownKind},
		{"nil_pool", testDefinitions(), nil, ErrNilWordPool},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewCatalog(c.defs, c.pool); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

// A single-word list can only ever produce one phrase.
func TestNewCatalogRejectsUnavoidableDuplicatePhrase(t *testing.T) {
	pool, err := NewWordPool([]string{"solo"}, seeded(1))
	if err != nil {
		t.Fatalf("NewWordPool: %v", err)
	}
	if _, err := NewCatalog(testDefinitions(), pool); !errors.Is(err, ErrDuplicatePhrase) {
		t.Fatalf("expected ErrDuplicatePhrase, got %v", err)
	}
}

func TestParseKindAndMode(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(strings.ToLower(k.String()))
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("DoubleJump"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if m, err := ParseMode("Multiple"); err != nil || m != Multiple {
		t.Fatalf("ParseMode(Multiple) = %v, %v", m, err)
	}
	if _, err := ParseMode("twice"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

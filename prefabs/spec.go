package prefabs

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/milk9111/cheaters/cheatcode"
	"gopkg.in/yaml.v3"
)

const (
	WordListFile = "word_list.yaml"
	CheatsFile   = "cheats.yaml"
	PlayerFile   = "player.yaml"
	ConsoleFile  = "console.yaml"
)

var (
	ErrInvalidWord   = errors.New("prefabs: invalid word")
	ErrInvalidKeycap = errors.New("prefabs: invalid keycap")
)

func LoadSpec[T any](s Store, filename string) (T, error) {
	var zero T
	data, err := s.Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type WordListSpec struct {
	Words []string `yaml:"words"`
}

// LoadWordList returns the master word list, lowercased and trimmed. Words
// must be non-empty letter runs so phrases split cleanly on the separator.
func LoadWordList(s Store) ([]string, error) {
	spec, err := LoadSpec[WordListSpec](s, WordListFile)
	if err != nil {
		return nil, err
	}

	words := make([]string, 0, len(spec.Words))
	for _, raw := range spec.Words {
		w := strings.ToLower(strings.TrimSpace(raw))
		if w == "" {
			continue
		}
		if !isWord(w) {
			return nil, fmt.Errorf("%w %q in %s", ErrInvalidWord, raw, WordListFile)
		}
		words = append(words, w)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("prefabs: %s: %w", WordListFile, cheatcode.ErrEmptyWordList)
	}
	return words, nil
}

func isWord(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

type CheatSpec struct {
	Kind     string `yaml:"kind"`
	Image    string `yaml:"image"`
	HelpText string `yaml:"help_text"`
	Mode     string `yaml:"mode"`
	Script   string `yaml:"script"`
}

type CheatsSpec struct {
	Cheats []CheatSpec `yaml:"cheats"`
}

func (s CheatSpec) Definition() (cheatcode.Definition, error) {
	kind, err := cheatcode.ParseKind(s.Kind)
	if err != nil {
		return cheatcode.Definition{}, err
	}
	mode, err := cheatcode.ParseMode(s.Mode)
	if err != nil {
		return cheatcode.Definition{}, fmt.Errorf("%s: %w", kind, err)
	}
	return cheatcode.Definition{
		Kind:     kind,
		Image:    s.Image,
		HelpText: s.HelpText,
		Mode:     mode,
		Script:   s.Script,
	}, nil
}

func LoadCheatDefinitions(s Store) ([]cheatcode.Definition, error) {
	spec, err := LoadSpec[CheatsSpec](s, CheatsFile)
	if err != nil {
		return nil, err
	}
	defs := make([]cheatcode.Definition, 0, len(spec.Cheats))
	for _, c := range spec.Cheats {
		d, err := c.Definition()
		if err != nil {
			return nil, fmt.Errorf("prefabs: %s: %w", CheatsFile, err)
		}
		defs = append(defs, d)
	}
	return defs, nil
}

type InventorySpec struct {
	Words   map[string]int `yaml:"words"`
	Keycaps map[string]int `yaml:"keycaps"`
}

// Build converts the yaml counts into an inventory. Keycap keys must be a single
// character from the keycap alphabet.
func (s InventorySpec) Build() (*cheatcode.Inventory, error) {
	inv := cheatcode.NewInventory()
	for w, n := range s.Words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || !isWord(w) {
			return nil, fmt.Errorf("%w %q", ErrInvalidWord, w)
		}
		inv.AddWord(w, n)
	}
	for k, n := range s.Keycaps {
		k = strings.ToLower(k)
		r, size := utf8.DecodeRuneInString(k)
		if size == 0 || size != len(k) || !cheatcode.IsKeycap(r) {
			return nil, fmt.Errorf("%w %q", ErrInvalidKeycap, k)
		}
		inv.AddKeycap(r, n)
	}
	return inv, nil
}

type PlayerSpec struct {
	Name             string        `yaml:"name"`
	Lives            int           `yaml:"lives"`
	SpeedMultiplier  float64       `yaml:"speed_multiplier"`
	StarterInventory InventorySpec `yaml:"starter_inventory"`
}

func LoadPlayerSpec(s Store) (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](s, PlayerFile)
	if err != nil {
		return nil, err
	}
	if spec.SpeedMultiplier == 0 {
		spec.SpeedMultiplier = 1
	}
	return &spec, nil
}

type ConsoleSpec struct {
	Greeting []string `yaml:"greeting"`
	Help     []string `yaml:"help"`
	Logs     []string `yaml:"logs"`
}

func LoadConsoleSpec(s Store) (*ConsoleSpec, error) {
	spec, err := LoadSpec[ConsoleSpec](s, ConsoleFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

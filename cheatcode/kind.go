package cheatcode

import (
	"fmt"
	"strings"
)

// Kind identifies the ability a cheat code unlocks.
type Kind int

const (
	Jump Kind = iota
	MoveLeft
	SpeedBoost
	Dash
	ExtraLife
)

var kindNames = [...]string{
	Jump:       "Jump",
	MoveLeft:   "MoveLeft",
	SpeedBoost: "SpeedBoost",
	Dash:       "Dash",
	ExtraLife:  "ExtraLife",
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{Jump, MoveLeft, SpeedBoost, Dash, ExtraLife}
}

func (k Kind) Valid() bool {
	return k >= Jump && k <= ExtraLife
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts the String form of a kind, ignoring case.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(k.String(), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Mode controls whether a code can be activated more than once.
type Mode int

const (
	Once Mode = iota
	Multiple
)

func (m Mode) String() string {
	switch m {
	case Once:
		return "once"
	case Multiple:
		return "multiple"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "once":
		return Once, nil
	case "multiple":
		return Multiple, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

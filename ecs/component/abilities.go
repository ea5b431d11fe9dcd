package component

import "github.com/milk9111/cheaters/cheatcode"

// Abilities holds what cheat codes have granted the player.
type Abilities struct {
	Lives           int
	SpeedMultiplier float64
	Unlocked        map[cheatcode.Kind]bool
}

func (a *Abilities) Has(kind cheatcode.Kind) bool {
	return a != nil && a.Unlocked[kind]
}

func (a *Abilities) Unlock(kind cheatcode.Kind) {
	if a.Unlocked == nil {
		a.Unlocked = make(map[cheatcode.Kind]bool)
	}
	a.Unlocked[kind] = true
}

var AbilitiesComponent = NewComponent[Abilities]()

package component

import "github.com/milk9111/cheaters/cheatcode"

// Inventory attaches the player's collected words and keycaps.
type Inventory struct {
	Items *cheatcode.Inventory
}

var InventoryComponent = NewComponent[Inventory]()

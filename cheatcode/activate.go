package cheatcode

import "fmt"

// Outcome tags a Result.
type Outcome int

const (
	NotFound Outcome = iota
	Activated
	AlreadyActivated
	InadequateInventory
)

func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not_found"
	case Activated:
		return "activated"
	case AlreadyActivated:
		return "already_activated"
	case InadequateInventory:
		return "inadequate_inventory"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the outcome of one activation attempt. Kind is meaningless when
// Outcome is NotFound.
type Result struct {
	Outcome Outcome
	Kind    Kind
}

func (r Result) String() string {
	switch r.Outcome {
	case Activated:
		return fmt.Sprintf("[%s] successfully activated", r.Kind)
	case AlreadyActivated:
		return fmt.Sprintf("[%s] is already active", r.Kind)
	case InadequateInventory:
		return fmt.Sprintf("Inadequate inventory for [%s]", r.Kind)
	default:
		return "Invalid code given"
	}
}

// Activate matches input against the catalog and, if the player can pay for
// the phrase, marks the code active.
//
// Payment happens before the mode check, so a Once code that is already
// active still costs inventory and answers AlreadyActivated.
func (c *Catalog) Activate(input string, inv *Inventory) Result {
	kind, ok := c.Lookup(input)
	if !ok {
		return Result{Outcome: NotFound}
	}
	code := c.codes[kind]

	if !inv.TryConsume(code.Words()) {
		return Result{Outcome: InadequateInventory, Kind: kind}
	}

	switch code.Mode {
	case Multiple:
		code.Active = true
		return Result{Outcome: Activated, Kind: kind}
	default:
		if code.Active {
			return Result{Outcome: AlreadyActivated, Kind: kind}
		}
		code.Active = true
		return Result{Outcome: Activated, Kind: kind}
	}
}

package component

// PickupRequest is a one-frame entity asking for Value to be added to the
// player's inventory.
type PickupRequest struct {
	Value string
}

var PickupRequestComponent = NewComponent[PickupRequest]()

package system

// Event types pushed on the world queue.
const (
	// EventCheatActivated carries the activated cheatcode.Kind.
	EventCheatActivated = "cheat_activated"
	// EventPickupCollected carries the collected string value.
	EventPickupCollected = "pickup_collected"
	EventConsoleClosed   = "console_closed"
)

// Audio cue names.
const (
	CuePowerup = "powerup"
	CuePickup  = "pickup"
)

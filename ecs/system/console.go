package system

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/milk9111/cheaters/cheatcode"
	"github.com/milk9111/cheaters/ecs"
	"github.com/milk9111/cheaters/ecs/component"
	"github.com/milk9111/cheaters/prefabs"
	"github.com/rs/zerolog/log"
)

const (
	giveHelpLine = "give <value>       add a word or keycap to the inventory"
	helpHint     = `Type "help" to print the list of available commands.`
)

// ConsoleSystem runs commands queued on the console and charges cheat codes
// against the player's inventory.
type ConsoleSystem struct {
	catalog *cheatcode.Catalog
	text    *prefabs.ConsoleSpec
	rng     *rand.Rand
	debug   bool
}

func NewConsoleSystem(catalog *cheatcode.Catalog, text *prefabs.ConsoleSpec, rng *rand.Rand, debug bool) *ConsoleSystem {
	if text == nil {
		text = &prefabs.ConsoleSpec{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ConsoleSystem{catalog: catalog, text: text, rng: rng, debug: debug}
}

func (s *ConsoleSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ent, ok := ecs.First(w, component.ConsoleComponent.Kind())
	if !ok {
		return
	}
	console, _ := ecs.Get(w, ent, component.ConsoleComponent.Kind())
	if len(console.Pending) == 0 {
		return
	}

	pending := console.Pending
	console.Pending = nil
	for _, cmd := range pending {
		s.run(w, console, cmd)
	}
}

func (s *ConsoleSystem) run(w *ecs.World, console *component.Console, command string) {
	args := strings.Fields(command)
	if len(args) == 0 {
		return
	}
	name := strings.ToLower(args[0])

	if name != "clear" {
		console.Print("> " + strings.Join(args, " "))
	}

	switch name {
	case "clear":
		console.Lines = nil
	case "help":
		console.Print(s.text.Help...)
		if s.debug {
			console.Print(giveHelpLine)
		}
	case "cheat":
		if len(args) < 2 {
			console.Print("Usage: cheat <code>")
			return
		}
		s.activate(w, console, args[1])
	case "inv":
		console.Print(describeInventory(playerInventory(w))...)
	case "log":
		if len(s.text.Logs) == 0 {
			console.Print("No logs recovered.")
			return
		}
		console.Print(s.text.Logs[s.rng.IntN(len(s.text.Logs))])
	case "exit":
		console.Print("Closing session...")
		console.Open = false
		w.Events().Push(ecs.Event{Type: EventConsoleClosed})
	case "give":
		if !s.debug {
			s.notFound(console, args[0])
			return
		}
		if len(args) < 2 {
			console.Print("Usage: give <value>")
			return
		}
		s.give(w, console, args[1])
	default:
		s.notFound(console, args[0])
	}
}

func (s *ConsoleSystem) notFound(console *component.Console, name string) {
	console.Print(fmt.Sprintf("Command %q not found.", name), helpHint)
}

func (s *ConsoleSystem) activate(w *ecs.World, console *component.Console, code string) {
	console.Print(fmt.Sprintf("Activating cheat code: <%s>...", code))

	inv := playerInventory(w)
	if inv == nil {
		// Nothing to pay with; unknown codes still report as invalid.
		inv = cheatcode.NewInventory()
	}

	res := s.catalog.Activate(code, inv)
	console.Print("Activation result: " + res.String())
	log.Info().Str("code", code).Str("outcome", res.Outcome.String()).Msg("cheat activation")

	if res.Outcome == cheatcode.Activated {
		w.Events().Push(ecs.Event{Type: EventCheatActivated, Data: res.Kind})
	}
}

func (s *ConsoleSystem) give(w *ecs.World, console *component.Console, raw string) {
	value := strings.ToLower(raw)
	if !validPickup(value) {
		console.Print(fmt.Sprintf("Cannot give %q.", raw))
		return
	}
	inv := playerInventory(w)
	if inv == nil {
		console.Print("No player inventory.")
		return
	}
	inv.Collect(value)
	w.Events().Push(ecs.Event{Type: EventPickupCollected, Data: value})
	console.Print(fmt.Sprintf("Added %s to inventory.", value))
}

func validPickup(value string) bool {
	if utf8.RuneCountInString(value) == 1 {
		r, _ := utf8.DecodeRuneInString(value)
		return cheatcode.IsKeycap(r)
	}
	if value == "" {
		return false
	}
	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func playerInventory(w *ecs.World) *cheatcode.Inventory {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return nil
	}
	inv, ok := ecs.Get(w, player, component.InventoryComponent.Kind())
	if !ok {
		return nil
	}
	return inv.Items
}

func describeInventory(inv *cheatcode.Inventory) []string {
	if inv == nil {
		return []string{"Inventory empty."}
	}
	words := inv.SortedWords()
	keycaps := inv.SortedKeycaps()
	if len(words) == 0 && len(keycaps) == 0 {
		return []string{"Inventory empty."}
	}

	var lines []string
	if len(words) > 0 {
		parts := make([]string, 0, len(words))
		for _, word := range words {
			parts = append(parts, fmt.Sprintf("%s x%d", word, inv.Word(word)))
		}
		lines = append(lines, "words: "+strings.Join(parts, ", "))
	}
	if len(keycaps) > 0 {
		parts := make([]string, 0, len(keycaps))
		for _, r := range keycaps {
			parts = append(parts, fmt.Sprintf("%c x%d", r, inv.Keycap(r)))
		}
		lines = append(lines, "keycaps: "+strings.Join(parts, ", "))
	}
	return lines
}

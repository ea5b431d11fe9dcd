// Package session wires game data, the cheat catalog and the ECS world into
// one playable console session. Frontends drive it one frame at a time.
package session

import (
	"fmt"
	"maps"

	"github.com/milk9111/cheaters/cheatcode"
	"github.com/milk9111/cheaters/config"
	"github.com/milk9111/cheaters/ecs"
	"github.com/milk9111/cheaters/ecs/component"
	"github.com/milk9111/cheaters/ecs/system"
	"github.com/milk9111/cheaters/prefabs"
	"github.com/rs/zerolog/log"
)

const maxConsoleLines = 200

type Session struct {
	store   prefabs.Store
	player  *prefabs.PlayerSpec
	catalog *cheatcode.Catalog
	world   *ecs.World
	entity  ecs.Entity
	console *component.Console
}

// New loads data from the configured store and builds a fresh session. Every
// call generates new phrases; a nil cue keeps the session silent.
func New(cfg config.Config, cue system.Cue) (*Session, error) {
	store := prefabs.Store{Dir: cfg.DataDir}

	words, err := prefabs.LoadWordList(store)
	if err != nil {
		return nil, err
	}
	defs, err := prefabs.LoadCheatDefinitions(store)
	if err != nil {
		return nil, err
	}
	player, err := prefabs.LoadPlayerSpec(store)
	if err != nil {
		return nil, err
	}
	text, err := prefabs.LoadConsoleSpec(store)
	if err != nil {
		return nil, err
	}

	rng := cfg.Rand()
	pool, err := cheatcode.NewWordPool(words, rng)
	if err != nil {
		return nil, err
	}
	catalog, err := cheatcode.NewCatalog(defs, pool)
	if err != nil {
		return nil, fmt.Errorf("session: build catalog: %w", err)
	}
	for _, code := range catalog.Codes() {
		log.Debug().Stringer("kind", code.Kind).Str("code", code.Text).Str("mode", code.Mode.String()).Msg("cheat code generated")
	}

	inv := cheatcode.NewInventory()
	if cfg.StarterInventory {
		if inv, err = player.StarterInventory.Build(); err != nil {
			return nil, fmt.Errorf("session: starter inventory: %w", err)
		}
	}

	s := &Session{
		store:   store,
		player:  player,
		catalog: catalog,
		world:   ecs.NewWorld(),
		console: &component.Console{MaxLines: maxConsoleLines},
	}
	s.console.Print(text.Greeting...)

	s.entity = ecs.CreateEntity(s.world)
	if err := ecs.Add(s.world, s.entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return nil, err
	}
	if err := ecs.Add(s.world, s.entity, component.InventoryComponent.Kind(), &component.Inventory{Items: inv}); err != nil {
		return nil, err
	}
	abilities := &component.Abilities{Lives: player.Lives, SpeedMultiplier: player.SpeedMultiplier}
	if err := ecs.Add(s.world, s.entity, component.AbilitiesComponent.Kind(), abilities); err != nil {
		return nil, err
	}
	consoleEnt := ecs.CreateEntity(s.world)
	if err := ecs.Add(s.world, consoleEnt, component.ConsoleComponent.Kind(), s.console); err != nil {
		return nil, err
	}

	s.world.AddSystem(system.NewPickupCollectSystem())
	s.world.AddSystem(system.NewConsoleSystem(catalog, text, rng, cfg.Debug))
	s.world.AddSystem(system.NewCheatEffectSystem(catalog, store))
	s.world.AddSystem(system.NewAudioSystem(cue))

	log.Info().Str("data", cfg.DataDir).Int("words", len(words)).Bool("debug", cfg.Debug).Msg("session started")
	return s, nil
}

// Submit queues a console command for the next Update.
func (s *Session) Submit(command string) {
	s.console.Pending = append(s.console.Pending, command)
}

// Collect queues a pickup for the next Update.
func (s *Session) Collect(value string) {
	e := ecs.CreateEntity(s.world)
	if err := ecs.Add(s.world, e, component.PickupRequestComponent.Kind(), &component.PickupRequest{Value: value}); err != nil {
		log.Warn().Err(err).Str("value", value).Msg("queue pickup")
	}
}

// Update advances the world one frame.
func (s *Session) Update() {
	s.world.Update()
}

// Lines returns a copy of the console output.
func (s *Session) Lines() []string {
	return append([]string(nil), s.console.Lines...)
}

func (s *Session) ConsoleOpen() bool {
	return s.console.Open
}

func (s *Session) SetConsoleOpen(open bool) {
	s.console.Open = open
}

func (s *Session) IsActive(kind cheatcode.Kind) bool {
	return s.catalog.IsActive(kind)
}

func (s *Session) Codes() []cheatcode.CheatCode {
	return s.catalog.Codes()
}

// Abilities returns a snapshot of the player's abilities.
func (s *Session) Abilities() component.Abilities {
	a, ok := ecs.Get(s.world, s.entity, component.AbilitiesComponent.Kind())
	if !ok {
		return component.Abilities{}
	}
	out := *a
	out.Unlocked = maps.Clone(a.Unlocked)
	return out
}

// Inventory returns a snapshot of the player's inventory.
func (s *Session) Inventory() *cheatcode.Inventory {
	inv, ok := ecs.Get(s.world, s.entity, component.InventoryComponent.Kind())
	if !ok || inv.Items == nil {
		return cheatcode.NewInventory()
	}
	return inv.Items.Clone()
}

func (s *Session) PlayerName() string {
	return s.player.Name
}

// Store is the data store the session was loaded from.
func (s *Session) Store() prefabs.Store {
	return s.store
}

package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/cheaters/cheatcode"
	"github.com/milk9111/cheaters/ecs"
	"github.com/milk9111/cheaters/ecs/component"
	"github.com/rs/zerolog/log"
)

// ScriptLoader resolves an effect script name to its source.
type ScriptLoader interface {
	LoadScript(name string) ([]byte, error)
}

// CheatEffectSystem applies activated cheats to the player's abilities.
// Every activation unlocks its kind; kinds with a script also run it against
// the player's lives and speed multiplier.
type CheatEffectSystem struct {
	catalog *cheatcode.Catalog
	scripts ScriptLoader
	cache   map[cheatcode.Kind]*tengo.Compiled
}

func NewCheatEffectSystem(catalog *cheatcode.Catalog, scripts ScriptLoader) *CheatEffectSystem {
	return &CheatEffectSystem{
		catalog: catalog,
		scripts: scripts,
		cache:   make(map[cheatcode.Kind]*tengo.Compiled),
	}
}

func (s *CheatEffectSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	activations := w.Events().Of(EventCheatActivated)
	if len(activations) == 0 {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	abilities, ok := ecs.Get(w, player, component.AbilitiesComponent.Kind())
	if !ok {
		return
	}

	for _, evt := range activations {
		kind, ok := evt.Data.(cheatcode.Kind)
		if !ok {
			continue
		}
		abilities.Unlock(kind)

		if err := s.runEffect(kind, abilities); err != nil {
			log.Warn().Err(err).Stringer("kind", kind).Msg("cheat effect script failed")
		}
	}
}

func (s *CheatEffectSystem) runEffect(kind cheatcode.Kind, abilities *component.Abilities) error {
	compiled, err := s.compiled(kind)
	if err != nil || compiled == nil {
		return err
	}

	if err := compiled.Set("lives", abilities.Lives); err != nil {
		return err
	}
	if err := compiled.Set("speed_multiplier", abilities.SpeedMultiplier); err != nil {
		return err
	}
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("run %s script: %w", kind, err)
	}

	abilities.Lives = compiled.Get("lives").Int()
	abilities.SpeedMultiplier = compiled.Get("speed_multiplier").Float()
	return nil
}

// compiled returns nil with no error for kinds without a script.
func (s *CheatEffectSystem) compiled(kind cheatcode.Kind) (*tengo.Compiled, error) {
	if c, ok := s.cache[kind]; ok {
		return c, nil
	}

	code, ok := s.catalog.Code(kind)
	if !ok || code.Script == "" || s.scripts == nil {
		s.cache[kind] = nil
		return nil, nil
	}

	src, err := s.scripts.LoadScript(code.Script)
	if err != nil {
		return nil, fmt.Errorf("load %s script %q: %w", kind, code.Script, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("lives", 0)
	_ = script.Add("speed_multiplier", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s script %q: %w", kind, code.Script, err)
	}
	s.cache[kind] = compiled
	return compiled, nil
}

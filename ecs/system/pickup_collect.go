package system

import (
	"strings"

	"github.com/milk9111/cheaters/ecs"
	"github.com/milk9111/cheaters/ecs/component"
	"github.com/rs/zerolog/log"
)

// PickupCollectSystem moves pickup requests into the player's inventory.
type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var inv *component.Inventory
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		inv, _ = ecs.Get(w, player, component.InventoryComponent.Kind())
	}

	ecs.ForEach(w, component.PickupRequestComponent.Kind(), func(e ecs.Entity, req *component.PickupRequest) {
		defer ecs.DestroyEntity(w, e)

		value := strings.ToLower(strings.TrimSpace(req.Value))
		if value == "" {
			return
		}
		if inv == nil || inv.Items == nil {
			log.Warn().Str("value", value).Msg("pickup dropped: no player inventory")
			return
		}

		inv.Items.Collect(value)
		w.Events().Push(ecs.Event{Type: EventPickupCollected, Data: value})
		log.Debug().Str("value", value).Msg("pickup collected")
	})
}

package entity

import (
	"fmt"

	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/prefabs"
)

// NewSession creates the singleton entity holding run-wide state: resource
// pools, the boss registry, the input snapshot, the frame clock and the
// backdrop.
func NewSession(w *ecs.World, t *prefabs.Tuning, hiScore int) (ecs.Entity, error) {
	var maxHealth [component.BossSlots]int
	for i := range maxHealth {
		if i < len(t.Bosses) {
			maxHealth[i] = t.Bosses[i].MaxHealth
		}
	}

	res := component.NewResources()
	res.HiScore = hiScore

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ResourcesComponent.Kind(), res); err != nil {
		return abandon(w, e, fmt.Errorf("session: add resources: %w", err))
	}
	if err := ecs.Add(w, e, component.BossRegistryComponent.Kind(), component.NewBossRegistry(maxHealth)); err != nil {
		return abandon(w, e, fmt.Errorf("session: add boss registry: %w", err))
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return abandon(w, e, fmt.Errorf("session: add input: %w", err))
	}
	if err := ecs.Add(w, e, component.ClockComponent.Kind(), &component.Clock{}); err != nil {
		return abandon(w, e, fmt.Errorf("session: add clock: %w", err))
	}
	if err := ecs.Add(w, e, component.BackdropComponent.Kind(), &component.Backdrop{Y: -common.ArenaHeight}); err != nil {
		return abandon(w, e, fmt.Errorf("session: add backdrop: %w", err))
	}

	return e, nil
}

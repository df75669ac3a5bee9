package entity

import "github.com/milk9111/cosmicheat/ecs"

// abandon destroys a partly built entity and passes err through.
func abandon(w *ecs.World, e ecs.Entity, err error) (ecs.Entity, error) {
	ecs.DestroyEntity(w, e)
	return 0, err
}

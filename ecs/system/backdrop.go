package system

import (
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
)

// Score marks where the backdrop changes.
const (
	backdropFastScore = 3000
	backdropTier2     = 10000
	backdropTier3     = 15000
)

// BackdropSystem scrolls the background and picks its image tier from the
// score. The first tier upgrade sticks until the score is back at zero.
type BackdropSystem struct{}

func NewBackdropSystem() *BackdropSystem {
	return &BackdropSystem{}
}

func (s *BackdropSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	points := score(w)
	ecs.ForEach(w, component.BackdropComponent.Kind(), func(_ ecs.Entity, bg *component.Backdrop) {
		step := 1.0
		if points > backdropFastScore {
			step = 2
		}
		bg.Y += step
		if bg.Y >= 0 {
			bg.Y = -common.ArenaHeight
		}

		switch {
		case points == 0:
			bg.Upgraded = false
		case points >= backdropFastScore:
			bg.Upgraded = true
		}
		switch {
		case points >= backdropTier3:
			bg.Tier = 3
		case points >= backdropTier2:
			bg.Tier = 2
		case bg.Upgraded:
			bg.Tier = 1
		default:
			bg.Tier = 0
		}
	})
}

package component

import "github.com/milk9111/cosmicheat/common"

const bossBarHeight = 5

// BossSlotState is one boss's shared health counter and spawn flag.
type BossSlotState struct {
	Health    int
	MaxHealth int
	Spawned   bool
	BarWidth  float64
}

// BossRegistry owns boss hit points independently of boss entities. A boss
// existing and a boss having health are separate facts: the resolution
// pipeline damages the registry and destroys the entity when it runs dry.
type BossRegistry struct {
	Slots [BossSlots]BossSlotState
}

// NewBossRegistry builds a registry whose bar widths match the max health.
func NewBossRegistry(maxHealth [BossSlots]int) *BossRegistry {
	r := &BossRegistry{}
	for i, hp := range maxHealth {
		r.Slots[i].MaxHealth = hp
		r.Slots[i].BarWidth = float64(hp)
	}
	r.Reset()
	return r
}

func validSlot(slot int) bool {
	return slot >= 0 && slot < BossSlots
}

// Reset restores starting health and clears every spawn flag.
func (r *BossRegistry) Reset() {
	for i := range r.Slots {
		r.Slots[i].Health = r.Slots[i].MaxHealth
		r.Slots[i].Spawned = false
	}
}

// Damage subtracts n from slot and returns the remaining health. Out of
// range slots are ignored.
func (r *BossRegistry) Damage(slot, n int) (int, bool) {
	if !validSlot(slot) {
		return 0, false
	}
	r.Slots[slot].Health -= n
	return r.Slots[slot].Health, true
}

func (r *BossRegistry) Health(slot int) (int, bool) {
	if !validSlot(slot) {
		return 0, false
	}
	return r.Slots[slot].Health, true
}

func (r *BossRegistry) Spawned(slot int) bool {
	return validSlot(slot) && r.Slots[slot].Spawned
}

// MarkSpawned sets the spawn flag and reports whether it was previously clear.
func (r *BossRegistry) MarkSpawned(slot int) bool {
	if !validSlot(slot) || r.Slots[slot].Spawned {
		return false
	}
	r.Slots[slot].Spawned = true
	return true
}

// BarFill is the filled width of the slot's health bar.
func (r *BossRegistry) BarFill(slot int) float64 {
	if !validSlot(slot) {
		return 0
	}
	s := r.Slots[slot]
	return common.Clamp(float64(s.Health), 0, s.BarWidth)
}

// BarRect places the slot's bar centered 5px above the boss box.
func (r *BossRegistry) BarRect(slot int, boss common.Rect) common.Rect {
	if !validSlot(slot) {
		return common.Rect{}
	}
	w := r.Slots[slot].BarWidth
	cx := boss.X + boss.Width/2
	cy := boss.Y - 5
	return common.Rect{X: cx - w/2, Y: cy - bossBarHeight/2.0, Width: w, Height: bossBarHeight}
}

var BossRegistryComponent = NewComponent[BossRegistry]()

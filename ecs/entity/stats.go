package entity

import (
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/prefabs"
)

func statsFromSpec(s prefabs.StatsSpec) *component.CombatStats {
	return &component.CombatStats{
		ContactDamage:    s.ContactDamage,
		ScoreOnContact:   s.ScoreOnContact,
		ScoreOnKill:      s.ScoreOnKill,
		BulletDamage:     s.BulletDamage,
		HPPerBullet:      s.HPPerBullet,
		DropChance:       s.DropChance,
		HealthDropChance: s.HealthDropChance,
	}
}

// Sprite variants available per key; spawners pick one at random.
const (
	BouncerVariants   = 3
	ChargerVariants   = 2
	MeteorVariants    = 4
	BlackHoleVariants = 2
)

package component

// CombatStats is the scoring and damage record every hostile carries. Drop
// chances are 1-in-(N+1) trials; zero disables the drop.
type CombatStats struct {
	ContactDamage  int
	ScoreOnContact int
	ScoreOnKill    int
	BulletDamage   int
	HPPerBullet    int

	DropChance       int
	HealthDropChance int
}

var CombatStatsComponent = NewComponent[CombatStats]()

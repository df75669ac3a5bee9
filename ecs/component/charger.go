package component

// Charger is an Enemy2. It patrols sideways firing until ShotsFired reaches
// its cap, then chases the player for the rest of its life.
type Charger struct {
	ShootTimer int
	ShotsFired int
	Chasing    bool
}

var ChargerComponent = NewComponent[Charger]()

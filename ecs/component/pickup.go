package component

type PickupKind int

const (
	BulletRefill PickupKind = iota
	HealthRefill
	DoubleRefill
	ExtraScore
)

var pickupKeys = [...]string{"bullet_refill", "health_refill", "double_refill", "extra_score"}

func (k PickupKind) String() string {
	if k >= 0 && int(k) < len(pickupKeys) {
		return pickupKeys[k]
	}
	return "pickup"
}

// Pickup sets at most one of HealthRestore and AmmoRestore.
type Pickup struct {
	Kind          PickupKind
	HealthRestore int
	AmmoRestore   int
	ScoreBonus    int
}

var PickupComponent = NewComponent[Pickup]()

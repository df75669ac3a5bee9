package component

// BossSlots is the number of boss slots; slot i holds Boss(i+1).
const BossSlots = 3

type BossPhase int

const (
	BossPatrol BossPhase = iota
	BossChase
)

func (p BossPhase) String() string {
	if p == BossChase {
		return "chase"
	}
	return "patrol"
}

// Boss holds per-instance phase state. Hit points are not stored here; they
// live in the BossRegistry under Slot.
type Boss struct {
	Slot          int
	Phase         BossPhase
	ShootTimer    int
	ShotsFired    int
	TeleportTimer int
	ChaseSpeed    float64
}

var BossComponent = NewComponent[Boss]()

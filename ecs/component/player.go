package component

type Facing int

const (
	FacingNone Facing = iota
	FacingLeft
	FacingRight
)

// Player is the controllable ship. FireCooldown counts frames until the
// next shot is allowed.
type Player struct {
	Speed        float64
	Facing       Facing
	FireCooldown int
}

var PlayerComponent = NewComponent[Player]()

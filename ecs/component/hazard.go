package component

type HazardKind int

const (
	HazardMeteor HazardKind = iota
	HazardMeteor2
	HazardBlackHole
)

func (k HazardKind) String() string {
	switch k {
	case HazardMeteor:
		return "meteor1"
	case HazardMeteor2:
		return "meteor2"
	case HazardBlackHole:
		return "black_hole"
	}
	return "hazard"
}

// Hazard is a drifting obstacle. Spin is degrees added to the transform
// angle each frame.
type Hazard struct {
	Kind HazardKind
	Spin float64
}

var HazardComponent = NewComponent[Hazard]()

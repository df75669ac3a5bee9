package component

// Action is a named input the simulation understands.
type Action uint8

const (
	ActionShoot Action = iota
	ActionPause
	ActionQuit
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
)

var actionNames = [...]string{"shoot", "pause", "quit", "up", "down", "left", "right"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// ActionSet is a bitset of actions.
type ActionSet uint16

func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<a
}

// Input is the per-frame snapshot handed to the simulation. MoveX and MoveY
// are in [-1, 1]; keyboards produce -1, 0 or 1, sticks anything between.
type Input struct {
	MoveX, MoveY float64

	Held     ActionSet
	Pressed  ActionSet
	Released ActionSet
}

func (in Input) Holding(a Action) bool      { return in.Held.Has(a) }
func (in Input) JustPressed(a Action) bool  { return in.Pressed.Has(a) }
func (in Input) JustReleased(a Action) bool { return in.Released.Has(a) }

// Advance returns the snapshot for a frame in which held is down, deriving
// the pressed and released edges from in.
func (in Input) Advance(held ActionSet, moveX, moveY float64) Input {
	return Input{
		MoveX:    moveX,
		MoveY:    moveY,
		Held:     held,
		Pressed:  held &^ in.Held,
		Released: in.Held &^ held,
	}
}

var InputComponent = NewComponent[Input]()

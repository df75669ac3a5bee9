package component

// Explosion is a purely visual animation. The entity is removed once Frame
// passes the last frame of Key.
type Explosion struct {
	Key        string
	Frame      int
	Frames     int
	FrameTicks int
	Tick       int
}

var ExplosionComponent = NewComponent[Explosion]()

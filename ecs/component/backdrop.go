package component

// Backdrop is the scrolling background state. Y runs from -arena height up
// to zero and wraps.
type Backdrop struct {
	Y        float64
	Tier     int
	Upgraded bool
}

var BackdropComponent = NewComponent[Backdrop]()

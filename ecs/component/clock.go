package component

// Clock counts simulated frames in the current run.
type Clock struct {
	Frame int
}

var ClockComponent = NewComponent[Clock]()

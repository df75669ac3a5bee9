package component

// Bouncer tags an Enemy1: it ricochets off the arena walls and pushes away
// from other bouncers.
type Bouncer struct{}

var BouncerComponent = NewComponent[Bouncer]()

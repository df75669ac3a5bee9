package component

import "github.com/milk9111/cosmicheat/common"

// Delta is what one resolution stage wants to change this frame.
type Delta struct {
	Life  int
	Ammo  int
	Score int
}

func (d Delta) Add(o Delta) Delta {
	return Delta{Life: d.Life + o.Life, Ammo: d.Ammo + o.Ammo, Score: d.Score + o.Score}
}

// Resources are the session pools shown on the HUD.
type Resources struct {
	Life         int
	Ammo         int
	Score        int
	HiScore      int
	BulletsSpent int
}

func NewResources() *Resources {
	return &Resources{Life: common.MaxPool, Ammo: common.MaxPool}
}

// Apply adds d, clamps life and ammo to [0, MaxPool] and keeps score from
// ever moving backwards.
func (r *Resources) Apply(d Delta) {
	r.Life = common.ClampInt(r.Life+d.Life, 0, common.MaxPool)
	r.Ammo = common.ClampInt(r.Ammo+d.Ammo, 0, common.MaxPool)
	if d.Score > 0 {
		r.Score += d.Score
	}
	if r.Score > r.HiScore {
		r.HiScore = r.Score
	}
}

// Reset starts a new run. HiScore survives.
func (r *Resources) Reset() {
	r.Life = common.MaxPool
	r.Ammo = common.MaxPool
	r.Score = 0
	r.BulletsSpent = 0
}

func (r *Resources) Dead() bool {
	return r.Life <= 0
}

var ResourcesComponent = NewComponent[Resources]()

package component

import "github.com/jakecoffman/cp"

// Motion moves an entity Speed pixels per frame along Dir. Dir is kept at
// unit length so diagonal and axial movement cover the same distance.
// BaseSpeed is the speed a score tier falls back to.
type Motion struct {
	Dir       cp.Vector
	Speed     float64
	BaseSpeed float64
}

func (m *Motion) Step() cp.Vector {
	return m.Dir.Mult(m.Speed)
}

var MotionComponent = NewComponent[Motion]()

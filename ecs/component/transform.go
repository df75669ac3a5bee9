package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cosmicheat/common"
)

// Transform is an entity's bounding box: top-left corner plus size. Angle is
// cosmetic and never changes the box.
type Transform struct {
	X, Y          float64
	Width, Height float64
	Angle         float64
}

func (t *Transform) Rect() common.Rect {
	return common.Rect{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}

func (t *Transform) Center() cp.Vector {
	return cp.Vector{X: t.X + t.Width/2, Y: t.Y + t.Height/2}
}

func (t *Transform) SetCenter(c cp.Vector) {
	t.X = c.X - t.Width/2
	t.Y = c.Y - t.Height/2
}

func (t *Transform) Translate(d cp.Vector) {
	t.X += d.X
	t.Y += d.Y
}

func (t *Transform) Right() float64  { return t.X + t.Width }
func (t *Transform) Bottom() float64 { return t.Y + t.Height }

var TransformComponent = NewComponent[Transform]()

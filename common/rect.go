package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned box in screen space (y grows downward).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func RectFromCenter(c cp.Vector, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// BB maps the rect onto a chipmunk bounding box. B holds the top edge
// because screen y is inverted.
func (r Rect) BB() cp.BB {
	return cp.NewBBForExtents(r.Center(), r.Width/2, r.Height/2)
}

// Overlaps reports strict overlap: boxes that only share an edge do not
// collide. cp.BB.Intersects is inclusive, so the comparison is done here.
func (r Rect) Overlaps(o Rect) bool {
	a, b := r.BB(), o.BB()
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}

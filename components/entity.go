package components

import (
	"math"

	cfg "github.com/automoto/xtremepaddle/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// Rect is an axis-aligned rectangle in field coordinates
type Rect struct {
	X, Y, W, H float64
}

func RectFromBox(b cfg.BoxConfig) Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Intersects reports whether the rectangles overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return o.Left() < r.Right() && r.Left() < o.Right() &&
		o.Top() < r.Bottom() && r.Top() < o.Bottom()
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Body is the shared part of every match entity: a position plus a collision
// rectangle that excludes the transparent padding of the sprite.
type Body struct {
	Position dmath.Vec2
	// Local is the collision rectangle at scale 1, relative to Position
	Local Rect
	Scale float64
}

func NewBody(local Rect) Body {
	return Body{Local: local, Scale: 1}
}

// Bounds returns the world-space collision rectangle
func (b *Body) Bounds() Rect {
	return Rect{
		X: b.Position.X + b.Local.X*b.Scale,
		Y: b.Position.Y + b.Local.Y*b.Scale,
		W: b.Local.W * b.Scale,
		H: b.Local.H * b.Scale,
	}
}

// CenterAt moves the body so the center of its collision rectangle lands on p
func (b *Body) CenterAt(p dmath.Vec2) {
	b.Position.X = p.X - (b.Local.X+b.Local.W/2)*b.Scale
	b.Position.Y = p.Y - (b.Local.Y+b.Local.H/2)*b.Scale
}

func vecLen(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

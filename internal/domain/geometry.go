package domain

import "math"

// Point is a position on the diagram canvas, measured in terminal cells
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned box on the diagram canvas
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Right returns the x coordinate just past the box
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate just past the box
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal midpoint
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical midpoint
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Center returns the midpoint of the box
func (r Rect) Center() Point { return Point{X: r.CenterX(), Y: r.CenterY()} }

// Empty reports whether the box has no area
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Finite reports whether every coordinate is a real number
func (r Rect) Finite() bool {
	for _, v := range [...]float64{r.X, r.Y, r.W, r.H} {
		if !finite(v) {
			return false
		}
	}
	return true
}

// Contains reports whether o lies entirely inside r (edges inclusive)
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// ContainsPoint reports whether p falls inside r. The right and bottom
// edges are exclusive so adjacent boxes never both claim a cell.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Union returns the smallest box covering both r and o
func (r Rect) Union(o Rect) Rect {
	x := math.Min(r.X, o.X)
	y := math.Min(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: math.Max(r.Right(), o.Right()) - x,
		H: math.Max(r.Bottom(), o.Bottom()) - y,
	}
}

// Pad grows the box by d on every side
func (r Rect) Pad(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

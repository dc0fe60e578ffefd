package domain

import (
	"math"

	"golang.org/x/text/width"
)

// Routing constants, in cells
const (
	JogOffset      = 3.0 // horizontal distance past the source before turning
	FramePad       = 1.0 // padding around a pair frame
	LabelOffset    = 1.0 // rows a multi-segment label sits above the midpoint
	MinLabelWidth  = 8.0
	LabelHeight    = 1.0
	alignTolerance = 0.5
)

// LabelBox is where an edge label is drawn, centered on Center
type LabelBox struct {
	Center Point
	W      float64
	H      float64
}

// Rect returns the label's bounding box
func (l LabelBox) Rect() Rect {
	return Rect{X: l.Center.X - l.W/2, Y: l.Center.Y - l.H/2, W: l.W, H: l.H}
}

// Router turns edges and endpoint boxes into polylines. It holds only
// tuning constants, so Route and LabelAnchor are pure functions of their
// arguments.
type Router struct {
	Jog float64 // zero means JogOffset
}

// NewRouter creates a router with the default jog offset
func NewRouter() Router {
	return Router{Jog: JogOffset}
}

func (r Router) jog() float64 {
	if r.Jog <= 0 {
		return JogOffset
	}
	return r.Jog
}

// Route returns the polyline for e between the two boxes. Group-frame
// edges expect the caller to pass the pair frame as the relevant box,
// see Graph.EndpointBoxes.
func (r Router) Route(e Edge, from, to Rect) []Point {
	switch e.Route {
	case RouteVerticalStack:
		return r.verticalStack(from, to)
	default:
		return r.orthogonal(from, to)
	}
}

// orthogonal leaves from's right side and enters to's left side, with a
// vertical jog a fixed distance past from when the centers differ
func (r Router) orthogonal(from, to Rect) []Point {
	start := Point{X: from.Right(), Y: from.CenterY()}
	end := Point{X: to.X, Y: to.CenterY()}

	if math.Abs(start.Y-end.Y) < alignTolerance {
		return []Point{start, {X: end.X, Y: start.Y}}
	}

	jogX := from.Right() + r.jog()
	return []Point{
		start,
		{X: jogX, Y: start.Y},
		{X: jogX, Y: end.Y},
		end,
	}
}

// verticalStack drops straight down (or up) from the anchor box to a
// satellite stacked below (or above) it
func (r Router) verticalStack(from, to Rect) []Point {
	x := clamp(from.CenterX(), to.X, to.Right()-1)
	if to.CenterY() >= from.CenterY() {
		return []Point{{X: x, Y: from.Bottom()}, {X: x, Y: to.Y}}
	}
	return []Point{{X: x, Y: from.Y}, {X: x, Y: to.Bottom()}}
}

// LabelAnchor returns the label box for e: the length midpoint of its
// route, lifted by LabelOffset when the route bends
func (r Router) LabelAnchor(e Edge, from, to Rect) LabelBox {
	path := r.Route(e, from, to)
	center := PathMidpoint(path)
	if len(path) > 2 {
		center.Y -= LabelOffset
	}
	return LabelBox{
		Center: center,
		W:      math.Max(MinLabelWidth, float64(TextWidth(e.Label)+2)),
		H:      LabelHeight,
	}
}

// PathMidpoint returns the point halfway along the polyline by length
func PathMidpoint(path []Point) Point {
	switch len(path) {
	case 0:
		return Point{}
	case 1:
		return path[0]
	}

	total := PathLength(path)
	remaining := total / 2
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		seg := math.Hypot(b.X-a.X, b.Y-a.Y)
		if seg >= remaining && seg > 0 {
			t := remaining / seg
			return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
		}
		remaining -= seg
	}
	return path[len(path)-1]
}

// PathLength sums the segment lengths of a polyline
func PathLength(path []Point) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += math.Hypot(path[i].X-path[i-1].X, path[i].Y-path[i-1].Y)
	}
	return total
}

// TextWidth returns the number of terminal cells s occupies. East Asian
// wide and fullwidth runes take two cells.
func TextWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

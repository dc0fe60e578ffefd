package domain

// Callout placement constants, in cells
const (
	CalloutGap   = 2.0 // distance between the target and the callout
	CalloutInset = 1.0 // margin kept from the container edge when clamping
)

// Side is where a callout sits relative to its target
type Side int

const (
	SideRight Side = iota
	SideLeft
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideRight:
		return "right"
	case SideLeft:
		return "left"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Size is a width and height in cells
type Size struct {
	W float64
	H float64
}

// Placement is a solved callout position, relative to the container origin
type Placement struct {
	Side Side
	Left float64
	Top  float64
}

// Rect returns the placed callout box in container coordinates
func (p Placement) Rect(size Size) Rect {
	return Rect{X: p.Left, Y: p.Top, W: size.W, H: size.H}
}

// Place positions a callout of the given size next to target inside
// container. Sides are tried right, left, top, bottom; the first whose box
// lies fully inside the container wins. When none fits the callout goes on
// the left and is clamped into the container.
//
// ok is false when the container has no area or any input is not finite.
// Callers should skip drawing and retry on the next layout pass.
func Place(container, target Rect, size Size) (Placement, bool) {
	if container.Empty() || !container.Finite() || !target.Finite() || !finite(size.W) || !finite(size.H) {
		return Placement{}, false
	}

	candidates := [...]struct {
		side Side
		x, y float64
	}{
		{SideRight, target.Right() + CalloutGap, target.CenterY() - size.H/2},
		{SideLeft, target.X - CalloutGap - size.W, target.CenterY() - size.H/2},
		{SideTop, target.CenterX() - size.W/2, target.Y - CalloutGap - size.H},
		{SideBottom, target.CenterX() - size.W/2, target.Bottom() + CalloutGap},
	}

	for _, c := range candidates {
		box := Rect{X: c.x, Y: c.y, W: size.W, H: size.H}
		if container.Contains(box) {
			return Placement{Side: c.side, Left: c.x - container.X, Top: c.y - container.Y}, true
		}
	}

	fallback := candidates[1]
	return Placement{
		Side: SideLeft,
		Left: clampAxis(fallback.x-container.X, size.W, container.W),
		Top:  clampAxis(fallback.y-container.Y, size.H, container.H),
	}, true
}

// clampAxis keeps a span of length size inside [0, limit), leaving
// CalloutInset on both sides when there is room for it
func clampAxis(pos, size, limit float64) float64 {
	if size >= limit {
		return 0
	}
	inset := CalloutInset
	if room := (limit - size) / 2; room < inset {
		inset = room
	}
	return clamp(pos, inset, limit-size-inset)
}

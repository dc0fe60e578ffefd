package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reportmap/internal/domain"
)

// cell is one terminal column of the canvas. A wide rune occupies its own
// cell plus a tail cell that renders nothing.
type cell struct {
	r     rune
	style int
	tail  bool
}

// Canvas is a fixed-size grid of styled cells that diagram layers are
// painted onto, back to front. Coordinates passed to the drawing methods
// are world cells; the canvas subtracts its origin and crops.
type Canvas struct {
	w, h   int
	ox, oy int
	cells  []cell
	styles []lipgloss.Style
}

// NewCanvas creates a blank canvas showing the world region starting at
// (ox, oy)
func NewCanvas(w, h, ox, oy int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		w:      w,
		h:      h,
		ox:     ox,
		oy:     oy,
		cells:  make([]cell, w*h),
		styles: []lipgloss.Style{lipgloss.NewStyle()},
	}
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

// Viewport returns the visible world region
func (c *Canvas) Viewport() domain.Rect {
	return domain.Rect{X: float64(c.ox), Y: float64(c.oy), W: float64(c.w), H: float64(c.h)}
}

func (c *Canvas) addStyle(s lipgloss.Style) int {
	c.styles = append(c.styles, s)
	return len(c.styles) - 1
}

func (c *Canvas) at(x, y int) *cell {
	x -= c.ox
	y -= c.oy
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return nil
	}
	return &c.cells[y*c.w+x]
}

// put writes a narrow rune, repairing any wide rune it cuts in half
func (c *Canvas) put(x, y int, r rune, style int) {
	cur := c.at(x, y)
	if cur == nil {
		return
	}
	if cur.tail {
		if head := c.at(x-1, y); head != nil {
			head.r = ' '
		}
	}
	if next := c.at(x+1, y); next != nil && next.tail {
		next.tail = false
		next.r = ' '
	}
	*cur = cell{r: r, style: style}
}

// Text writes s starting at (x, y). Wide runes take two cells and are
// replaced by a space when only one cell is left.
func (c *Canvas) Text(x, y int, s string, style lipgloss.Style) {
	idx := c.addStyle(style)
	for _, r := range s {
		w := domain.TextWidth(string(r))
		if w == 2 {
			if c.at(x+1, y) == nil {
				c.put(x, y, ' ', idx)
				x += 2
				continue
			}
			c.put(x, y, r, idx)
			c.put(x+1, y, ' ', idx)
			if tail := c.at(x+1, y); tail != nil {
				tail.tail = true
			}
			x += 2
			continue
		}
		c.put(x, y, r, idx)
		x++
	}
}

// TextCentered writes s centered on column cx, clipped to limit cells
func (c *Canvas) TextCentered(cx, y int, s string, limit int, style lipgloss.Style) {
	s = truncateCells(s, limit)
	c.Text(cx-domain.TextWidth(s)/2, y, s, style)
}

// Fill paints r with spaces in style
func (c *Canvas) Fill(r domain.Rect, style lipgloss.Style) {
	idx := c.addStyle(style)
	x0, y0, x1, y1 := cellBounds(r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.put(x, y, ' ', idx)
		}
	}
}

type borderGlyphs struct {
	tl, tr, bl, br, h, v rune
}

var (
	roundedGlyphs = borderGlyphs{'╭', '╮', '╰', '╯', '─', '│'}
	dashedGlyphs  = borderGlyphs{'┌', '┐', '└', '┘', '╌', '╎'}
)

// Box draws a rounded border around r
func (c *Canvas) Box(r domain.Rect, style lipgloss.Style) {
	c.border(r, roundedGlyphs, style)
}

// DashedBox draws a dashed border around r
func (c *Canvas) DashedBox(r domain.Rect, style lipgloss.Style) {
	c.border(r, dashedGlyphs, style)
}

func (c *Canvas) border(r domain.Rect, g borderGlyphs, style lipgloss.Style) {
	idx := c.addStyle(style)
	x0, y0, x1, y1 := cellBounds(r)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		c.put(x, y0, g.h, idx)
		c.put(x, y1, g.h, idx)
	}
	for y := y0 + 1; y < y1; y++ {
		c.put(x0, y, g.v, idx)
		c.put(x1, y, g.v, idx)
	}
	c.put(x0, y0, g.tl, idx)
	c.put(x1, y0, g.tr, idx)
	c.put(x0, y1, g.bl, idx)
	c.put(x1, y1, g.br, idx)
}

// Polyline draws an orthogonal path with corner glyphs and, when arrow is
// set, an arrowhead one cell before the final point. The final point lies
// on the target's border, which is drawn later and would hide it.
func (c *Canvas) Polyline(path []domain.Point, dashed, arrow bool, style lipgloss.Style) {
	pts := gridPath(path)
	if len(pts) < 2 {
		return
	}
	idx := c.addStyle(style)
	hRune, vRune := '─', '│'
	if dashed {
		hRune, vRune = '╌', '╎'
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := sign(b.x-a.x), sign(b.y-a.y)
		for x, y := a.x, a.y; x != b.x || y != b.y; x, y = x+dx, y+dy {
			if dx != 0 {
				c.put(x, y, hRune, idx)
			} else {
				c.put(x, y, vRune, idx)
			}
		}
	}
	for i := 1; i < len(pts)-1; i++ {
		in := dir{sign(pts[i].x - pts[i-1].x), sign(pts[i].y - pts[i-1].y)}
		out := dir{sign(pts[i+1].x - pts[i].x), sign(pts[i+1].y - pts[i].y)}
		if r, ok := corner(in, out); ok {
			c.put(pts[i].x, pts[i].y, r, idx)
		}
	}

	if !arrow {
		return
	}
	last, prev := pts[len(pts)-1], pts[len(pts)-2]
	d := dir{sign(last.x - prev.x), sign(last.y - prev.y)}
	c.put(last.x-d.x, last.y-d.y, arrowHead(d), idx)
}

// String renders the canvas, one line per row
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := c.cells[y*c.w : (y+1)*c.w]
		start := 0
		for start < len(row) {
			end := start
			var run strings.Builder
			for end < len(row) && row[end].style == row[start].style {
				if !row[end].tail {
					run.WriteRune(row[end].r)
				}
				end++
			}
			if row[start].style == 0 {
				b.WriteString(run.String())
			} else {
				b.WriteString(c.styles[row[start].style].Render(run.String()))
			}
			start = end
		}
	}
	return b.String()
}

// Plain renders the canvas without styling, for tests and hit debugging
func (c *Canvas) Plain() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, cl := range c.cells[y*c.w : (y+1)*c.w] {
			if !cl.tail {
				b.WriteRune(cl.r)
			}
		}
	}
	return b.String()
}

type gridPoint struct{ x, y int }

type dir struct{ x, y int }

// gridPath snaps a path to cells. Diagonal steps are split into a
// horizontal then a vertical run.
func gridPath(path []domain.Point) []gridPoint {
	var out []gridPoint
	for _, p := range path {
		g := gridPoint{round(p.X), round(p.Y)}
		if n := len(out); n > 0 {
			last := out[n-1]
			if last == g {
				continue
			}
			if last.x != g.x && last.y != g.y {
				out = append(out, gridPoint{g.x, last.y})
			}
		}
		out = append(out, g)
	}
	return out
}

func corner(in, out dir) (rune, bool) {
	switch {
	case in.x > 0 && out.y > 0, in.y < 0 && out.x < 0:
		return '╮', true
	case in.x > 0 && out.y < 0, in.y > 0 && out.x < 0:
		return '╯', true
	case in.x < 0 && out.y > 0, in.y < 0 && out.x > 0:
		return '╭', true
	case in.x < 0 && out.y < 0, in.y > 0 && out.x > 0:
		return '╰', true
	}
	return 0, false
}

func arrowHead(d dir) rune {
	switch {
	case d.x > 0:
		return '▶'
	case d.x < 0:
		return '◀'
	case d.y > 0:
		return '▼'
	default:
		return '▲'
	}
}

// cellBounds converts a rect to inclusive cell bounds
func cellBounds(r domain.Rect) (x0, y0, x1, y1 int) {
	return round(r.X), round(r.Y), round(r.Right()) - 1, round(r.Bottom()) - 1
}

func round(v float64) int {
	return int(math.Round(v))
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// truncateCells cuts s to at most limit terminal cells, marking the cut
// with an ellipsis
func truncateCells(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if domain.TextWidth(s) <= limit {
		return s
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := domain.TextWidth(string(r))
		if w+rw > limit-1 {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	b.WriteRune('…')
	return b.String()
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Route(t *testing.T) {
	g := backbone(t)
	r := NewRouter()

	tests := []struct {
		edge EdgeID
		want []Point
	}{
		{"voucher-ledger", []Point{{20, 15}, {30, 15}}},
		{"trial-balance-balance-sheet", []Point{{76, 15}, {79, 15}, {79, 10}, {88, 10}}},
		{"trial-balance-activity-statement", []Point{{76, 15}, {79, 15}, {79, 22}, {88, 22}}},
		{"voucher-journal", []Point{{11, 13}, {11, 7}}},
		{"voucher-cashbook", []Point{{11, 17}, {11, 23}}},
		{"balance-sheet-inventory", []Point{{97, 8}, {97, 4}}},
		{"balance-sheet-notes", []Point{{107, 16}, {118, 16}}},
	}

	for _, tt := range tests {
		t.Run(string(tt.edge), func(t *testing.T) {
			e, ok := g.Edge(tt.edge)
			require.True(t, ok)
			from, to, ok := g.EndpointBoxes(e)
			require.True(t, ok)

			assert.Equal(t, tt.want, r.Route(e, from, to))
		})
	}
}

func TestRouter_RouteIsPure(t *testing.T) {
	g := backbone(t)
	r := NewRouter()
	e, _ := g.Edge("ledger-subledger")
	from, to, _ := g.EndpointBoxes(e)

	assert.Equal(t, r.Route(e, from, to), r.Route(e, from, to))
}

func TestRouter_VerticalStackClampsIntoTarget(t *testing.T) {
	r := NewRouter()
	e := Edge{Route: RouteVerticalStack}
	from := Rect{X: 0, Y: 0, W: 10, H: 2}
	to := Rect{X: 20, Y: 10, W: 6, H: 2}

	path := r.Route(e, from, to)

	assert.Equal(t, []Point{{20, 2}, {20, 10}}, path)
}

func TestRouter_CustomJog(t *testing.T) {
	r := Router{Jog: 5}
	path := r.Route(Edge{}, Rect{X: 0, Y: 0, W: 4, H: 2}, Rect{X: 20, Y: 10, W: 4, H: 2})

	assert.Equal(t, 9.0, path[1].X)
}

func TestRouter_LabelAnchor(t *testing.T) {
	g := backbone(t)
	r := NewRouter()

	straight, _ := g.Edge("voucher-ledger")
	from, to, _ := g.EndpointBoxes(straight)
	box := r.LabelAnchor(straight, from, to)
	assert.Equal(t, Point{X: 25, Y: 15}, box.Center)
	assert.Equal(t, MinLabelWidth, box.W)
	assert.Equal(t, LabelHeight, box.H)

	bent, _ := g.Edge("trial-balance-balance-sheet")
	from, to, _ = g.EndpointBoxes(bent)
	box = r.LabelAnchor(bent, from, to)
	assert.Equal(t, Point{X: 79.5, Y: 10 - LabelOffset}, box.Center)
	assert.Equal(t, 10.0, box.W)
}

func TestPathMidpoint(t *testing.T) {
	tests := []struct {
		name string
		path []Point
		want Point
	}{
		{"empty", nil, Point{}},
		{"single", []Point{{3, 4}}, Point{3, 4}},
		{"segment", []Point{{0, 0}, {10, 0}}, Point{5, 0}},
		{"zero length", []Point{{2, 2}, {2, 2}}, Point{2, 2}},
		{"bent", []Point{{0, 0}, {0, 4}, {6, 4}}, Point{1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PathMidpoint(tt.path))
		})
	}
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"ledger", 6},
		{"記帳", 4},
		{"注記・内訳", 10},
		{"B/S 貸借", 8},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TextWidth(tt.in))
		})
	}
}

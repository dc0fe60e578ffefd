package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelated_HoverLedgerOnBackbone(t *testing.T) {
	edges := []Edge{
		{ID: "a", From: "voucher", To: "ledger"},
		{ID: "b", From: "ledger", To: "trial-balance"},
		{ID: "c", From: "trial-balance", To: "balance-sheet"},
	}

	got := Related("ledger", edges)

	assert.Equal(t, []NodeID{"balance-sheet", "ledger", "trial-balance", "voucher"}, got.Sorted())
}

func TestWalk_AlwaysContainsStart(t *testing.T) {
	tests := []struct {
		name  string
		start NodeID
		edges []Edge
	}{
		{"no edges", "voucher", nil},
		{"unrelated edges", "voucher", []Edge{{From: "ledger", To: "trial-balance"}}},
		{"dangling start", "missing", []Edge{{From: "voucher", To: "ledger"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []NodeID{tt.start}, Upstream(tt.start, tt.edges).Sorted())
			assert.Equal(t, []NodeID{tt.start}, Downstream(tt.start, tt.edges).Sorted())
		})
	}
}

func TestWalk_TerminatesOnCycle(t *testing.T) {
	edges := []Edge{
		{ID: "ab", From: "a", To: "b"},
		{ID: "ba", From: "b", To: "a"},
	}

	assert.Equal(t, []NodeID{"a", "b"}, Upstream("a", edges).Sorted())
	assert.Equal(t, []NodeID{"a", "b"}, Downstream("a", edges).Sorted())
	assert.Equal(t, []NodeID{"a", "b"}, Related("b", edges).Sorted())
}

func TestWalk_Closure(t *testing.T) {
	g := backbone(t)
	edges := g.Edges()

	for _, n := range g.Nodes() {
		down := Downstream(n.ID, edges)
		up := Upstream(n.ID, edges)
		for _, e := range edges {
			if down.Has(e.From) {
				assert.True(t, down.Has(e.To), "downstream of %s: %s reached but %s not", n.ID, e.From, e.To)
			}
			if up.Has(e.To) {
				assert.True(t, up.Has(e.From), "upstream of %s: %s reached but %s not", n.ID, e.To, e.From)
			}
		}
	}
}

func TestHighlight_PairClosure(t *testing.T) {
	g := backbone(t)
	view := Derive(g, State{}, false)
	edges := g.SelectEdges(view.Edges)

	plain := Highlight("activity-statement", edges, view.Nodes, nil)
	assert.False(t, plain.Has("balance-sheet"))

	paired := Highlight("activity-statement", edges, view.Nodes, g.Pairs())
	assert.True(t, paired.Has("balance-sheet"))
	// one level only: the partner's own downstream is not pulled in
	assert.False(t, paired.Has("inventory"))
}

func TestHighlight_PartnerMustBeVisible(t *testing.T) {
	pairs := []Pair{{ID: "p", A: "x", B: "y"}}
	edges := []Edge{{From: "w", To: "x"}}

	got := Highlight("w", edges, NewNodeSet("w", "x"), pairs)

	assert.False(t, got.Has("y"))
}

func TestEdgeLit(t *testing.T) {
	set := NewNodeSet("voucher", "ledger")

	assert.True(t, EdgeLit(Edge{From: "voucher", To: "ledger"}, set))
	assert.False(t, EdgeLit(Edge{From: "ledger", To: "trial-balance"}, set))
}

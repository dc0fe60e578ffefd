package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reduceAll(g *Graph, s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(g, s, a)
	}
	return s
}

func TestReduce_FocusToggle(t *testing.T) {
	g := backbone(t)

	s := Reduce(g, State{}, ClickNode{ID: "balance-sheet"})
	assert.Equal(t, NodeID("balance-sheet"), s.Focus)
	assert.True(t, s.Selection.Idle())
	assert.Equal(t, []NodeID{"inventory", "notes"}, g.SecondaryOnly(g.VisibleNodes(s.AllVisible, s.Focus)).Sorted())

	s = Reduce(g, s, ClickNode{ID: "balance-sheet"})
	assert.Empty(t, s.Focus)
	assert.Empty(t, g.SecondaryOnly(g.VisibleNodes(s.AllVisible, s.Focus)))
}

func TestReduce_ClickPrimaryLeavesShowAll(t *testing.T) {
	g := backbone(t)

	s := reduceAll(g, State{}, ToggleAllVisible{}, ClickNode{ID: "ledger"})

	assert.False(t, s.AllVisible)
	assert.Equal(t, NodeID("ledger"), s.Focus)
}

func TestReduce_ClickSecondarySetsOwnerAndSelects(t *testing.T) {
	g := backbone(t)

	s := reduceAll(g, State{}, ToggleAllVisible{}, ClickNode{ID: "notes"})

	assert.False(t, s.AllVisible)
	assert.Equal(t, NodeID("balance-sheet"), s.Focus)
	id, ok := s.Selection.Node()
	assert.True(t, ok)
	assert.Equal(t, NodeID("notes"), id)
	assert.True(t, s.DrawerOpen())
}

func TestReduce_EdgeClickKeepsFocus(t *testing.T) {
	g := backbone(t)

	s := reduceAll(g, State{}, ClickNode{ID: "ledger"}, ClickEdge{ID: "voucher-ledger"})

	assert.Equal(t, NodeID("ledger"), s.Focus)
	id, ok := s.Selection.Edge()
	assert.True(t, ok)
	assert.Equal(t, EdgeID("voucher-ledger"), id)
}

func TestReduce_DetailAffordanceKeepsFocus(t *testing.T) {
	g := backbone(t)

	s := reduceAll(g, State{}, ClickNode{ID: "voucher"}, OpenNodeDetail{ID: "ledger"})

	assert.Equal(t, NodeID("voucher"), s.Focus)
	assert.Equal(t, NodeSelection("ledger"), s.Selection)
}

func TestReduce_HiddenTargetsIgnored(t *testing.T) {
	g := backbone(t)

	tests := []struct {
		name   string
		action Action
	}{
		{"hover hidden node", HoverNode{ID: "journal"}},
		{"hover unknown node", HoverNode{ID: "nope"}},
		{"click hidden node", ClickNode{ID: "inventory"}},
		{"open hidden node", OpenNodeDetail{ID: "subledger"}},
		{"click hidden edge", ClickEdge{ID: "ledger-subledger"}},
		{"click unknown edge", ClickEdge{ID: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, State{}, Reduce(g, State{}, tt.action))
		})
	}
}

func TestReduce_EscapeAndOverlayReturnToIdle(t *testing.T) {
	g := backbone(t)

	for _, a := range []Action{Escape{}, ClickOverlay{}} {
		s := reduceAll(g, State{}, OpenNodeDetail{ID: "ledger"}, a)
		assert.True(t, s.Selection.Idle())
		assert.False(t, s.DrawerOpen())
	}
}

func TestReduce_ReconcilesHiddenSelection(t *testing.T) {
	g := backbone(t)

	s := reduceAll(g, State{}, ToggleAllVisible{}, OpenNodeDetail{ID: "inventory"}, HoverNode{ID: "journal"})
	assert.Equal(t, NodeSelection("inventory"), s.Selection)
	assert.Equal(t, NodeID("journal"), s.Hover)

	s = Reduce(g, s, ToggleAllVisible{})

	assert.True(t, s.Selection.Idle())
	assert.Empty(t, s.Hover)
}

func TestReduce_ReconcilesHiddenEdge(t *testing.T) {
	g := backbone(t)

	s := reduceAll(g, State{}, ClickNode{ID: "ledger"}, ClickEdge{ID: "ledger-subledger"})
	assert.False(t, s.Selection.Idle())

	s = Reduce(g, s, ClickNode{ID: "voucher"})

	assert.True(t, s.Selection.Idle())
}

func TestReduce_CategoryTracksSelection(t *testing.T) {
	g := backbone(t)

	s := reduceAll(g, State{}, OpenNodeDetail{ID: "balance-sheet"}, ToggleCategory{ID: "assets"})
	assert.Equal(t, CategoryID("assets"), s.Expanded)

	s = Reduce(g, s, ToggleCategory{ID: "net-assets"})
	assert.Equal(t, CategoryID("net-assets"), s.Expanded)

	s = Reduce(g, s, ToggleCategory{ID: "net-assets"})
	assert.Empty(t, s.Expanded)

	s = reduceAll(g, s, ToggleCategory{ID: "liabilities"}, OpenNodeDetail{ID: "ledger"})
	assert.Empty(t, s.Expanded)

	s = Reduce(g, s, ToggleCategory{ID: "assets"})
	assert.Empty(t, s.Expanded, "ledger has no breakdown")
}

func TestReduce_FollowCrossLink(t *testing.T) {
	g := backbone(t)
	link := CrossLink{Label: "注記", Focus: "balance-sheet", Select: "notes"}

	s := reduceAll(g, State{}, OpenNodeDetail{ID: "balance-sheet"}, ToggleCategory{ID: "net-assets"}, FollowCrossLink{Link: link})

	assert.Equal(t, NodeID("balance-sheet"), s.Focus)
	assert.Equal(t, NodeSelection("notes"), s.Selection)
	assert.Empty(t, s.Expanded)
}

func TestReduce_FollowCrossLinkToPrimary(t *testing.T) {
	g := backbone(t)
	link := CrossLink{Label: "活動計算書", Focus: "activity-statement", Select: "activity-statement"}

	s := Reduce(g, State{Focus: "balance-sheet"}, FollowCrossLink{Link: link})

	assert.Equal(t, NodeID("activity-statement"), s.Focus)
	assert.Equal(t, NodeSelection("activity-statement"), s.Selection)
}

func TestReduce_Tour(t *testing.T) {
	g := backbone(t)

	s := Reduce(g, State{}, HighlightTour{Nodes: []NodeID{"balance-sheet", "activity-statement"}})
	view := Derive(g, s, true)
	assert.True(t, view.Dimmed("voucher"))
	assert.False(t, view.Dimmed("balance-sheet"))

	s = Reduce(g, s, ClearTour{})
	assert.Nil(t, Derive(g, s, true).Highlight)
}

func TestDerive_HoverOverridesTour(t *testing.T) {
	g := backbone(t)

	s := reduceAll(g, State{}, HighlightTour{Nodes: []NodeID{"balance-sheet"}}, HoverNode{ID: "voucher"})
	view := Derive(g, s, true)

	assert.False(t, view.Dimmed("ledger"))
	assert.False(t, view.Dimmed("activity-statement"))
}

func TestView_EdgeDimmed(t *testing.T) {
	g := backbone(t)
	s := Reduce(g, State{}, HoverNode{ID: "activity-statement"})
	view := Derive(g, s, false)

	lit, _ := g.Edge("trial-balance-activity-statement")
	dim, _ := g.Edge("trial-balance-balance-sheet")
	assert.False(t, view.EdgeDimmed(lit, nil))
	assert.True(t, view.EdgeDimmed(dim, nil))
	assert.False(t, view.EdgeDimmed(dim, NewEdgeSet(dim.ID)))
}

func TestSelection_String(t *testing.T) {
	assert.Equal(t, "idle", Selection{}.String())
	assert.Equal(t, "node:ledger", NodeSelection("ledger").String())
	assert.Equal(t, "edge:voucher-ledger", EdgeSelection("voucher-ledger").String())
}

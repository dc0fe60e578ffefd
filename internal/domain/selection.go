package domain

// SelectionKind tags what a Selection points at
type SelectionKind int

const (
	SelectionIdle SelectionKind = iota
	SelectionNode
	SelectionEdge
)

func (k SelectionKind) String() string {
	switch k {
	case SelectionNode:
		return "node"
	case SelectionEdge:
		return "edge"
	default:
		return "idle"
	}
}

// Selection is either nothing, one node, or one edge. The zero value is idle.
type Selection struct {
	kind SelectionKind
	id   string
}

// NodeSelection selects a node
func NodeSelection(id NodeID) Selection {
	return Selection{kind: SelectionNode, id: string(id)}
}

// EdgeSelection selects an edge
func EdgeSelection(id EdgeID) Selection {
	return Selection{kind: SelectionEdge, id: string(id)}
}

// Kind returns the selection tag
func (s Selection) Kind() SelectionKind { return s.kind }

// Idle reports whether nothing is selected
func (s Selection) Idle() bool { return s.kind == SelectionIdle }

// Node returns the selected node id
func (s Selection) Node() (NodeID, bool) {
	if s.kind != SelectionNode {
		return "", false
	}
	return NodeID(s.id), true
}

// Edge returns the selected edge id
func (s Selection) Edge() (EdgeID, bool) {
	if s.kind != SelectionEdge {
		return "", false
	}
	return EdgeID(s.id), true
}

func (s Selection) String() string {
	if s.kind == SelectionIdle {
		return "idle"
	}
	return s.kind.String() + ":" + s.id
}

// State is the complete interactive state of one diagram session
type State struct {
	AllVisible bool
	Focus      NodeID
	Hover      NodeID
	Selection  Selection
	Expanded   CategoryID
	Tour       NodeSet
	TourEdges  EdgeSet
}

// DrawerOpen reports whether the detail drawer is shown
func (s State) DrawerOpen() bool {
	return !s.Selection.Idle()
}

// Action is an input to Reduce
type Action interface {
	isAction()
}

type (
	// HoverNode starts highlighting from a node
	HoverNode struct{ ID NodeID }
	// ClearHover stops highlighting
	ClearHover struct{}
	// ClickNode is a click on a node body
	ClickNode struct{ ID NodeID }
	// OpenNodeDetail is a click on a node's detail affordance
	OpenNodeDetail struct{ ID NodeID }
	// ClickEdge is a click on an edge line or label
	ClickEdge struct{ ID EdgeID }
	// Escape closes the drawer
	Escape struct{}
	// ClickOverlay is a click on the background behind the open drawer
	ClickOverlay struct{}
	// ToggleAllVisible flips the "show all secondary documents" switch
	ToggleAllVisible struct{}
	// ToggleCategory opens or closes one breakdown category
	ToggleCategory struct{ ID CategoryID }
	// FollowCrossLink activates a link inside a breakdown category
	FollowCrossLink struct{ Link CrossLink }
	// HighlightTour marks nodes and edges for a walkthrough step
	HighlightTour struct {
		Nodes []NodeID
		Edges []EdgeID
	}
	// ClearTour removes any walkthrough highlight
	ClearTour struct{}
)

func (HoverNode) isAction()        {}
func (ClearHover) isAction()       {}
func (ClickNode) isAction()        {}
func (OpenNodeDetail) isAction()   {}
func (ClickEdge) isAction()        {}
func (Escape) isAction()           {}
func (ClickOverlay) isAction()     {}
func (ToggleAllVisible) isAction() {}
func (ToggleCategory) isAction()   {}
func (FollowCrossLink) isAction()  {}
func (HighlightTour) isAction()    {}
func (ClearTour) isAction()        {}

// Reduce applies a to s and returns the reconciled next state. Ids that
// are unknown or currently hidden are ignored.
func Reduce(g *Graph, s State, a Action) State {
	prev := s.Selection
	visible := g.VisibleNodes(s.AllVisible, s.Focus)

	switch a := a.(type) {
	case HoverNode:
		if visible.Has(a.ID) {
			s.Hover = a.ID
		}
	case ClearHover:
		s.Hover = ""
	case ClickNode:
		n, ok := g.Node(a.ID)
		if !ok || !visible.Has(a.ID) {
			break
		}
		if n.IsPrimary() {
			if s.Focus == a.ID {
				s.Focus = ""
			} else {
				s.Focus = a.ID
			}
			s.AllVisible = false
			break
		}
		if owner, ok := g.OwnerOf(a.ID); ok {
			s.Focus = owner
			s.AllVisible = false
		}
		s.Selection = NodeSelection(a.ID)
	case OpenNodeDetail:
		if visible.Has(a.ID) {
			s.Selection = NodeSelection(a.ID)
		}
	case ClickEdge:
		if g.VisibleEdges(s.AllVisible, s.Focus).Has(a.ID) {
			s.Selection = EdgeSelection(a.ID)
		}
	case Escape, ClickOverlay:
		s.Selection = Selection{}
	case ToggleAllVisible:
		s.AllVisible = !s.AllVisible
		s.Focus = ""
	case ToggleCategory:
		if s.Expanded == a.ID {
			s.Expanded = ""
		} else {
			s.Expanded = a.ID
		}
	case FollowCrossLink:
		if _, ok := g.Node(a.Link.Select); !ok {
			break
		}
		if a.Link.Focus != "" {
			s.Focus = a.Link.Focus
			s.AllVisible = false
		}
		if g.VisibleNodes(s.AllVisible, s.Focus).Has(a.Link.Select) {
			s.Selection = NodeSelection(a.Link.Select)
		}
	case HighlightTour:
		s.Tour = NewNodeSet(a.Nodes...)
		s.TourEdges = NewEdgeSet(a.Edges...)
	case ClearTour:
		s.Tour = nil
		s.TourEdges = nil
	}

	if s.Selection != prev {
		s.Expanded = ""
	}
	return Reconcile(g, s)
}

// Reconcile drops hover and selection targets that are no longer visible
// and closes the expanded category unless the selected node owns it
func Reconcile(g *Graph, s State) State {
	nodes := g.VisibleNodes(s.AllVisible, s.Focus)

	if s.Hover != "" && !nodes.Has(s.Hover) {
		s.Hover = ""
	}

	switch s.Selection.Kind() {
	case SelectionNode:
		id, _ := s.Selection.Node()
		if !nodes.Has(id) {
			s.Selection = Selection{}
		}
	case SelectionEdge:
		id, _ := s.Selection.Edge()
		if !g.VisibleEdges(s.AllVisible, s.Focus).Has(id) {
			s.Selection = Selection{}
		}
	}

	if s.Expanded != "" {
		keep := false
		if id, ok := s.Selection.Node(); ok {
			if b, ok := g.Breakdown(id); ok {
				_, keep = b.Category(s.Expanded)
			}
		}
		if !keep {
			s.Expanded = ""
		}
	}
	return s
}

// View is everything derived from a State for one render pass
type View struct {
	Nodes     NodeSet
	Edges     EdgeSet
	Highlight NodeSet // nil when nothing is hovered or toured
}

// Derive computes the visible sets and the highlight for s. With
// pairClosure off the highlight is pure reachability.
func Derive(g *Graph, s State, pairClosure bool) View {
	v := View{
		Nodes: g.VisibleNodes(s.AllVisible, s.Focus),
		Edges: g.VisibleEdges(s.AllVisible, s.Focus),
	}

	switch {
	case s.Hover != "" && v.Nodes.Has(s.Hover):
		var pairs []Pair
		if pairClosure {
			pairs = g.pairs
		}
		v.Highlight = Highlight(s.Hover, g.SelectEdges(v.Edges), v.Nodes, pairs)
	case len(s.Tour) > 0:
		v.Highlight = s.Tour.Union(nil)
	}
	return v
}

// Dimmed reports whether a node should be drawn faded
func (v View) Dimmed(id NodeID) bool {
	return v.Highlight != nil && !v.Highlight.Has(id)
}

// EdgeDimmed reports whether an edge should be drawn faded. Tour edges
// stay lit even when one end is outside the highlight.
func (v View) EdgeDimmed(e Edge, tour EdgeSet) bool {
	if v.Highlight == nil || tour.Has(e.ID) {
		return false
	}
	return !EdgeLit(e, v.Highlight)
}

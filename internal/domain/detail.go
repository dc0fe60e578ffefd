package domain

// CategoryID names one expandable row of a breakdown, e.g. "net-assets"
type CategoryID string

// LineItem is one entry listed under a category
type LineItem struct {
	Label string
	Note  string
}

// CrossLink jumps from a breakdown category to another document. Focus is
// applied before Select so the target is visible when it gets selected.
type CrossLink struct {
	Label  string
	Focus  NodeID // optional
	Select NodeID
}

// Category is one collapsible section of a breakdown
type Category struct {
	ID    CategoryID
	Label string
	Items []LineItem
	Links []CrossLink
}

// Breakdown is the structured content shown for a statement node
type Breakdown struct {
	Title      string
	Categories []Category
}

// Category looks up a category by id
func (b Breakdown) Category(id CategoryID) (Category, bool) {
	for _, c := range b.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Connection is one visible edge touching the described node
type Connection struct {
	Edge          EdgeID
	Node          NodeID // the node on the other end
	Label         string // that node's label
	RelationLabel string
}

// NodeDetail is the drawer content for a selected node
type NodeDetail struct {
	Node      Node
	Owner     NodeID // set for secondary nodes
	Pair      *Pair
	Incoming  []Connection
	Outgoing  []Connection
	Breakdown *Breakdown
}

// Connected returns the labels of every directly connected node, sources
// first, without duplicates
func (d NodeDetail) Connected() []string {
	seen := make(map[NodeID]bool)
	var out []string
	for _, list := range [][]Connection{d.Incoming, d.Outgoing} {
		for _, c := range list {
			if seen[c.Node] {
				continue
			}
			seen[c.Node] = true
			out = append(out, c.Label)
		}
	}
	return out
}

// EdgeDetail is the drawer content for a selected edge
type EdgeDetail struct {
	Edge          Edge
	RelationLabel string
	Style         Style
}

// DescribeNode builds the drawer content for id. Incoming and outgoing
// lists consider only the given visible edges.
func (g *Graph) DescribeNode(id NodeID, visible EdgeSet) (NodeDetail, bool) {
	n, ok := g.Node(id)
	if !ok {
		return NodeDetail{}, false
	}

	d := NodeDetail{Node: n}
	if owner, ok := g.OwnerOf(id); ok {
		d.Owner = owner
	}
	if p, ok := g.PairOf(id); ok {
		d.Pair = &p
	}
	if b, ok := g.Breakdown(id); ok {
		d.Breakdown = &b
	}

	for _, e := range g.edges {
		if !visible.Has(e.ID) {
			continue
		}
		rel := g.styles[e.Relation].Label
		// a self-loop is listed on both sides
		if e.To == id {
			d.Incoming = append(d.Incoming, Connection{Edge: e.ID, Node: e.From, Label: e.FromLabel, RelationLabel: rel})
		}
		if e.From == id {
			d.Outgoing = append(d.Outgoing, Connection{Edge: e.ID, Node: e.To, Label: e.ToLabel, RelationLabel: rel})
		}
	}
	return d, true
}

// DescribeEdge builds the drawer content for an edge
func (g *Graph) DescribeEdge(id EdgeID) (EdgeDetail, bool) {
	e, ok := g.Edge(id)
	if !ok {
		return EdgeDetail{}, false
	}
	s := g.styles[e.Relation]
	return EdgeDetail{Edge: e, RelationLabel: s.Label, Style: s}, true
}

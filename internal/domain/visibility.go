package domain

// VisibleNodes returns the nodes shown for the given toggle and focus.
// Primary nodes are always shown. Secondary nodes are shown when
// allVisible is set or when they are registered under focus. A focus
// without a registration simply adds nothing.
func (g *Graph) VisibleNodes(allVisible bool, focus NodeID) NodeSet {
	out := make(NodeSet, len(g.nodes))
	var focused NodeSet
	if !allVisible && focus != "" {
		if sec, ok := g.secondary[focus]; ok {
			focused = NewNodeSet(sec.Nodes...)
		}
	}

	for _, n := range g.nodes {
		if n.IsPrimary() || allVisible || focused.Has(n.ID) {
			out.Add(n.ID)
		}
	}
	return out
}

// VisibleEdges returns the edges shown for the given toggle and focus.
// Registration follows the same rule as VisibleNodes; an edge is also
// dropped when either endpoint is hidden so no line dangles.
func (g *Graph) VisibleEdges(allVisible bool, focus NodeID) EdgeSet {
	nodes := g.VisibleNodes(allVisible, focus)

	var focused EdgeSet
	if !allVisible && focus != "" {
		if sec, ok := g.secondary[focus]; ok {
			focused = NewEdgeSet(sec.Edges...)
		}
	}

	out := make(EdgeSet, len(g.edges))
	for _, e := range g.edges {
		if e.Tier != TierPrimary && !allVisible && !focused.Has(e.ID) {
			continue
		}
		if !nodes.Has(e.From) || !nodes.Has(e.To) {
			continue
		}
		out[e.ID] = struct{}{}
	}
	return out
}

// SelectEdges returns the edges in set, in definition order
func (g *Graph) SelectEdges(set EdgeSet) []Edge {
	out := make([]Edge, 0, len(set))
	for _, e := range g.edges {
		if set.Has(e.ID) {
			out = append(out, e)
		}
	}
	return out
}

// SelectNodes returns the nodes in set, in definition order
func (g *Graph) SelectNodes(set NodeSet) []Node {
	out := make([]Node, 0, len(set))
	for _, n := range g.nodes {
		if set.Has(n.ID) {
			out = append(out, n)
		}
	}
	return out
}

// SecondaryOnly drops primary ids from a node set
func (g *Graph) SecondaryOnly(set NodeSet) NodeSet {
	out := make(NodeSet)
	for id := range set {
		if n, ok := g.Node(id); ok && !n.IsPrimary() {
			out.Add(id)
		}
	}
	return out
}

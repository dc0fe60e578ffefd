package domain

import "sort"

// NodeSet is an unordered set of node ids
type NodeSet map[NodeID]struct{}

// NewNodeSet builds a set from ids
func NewNodeSet(ids ...NodeID) NodeSet {
	s := make(NodeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set. A nil set contains nothing.
func (s NodeSet) Has(id NodeID) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id
func (s NodeSet) Add(id NodeID) {
	s[id] = struct{}{}
}

// Union returns a new set holding the members of both
func (s NodeSet) Union(o NodeSet) NodeSet {
	out := make(NodeSet, len(s)+len(o))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range o {
		out[id] = struct{}{}
	}
	return out
}

// Sorted returns the members in lexical order
func (s NodeSet) Sorted() []NodeID {
	ids := make([]NodeID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EdgeSet is an unordered set of edge ids
type EdgeSet map[EdgeID]struct{}

// NewEdgeSet builds a set from ids
func NewEdgeSet(ids ...EdgeID) EdgeSet {
	s := make(EdgeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set
func (s EdgeSet) Has(id EdgeID) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in lexical order
func (s EdgeSet) Sorted() []EdgeID {
	ids := make([]EdgeID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Upstream returns every node that can reach start by following edges
// forward, plus start itself. Only the given edges are walked.
func Upstream(start NodeID, edges []Edge) NodeSet {
	return walk(start, edges, func(e Edge) (NodeID, NodeID) { return e.To, e.From })
}

// Downstream returns every node reachable from start, plus start itself
func Downstream(start NodeID, edges []Edge) NodeSet {
	return walk(start, edges, func(e Edge) (NodeID, NodeID) { return e.From, e.To })
}

// Related is the union of Upstream and Downstream
func Related(start NodeID, edges []Edge) NodeSet {
	return Upstream(start, edges).Union(Downstream(start, edges))
}

// walk is a breadth-first search; direction maps an edge to the
// (current, next) pair it may be traversed along.
func walk(start NodeID, edges []Edge, direction func(Edge) (NodeID, NodeID)) NodeSet {
	adjacent := make(map[NodeID][]NodeID)
	for _, e := range edges {
		cur, next := direction(e)
		adjacent[cur] = append(adjacent[cur], next)
	}

	visited := NewNodeSet(start)
	queue := []NodeID{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range adjacent[id] {
			if visited.Has(next) {
				continue
			}
			visited.Add(next)
			queue = append(queue, next)
		}
	}
	return visited
}

// Highlight computes the set of nodes kept bright while start is hovered.
// It is Related over the visible edges, and when pairs is non-empty each
// pair whose one member is related pulls in its visible partner. Pair
// closure is applied once against the reachability result.
func Highlight(start NodeID, edges []Edge, visible NodeSet, pairs []Pair) NodeSet {
	related := Related(start, edges)
	if len(pairs) == 0 {
		return related
	}

	out := related.Union(nil)
	for _, p := range pairs {
		switch {
		case related.Has(p.A) && !related.Has(p.B) && visible.Has(p.B):
			out.Add(p.B)
		case related.Has(p.B) && !related.Has(p.A) && visible.Has(p.A):
			out.Add(p.A)
		}
	}
	return out
}

// EdgeLit reports whether both ends of e are in the highlight set
func EdgeLit(e Edge, highlight NodeSet) bool {
	return highlight.Has(e.From) && highlight.Has(e.To)
}

package domain

import (
	"errors"
	"fmt"
	"sort"
)

// Definition is the authored form of a structure map before validation
type Definition struct {
	Nodes      []Node
	Edges      []Edge
	Styles     map[Relation]Style
	Pairs      []Pair
	Secondary  map[NodeID]Secondary
	Breakdowns map[NodeID]Breakdown
	Tutorial   []TutorialStep
}

// IntegrityError reports one referential problem in a Definition
type IntegrityError struct {
	Field   string
	Message string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Graph is a validated, read-only structure map. All accessors return
// copies so callers cannot mutate shared data.
type Graph struct {
	nodes      []Node
	edges      []Edge
	nodeIndex  map[NodeID]int
	edgeIndex  map[EdgeID]int
	styles     map[Relation]Style
	pairs      []Pair
	secondary  map[NodeID]Secondary
	owners     map[NodeID]NodeID
	breakdowns map[NodeID]Breakdown
	tutorial   []TutorialStep
}

// NewGraph validates def and freezes it into a Graph
func NewGraph(def Definition) (*Graph, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	g := &Graph{
		nodes:      append([]Node(nil), def.Nodes...),
		edges:      append([]Edge(nil), def.Edges...),
		nodeIndex:  make(map[NodeID]int, len(def.Nodes)),
		edgeIndex:  make(map[EdgeID]int, len(def.Edges)),
		styles:     make(map[Relation]Style, len(def.Styles)),
		pairs:      append([]Pair(nil), def.Pairs...),
		secondary:  make(map[NodeID]Secondary, len(def.Secondary)),
		owners:     make(map[NodeID]NodeID),
		breakdowns: make(map[NodeID]Breakdown, len(def.Breakdowns)),
		tutorial:   append([]TutorialStep(nil), def.Tutorial...),
	}

	for i, n := range g.nodes {
		g.nodeIndex[n.ID] = i
	}
	for rel, s := range def.Styles {
		g.styles[rel] = s
	}
	for i := range g.edges {
		e := &g.edges[i]
		if e.Route == "" {
			e.Route = RouteOrthogonal
		}
		if e.Label == "" {
			e.Label = g.styles[e.Relation].Label
		}
		if e.FromLabel == "" {
			e.FromLabel = g.nodes[g.nodeIndex[e.From]].Label
		}
		if e.ToLabel == "" {
			e.ToLabel = g.nodes[g.nodeIndex[e.To]].Label
		}
		g.edgeIndex[e.ID] = i
	}
	for owner, sec := range def.Secondary {
		g.secondary[owner] = Secondary{
			Nodes: append([]NodeID(nil), sec.Nodes...),
			Edges: append([]EdgeID(nil), sec.Edges...),
		}
		for _, id := range sec.Nodes {
			if _, taken := g.owners[id]; !taken {
				g.owners[id] = owner
			}
		}
	}
	for id, b := range def.Breakdowns {
		g.breakdowns[id] = b
	}

	return g, nil
}

// Validate checks every cross reference in the definition. All problems
// are reported together as a joined error of *IntegrityError values.
func (d Definition) Validate() error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, &IntegrityError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	nodes := make(map[NodeID]Node, len(d.Nodes))
	for i, n := range d.Nodes {
		field := fmt.Sprintf("nodes[%d]", i)
		if n.ID == "" {
			fail(field+".id", "id is required")
			continue
		}
		if _, dup := nodes[n.ID]; dup {
			fail(field+".id", "duplicate node %q", n.ID)
			continue
		}
		nodes[n.ID] = n
	}

	edges := make(map[EdgeID]Edge, len(d.Edges))
	for i, e := range d.Edges {
		field := fmt.Sprintf("edges[%d]", i)
		if e.ID == "" {
			fail(field+".id", "id is required")
			continue
		}
		if _, dup := edges[e.ID]; dup {
			fail(field+".id", "duplicate edge %q", e.ID)
			continue
		}
		edges[e.ID] = e
		if _, ok := nodes[e.From]; !ok {
			fail(field+".from", "unknown node %q", e.From)
		}
		if _, ok := nodes[e.To]; !ok {
			fail(field+".to", "unknown node %q", e.To)
		}
		if _, ok := d.Styles[e.Relation]; !ok {
			fail(field+".relation", "no style for relation %q", e.Relation)
		}
		if !e.Route.Valid() {
			fail(field+".route", "unknown route strategy %q", e.Route)
		}
		if e.Route == RouteGroupFrame {
			end := e.To
			switch e.Frame {
			case FrameFrom:
				end = e.From
			case FrameTo:
			default:
				fail(field+".frame", "group-frame edge needs frame \"from\" or \"to\"")
			}
			if !pairsContain(d.Pairs, end) {
				fail(field+".frame", "node %q is not part of any pair", end)
			}
		}
	}

	for i, p := range d.Pairs {
		field := fmt.Sprintf("pairs[%d]", i)
		if p.A == p.B {
			fail(field, "pair %q joins %q with itself", p.ID, p.A)
		}
		for _, id := range []NodeID{p.A, p.B} {
			if _, ok := nodes[id]; !ok {
				fail(field, "unknown node %q", id)
			}
		}
	}

	for owner, sec := range d.Secondary {
		field := fmt.Sprintf("secondary[%s]", owner)
		if n, ok := nodes[owner]; !ok {
			fail(field, "unknown owner node")
		} else if !n.IsPrimary() {
			fail(field, "owner must be a primary node")
		}
		for _, id := range sec.Nodes {
			if n, ok := nodes[id]; !ok {
				fail(field+".nodes", "unknown node %q", id)
			} else if n.IsPrimary() {
				fail(field+".nodes", "node %q is primary", id)
			}
		}
		for _, id := range sec.Edges {
			if e, ok := edges[id]; !ok {
				fail(field+".edges", "unknown edge %q", id)
			} else if e.Tier == TierPrimary {
				fail(field+".edges", "edge %q is primary", id)
			}
		}
	}

	for id, b := range d.Breakdowns {
		field := fmt.Sprintf("breakdowns[%s]", id)
		if _, ok := nodes[id]; !ok {
			fail(field, "unknown node")
		}
		for _, c := range b.Categories {
			for _, link := range c.Links {
				if _, ok := nodes[link.Select]; !ok {
					fail(field+"."+string(c.ID), "link %q selects unknown node %q", link.Label, link.Select)
				}
				if link.Focus != "" {
					if _, ok := nodes[link.Focus]; !ok {
						fail(field+"."+string(c.ID), "link %q focuses unknown node %q", link.Label, link.Focus)
					}
				}
			}
		}
	}

	for i, s := range d.Tutorial {
		field := fmt.Sprintf("tutorial[%d]", i)
		for _, id := range s.Nodes {
			if _, ok := nodes[id]; !ok {
				fail(field+".nodes", "unknown node %q", id)
			}
		}
		for _, id := range s.Edges {
			if _, ok := edges[id]; !ok {
				fail(field+".edges", "unknown edge %q", id)
			}
		}
		if s.Callout != nil {
			if _, ok := nodes[s.Callout.Target]; !ok {
				fail(field+".callout", "unknown target %q", s.Callout.Target)
			}
		}
	}

	return errors.Join(errs...)
}

func pairsContain(pairs []Pair, id NodeID) bool {
	for _, p := range pairs {
		if p.Has(id) {
			return true
		}
	}
	return false
}

// Nodes returns all nodes in definition order
func (g *Graph) Nodes() []Node {
	return append([]Node(nil), g.nodes...)
}

// Edges returns all edges in definition order
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Node looks up a node by id
func (g *Graph) Node(id NodeID) (Node, bool) {
	i, ok := g.nodeIndex[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Edge looks up an edge by id
func (g *Graph) Edge(id EdgeID) (Edge, bool) {
	i, ok := g.edgeIndex[id]
	if !ok {
		return Edge{}, false
	}
	return g.edges[i], true
}

// Style returns the visual style of a relation
func (g *Graph) Style(rel Relation) (Style, bool) {
	s, ok := g.styles[rel]
	return s, ok
}

// Relations returns every relation that has a style, sorted
func (g *Graph) Relations() []Relation {
	rels := make([]Relation, 0, len(g.styles))
	for rel := range g.styles {
		rels = append(rels, rel)
	}
	sort.Slice(rels, func(i, j int) bool { return rels[i] < rels[j] })
	return rels
}

// Pairs returns the declared document pairs
func (g *Graph) Pairs() []Pair {
	return append([]Pair(nil), g.pairs...)
}

// PairOf returns the pair containing id, if any
func (g *Graph) PairOf(id NodeID) (Pair, bool) {
	for _, p := range g.pairs {
		if p.Has(id) {
			return p, true
		}
	}
	return Pair{}, false
}

// PairFrame returns the padded bounding box around both members of a pair
func (g *Graph) PairFrame(p Pair) (Rect, bool) {
	a, okA := g.Node(p.A)
	b, okB := g.Node(p.B)
	if !okA || !okB {
		return Rect{}, false
	}
	return a.Box().Union(b.Box()).Pad(FramePad), true
}

// Secondary returns the expansion registered under owner
func (g *Graph) Secondary(owner NodeID) (Secondary, bool) {
	s, ok := g.secondary[owner]
	return s, ok
}

// OwnerOf returns the primary node whose focus reveals a secondary node
func (g *Graph) OwnerOf(id NodeID) (NodeID, bool) {
	owner, ok := g.owners[id]
	return owner, ok
}

// Breakdown returns the expandable breakdown attached to a node
func (g *Graph) Breakdown(id NodeID) (Breakdown, bool) {
	b, ok := g.breakdowns[id]
	return b, ok
}

// Tutorial returns the walkthrough steps in order
func (g *Graph) Tutorial() []TutorialStep {
	return append([]TutorialStep(nil), g.tutorial...)
}

// EndpointBoxes resolves the two rectangles an edge connects. Group-frame
// edges substitute the pair frame on their configured end.
func (g *Graph) EndpointBoxes(e Edge) (from, to Rect, ok bool) {
	fromNode, okFrom := g.Node(e.From)
	toNode, okTo := g.Node(e.To)
	if !okFrom || !okTo {
		return Rect{}, Rect{}, false
	}
	from, to = fromNode.Box(), toNode.Box()

	if e.Route == RouteGroupFrame {
		switch e.Frame {
		case FrameFrom:
			if p, found := g.PairOf(e.From); found {
				from, _ = g.PairFrame(p)
			}
		case FrameTo:
			if p, found := g.PairOf(e.To); found {
				to, _ = g.PairFrame(p)
			}
		}
	}
	return from, to, true
}

// Bounds returns the box covering every node and pair frame
func (g *Graph) Bounds() Rect {
	var r Rect
	for i, n := range g.nodes {
		if i == 0 {
			r = n.Box()
			continue
		}
		r = r.Union(n.Box())
	}
	for _, p := range g.pairs {
		if f, ok := g.PairFrame(p); ok {
			r = r.Union(f)
		}
	}
	return r
}

package domain

// EdgeID identifies one relation line on the diagram
type EdgeID string

// Relation tags what kind of producer -> consumer link an edge is
type Relation string

const (
	RelationRecord            Relation = "record"
	RelationPeriodicAggregate Relation = "periodic-aggregate"
	RelationFinalize          Relation = "finalize"
	RelationExtract           Relation = "extract"
	RelationDailyAggregate    Relation = "daily-aggregate"
	RelationLog               Relation = "log"
	RelationDetail            Relation = "detail"
	RelationSupplement        Relation = "supplement"
)

// RouteStrategy selects how the router draws an edge
type RouteStrategy string

const (
	RouteOrthogonal    RouteStrategy = "orthogonal"
	RouteVerticalStack RouteStrategy = "vertical-stack"
	RouteGroupFrame    RouteStrategy = "group-frame"
)

// Valid reports whether s is a known strategy. The empty strategy
// counts as orthogonal.
func (s RouteStrategy) Valid() bool {
	switch s {
	case "", RouteOrthogonal, RouteVerticalStack, RouteGroupFrame:
		return true
	}
	return false
}

// FrameEnd names the endpoint a group-frame edge attaches to the pair frame
type FrameEnd string

const (
	FrameNone FrameEnd = ""
	FrameFrom FrameEnd = "from"
	FrameTo   FrameEnd = "to"
)

// Edge is a directed, typed relation between two documents
type Edge struct {
	ID         EdgeID
	From       NodeID
	To         NodeID
	Relation   Relation
	Tier       Tier
	Route      RouteStrategy
	Frame      FrameEnd
	Label      string // text drawn on the line, defaults to the relation label
	Rationale  string
	Checkpoint string // what to verify when following this relation
	FromLabel  string
	ToLabel    string
}

// Style is the visual treatment of one relation type
type Style struct {
	Label       string
	Description string
	Fill        string
	Border      string
	Line        string
	Dashed      bool
}

// Pair is two documents that are read as one unit, such as the balance
// sheet and the activity statement of the same period
type Pair struct {
	ID    string
	A     NodeID
	B     NodeID
	Label string
}

// Has reports whether id is a member of the pair
func (p Pair) Has(id NodeID) bool {
	return id == p.A || id == p.B
}

// Partner returns the other member of the pair
func (p Pair) Partner(id NodeID) (NodeID, bool) {
	switch id {
	case p.A:
		return p.B, true
	case p.B:
		return p.A, true
	}
	return "", false
}

// Secondary lists the nodes and edges a primary node expands when focused
type Secondary struct {
	Nodes []NodeID
	Edges []EdgeID
}

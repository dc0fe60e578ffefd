package domain

import "fmt"

// NodeID identifies one accounting document in the structure map
type NodeID string

// Tier decides whether a node or edge belongs to the always-visible backbone
type Tier int

const (
	TierPrimary   Tier = iota // always visible
	TierSecondary             // visible under focus or "show all"
)

func (t Tier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// ParseTier converts the textual tier used in graph files
func ParseTier(s string) (Tier, error) {
	switch s {
	case "", "primary":
		return TierPrimary, nil
	case "secondary":
		return TierSecondary, nil
	default:
		return TierPrimary, fmt.Errorf("unknown tier %q", s)
	}
}

// NodeClass selects the default box size of a node
type NodeClass int

const (
	ClassStandard  NodeClass = iota
	ClassSatellite           // compact reference documents
)

func (c NodeClass) String() string {
	if c == ClassSatellite {
		return "satellite"
	}
	return "standard"
}

// ParseNodeClass converts the textual class used in graph files
func ParseNodeClass(s string) (NodeClass, error) {
	switch s {
	case "", "standard":
		return ClassStandard, nil
	case "satellite":
		return ClassSatellite, nil
	default:
		return ClassStandard, fmt.Errorf("unknown node class %q", s)
	}
}

// Default box sizes per node class, in cells
const (
	StandardWidth   = 18
	StandardHeight  = 4
	SatelliteWidth  = 14
	SatelliteHeight = 3
)

// Node is one document box on the diagram
type Node struct {
	ID    NodeID
	Label string // e.g. "貸借対照表"
	Role  string // short role description
	Href  string // where the document itself can be opened
	Tier  Tier
	Class NodeClass
	X     float64
	Y     float64
	W     float64 // zero means the class default
	H     float64 // zero means the class default
}

// Box returns the node's layout rectangle with class defaults applied
func (n Node) Box() Rect {
	w, h := n.W, n.H
	if w <= 0 {
		w = StandardWidth
		if n.Class == ClassSatellite {
			w = SatelliteWidth
		}
	}
	if h <= 0 {
		h = StandardHeight
		if n.Class == ClassSatellite {
			h = SatelliteHeight
		}
	}
	return Rect{X: n.X, Y: n.Y, W: w, H: h}
}

// IsPrimary reports whether the node is part of the backbone
func (n Node) IsPrimary() bool {
	return n.Tier == TierPrimary
}

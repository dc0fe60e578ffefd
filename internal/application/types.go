package application

import "reportmap/internal/domain"

// Re-export domain types for use by adapters
type (
	Graph         = domain.Graph
	Node          = domain.Node
	Edge          = domain.Edge
	NodeID        = domain.NodeID
	EdgeID        = domain.EdgeID
	NodeSet       = domain.NodeSet
	EdgeSet       = domain.EdgeSet
	Point         = domain.Point
	Rect          = domain.Rect
	Size          = domain.Size
	Placement     = domain.Placement
	State         = domain.State
	Action        = domain.Action
	NodeDetail    = domain.NodeDetail
	EdgeDetail    = domain.EdgeDetail
	LabelBox      = domain.LabelBox
	RouteStrategy = domain.RouteStrategy
)

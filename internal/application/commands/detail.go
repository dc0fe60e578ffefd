package commands

import (
	"context"

	"reportmap/internal/application"
	"reportmap/internal/domain"
)

// DescribeNodeCommand builds drawer content for a node under a given view
type DescribeNodeCommand struct {
	graph      *domain.Graph
	NodeID     string
	Focus      string
	AllVisible bool
}

// NewDescribeNodeCommand creates a new DescribeNodeCommand
func NewDescribeNodeCommand(g *domain.Graph, nodeID, focus string, allVisible bool) *DescribeNodeCommand {
	return &DescribeNodeCommand{graph: g, NodeID: nodeID, Focus: focus, AllVisible: allVisible}
}

// Execute runs the describe node command
func (c *DescribeNodeCommand) Execute(ctx context.Context) (*domain.NodeDetail, error) {
	if err := application.ValidateNodeID(c.graph, "nodeID", c.NodeID); err != nil {
		return nil, err
	}

	visible := c.graph.VisibleEdges(c.AllVisible, domain.NodeID(c.Focus))
	d, _ := c.graph.DescribeNode(domain.NodeID(c.NodeID), visible)
	return &d, nil
}

// DescribeEdgeCommand builds drawer content for an edge
type DescribeEdgeCommand struct {
	graph  *domain.Graph
	EdgeID string
}

// NewDescribeEdgeCommand creates a new DescribeEdgeCommand
func NewDescribeEdgeCommand(g *domain.Graph, edgeID string) *DescribeEdgeCommand {
	return &DescribeEdgeCommand{graph: g, EdgeID: edgeID}
}

// Execute runs the describe edge command
func (c *DescribeEdgeCommand) Execute(ctx context.Context) (*domain.EdgeDetail, error) {
	if err := application.ValidateEdgeID(c.graph, "edgeID", c.EdgeID); err != nil {
		return nil, err
	}

	d, _ := c.graph.DescribeEdge(domain.EdgeID(c.EdgeID))
	return &d, nil
}

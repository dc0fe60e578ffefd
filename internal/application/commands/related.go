package commands

import (
	"context"

	"reportmap/internal/application"
	"reportmap/internal/domain"
)

// RelatedResult is the reachability of one node over the visible edges
type RelatedResult struct {
	Start      domain.NodeID
	Upstream   []domain.NodeID
	Downstream []domain.NodeID
	Related    []domain.NodeID
	Highlight  []domain.NodeID // Related plus the pair partner, when enabled
}

// RelatedCommand computes what lights up when a node is hovered
type RelatedCommand struct {
	graph         *domain.Graph
	NodeID        string
	Focus         string
	AllVisible    bool
	PairHighlight bool
}

// NewRelatedCommand creates a new RelatedCommand
func NewRelatedCommand(g *domain.Graph, nodeID, focus string, allVisible, pairHighlight bool) *RelatedCommand {
	return &RelatedCommand{
		graph:         g,
		NodeID:        nodeID,
		Focus:         focus,
		AllVisible:    allVisible,
		PairHighlight: pairHighlight,
	}
}

// Validate checks the start node exists
func (c *RelatedCommand) Validate() error {
	return application.ValidateNodeID(c.graph, "nodeID", c.NodeID)
}

// Execute runs the related command
func (c *RelatedCommand) Execute(ctx context.Context) (*RelatedResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	start := domain.NodeID(c.NodeID)
	focus := domain.NodeID(c.Focus)
	nodes := c.graph.VisibleNodes(c.AllVisible, focus)
	edges := c.graph.SelectEdges(c.graph.VisibleEdges(c.AllVisible, focus))

	var pairs []domain.Pair
	if c.PairHighlight {
		pairs = c.graph.Pairs()
	}

	return &RelatedResult{
		Start:      start,
		Upstream:   domain.Upstream(start, edges).Sorted(),
		Downstream: domain.Downstream(start, edges).Sorted(),
		Related:    domain.Related(start, edges).Sorted(),
		Highlight:  domain.Highlight(start, edges, nodes, pairs).Sorted(),
	}, nil
}

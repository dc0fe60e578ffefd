package commands

import (
	"context"

	"reportmap/internal/domain"
)

// VisibleResult lists what the diagram shows for one toggle and focus
type VisibleResult struct {
	Focus      domain.NodeID
	AllVisible bool
	Nodes      []domain.Node
	Edges      []domain.Edge
}

// VisibleCommand evaluates the visibility filter
type VisibleCommand struct {
	graph      *domain.Graph
	Focus      string
	AllVisible bool
}

// NewVisibleCommand creates a new VisibleCommand
func NewVisibleCommand(g *domain.Graph, focus string, allVisible bool) *VisibleCommand {
	return &VisibleCommand{graph: g, Focus: focus, AllVisible: allVisible}
}

// Execute runs the visible command. Turning on "show all" drops the focus,
// the same way the diagram does.
func (c *VisibleCommand) Execute(ctx context.Context) (*VisibleResult, error) {
	focus := domain.NodeID(c.Focus)
	if c.AllVisible {
		focus = ""
	}

	return &VisibleResult{
		Focus:      focus,
		AllVisible: c.AllVisible,
		Nodes:      c.graph.SelectNodes(c.graph.VisibleNodes(c.AllVisible, focus)),
		Edges:      c.graph.SelectEdges(c.graph.VisibleEdges(c.AllVisible, focus)),
	}, nil
}

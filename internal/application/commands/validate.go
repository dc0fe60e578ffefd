package commands

import (
	"context"
	"fmt"

	"reportmap/internal/ports"
)

// ValidateResult summarises a structure map that loaded cleanly
type ValidateResult struct {
	Location string
	Nodes    int
	Edges    int
	Pairs    int
	Steps    int
}

// ValidateCommand loads a structure map and reports integrity problems
type ValidateCommand struct {
	source ports.GraphSource
}

// NewValidateCommand creates a new ValidateCommand
func NewValidateCommand(source ports.GraphSource) *ValidateCommand {
	return &ValidateCommand{source: source}
}

// Execute runs the validate command
func (c *ValidateCommand) Execute(ctx context.Context) (*ValidateResult, error) {
	g, err := c.source.Load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.source.Location(), err)
	}

	return &ValidateResult{
		Location: c.source.Location(),
		Nodes:    len(g.Nodes()),
		Edges:    len(g.Edges()),
		Pairs:    len(g.Pairs()),
		Steps:    len(g.Tutorial()),
	}, nil
}

package commands

import (
	"context"
	"fmt"

	"reportmap/internal/domain"
	"reportmap/internal/ports"
)

// ExportResult contains the result of an export
type ExportResult struct {
	Stats   *ports.ExportStats
	Message string
}

// ExportCommand writes the structure map to an external store
type ExportCommand struct {
	graph    *domain.Graph
	exporter ports.GraphExporter
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(g *domain.Graph, exporter ports.GraphExporter) *ExportCommand {
	return &ExportCommand{graph: g, exporter: exporter}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	stats, err := c.exporter.Export(ctx, c.graph)
	if err != nil {
		return nil, fmt.Errorf("failed to export: %w", err)
	}

	return &ExportResult{
		Stats:   stats,
		Message: fmt.Sprintf("Exported %d nodes, %d edges, %d styles", stats.Nodes, stats.Edges, stats.Styles),
	}, nil
}

package ports

import (
	"context"

	"reportmap/internal/domain"
)

// ExportStats counts the rows written by an export
type ExportStats struct {
	Nodes      int
	Edges      int
	Styles     int
	Pairs      int
	Secondary  int
	Categories int
}

// GraphExporter writes a structure map to an external store for querying.
// The store is an output only; nothing reads it back.
type GraphExporter interface {
	Export(ctx context.Context, g *domain.Graph) (*ExportStats, error)
	Close() error
}

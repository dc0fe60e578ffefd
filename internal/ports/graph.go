package ports

import "reportmap/internal/domain"

// GraphSource supplies the structure map a session explores
type GraphSource interface {
	// Load returns a validated graph
	Load() (*domain.Graph, error)

	// Location describes where the graph came from, for logs and errors
	Location() string
}

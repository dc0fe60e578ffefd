package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"reportmap/internal/catalog"
	"reportmap/internal/domain"
	"reportmap/internal/ports"
)

// EmbeddedLocation is reported when no file was given
const EmbeddedLocation = "embedded:structure.yaml"

// Source implements ports.GraphSource. An empty path serves the embedded
// structure map.
type Source struct {
	path string
}

var _ ports.GraphSource = (*Source)(nil)

// NewSource creates a graph source for path
func NewSource(path string) *Source {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return &Source{path: path}
}

// Path returns the expanded file path, empty for the embedded map
func (s *Source) Path() string {
	return s.path
}

// Location describes where the graph is read from
func (s *Source) Location() string {
	if s.path == "" {
		return EmbeddedLocation
	}
	return s.path
}

// Load reads and validates the graph
func (s *Source) Load() (*domain.Graph, error) {
	if s.path == "" {
		return catalog.Default()
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph file: %w", err)
	}
	defer f.Close()

	g, err := catalog.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse graph file: %w", err)
	}
	return g, nil
}

// WriteDefault writes the embedded structure map to path so it can be
// edited. An existing file is never overwritten.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create graph file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(catalog.Raw()); err != nil {
		return fmt.Errorf("failed to write graph file: %w", err)
	}
	return nil
}

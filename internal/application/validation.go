package application

import (
	"fmt"
	"strconv"
	"strings"

	"reportmap/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "nodeID" -> "node ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"nodeID":    "node ID",
		"edgeID":    "edge ID",
		"focusID":   "focus ID",
		"container": "container",
		"target":    "target",
		"size":      "callout size",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateNodeID checks that id names a node of g
func ValidateNodeID(g *domain.Graph, fieldName, id string) error {
	if err := ValidateRequired(fieldName, id); err != nil {
		return err
	}
	if _, ok := g.Node(domain.NodeID(id)); !ok {
		return &NotFoundError{Kind: "node", ID: id}
	}
	return nil
}

// ValidateEdgeID checks that id names an edge of g
func ValidateEdgeID(g *domain.Graph, fieldName, id string) error {
	if err := ValidateRequired(fieldName, id); err != nil {
		return err
	}
	if _, ok := g.Edge(domain.EdgeID(id)); !ok {
		return &NotFoundError{Kind: "edge", ID: id}
	}
	return nil
}

// ParseRect parses "x,y,w,h"
func ParseRect(fieldName, s string) (domain.Rect, error) {
	v, err := parseFloats(fieldName, s, 4)
	if err != nil {
		return domain.Rect{}, err
	}
	r := domain.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}
	if r.W < 0 || r.H < 0 {
		return domain.Rect{}, &GeometryError{Field: fieldName, Reason: "width and height must not be negative"}
	}
	return r, nil
}

// ParseSize parses "w,h"
func ParseSize(fieldName, s string) (domain.Size, error) {
	v, err := parseFloats(fieldName, s, 2)
	if err != nil {
		return domain.Size{}, err
	}
	if v[0] <= 0 || v[1] <= 0 {
		return domain.Size{}, &GeometryError{Field: fieldName, Reason: "width and height must be positive"}
	}
	return domain.Size{W: v[0], H: v[1]}, nil
}

func parseFloats(fieldName, s string, n int) ([]float64, error) {
	if err := ValidateRequired(fieldName, s); err != nil {
		return nil, err
	}
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, &GeometryError{Field: fieldName, Reason: fmt.Sprintf("expected %d comma-separated numbers, got %d", n, len(parts))}
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, &GeometryError{Field: fieldName, Reason: fmt.Sprintf("%q is not a number", p)}
		}
		out[i] = v
	}
	return out, nil
}

package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidID       = errors.New("invalid ID")
	ErrInvalidGeometry = errors.New("invalid geometry")
	ErrInvalidAction   = errors.New("invalid action")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError names the node, edge, or account that does not exist
type NotFoundError struct {
	Kind string // "node", "edge", ...
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// GeometryError reports a rectangle or size that cannot be used
type GeometryError struct {
	Field  string
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *GeometryError) Is(target error) bool {
	return target == ErrInvalidGeometry
}

package commands

import (
	"context"

	"reportmap/internal/application"
	"reportmap/internal/domain"
)

// PlaceResult is a solved callout position
type PlaceResult struct {
	Placement domain.Placement
	Box       domain.Rect // absolute coordinates
}

// PlaceCommand runs the callout placement solver
type PlaceCommand struct {
	Container domain.Rect
	Target    domain.Rect
	Size      domain.Size
}

// NewPlaceCommand creates a new PlaceCommand
func NewPlaceCommand(container, target domain.Rect, size domain.Size) *PlaceCommand {
	return &PlaceCommand{Container: container, Target: target, Size: size}
}

// Execute runs the place command. A placement the solver defers is
// reported as ErrInvalidGeometry.
func (c *PlaceCommand) Execute(ctx context.Context) (*PlaceResult, error) {
	p, ok := domain.Place(c.Container, c.Target, c.Size)
	if !ok {
		return nil, &application.GeometryError{Field: "container", Reason: "no area or non-finite coordinates"}
	}

	box := p.Rect(c.Size)
	box.X += c.Container.X
	box.Y += c.Container.Y
	return &PlaceResult{Placement: p, Box: box}, nil
}

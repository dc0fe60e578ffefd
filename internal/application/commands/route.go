package commands

import (
	"context"
	"fmt"

	"reportmap/internal/application"
	"reportmap/internal/domain"
)

// EdgeRoute is the drawn geometry of one edge
type EdgeRoute struct {
	Edge  domain.Edge
	From  domain.Rect
	To    domain.Rect
	Path  []domain.Point
	Label domain.LabelBox
}

// RouteCommand computes polylines and label boxes for edges
type RouteCommand struct {
	graph   *domain.Graph
	router  domain.Router
	EdgeIDs []string // empty means every edge
}

// NewRouteCommand creates a new RouteCommand
func NewRouteCommand(g *domain.Graph, router domain.Router, edgeIDs ...string) *RouteCommand {
	return &RouteCommand{graph: g, router: router, EdgeIDs: edgeIDs}
}

// Validate checks every requested edge exists
func (c *RouteCommand) Validate() error {
	for _, id := range c.EdgeIDs {
		if err := application.ValidateEdgeID(c.graph, "edgeID", id); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the route command
func (c *RouteCommand) Execute(ctx context.Context) ([]EdgeRoute, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	edges := c.graph.Edges()
	if len(c.EdgeIDs) > 0 {
		edges = edges[:0]
		for _, id := range c.EdgeIDs {
			e, _ := c.graph.Edge(domain.EdgeID(id))
			edges = append(edges, e)
		}
	}

	routes := make([]EdgeRoute, 0, len(edges))
	for _, e := range edges {
		r, err := RouteEdge(c.graph, c.router, e)
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, nil
}

// RouteEdge routes a single edge of g
func RouteEdge(g *domain.Graph, router domain.Router, e domain.Edge) (EdgeRoute, error) {
	from, to, ok := g.EndpointBoxes(e)
	if !ok {
		return EdgeRoute{}, fmt.Errorf("edge %s: %w", e.ID, application.ErrNotFound)
	}
	return EdgeRoute{
		Edge:  e,
		From:  from,
		To:    to,
		Path:  router.Route(e, from, to),
		Label: router.LabelAnchor(e, from, to),
	}, nil
}

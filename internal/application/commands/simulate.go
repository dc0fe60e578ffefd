package commands

import (
	"context"
	"fmt"
	"strings"

	"reportmap/internal/application"
	"reportmap/internal/domain"
)

// Snapshot is a flattened view of the diagram state after one action
type Snapshot struct {
	Action     string
	AllVisible bool
	Focus      domain.NodeID
	Hover      domain.NodeID
	Selection  string
	DrawerOpen bool
	Expanded   domain.CategoryID
	Visible    []domain.NodeID
	Highlight  []domain.NodeID
}

// SimulateCommand replays a sequence of UI actions through the reducer.
// Actions are written as "verb" or "verb:arg":
//
//	hover:<node>  unhover  click:<node>  open:<node>  edge:<edge>
//	escape  overlay  all  category:<id>  link:<node>[@<focus>]
//	tour:<step>  tour-clear
type SimulateCommand struct {
	graph         *domain.Graph
	Actions       []string
	PairHighlight bool
}

// NewSimulateCommand creates a new SimulateCommand
func NewSimulateCommand(g *domain.Graph, actions []string, pairHighlight bool) *SimulateCommand {
	return &SimulateCommand{graph: g, Actions: actions, PairHighlight: pairHighlight}
}

// Execute runs the simulate command and returns one snapshot per action
func (c *SimulateCommand) Execute(ctx context.Context) ([]Snapshot, error) {
	parsed := make([]domain.Action, 0, len(c.Actions))
	for _, raw := range c.Actions {
		a, err := ParseAction(c.graph, raw)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, a)
	}

	var (
		s     domain.State
		shots = make([]Snapshot, 0, len(parsed))
	)
	for i, a := range parsed {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s = domain.Reduce(c.graph, s, a)
		shots = append(shots, TakeSnapshot(c.graph, s, c.Actions[i], c.PairHighlight))
	}
	return shots, nil
}

// TakeSnapshot flattens s for display
func TakeSnapshot(g *domain.Graph, s domain.State, action string, pairHighlight bool) Snapshot {
	view := domain.Derive(g, s, pairHighlight)
	shot := Snapshot{
		Action:     action,
		AllVisible: s.AllVisible,
		Focus:      s.Focus,
		Hover:      s.Hover,
		Selection:  s.Selection.String(),
		DrawerOpen: s.DrawerOpen(),
		Expanded:   s.Expanded,
		Visible:    view.Nodes.Sorted(),
	}
	if view.Highlight != nil {
		shot.Highlight = view.Highlight.Sorted()
	}
	return shot
}

// ParseAction converts the textual form of an action
func ParseAction(g *domain.Graph, raw string) (domain.Action, error) {
	verb, arg, _ := strings.Cut(strings.TrimSpace(raw), ":")
	needArg := func() error {
		if arg == "" {
			return fmt.Errorf("%w: %q needs an argument", application.ErrInvalidAction, verb)
		}
		return nil
	}

	switch verb {
	case "hover":
		if err := needArg(); err != nil {
			return nil, err
		}
		return domain.HoverNode{ID: domain.NodeID(arg)}, nil
	case "unhover":
		return domain.ClearHover{}, nil
	case "click":
		if err := needArg(); err != nil {
			return nil, err
		}
		return domain.ClickNode{ID: domain.NodeID(arg)}, nil
	case "open":
		if err := needArg(); err != nil {
			return nil, err
		}
		return domain.OpenNodeDetail{ID: domain.NodeID(arg)}, nil
	case "edge":
		if err := needArg(); err != nil {
			return nil, err
		}
		return domain.ClickEdge{ID: domain.EdgeID(arg)}, nil
	case "escape":
		return domain.Escape{}, nil
	case "overlay":
		return domain.ClickOverlay{}, nil
	case "all":
		return domain.ToggleAllVisible{}, nil
	case "category":
		if err := needArg(); err != nil {
			return nil, err
		}
		return domain.ToggleCategory{ID: domain.CategoryID(arg)}, nil
	case "link":
		if err := needArg(); err != nil {
			return nil, err
		}
		sel, focus, _ := strings.Cut(arg, "@")
		return domain.FollowCrossLink{Link: domain.CrossLink{Select: domain.NodeID(sel), Focus: domain.NodeID(focus)}}, nil
	case "tour":
		if err := needArg(); err != nil {
			return nil, err
		}
		for _, step := range g.Tutorial() {
			if step.ID == arg {
				return domain.HighlightTour{Nodes: step.Nodes, Edges: step.Edges}, nil
			}
		}
		return nil, &application.NotFoundError{Kind: "tutorial step", ID: arg}
	case "tour-clear":
		return domain.ClearTour{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown verb %q", application.ErrInvalidAction, verb)
	}
}

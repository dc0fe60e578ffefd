// Package catalog holds the documented structure map and the YAML format
// it is authored in.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"reportmap/internal/domain"
)

//go:embed structure.yaml
var structureYAML []byte

// File is the on-disk shape of a structure map
type File struct {
	Nodes      []NodeSpec               `yaml:"nodes"`
	Edges      []EdgeSpec               `yaml:"edges"`
	Styles     map[string]StyleSpec     `yaml:"styles"`
	Pairs      []PairSpec               `yaml:"pairs,omitempty"`
	Secondary  map[string]SecondarySpec `yaml:"secondary,omitempty"`
	Breakdowns map[string]BreakdownSpec `yaml:"breakdowns,omitempty"`
	Tutorial   []StepSpec               `yaml:"tutorial,omitempty"`
}

type NodeSpec struct {
	ID    string  `yaml:"id"`
	Label string  `yaml:"label"`
	Role  string  `yaml:"role"`
	Href  string  `yaml:"href,omitempty"`
	Tier  string  `yaml:"tier,omitempty"`
	Class string  `yaml:"class,omitempty"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w,omitempty"`
	H     float64 `yaml:"h,omitempty"`
}

type EdgeSpec struct {
	ID         string `yaml:"id"`
	From       string `yaml:"from"`
	To         string `yaml:"to"`
	Relation   string `yaml:"relation"`
	Tier       string `yaml:"tier,omitempty"`
	Route      string `yaml:"route,omitempty"`
	Frame      string `yaml:"frame,omitempty"`
	Label      string `yaml:"label,omitempty"`
	Rationale  string `yaml:"rationale"`
	Checkpoint string `yaml:"checkpoint"`
}

type StyleSpec struct {
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
	Fill        string `yaml:"fill"`
	Border      string `yaml:"border"`
	Line        string `yaml:"line"`
	Dashed      bool   `yaml:"dashed,omitempty"`
}

type PairSpec struct {
	ID    string `yaml:"id"`
	A     string `yaml:"a"`
	B     string `yaml:"b"`
	Label string `yaml:"label"`
}

type SecondarySpec struct {
	Nodes []string `yaml:"nodes"`
	Edges []string `yaml:"edges"`
}

type BreakdownSpec struct {
	Title      string         `yaml:"title"`
	Categories []CategorySpec `yaml:"categories"`
}

type CategorySpec struct {
	ID    string     `yaml:"id"`
	Label string     `yaml:"label"`
	Items []ItemSpec `yaml:"items,omitempty"`
	Links []LinkSpec `yaml:"links,omitempty"`
}

type ItemSpec struct {
	Label string `yaml:"label"`
	Note  string `yaml:"note,omitempty"`
}

type LinkSpec struct {
	Label  string `yaml:"label"`
	Focus  string `yaml:"focus,omitempty"`
	Select string `yaml:"select"`
}

type StepSpec struct {
	ID      string       `yaml:"id"`
	Label   string       `yaml:"label"`
	Nodes   []string     `yaml:"nodes,omitempty"`
	Edges   []string     `yaml:"edges,omitempty"`
	Callout *CalloutSpec `yaml:"callout,omitempty"`
}

type CalloutSpec struct {
	Text       string `yaml:"text"`
	Target     string `yaml:"target"`
	ClickBadge bool   `yaml:"click_badge,omitempty"`
}

// Parse decodes a structure map and validates it. Unknown fields are
// rejected so typos in hand-edited files surface immediately.
func Parse(r io.Reader) (*domain.Graph, error) {
	var f File
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: empty document")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	def, err := f.Definition()
	if err != nil {
		return nil, err
	}
	g, err := domain.NewGraph(def)
	if err != nil {
		return nil, fmt.Errorf("invalid structure map: %w", err)
	}
	return g, nil
}

// Definition converts the file into the domain form. Only enum parsing can
// fail here; cross references are checked by domain.NewGraph.
func (f File) Definition() (domain.Definition, error) {
	var errs []error
	def := domain.Definition{
		Styles:     make(map[domain.Relation]domain.Style, len(f.Styles)),
		Secondary:  make(map[domain.NodeID]domain.Secondary, len(f.Secondary)),
		Breakdowns: make(map[domain.NodeID]domain.Breakdown, len(f.Breakdowns)),
	}

	for i, n := range f.Nodes {
		tier, err := domain.ParseTier(n.Tier)
		if err != nil {
			errs = append(errs, fmt.Errorf("nodes[%d]: %w", i, err))
		}
		class, err := domain.ParseNodeClass(n.Class)
		if err != nil {
			errs = append(errs, fmt.Errorf("nodes[%d]: %w", i, err))
		}
		def.Nodes = append(def.Nodes, domain.Node{
			ID:    domain.NodeID(n.ID),
			Label: n.Label,
			Role:  n.Role,
			Href:  n.Href,
			Tier:  tier,
			Class: class,
			X:     n.X,
			Y:     n.Y,
			W:     n.W,
			H:     n.H,
		})
	}

	for i, e := range f.Edges {
		tier, err := domain.ParseTier(e.Tier)
		if err != nil {
			errs = append(errs, fmt.Errorf("edges[%d]: %w", i, err))
		}
		def.Edges = append(def.Edges, domain.Edge{
			ID:         domain.EdgeID(e.ID),
			From:       domain.NodeID(e.From),
			To:         domain.NodeID(e.To),
			Relation:   domain.Relation(e.Relation),
			Tier:       tier,
			Route:      domain.RouteStrategy(e.Route),
			Frame:      domain.FrameEnd(e.Frame),
			Label:      e.Label,
			Rationale:  e.Rationale,
			Checkpoint: e.Checkpoint,
		})
	}

	for rel, s := range f.Styles {
		def.Styles[domain.Relation(rel)] = domain.Style(s)
	}

	for _, p := range f.Pairs {
		def.Pairs = append(def.Pairs, domain.Pair{ID: p.ID, A: domain.NodeID(p.A), B: domain.NodeID(p.B), Label: p.Label})
	}

	for owner, s := range f.Secondary {
		sec := domain.Secondary{}
		for _, id := range s.Nodes {
			sec.Nodes = append(sec.Nodes, domain.NodeID(id))
		}
		for _, id := range s.Edges {
			sec.Edges = append(sec.Edges, domain.EdgeID(id))
		}
		def.Secondary[domain.NodeID(owner)] = sec
	}

	for id, b := range f.Breakdowns {
		def.Breakdowns[domain.NodeID(id)] = b.breakdown()
	}

	for _, s := range f.Tutorial {
		step := domain.TutorialStep{ID: s.ID, Label: s.Label}
		for _, id := range s.Nodes {
			step.Nodes = append(step.Nodes, domain.NodeID(id))
		}
		for _, id := range s.Edges {
			step.Edges = append(step.Edges, domain.EdgeID(id))
		}
		if s.Callout != nil {
			step.Callout = &domain.Callout{
				Text:       s.Callout.Text,
				Target:     domain.NodeID(s.Callout.Target),
				ClickBadge: s.Callout.ClickBadge,
			}
		}
		def.Tutorial = append(def.Tutorial, step)
	}

	return def, errors.Join(errs...)
}

func (b BreakdownSpec) breakdown() domain.Breakdown {
	out := domain.Breakdown{Title: b.Title}
	for _, c := range b.Categories {
		cat := domain.Category{ID: domain.CategoryID(c.ID), Label: c.Label}
		for _, it := range c.Items {
			cat.Items = append(cat.Items, domain.LineItem(it))
		}
		for _, l := range c.Links {
			cat.Links = append(cat.Links, domain.CrossLink{
				Label:  l.Label,
				Focus:  domain.NodeID(l.Focus),
				Select: domain.NodeID(l.Select),
			})
		}
		out.Categories = append(out.Categories, cat)
	}
	return out
}

var loadDefault = sync.OnceValues(func() (*domain.Graph, error) {
	return Parse(bytes.NewReader(structureYAML))
})

// Default returns the embedded structure map. The graph is parsed once and
// shared; it is read-only.
func Default() (*domain.Graph, error) {
	return loadDefault()
}

// MustLoad returns the embedded structure map and panics when it is
// invalid, which can only happen through a broken build
func MustLoad() *domain.Graph {
	g, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded structure map: %v", err))
	}
	return g
}

// Raw returns the embedded YAML source
func Raw() []byte {
	return append([]byte(nil), structureYAML...)
}

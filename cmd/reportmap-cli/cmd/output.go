package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"reportmap/internal/domain"
)

var (
	subtle = color.New(color.FgHiBlack)
	accent = color.New(color.FgCyan, color.Bold)
	good   = color.New(color.FgGreen)
	warn   = color.New(color.FgYellow)
)

func isJSON() bool {
	return format == formatJSON
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table prints aligned columns. Widths count East Asian wide runes as two
// cells so Japanese labels line up.
func table(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = domain.TextWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && domain.TextWidth(cell) > widths[i] {
				widths[i] = domain.TextWidth(cell)
			}
		}
	}

	var header, sep strings.Builder
	for i, h := range headers {
		header.WriteString(pad(h, widths[i]) + "  ")
		sep.WriteString(strings.Repeat("─", widths[i]) + "  ")
	}
	subtle.Fprintln(w, strings.TrimRight(header.String(), " "))
	subtle.Fprintln(w, strings.TrimRight(sep.String(), " "))

	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i < len(widths) {
				line.WriteString(pad(cell, widths[i]) + "  ")
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}

func pad(s string, width int) string {
	if n := width - domain.TextWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func ids[T ~string](list []T) []string {
	out := make([]string, len(list))
	for i, id := range list {
		out[i] = string(id)
	}
	return out
}

type nodeJSON struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Role  string  `json:"role,omitempty"`
	Tier  string  `json:"tier"`
	Class string  `json:"class"`
	Owner string  `json:"owner,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
}

func toNodeJSON(g *domain.Graph, n domain.Node) nodeJSON {
	owner, _ := g.OwnerOf(n.ID)
	box := n.Box()
	return nodeJSON{
		ID:    string(n.ID),
		Label: n.Label,
		Role:  n.Role,
		Tier:  n.Tier.String(),
		Class: n.Class.String(),
		Owner: string(owner),
		X:     box.X,
		Y:     box.Y,
		W:     box.W,
		H:     box.H,
	}
}

type edgeJSON struct {
	ID         string `json:"id"`
	From       string `json:"from"`
	To         string `json:"to"`
	Relation   string `json:"relation"`
	Label      string `json:"label"`
	Tier       string `json:"tier"`
	Route      string `json:"route"`
	Rationale  string `json:"rationale,omitempty"`
	Checkpoint string `json:"checkpoint,omitempty"`
}

func toEdgeJSON(e domain.Edge) edgeJSON {
	return edgeJSON{
		ID:         string(e.ID),
		From:       string(e.From),
		To:         string(e.To),
		Relation:   string(e.Relation),
		Label:      e.Label,
		Tier:       e.Tier.String(),
		Route:      string(e.Route),
		Rationale:  e.Rationale,
		Checkpoint: e.Checkpoint,
	}
}

func nodeRows(nodes []domain.Node) [][]string {
	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, []string{string(n.ID), n.Label, n.Tier.String(), n.Role})
	}
	return rows
}

func edgeRows(edges []domain.Edge) [][]string {
	rows := make([][]string, 0, len(edges))
	for _, e := range edges {
		rows = append(rows, []string{string(e.ID), e.FromLabel + " → " + e.ToLabel, e.Label, e.Tier.String()})
	}
	return rows
}

package sqlite

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"reportmap/internal/domain"
)

type nodeRow struct {
	ID    string  `db:"id"`
	Label string  `db:"label"`
	Role  string  `db:"role"`
	Href  string  `db:"href"`
	Tier  string  `db:"tier"`
	Class string  `db:"class"`
	Owner string  `db:"owner"`
	X     float64 `db:"x"`
	Y     float64 `db:"y"`
	W     float64 `db:"w"`
	H     float64 `db:"h"`
}

type edgeRow struct {
	ID         string `db:"id"`
	From       string `db:"from_id"`
	To         string `db:"to_id"`
	Relation   string `db:"relation"`
	Tier       string `db:"tier"`
	Route      string `db:"route"`
	Frame      string `db:"frame"`
	Label      string `db:"label"`
	Rationale  string `db:"rationale"`
	Checkpoint string `db:"checkpoint"`
}

type styleRow struct {
	Relation    string `db:"relation"`
	Label       string `db:"label"`
	Description string `db:"description"`
	Fill        string `db:"fill"`
	Border      string `db:"border"`
	Line        string `db:"line"`
	Dashed      bool   `db:"dashed"`
}

type pairRow struct {
	ID    string `db:"id"`
	A     string `db:"a"`
	B     string `db:"b"`
	Label string `db:"label"`
}

type secondaryRow struct {
	Owner  string `db:"owner"`
	Kind   string `db:"kind"`
	Member string `db:"member"`
}

type categoryRow struct {
	Node     string `db:"node"`
	ID       string `db:"id"`
	Label    string `db:"label"`
	Position int    `db:"position"`
	Items    int    `db:"items"`
	Links    int    `db:"links"`
}

// exportTx writes graph rows inside one transaction
type exportTx struct {
	tx *sqlx.Tx
}

func (t *exportTx) clear() error {
	for _, table := range []string{"nodes", "edges", "styles", "pairs", "secondary", "categories"} {
		if _, err := t.tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// insert bulk-inserts rows; sqlx rejects an empty slice so that is a no-op
func insert[T any](t *exportTx, query string, rows []T) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if _, err := t.tx.NamedExec(query, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (t *exportTx) writeNodes(g *domain.Graph) (int, error) {
	var rows []nodeRow
	for _, n := range g.Nodes() {
		owner, _ := g.OwnerOf(n.ID)
		box := n.Box()
		rows = append(rows, nodeRow{
			ID:    string(n.ID),
			Label: n.Label,
			Role:  n.Role,
			Href:  n.Href,
			Tier:  n.Tier.String(),
			Class: n.Class.String(),
			Owner: string(owner),
			X:     box.X,
			Y:     box.Y,
			W:     box.W,
			H:     box.H,
		})
	}
	return insert(t, `
		INSERT INTO nodes (id, label, role, href, tier, class, owner, x, y, w, h)
		VALUES (:id, :label, :role, :href, :tier, :class, :owner, :x, :y, :w, :h)
	`, rows)
}

func (t *exportTx) writeEdges(g *domain.Graph) (int, error) {
	var rows []edgeRow
	for _, e := range g.Edges() {
		rows = append(rows, edgeRow{
			ID:         string(e.ID),
			From:       string(e.From),
			To:         string(e.To),
			Relation:   string(e.Relation),
			Tier:       e.Tier.String(),
			Route:      string(e.Route),
			Frame:      string(e.Frame),
			Label:      e.Label,
			Rationale:  e.Rationale,
			Checkpoint: e.Checkpoint,
		})
	}
	return insert(t, `
		INSERT INTO edges (id, from_id, to_id, relation, tier, route, frame, label, rationale, checkpoint)
		VALUES (:id, :from_id, :to_id, :relation, :tier, :route, :frame, :label, :rationale, :checkpoint)
	`, rows)
}

func (t *exportTx) writeStyles(g *domain.Graph) (int, error) {
	var rows []styleRow
	for _, rel := range g.Relations() {
		s, _ := g.Style(rel)
		rows = append(rows, styleRow{
			Relation:    string(rel),
			Label:       s.Label,
			Description: s.Description,
			Fill:        s.Fill,
			Border:      s.Border,
			Line:        s.Line,
			Dashed:      s.Dashed,
		})
	}
	return insert(t, `
		INSERT INTO styles (relation, label, description, fill, border, line, dashed)
		VALUES (:relation, :label, :description, :fill, :border, :line, :dashed)
	`, rows)
}

func (t *exportTx) writePairs(g *domain.Graph) (int, error) {
	var rows []pairRow
	for _, p := range g.Pairs() {
		rows = append(rows, pairRow{ID: p.ID, A: string(p.A), B: string(p.B), Label: p.Label})
	}
	return insert(t, `INSERT INTO pairs (id, a, b, label) VALUES (:id, :a, :b, :label)`, rows)
}

func (t *exportTx) writeSecondary(g *domain.Graph) (int, error) {
	var rows []secondaryRow
	for _, n := range g.Nodes() {
		sec, ok := g.Secondary(n.ID)
		if !ok {
			continue
		}
		for _, id := range sec.Nodes {
			rows = append(rows, secondaryRow{Owner: string(n.ID), Kind: "node", Member: string(id)})
		}
		for _, id := range sec.Edges {
			rows = append(rows, secondaryRow{Owner: string(n.ID), Kind: "edge", Member: string(id)})
		}
	}
	return insert(t, `INSERT INTO secondary (owner, kind, member) VALUES (:owner, :kind, :member)`, rows)
}

func (t *exportTx) writeCategories(g *domain.Graph) (int, error) {
	var rows []categoryRow
	for _, n := range g.Nodes() {
		b, ok := g.Breakdown(n.ID)
		if !ok {
			continue
		}
		for i, c := range b.Categories {
			rows = append(rows, categoryRow{
				Node:     string(n.ID),
				ID:       string(c.ID),
				Label:    c.Label,
				Position: i,
				Items:    len(c.Items),
				Links:    len(c.Links),
			})
		}
	}
	return insert(t, `
		INSERT INTO categories (node, id, label, position, items, links)
		VALUES (:node, :id, :label, :position, :items, :links)
	`, rows)
}

func (t *exportTx) writeMeta(now time.Time) error {
	meta := map[string]string{
		"schema_version": schemaVersion,
		"exported_at":    now.UTC().Format(time.RFC3339),
	}
	for k, v := range meta {
		if _, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, k, v); err != nil {
			return err
		}
	}
	return nil
}

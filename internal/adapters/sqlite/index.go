// Package sqlite exports a structure map into a SQLite database so it can be
// queried with plain SQL. The database is write-only from this program's side.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"reportmap/internal/domain"
	"reportmap/internal/ports"
)

const schemaVersion = "1"

// Exporter implements ports.GraphExporter using SQLite
type Exporter struct {
	db     *sqlx.DB
	path   string
	logger *slog.Logger
}

var _ ports.GraphExporter = (*Exporter)(nil)

// Open creates or reuses the database at path and ensures the schema
func Open(path string, logger *slog.Logger) (*Exporter, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// Expand ~ in path
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &Exporter{db: db, path: path, logger: logger}, nil
}

// Path returns the resolved database file
func (e *Exporter) Path() string {
	return e.path
}

// Close closes the database connection
func (e *Exporter) Close() error {
	if e.db != nil {
		return e.db.Close()
	}
	return nil
}

// Export replaces every table's contents with g in one transaction
func (e *Exporter) Export(ctx context.Context, g *domain.Graph) (*ports.ExportStats, error) {
	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	w := &exportTx{tx: tx}
	if err := w.clear(); err != nil {
		return nil, err
	}

	stats := &ports.ExportStats{}
	steps := []struct {
		name  string
		count *int
		write func(*domain.Graph) (int, error)
	}{
		{"nodes", &stats.Nodes, w.writeNodes},
		{"edges", &stats.Edges, w.writeEdges},
		{"styles", &stats.Styles, w.writeStyles},
		{"pairs", &stats.Pairs, w.writePairs},
		{"secondary", &stats.Secondary, w.writeSecondary},
		{"categories", &stats.Categories, w.writeCategories},
	}
	for _, s := range steps {
		n, err := s.write(g)
		if err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", s.name, err)
		}
		*s.count = n
	}

	if err := w.writeMeta(time.Now()); err != nil {
		return nil, fmt.Errorf("failed to write metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit export: %w", err)
	}

	e.logger.Info("export completed", "path", e.path, "nodes", stats.Nodes, "edges", stats.Edges)
	return stats, nil
}

// Pragmas and schema in a single batch
const schema = `
	PRAGMA synchronous = NORMAL;
	PRAGMA temp_store = MEMORY;

	CREATE TABLE IF NOT EXISTS nodes (
		id TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		href TEXT NOT NULL DEFAULT '',
		tier TEXT NOT NULL,
		class TEXT NOT NULL,
		owner TEXT NOT NULL DEFAULT '',
		x REAL NOT NULL,
		y REAL NOT NULL,
		w REAL NOT NULL,
		h REAL NOT NULL
	);
	CREATE TABLE IF NOT EXISTS edges (
		id TEXT PRIMARY KEY,
		from_id TEXT NOT NULL,
		to_id TEXT NOT NULL,
		relation TEXT NOT NULL,
		tier TEXT NOT NULL,
		route TEXT NOT NULL,
		frame TEXT NOT NULL DEFAULT '',
		label TEXT NOT NULL DEFAULT '',
		rationale TEXT NOT NULL DEFAULT '',
		checkpoint TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS styles (
		relation TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		fill TEXT NOT NULL DEFAULT '',
		border TEXT NOT NULL DEFAULT '',
		line TEXT NOT NULL DEFAULT '',
		dashed INTEGER NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS pairs (
		id TEXT PRIMARY KEY,
		a TEXT NOT NULL,
		b TEXT NOT NULL,
		label TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS secondary (
		owner TEXT NOT NULL,
		kind TEXT NOT NULL,
		member TEXT NOT NULL,
		PRIMARY KEY (owner, kind, member)
	);
	CREATE TABLE IF NOT EXISTS categories (
		node TEXT NOT NULL,
		id TEXT NOT NULL,
		label TEXT NOT NULL,
		position INTEGER NOT NULL,
		items INTEGER NOT NULL,
		links INTEGER NOT NULL,
		PRIMARY KEY (node, id)
	);
	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_edges_from ON edges(from_id);
	CREATE INDEX IF NOT EXISTS idx_edges_to ON edges(to_id);
`

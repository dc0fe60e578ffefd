package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reportmap/internal/catalog"
	"reportmap/internal/ports"
)

func openTemp(t *testing.T) *Exporter {
	t.Helper()
	exp, err := Open(filepath.Join(t.TempDir(), "nested", "map.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { exp.Close() })
	return exp
}

func TestExport_DefaultGraph(t *testing.T) {
	exp := openTemp(t)

	stats, err := exp.Export(context.Background(), catalog.MustLoad())
	require.NoError(t, err)

	assert.Equal(t, ports.ExportStats{
		Nodes:      10,
		Edges:      9,
		Styles:     8,
		Pairs:      1,
		Secondary:  stats.Secondary,
		Categories: 3,
	}, *stats)
	assert.Positive(t, stats.Secondary)

	var owner string
	require.NoError(t, exp.db.Get(&owner, `SELECT owner FROM nodes WHERE id = 'notes'`))
	assert.Equal(t, "balance-sheet", owner)

	var h float64
	require.NoError(t, exp.db.Get(&h, `SELECT h FROM nodes WHERE id = 'ledger'`))
	assert.Equal(t, 4.0, h)

	var version string
	require.NoError(t, exp.db.Get(&version, `SELECT value FROM meta WHERE key = 'schema_version'`))
	assert.Equal(t, schemaVersion, version)
}

func TestExport_ReplacesPreviousRows(t *testing.T) {
	exp := openTemp(t)
	g := catalog.MustLoad()

	_, err := exp.Export(context.Background(), g)
	require.NoError(t, err)
	_, err = exp.Export(context.Background(), g)
	require.NoError(t, err)

	var n int
	require.NoError(t, exp.db.Get(&n, `SELECT COUNT(*) FROM edges`))
	assert.Equal(t, 9, n)
}

func TestExport_CancelledContext(t *testing.T) {
	exp := openTemp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := exp.Export(ctx, catalog.MustLoad())
	assert.Error(t, err)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("", nil)
	assert.Error(t, err)
}

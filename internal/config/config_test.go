package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphPath(t *testing.T) {
	t.Setenv("REPORTMAP_GRAPH", "")
	assert.Equal(t, DefaultGraphPath, GraphPath())

	t.Setenv("REPORTMAP_GRAPH", "/tmp/map.yaml")
	assert.Equal(t, "/tmp/map.yaml", GraphPath())
}

func TestConfigPath(t *testing.T) {
	t.Setenv("REPORTMAP_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "reportmap", "config.toml"), ConfigPath())

	t.Setenv("REPORTMAP_CONFIG", "/etc/rm.toml")
	assert.Equal(t, "/etc/rm.toml", ConfigPath())
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 1500*time.Millisecond, cfg.CopyFlash())
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `
[ui]
show_all = true
initial_focus = "balance-sheet"
pair_highlight = false
copy_flash_ms = 800

[canvas]
jog_offset = 2
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.UI.ShowAll)
	assert.Equal(t, "balance-sheet", cfg.UI.InitialFocus)
	assert.False(t, cfg.UI.PairHighlight)
	assert.True(t, cfg.UI.Mouse, "unset keys keep their default")
	assert.Equal(t, 800*time.Millisecond, cfg.CopyFlash())
	assert.Equal(t, 2.0, cfg.Canvas.JogOffset)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "syntax", doc: "[ui\n", want: "failed to parse"},
		{name: "unknown key", doc: "[ui]\ncolour = true\n", want: "unknown key"},
		{name: "zero flash", doc: "[ui]\ncopy_flash_ms = 0\n", want: "copy_flash_ms"},
		{name: "negative jog", doc: "[canvas]\njog_offset = -1\n", want: "jog_offset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSave_ThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.UI.InitialFocus = "ledger"

	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ledger", got.UI.InitialFocus)
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer

	NewLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	NewLogger(&buf, true).Debug("shown", "node", "ledger")
	assert.True(t, strings.Contains(buf.String(), "node=ledger"))
}

func TestOpenLogFile(t *testing.T) {
	logger, closeFn, err := OpenLogFile("", false)
	require.NoError(t, err)
	logger.Info("discarded")
	require.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "logs", "reportmap.log")
	logger, closeFn, err = OpenLogFile(path, false)
	require.NoError(t, err)
	logger.Info("graph loaded", "nodes", 10)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "graph loaded")
}

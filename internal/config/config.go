package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultGraphPath is empty: the embedded structure map is used
const DefaultGraphPath = ""

// DefaultDocsURL is where the accounting application is served locally
const DefaultDocsURL = "http://localhost:3000/"

// DefaultCopyFlash is how long the copy confirmation stays visible
const DefaultCopyFlash = 1500 * time.Millisecond

// GraphPath returns the structure map file from REPORTMAP_GRAPH env var,
// falling back to DefaultGraphPath.
func GraphPath() string {
	if env := os.Getenv("REPORTMAP_GRAPH"); env != "" {
		return env
	}
	return DefaultGraphPath
}

// LogPath returns the TUI log file from REPORTMAP_LOG. Empty disables
// logging.
func LogPath() string {
	return os.Getenv("REPORTMAP_LOG")
}

// ConfigPath returns the config file from REPORTMAP_CONFIG env var,
// falling back to $XDG_CONFIG_HOME/reportmap/config.toml.
func ConfigPath() string {
	if env := os.Getenv("REPORTMAP_CONFIG"); env != "" {
		return env
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "reportmap", "config.toml")
}

// Config holds the viewer settings
type Config struct {
	UI     UIConfig     `toml:"ui"`
	Canvas CanvasConfig `toml:"canvas"`
	Docs   DocsConfig   `toml:"docs"`
}

// UIConfig controls the initial view and interaction
type UIConfig struct {
	ShowAll       bool   `toml:"show_all"`
	InitialFocus  string `toml:"initial_focus"`
	Mouse         bool   `toml:"mouse"`
	PairHighlight bool   `toml:"pair_highlight"`
	CopyFlashMS   int    `toml:"copy_flash_ms"`
}

// CanvasConfig controls edge routing
type CanvasConfig struct {
	JogOffset float64 `toml:"jog_offset"`
}

// DocsConfig controls where node documents are opened
type DocsConfig struct {
	BaseURL string `toml:"base_url"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Mouse:         true,
			PairHighlight: true,
			CopyFlashMS:   int(DefaultCopyFlash / time.Millisecond),
		},
		Canvas: CanvasConfig{JogOffset: 3},
		Docs:   DocsConfig{BaseURL: DefaultDocsURL},
	}
}

// CopyFlash returns the copy confirmation duration
func (c *Config) CopyFlash() time.Duration {
	return time.Duration(c.UI.CopyFlashMS) * time.Millisecond
}

// Validate rejects settings the viewer cannot use
func (c *Config) Validate() error {
	var errs []error
	if c.UI.CopyFlashMS <= 0 {
		errs = append(errs, fmt.Errorf("ui.copy_flash_ms must be positive, got %d", c.UI.CopyFlashMS))
	}
	if c.Canvas.JogOffset < 0 {
		errs = append(errs, fmt.Errorf("canvas.jog_offset must not be negative, got %g", c.Canvas.JogOffset))
	}
	return errors.Join(errs...)
}

// Load reads the config file at path over the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"reportmap/internal/adapters/bus"
	"reportmap/internal/adapters/clipboard"
	"reportmap/internal/adapters/editor"
	"reportmap/internal/adapters/filesystem"
	"reportmap/internal/adapters/opener"
	"reportmap/internal/adapters/tui"
	"reportmap/internal/config"
)

func main() {
	graphFlag := pflag.StringP("graph", "g", config.GraphPath(), "structure map YAML file (default: embedded)")
	configFlag := pflag.StringP("config", "c", config.ConfigPath(), "config file")
	verbose := pflag.BoolP("verbose", "v", false, "debug logging to $REPORTMAP_LOG")
	pflag.Parse()

	if err := run(*graphFlag, *configFlag, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(graphPath, configPath string, verbose bool) error {
	logger, closeLog, err := config.OpenLogFile(config.LogPath(), verbose)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Initialize adapters
	source := filesystem.NewSource(graphPath)
	g, err := source.Load()
	if err != nil {
		return err
	}
	logger.Info("graph loaded", "location", source.Location(), "nodes", len(g.Nodes()), "edges", len(g.Edges()))

	docs, err := opener.NewOpener(cfg.Docs.BaseURL)
	if err != nil {
		return err
	}

	// Create and run TUI app
	app := tui.NewApp(g, tui.Options{
		Config:    cfg,
		Source:    source,
		GraphPath: source.Path(),
		Bus:       bus.New(logger),
		Clipboard: clipboard.NewSystem(),
		Opener:    docs,
		Editor:    editor.NewOpener(),
		Logger:    logger,
	})
	defer app.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return err
	}
	return nil
}

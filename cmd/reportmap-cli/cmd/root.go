package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"reportmap/internal/adapters/filesystem"
	"reportmap/internal/config"
	"reportmap/internal/domain"
	"reportmap/internal/ports"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	graphPath  string
	configPath string
	format     string
	verbose    bool

	source ports.GraphSource
	cfg    *config.Config
	logger *slog.Logger
	graph  *domain.Graph
)

var rootCmd = &cobra.Command{
	Use:   "reportmap-cli",
	Short: "Query the accounting document structure map",
	Long: `reportmap-cli answers questions about the structure map of accounting
documents: which documents feed which, what the viewer shows for a given
focus, how edges are routed, and where an account code ends up.

The embedded map is used unless --graph or REPORTMAP_GRAPH names a YAML file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if format != formatText && format != formatJSON {
			return fmt.Errorf("invalid format %q (expected text or json)", format)
		}

		logger = config.NewLogger(cmd.ErrOrStderr(), verbose)

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		source = filesystem.NewSource(graphPath)
		graph = nil
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&graphPath, "graph", "g", config.GraphPath(), "structure map YAML file (default: embedded)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.ConfigPath(), "config file")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", formatText, "output format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
}

// GetGraph loads the structure map once per invocation
func GetGraph() (*domain.Graph, error) {
	if graph != nil {
		return graph, nil
	}

	g, err := source.Load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source.Location(), err)
	}
	logger.Debug("graph loaded", "location", source.Location(), "nodes", len(g.Nodes()), "edges", len(g.Edges()))

	graph = g
	return graph, nil
}

// GetRouter returns an edge router using the configured jog offset
func GetRouter() domain.Router {
	return domain.Router{Jog: cfg.Canvas.JogOffset}
}

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"reportmap/internal/adapters/filesystem"
	mcpadapter "reportmap/internal/adapters/mcp"
	"reportmap/internal/adapters/sqlite"
	"reportmap/internal/config"
	"reportmap/internal/domain"
	"reportmap/internal/ports"
)

func main() {
	graphFlag := flag.String("graph", config.GraphPath(), "structure map YAML file (default: embedded)")
	configFlag := flag.String("config", config.ConfigPath(), "config file")
	verbose := flag.Bool("verbose", false, "debug logging on stderr")
	flag.Parse()

	// stdout carries the protocol
	logger := config.NewLogger(os.Stderr, *verbose)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	src := filesystem.NewSource(*graphFlag)
	g, err := src.Load()
	if err != nil {
		logger.Error("failed to load graph", "location", src.Location(), "error", err)
		os.Exit(1)
	}
	logger.Info("graph loaded", "location", src.Location(), "nodes", len(g.Nodes()), "edges", len(g.Edges()))

	mcpServer := server.NewMCPServer(
		"reportmap-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, g, mcpadapter.Options{
		Router:        domain.Router{Jog: cfg.Canvas.JogOffset},
		PairHighlight: cfg.UI.PairHighlight,
	})
	mcpadapter.RegisterWriteTools(mcpServer, g, func(path string) (ports.GraphExporter, error) {
		return sqlite.Open(path, logger.With(slog.String("tool", "export")))
	}, cfg.UI.PairHighlight)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

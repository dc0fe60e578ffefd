package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"reportmap/internal/application/commands"
	"reportmap/internal/domain"
	"reportmap/internal/ports"
)

// ExporterFactory opens an exporter writing to path
type ExporterFactory func(path string) (ports.GraphExporter, error)

// RegisterWriteTools adds the tools that produce files or replay
// interactions to the MCP server.
func RegisterWriteTools(s *server.MCPServer, g *domain.Graph, open ExporterFactory, pairHighlight bool) {
	s.AddTool(exportTool(), exportHandler(g, open))
	s.AddTool(simulateTool(), simulateHandler(g, pairHighlight))
}

// --- export ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export",
		mcp.WithDescription("Write the structure map into a SQLite database for querying. Existing rows are replaced."),
		mcp.WithString("db",
			mcp.Description("Path of the SQLite database file"),
			mcp.Required(),
		),
	)
}

func exportHandler(g *domain.Graph, open ExporterFactory) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("db", "")
		if path == "" {
			return toolError(fmt.Errorf("db is required"))
		}

		exporter, err := open(path)
		if err != nil {
			return toolError(err)
		}
		defer exporter.Close()

		result, err := commands.NewExportCommand(g, exporter).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- simulate ---

func simulateTool() mcp.Tool {
	return mcp.NewTool("simulate",
		mcp.WithDescription("Replay viewer interactions and report the state after each one. Actions: hover:<id>, unhover, click:<id>, open:<id>, edge:<id>, escape, overlay, all, category:<id>, link:<id>[@focus], tour:<step>, tour-clear."),
		mcp.WithString("actions",
			mcp.Description("Space-separated actions, e.g. \"click:balance-sheet open:balance-sheet\""),
			mcp.Required(),
		),
	)
}

func simulateHandler(g *domain.Graph, pairHighlight bool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		actions := strings.Fields(req.GetString("actions", ""))
		if len(actions) == 0 {
			return toolError(fmt.Errorf("actions is required"))
		}

		shots, err := commands.NewSimulateCommand(g, actions, pairHighlight).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, s := range shots {
			fmt.Fprintf(&sb, "%-24s focus=%s all=%t selection=%s drawer=%t",
				s.Action, orDash(string(s.Focus)), s.AllVisible, s.Selection, s.DrawerOpen)
			if s.Expanded != "" {
				fmt.Fprintf(&sb, " expanded=%s", s.Expanded)
			}
			if len(s.Highlight) > 0 {
				fmt.Fprintf(&sb, " highlight=%s", joinIDs(s.Highlight))
			}
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

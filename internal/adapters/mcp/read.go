package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"reportmap/internal/application/commands"
	"reportmap/internal/domain"
)

// Options tune the read tools
type Options struct {
	Router        domain.Router
	PairHighlight bool
}

// RegisterReadTools adds all read-only structure map tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, g *domain.Graph, opts Options) {
	s.AddTool(listNodesTool(), listNodesHandler(g))
	s.AddTool(findTool(), findHandler(g))
	s.AddTool(relatedTool(), relatedHandler(g, opts.PairHighlight))
	s.AddTool(visibleTool(), visibleHandler(g))
	s.AddTool(routeTool(), routeHandler(g, opts.Router))
	s.AddTool(describeTool(), describeHandler(g))
	s.AddTool(resolveAccountTool(), resolveAccountHandler())
}

// --- list_nodes ---

func listNodesTool() mcp.Tool {
	return mcp.NewTool("list_nodes",
		mcp.WithDescription("List the documents on the structure map with their tier and role."),
		mcp.WithString("tier",
			mcp.Description("Only list nodes of this tier: primary or secondary. Omit to list all."),
		),
	)
}

func listNodesHandler(g *domain.Graph) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		nodes := g.Nodes()

		if raw := req.GetString("tier", ""); raw != "" {
			tier, err := domain.ParseTier(raw)
			if err != nil {
				return toolError(err)
			}
			filtered := nodes[:0]
			for _, n := range nodes {
				if n.Tier == tier {
					filtered = append(filtered, n)
				}
			}
			nodes = filtered
		}

		return formatEntities(nodes, formatNode)
	}
}

// --- find ---

func findTool() mcp.Tool {
	return mcp.NewTool("find",
		mcp.WithDescription("Fuzzy-search documents by id, label, or role."),
		mcp.WithString("query",
			mcp.Description("Search query, e.g. 貸借 or ldgr"),
			mcp.Required(),
		),
	)
}

func findHandler(g *domain.Graph) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if strings.TrimSpace(query) == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewFindCommand(g, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s  (score %d)\n", r.Node.ID, r.Node.Label, r.Score)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- related ---

func relatedTool() mcp.Tool {
	return mcp.NewTool("related",
		mcp.WithDescription("Trace the documents upstream and downstream of a node over the visible edges."),
		mcp.WithString("id",
			mcp.Description("Node id, e.g. ledger"),
			mcp.Required(),
		),
		mcp.WithString("focus",
			mcp.Description("Focused primary node whose secondary documents are shown"),
		),
		mcp.WithBoolean("all",
			mcp.Description("Show every document regardless of focus"),
		),
	)
}

func relatedHandler(g *domain.Graph, pairHighlight bool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRelatedCommand(g,
			req.GetString("id", ""),
			req.GetString("focus", ""),
			req.GetBool("all", false),
			pairHighlight,
		)
		res, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "upstream:   %s\n", joinIDs(res.Upstream))
		fmt.Fprintf(&sb, "downstream: %s\n", joinIDs(res.Downstream))
		fmt.Fprintf(&sb, "highlight:  %s\n", joinIDs(res.Highlight))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- visible ---

func visibleTool() mcp.Tool {
	return mcp.NewTool("visible",
		mcp.WithDescription("List the documents and edges shown for a focus state."),
		mcp.WithString("focus",
			mcp.Description("Focused primary node. Omit for the backbone only."),
		),
		mcp.WithBoolean("all",
			mcp.Description("Show every document"),
		),
	)
}

func visibleHandler(g *domain.Graph) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := commands.NewVisibleCommand(g, req.GetString("focus", ""), req.GetBool("all", false)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString("nodes:\n")
		for _, n := range res.Nodes {
			fmt.Fprintf(&sb, "  %s\n", formatNode(n))
		}
		sb.WriteString("edges:\n")
		for _, e := range res.Edges {
			fmt.Fprintf(&sb, "  %s\n", formatEdge(e))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- route ---

func routeTool() mcp.Tool {
	return mcp.NewTool("route",
		mcp.WithDescription("Compute the polyline and label box of an edge in canvas cells."),
		mcp.WithString("id",
			mcp.Description("Edge id, e.g. trial-balance-balance-sheet"),
			mcp.Required(),
		),
	)
}

func routeHandler(g *domain.Graph, router domain.Router) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		routes, err := commands.NewRouteCommand(g, router, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		r := routes[0]
		points := make([]string, len(r.Path))
		for i, p := range r.Path {
			points[i] = fmt.Sprintf("(%g,%g)", p.X, p.Y)
		}
		label := r.Label.Rect()
		return mcp.NewToolResultText(fmt.Sprintf("%s [%s]\npath:  %s\nlabel: %q at %g,%g %gx%g\n",
			r.Edge.ID, r.Edge.Route, strings.Join(points, " "),
			r.Edge.Label, label.X, label.Y, label.W, label.H)), nil
	}
}

// --- describe ---

func describeTool() mcp.Tool {
	return mcp.NewTool("describe",
		mcp.WithDescription("Show the detail panel content for a node or an edge."),
		mcp.WithString("kind",
			mcp.Description("node or edge"),
			mcp.Required(),
			mcp.Enum("node", "edge"),
		),
		mcp.WithString("id",
			mcp.Description("Node or edge id"),
			mcp.Required(),
		),
		mcp.WithString("focus",
			mcp.Description("Focused primary node, which decides the visible connections"),
		),
	)
}

func describeHandler(g *domain.Graph) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")

		switch kind := req.GetString("kind", ""); kind {
		case "node":
			d, err := commands.NewDescribeNodeCommand(g, id, req.GetString("focus", ""), false).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(formatNodeDetail(d)), nil

		case "edge":
			d, err := commands.NewDescribeEdgeCommand(g, id).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(formatEdgeDetail(d)), nil

		default:
			return toolError(fmt.Errorf("invalid kind: %q (expected node or edge)", kind))
		}
	}
}

// --- resolve_account ---

func resolveAccountTool() mcp.Tool {
	return mcp.NewTool("resolve_account",
		mcp.WithDescription("Resolve a six-digit account code to the statement line it posts to."),
		mcp.WithString("code",
			mcp.Description("Account code, e.g. 740100"),
			mcp.Required(),
		),
		mcp.WithString("side",
			mcp.Description("debit or credit"),
		),
		mcp.WithString("funding",
			mcp.Description("general or designated"),
		),
	)
}

func resolveAccountHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := commands.NewResolveCommand(
			req.GetString("code", ""),
			req.GetString("side", ""),
			req.GetString("funding", ""),
		).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		m := res.Mapping
		return mcp.NewToolResultText(fmt.Sprintf("%s  %s -> %s  %s / %s\n",
			res.Code, res.Kind, m.Code, m.ParentName, m.ChildName)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatNode(n domain.Node) string {
	return fmt.Sprintf("%s  %s  [%s]  %s", n.ID, n.Label, n.Tier, n.Role)
}

func formatEdge(e domain.Edge) string {
	return fmt.Sprintf("%s  %s -> %s  (%s)", e.ID, e.FromLabel, e.ToLabel, e.Label)
}

func formatNodeDetail(d *domain.NodeDetail) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %s\n%s\n", d.Node.ID, d.Node.Label, d.Node.Role)
	if d.Owner != "" {
		fmt.Fprintf(&sb, "owner: %s\n", d.Owner)
	}
	if d.Pair != nil {
		fmt.Fprintf(&sb, "pair:  %s\n", d.Pair.Label)
	}
	for _, c := range d.Incoming {
		fmt.Fprintf(&sb, "<- %s  %s\n", c.Label, c.RelationLabel)
	}
	for _, c := range d.Outgoing {
		fmt.Fprintf(&sb, "-> %s  %s\n", c.Label, c.RelationLabel)
	}
	if connected := d.Connected(); len(connected) > 0 {
		fmt.Fprintf(&sb, "connected: %s\n", strings.Join(connected, "、"))
	}
	if d.Breakdown != nil {
		fmt.Fprintf(&sb, "%s\n", d.Breakdown.Title)
		for _, c := range d.Breakdown.Categories {
			fmt.Fprintf(&sb, "  %s (%d)\n", c.Label, len(c.Items))
		}
	}
	return sb.String()
}

func formatEdgeDetail(d *domain.EdgeDetail) string {
	var sb strings.Builder
	e := d.Edge
	fmt.Fprintf(&sb, "%s  %s -> %s\n", e.ID, e.FromLabel, e.ToLabel)
	fmt.Fprintf(&sb, "relation:   %s\n", d.RelationLabel)
	if e.Rationale != "" {
		fmt.Fprintf(&sb, "rationale:  %s\n", e.Rationale)
	}
	if e.Checkpoint != "" {
		fmt.Fprintf(&sb, "checkpoint: %s\n", e.Checkpoint)
	}
	return sb.String()
}

func joinIDs(ids []domain.NodeID) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = string(id)
	}
	return strings.Join(s, ", ")
}

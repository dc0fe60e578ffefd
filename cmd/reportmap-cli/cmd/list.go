package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"reportmap/internal/application/commands"
	"reportmap/internal/domain"
)

var (
	listTier  string
	viewFocus string
	viewAll   bool
)

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List every document on the map",
	Long: `List the documents of the structure map in layout order.

Examples:
  reportmap-cli nodes
  reportmap-cli nodes --tier secondary
  reportmap-cli nodes --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := GetGraph()
		if err != nil {
			return err
		}

		nodes := g.Nodes()
		if listTier != "" {
			tier, err := domain.ParseTier(listTier)
			if err != nil {
				return err
			}
			filtered := nodes[:0]
			for _, n := range nodes {
				if n.Tier == tier {
					filtered = append(filtered, n)
				}
			}
			nodes = filtered
		}

		if isJSON() {
			out := make([]nodeJSON, 0, len(nodes))
			for _, n := range nodes {
				out = append(out, toNodeJSON(g, n))
			}
			return printJSON(cmd.OutOrStdout(), out)
		}

		table(cmd.OutOrStdout(), []string{"ID", "LABEL", "TIER", "ROLE"}, nodeRows(nodes))
		return nil
	},
}

var edgesCmd = &cobra.Command{
	Use:   "edges",
	Short: "List every edge on the map",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := GetGraph()
		if err != nil {
			return err
		}

		if isJSON() {
			out := make([]edgeJSON, 0, len(g.Edges()))
			for _, e := range g.Edges() {
				out = append(out, toEdgeJSON(e))
			}
			return printJSON(cmd.OutOrStdout(), out)
		}

		table(cmd.OutOrStdout(), []string{"ID", "FLOW", "RELATION", "TIER"}, edgeRows(g.Edges()))
		return nil
	},
}

var visibleCmd = &cobra.Command{
	Use:   "visible",
	Short: "Show what the viewer displays for a focus state",
	Long: `Show the documents and edges the viewer displays. Without flags only the
backbone is shown; --focus adds the secondary documents of one primary
document and --all shows everything.

Examples:
  reportmap-cli visible
  reportmap-cli visible --focus balance-sheet`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := GetGraph()
		if err != nil {
			return err
		}

		res, err := commands.NewVisibleCommand(g, viewFocus, viewAll).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if isJSON() {
			nodes := make([]nodeJSON, 0, len(res.Nodes))
			for _, n := range res.Nodes {
				nodes = append(nodes, toNodeJSON(g, n))
			}
			edges := make([]edgeJSON, 0, len(res.Edges))
			for _, e := range res.Edges {
				edges = append(edges, toEdgeJSON(e))
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"focus": res.Focus,
				"all":   res.AllVisible,
				"nodes": nodes,
				"edges": edges,
			})
		}

		w := cmd.OutOrStdout()
		table(w, []string{"ID", "LABEL", "TIER", "ROLE"}, nodeRows(res.Nodes))
		fmt.Fprintln(w)
		table(w, []string{"ID", "FLOW", "RELATION", "TIER"}, edgeRows(res.Edges))
		return nil
	},
}

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Fuzzy-search documents",
	Long: `Search documents by id, label, or role. Results are ranked by relevance
using fuzzy matching.

Examples:
  reportmap-cli find 貸借
  reportmap-cli find ldgr`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := GetGraph()
		if err != nil {
			return err
		}

		results, err := commands.NewFindCommand(g, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if isJSON() {
			out := make([]map[string]any, 0, len(results))
			for _, r := range results {
				out = append(out, map[string]any{"id": r.Node.ID, "label": r.Node.Label, "score": r.Score})
			}
			return printJSON(cmd.OutOrStdout(), out)
		}

		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No results found")
			return nil
		}
		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", accent.Sprint(r.Node.ID), r.Node.Label)
		}
		return nil
	},
}

func init() {
	nodesCmd.Flags().StringVar(&listTier, "tier", "", "only primary or secondary documents")

	visibleCmd.Flags().StringVar(&viewFocus, "focus", "", "focused primary document")
	visibleCmd.Flags().BoolVar(&viewAll, "all", false, "show every document")

	rootCmd.AddCommand(nodesCmd, edgesCmd, visibleCmd, findCmd)
}

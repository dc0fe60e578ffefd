package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reportmap/internal/application/commands"
)

var (
	relatedFocus string
	relatedAll   bool
	relatedPairs bool
)

var relatedCmd = &cobra.Command{
	Use:   "related <node-id>",
	Short: "Trace documents upstream and downstream of a node",
	Long: `Trace the documents a node is derived from and the documents derived from
it, over the edges visible in the given focus state. This is what the
viewer highlights on hover.

Examples:
  reportmap-cli related ledger
  reportmap-cli related inventory --focus balance-sheet`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := GetGraph()
		if err != nil {
			return err
		}

		pairs := cfg.UI.PairHighlight
		if cmd.Flags().Changed("pairs") {
			pairs = relatedPairs
		}

		res, err := commands.NewRelatedCommand(g, args[0], relatedFocus, relatedAll, pairs).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if isJSON() {
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"node":       res.Start,
				"upstream":   res.Upstream,
				"downstream": res.Downstream,
				"related":    res.Related,
				"highlight":  res.Highlight,
			})
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s %s\n", subtle.Sprint("upstream:  "), strings.Join(ids(res.Upstream), ", "))
		fmt.Fprintf(w, "%s %s\n", subtle.Sprint("downstream:"), strings.Join(ids(res.Downstream), ", "))
		fmt.Fprintf(w, "%s %s\n", subtle.Sprint("highlight: "), accent.Sprint(strings.Join(ids(res.Highlight), ", ")))
		return nil
	},
}

var routeCmd = &cobra.Command{
	Use:   "route [edge-id...]",
	Short: "Compute edge polylines and label boxes",
	Long: `Compute the orthogonal polyline and label box of edges in canvas cells.
Without arguments every edge is routed.

Examples:
  reportmap-cli route trial-balance-balance-sheet
  reportmap-cli route --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := GetGraph()
		if err != nil {
			return err
		}

		routes, err := commands.NewRouteCommand(g, GetRouter(), args...).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if isJSON() {
			out := make([]map[string]any, 0, len(routes))
			for _, r := range routes {
				out = append(out, map[string]any{
					"id":    r.Edge.ID,
					"route": r.Edge.Route,
					"path":  r.Path,
					"label": r.Label.Rect(),
				})
			}
			return printJSON(cmd.OutOrStdout(), out)
		}

		rows := make([][]string, 0, len(routes))
		for _, r := range routes {
			points := make([]string, len(r.Path))
			for i, p := range r.Path {
				points[i] = fmt.Sprintf("(%g,%g)", p.X, p.Y)
			}
			l := r.Label.Rect()
			rows = append(rows, []string{
				string(r.Edge.ID),
				string(r.Edge.Route),
				strings.Join(points, " "),
				fmt.Sprintf("%g,%g %gx%g", l.X, l.Y, l.W, l.H),
			})
		}
		table(cmd.OutOrStdout(), []string{"EDGE", "STRATEGY", "PATH", "LABEL"}, rows)
		return nil
	},
}

func init() {
	relatedCmd.Flags().StringVar(&relatedFocus, "focus", "", "focused primary document")
	relatedCmd.Flags().BoolVar(&relatedAll, "all", false, "walk every edge regardless of focus")
	relatedCmd.Flags().BoolVar(&relatedPairs, "pairs", true, "include pair partners in the highlight (default from config)")

	rootCmd.AddCommand(relatedCmd, routeCmd)
}

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"reportmap/internal/application/commands"
	"reportmap/internal/domain"
)

var (
	detailFocus string
	detailAll   bool
)

var detailCmd = &cobra.Command{
	Use:   "detail [node|edge] <id>",
	Short: "Show the detail panel content of a node or edge",
	Long: `Show what the viewer's drawer displays for a selected node or edge.

Examples:
  reportmap-cli detail node balance-sheet --focus balance-sheet
  reportmap-cli detail edge ledger-trial-balance`,
}

var detailNodeCmd = &cobra.Command{
	Use:   "node <node-id>",
	Short: "Show a node's connections and breakdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := GetGraph()
		if err != nil {
			return err
		}

		d, err := commands.NewDescribeNodeCommand(g, args[0], detailFocus, detailAll).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if isJSON() {
			return printJSON(cmd.OutOrStdout(), d)
		}
		printNodeDetail(cmd.OutOrStdout(), d)
		return nil
	},
}

var detailEdgeCmd = &cobra.Command{
	Use:   "edge <edge-id>",
	Short: "Show an edge's rationale and checkpoint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := GetGraph()
		if err != nil {
			return err
		}

		d, err := commands.NewDescribeEdgeCommand(g, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if isJSON() {
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"edge":     toEdgeJSON(d.Edge),
				"relation": d.RelationLabel,
				"dashed":   d.Style.Dashed,
			})
		}

		w := cmd.OutOrStdout()
		e := d.Edge
		fmt.Fprintf(w, "%s  %s → %s\n", accent.Sprint(e.ID), e.FromLabel, e.ToLabel)
		fmt.Fprintf(w, "%s %s\n", subtle.Sprint("relation:  "), d.RelationLabel)
		if e.Rationale != "" {
			fmt.Fprintf(w, "%s %s\n", subtle.Sprint("rationale: "), e.Rationale)
		}
		if e.Checkpoint != "" {
			fmt.Fprintf(w, "%s %s\n", subtle.Sprint("checkpoint:"), e.Checkpoint)
		}
		return nil
	},
}

func printNodeDetail(w io.Writer, d *domain.NodeDetail) {
	fmt.Fprintf(w, "%s  %s\n", accent.Sprint(d.Node.Label), subtle.Sprint(d.Node.ID))
	if d.Node.Role != "" {
		fmt.Fprintln(w, d.Node.Role)
	}
	if d.Owner != "" {
		fmt.Fprintf(w, "%s %s\n", subtle.Sprint("owner:"), d.Owner)
	}
	if d.Pair != nil {
		fmt.Fprintf(w, "%s %s\n", subtle.Sprint("pair: "), d.Pair.Label)
	}
	for _, c := range d.Incoming {
		fmt.Fprintf(w, "  ← %s  %s\n", c.Label, subtle.Sprint(c.RelationLabel))
	}
	for _, c := range d.Outgoing {
		fmt.Fprintf(w, "  → %s  %s\n", c.Label, subtle.Sprint(c.RelationLabel))
	}
	if connected := d.Connected(); len(connected) > 0 {
		fmt.Fprintf(w, "%s %s\n", subtle.Sprint("直接つながる帳票:"), strings.Join(connected, "、"))
	}
	if d.Breakdown == nil {
		return
	}
	fmt.Fprintf(w, "\n%s\n", accent.Sprint(d.Breakdown.Title))
	for _, c := range d.Breakdown.Categories {
		fmt.Fprintf(w, "  %s\n", c.Label)
		for _, item := range c.Items {
			if item.Note != "" {
				fmt.Fprintf(w, "    - %s  %s\n", item.Label, subtle.Sprint(item.Note))
			} else {
				fmt.Fprintf(w, "    - %s\n", item.Label)
			}
		}
		for _, l := range c.Links {
			fmt.Fprintf(w, "    ↪ %s\n", l.Label)
		}
	}
}

func init() {
	detailNodeCmd.Flags().StringVar(&detailFocus, "focus", "", "focused primary document")
	detailNodeCmd.Flags().BoolVar(&detailAll, "all", false, "consider every edge")

	detailCmd.AddCommand(detailNodeCmd, detailEdgeCmd)
	rootCmd.AddCommand(detailCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"reportmap/internal/adapters/filesystem"
	"reportmap/internal/application/commands"
	"reportmap/internal/ports"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a structure map file for integrity problems",
	Long: `Load a structure map and report every integrity problem: unknown
endpoints, relations without a style, duplicate ids, and bad pairs.
Without an argument the --graph file (or the embedded map) is checked.

Examples:
  reportmap-cli validate ~/maps/structure.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var src ports.GraphSource = source
		if len(args) == 1 {
			src = filesystem.NewSource(args[0])
		}

		res, err := commands.NewValidateCommand(src).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if isJSON() {
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"location": res.Location,
				"nodes":    res.Nodes,
				"edges":    res.Edges,
				"pairs":    res.Pairs,
				"steps":    res.Steps,
			})
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d nodes, %d edges, %d pairs, %d tutorial steps\n",
			good.Sprint("✓"), res.Location, res.Nodes, res.Edges, res.Pairs, res.Steps)
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init <file>",
	Short: "Write the embedded structure map to a file for editing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := filesystem.WriteDefault(args[0]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[0])
		fmt.Fprintln(cmd.OutOrStdout(), subtle.Sprintf("Use it with --graph %s or REPORTMAP_GRAPH", args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd, initCmd)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reportmap/internal/application/commands"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <action>...",
	Short: "Replay viewer interactions and print the state after each",
	Long: `Replay interactions against the viewer's state machine without a
terminal UI and print the resulting state after every step.

Actions:
  hover:<node>        highlight related documents
  unhover             clear the hover highlight
  click:<node>        click a document box
  open:<node>         open a document's detail panel
  edge:<node>         select an edge
  escape              close the detail panel
  overlay             click outside the detail panel
  all                 toggle "show all documents"
  category:<id>       expand or collapse a breakdown category
  link:<node>[@focus] follow a breakdown cross-link
  tour:<step>         highlight a tutorial step
  tour-clear          clear the tutorial highlight

Example:
  reportmap-cli simulate click:balance-sheet open:balance-sheet category:net-assets`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := GetGraph()
		if err != nil {
			return err
		}

		shots, err := commands.NewSimulateCommand(g, args, cfg.UI.PairHighlight).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if isJSON() {
			return printJSON(cmd.OutOrStdout(), shots)
		}

		rows := make([][]string, 0, len(shots))
		for _, s := range shots {
			rows = append(rows, []string{
				s.Action,
				dash(string(s.Focus)),
				fmt.Sprint(s.AllVisible),
				s.Selection,
				dash(string(s.Expanded)),
				dash(strings.Join(ids(s.Highlight), ",")),
			})
		}
		table(cmd.OutOrStdout(), []string{"ACTION", "FOCUS", "ALL", "SELECTION", "EXPANDED", "HIGHLIGHT"}, rows)
		return nil
	},
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}

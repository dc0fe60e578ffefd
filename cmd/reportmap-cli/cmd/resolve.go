package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"reportmap/internal/application/commands"
)

var (
	resolveSide    string
	resolveFunding string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <code>",
	Short: "Resolve an account code to its statement line",
	Long: `Resolve a six-digit account code entered on a voucher to the statement
line it posts to. Activity income and expense codes move to their activity
statement counterpart; securities valuation gains and losses branch into
net assets by funding.

Examples:
  reportmap-cli resolve 610100 --side credit
  reportmap-cli resolve 740100 --funding designated`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := commands.NewResolveCommand(args[0], resolveSide, resolveFunding).Execute(cmd.Context())
		if err != nil {
			return err
		}

		m := res.Mapping
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"code":   res.Code,
				"kind":   res.Kind.String(),
				"target": m.Code,
				"parent": m.ParentName,
				"child":  m.ChildName,
			})
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s  %s / %s\n",
			res.Code, subtle.Sprintf("[%s]", res.Kind), accent.Sprint(m.Code), m.ParentName, m.ChildName)
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveSide, "side", "debit", "voucher column: debit or credit")
	resolveCmd.Flags().StringVar(&resolveFunding, "funding", "general", "general or designated")

	rootCmd.AddCommand(resolveCmd)
}

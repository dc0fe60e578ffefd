package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"reportmap/internal/adapters/editor"
	"reportmap/internal/adapters/filesystem"
	"reportmap/internal/adapters/opener"
	"reportmap/internal/application"
	"reportmap/internal/domain"
)

var openPrint bool

var openCmd = &cobra.Command{
	Use:   "open <node-id>",
	Short: "Open a document in the accounting application",
	Long: `Open the screen behind a document in the default browser. Links are
resolved against docs.base_url from the config file.

Examples:
  reportmap-cli open balance-sheet
  reportmap-cli open ledger --print`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := GetGraph()
		if err != nil {
			return err
		}
		if err := application.ValidateNodeID(g, "nodeID", args[0]); err != nil {
			return err
		}

		o, err := opener.NewOpener(cfg.Docs.BaseURL)
		if err != nil {
			return err
		}

		n, _ := g.Node(domain.NodeID(args[0]))
		if openPrint {
			uri, err := o.URI(n.Href)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), uri)
			return nil
		}

		logger.Debug("opening document", "node", n.ID, "href", n.Href)
		return o.Open(n.Href)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the --graph file in $EDITOR and validate it afterwards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, ok := source.(*filesystem.Source)
		if !ok {
			return fmt.Errorf("graph source cannot be edited")
		}

		c, err := editor.NewOpener().Command(fs.Path())
		if err != nil {
			return err
		}
		if err := c.Run(); err != nil {
			return fmt.Errorf("editor failed: %w", err)
		}

		return validateCmd.RunE(cmd, nil)
	},
}

func init() {
	openCmd.Flags().BoolVar(&openPrint, "print", false, "print the URL instead of opening it")

	rootCmd.AddCommand(openCmd, editCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"reportmap/internal/adapters/sqlite"
	"reportmap/internal/application/commands"
)

var exportDB string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the structure map into a SQLite database",
	Long: `Write nodes, edges, styles, pairs, secondary members and breakdown
categories into a SQLite database for querying with SQL. Existing rows are
replaced; the viewer never reads the database back.

Example:
  reportmap-cli export --db ~/reportmap.db
  sqlite3 ~/reportmap.db "SELECT from_id, to_id FROM edges WHERE tier = 'primary'"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := GetGraph()
		if err != nil {
			return err
		}

		exporter, err := sqlite.Open(exportDB, logger)
		if err != nil {
			return err
		}
		defer exporter.Close()

		res, err := commands.NewExportCommand(g, exporter).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if isJSON() {
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"db":         exporter.Path(),
				"nodes":      res.Stats.Nodes,
				"edges":      res.Stats.Edges,
				"styles":     res.Stats.Styles,
				"pairs":      res.Stats.Pairs,
				"secondary":  res.Stats.Secondary,
				"categories": res.Stats.Categories,
			})
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s to %s\n", good.Sprint("✓"), res.Message, exporter.Path())
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDB, "db", "", "SQLite database file (required)")
	_ = exportCmd.MarkFlagRequired("db")

	rootCmd.AddCommand(exportCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"reportmap/internal/application"
	"reportmap/internal/application/commands"
)

var (
	placeContainer string
	placeTarget    string
	placeSize      string
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Solve a callout position",
	Long: `Place a callout of the given size next to a target inside a container.
Sides are tried in the order right, left, top, bottom; when none fits the
callout is clamped into the container on the left.

Rectangles are x,y,w,h and sizes are w,h, all in absolute cells. The
reported position is relative to the container.

Example:
  reportmap-cli place --container 0,0,120,40 --target 80,10,18,4 --size 24,5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := application.ParseRect("container", placeContainer)
		if err != nil {
			return err
		}
		target, err := application.ParseRect("target", placeTarget)
		if err != nil {
			return err
		}
		size, err := application.ParseSize("size", placeSize)
		if err != nil {
			return err
		}

		res, err := commands.NewPlaceCommand(container, target, size).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if isJSON() {
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"side": res.Placement.Side.String(),
				"left": res.Placement.Left,
				"top":  res.Placement.Top,
				"box":  res.Box,
			})
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s left=%g top=%g (absolute %g,%g)\n",
			accent.Sprint(res.Placement.Side), res.Placement.Left, res.Placement.Top, res.Box.X, res.Box.Y)
		return nil
	},
}

func init() {
	placeCmd.Flags().StringVar(&placeContainer, "container", "", "container rectangle x,y,w,h")
	placeCmd.Flags().StringVar(&placeTarget, "target", "", "target rectangle x,y,w,h")
	placeCmd.Flags().StringVar(&placeSize, "size", "", "callout size w,h")
	_ = placeCmd.MarkFlagRequired("container")
	_ = placeCmd.MarkFlagRequired("target")
	_ = placeCmd.MarkFlagRequired("size")

	rootCmd.AddCommand(placeCmd)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sprite-who-codes/claudron-dashboard/internal/grid"
)

func newGridCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "grid <image>",
		Short: "Render a pixel-measurement grid over a screenshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			target := strings.TrimSpace(outputPath)
			if target == "" {
				target = grid.DefaultOutputPath(args[0])
			}

			width, height, err := grid.Render(args[0], target, grid.Options{
				Spacing:    cfg.Grid.Spacing,
				MajorEvery: cfg.Grid.MajorEvery,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %dx%d grid overlay to %s\n", width, height, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination for the overlay image")
	return cmd
}

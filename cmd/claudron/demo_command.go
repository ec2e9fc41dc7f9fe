package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprite-who-codes/claudron-dashboard/internal/demo"
)

func newDemoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "demo <script>",
		Short: "Record a scripted dashboard demo",
		Long: "Starts the configured capture command, then steps the companion\n" +
			"through the locations and moods listed in the script file.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cmd)
			if err != nil {
				return err
			}

			steps, err := demo.LoadScript(args[0])
			if err != nil {
				return err
			}

			sequencer := demo.NewSequencer(cfg.Demo, logger)
			if err := sequencer.Run(cmd.Context(), steps); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Demo complete: %s\n", cfg.Demo.OutputPath)
			return nil
		},
	}
}

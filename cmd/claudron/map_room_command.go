package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprite-who-codes/claudron-dashboard/internal/mapping"
	"github.com/sprite-who-codes/claudron-dashboard/internal/services"
	"github.com/sprite-who-codes/claudron-dashboard/internal/services/gemini"
	"github.com/sprite-who-codes/claudron-dashboard/internal/spatialmap"
)

func newMapRoomCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "map-room <room> <image> <map-file>",
		Short: "Extract object annotations from a room screenshot",
		Long: "Sends a room screenshot to the vision model, validates the returned\n" +
			"annotations, and merges them into the spatial map file under the room key.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			// Fail on a missing credential before touching the image or map.
			if err := cfg.RequireGeminiKey(); err != nil {
				return services.Wrap(services.ErrConfiguration, "map-room", "run", err.Error(), nil)
			}

			logger, err := ctx.newLogger(cmd)
			if err != nil {
				return err
			}

			client := gemini.NewClient(gemini.Config{
				APIKey:         cfg.Gemini.APIKey,
				BaseURL:        cfg.Gemini.BaseURL,
				Model:          cfg.Gemini.Model,
				ThinkingBudget: cfg.Gemini.ThinkingBudget,
				TimeoutSeconds: cfg.Gemini.TimeoutSeconds,
			})

			store, err := spatialmap.Open(args[2], logger)
			if err != nil {
				return err
			}

			mapper, err := mapping.NewMapper(client, store, logger)
			if err != nil {
				return err
			}

			annotations, err := mapper.MapRoom(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Mapped %d objects in %s\n", len(annotations), args[0])
			return nil
		},
	}
}

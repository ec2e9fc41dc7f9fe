package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sprite-who-codes/claudron-dashboard/internal/logging"
	"github.com/sprite-who-codes/claudron-dashboard/internal/spatialmap"
)

const (
	ansiReset = "\x1b[0m"
	ansiBlue  = "\x1b[34m"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show [map-file]",
		Short: "Display the spatial map",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := cfg.Paths.SpatialMapPath
			if len(args) == 1 {
				path = args[0]
			}

			store, err := spatialmap.Open(path, logging.NewNop())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rooms := store.RoomIDs()
			if len(rooms) == 0 {
				fmt.Fprintf(out, "No rooms mapped yet in %s\n", store.Path())
				return nil
			}

			colorize := shouldColorize(out)
			for i, room := range rooms {
				if i > 0 {
					fmt.Fprintln(out)
				}
				for _, line := range renderSectionHeader(roomTitle(room), colorize) {
					fmt.Fprintln(out, line)
				}
				annotations, _ := store.Room(room)
				rows := make([][]string, 0, len(annotations))
				for _, a := range annotations {
					rows = append(rows, []string{
						a.Name,
						a.Description,
						strconv.FormatFloat(a.X, 'g', -1, 64),
						strconv.FormatFloat(a.Y, 'g', -1, 64),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Object", "Description", "X", "Y"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
				))
			}
			return nil
		},
	}
}

func roomTitle(room string) string {
	cleaned := strings.ReplaceAll(room, "_", " ")
	return cases.Title(language.Und).String(cleaned)
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

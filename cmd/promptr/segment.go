package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/promptr/internal/ui"
)

// sampleFacts stand in for values only the shell hook supplies.
var sampleFacts = map[string]string{
	"code":     "123",
	"hostname": "dummy-hostname.dummy-domain",
}

func newSegmentCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "segment <index>",
		Short: "Describe one rendered segment: colors, text and separator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil || index < 0 {
				return fmt.Errorf("segment index must be a non-negative integer, got %q", args[0])
			}

			cfg := app.loadConfig()
			segments, _ := app.evaluate(cmd.Context(), cfg, sampleFacts)
			if index >= len(segments) {
				return fmt.Errorf("segment %d not found, count=%d", index, len(segments))
			}

			styles := ui.NewStyles(cmd.OutOrStdout())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.Segment(index, segments[index]))
			return err
		},
	}
}

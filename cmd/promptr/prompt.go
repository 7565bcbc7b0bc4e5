package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/promptr/internal/ansi"
	"github.com/alexisbeaulieu97/promptr/internal/render"
)

func newPromptCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Render the prompt for PS1 (called by the shell hook)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.loadConfig()
			segments, _ := app.evaluate(cmd.Context(), cfg, nil)

			r := render.New(render.Options{Mode: ansi.Shell, ThinSeparatorFG: cfg.Theme.ThinSeparatorFG})
			_, err := fmt.Fprint(cmd.OutOrStdout(), r.Render(segments))
			return err
		},
	}
}

func newPreviewCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Render the prompt with raw escapes for viewing in a terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.loadConfig()
			segments, _ := app.evaluate(cmd.Context(), cfg, nil)

			r := render.New(render.Options{Mode: ansi.Raw, ThinSeparatorFG: cfg.Theme.ThinSeparatorFG})
			_, err := fmt.Fprintln(cmd.OutOrStdout(), r.Render(segments))
			return err
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/promptr/internal/ui"
)

func newListCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available segments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			styles := ui.NewStyles(cmd.OutOrStdout())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), styles.Providers(app.registry.List()))
			return err
		},
	}
}

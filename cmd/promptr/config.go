package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/promptr/internal/config"
)

func newCurrentConfigCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "current-config",
		Short: "Print the configuration in effect as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Encode(cmd.OutOrStdout(), app.loadConfig())
		},
	}
}

func newDefaultConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default-config",
		Short: "Print the default configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Encode(cmd.OutOrStdout(), config.Default())
		},
	}
}

func newLocationCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "location",
		Short: "Print the path of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.configPath()
			if err != nil {
				return fmt.Errorf("couldn't find a place to keep the configuration: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}

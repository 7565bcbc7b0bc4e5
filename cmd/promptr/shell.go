package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/promptr/internal/shell"
)

func newInitCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Print the shell code that creates a configuration and enables promptr",
		Long:  "Print the shell code that creates a default configuration file when none exists and enables promptr.\n\nFrom an interactive bash run: source <(promptr init)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, exe, err := app.shell()
			if err != nil {
				return err
			}
			return sh.Init(cmd.OutOrStdout(), exe)
		},
	}
}

func newLoadCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Like init, without creating a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, exe, err := app.shell()
			if err != nil {
				return err
			}
			return sh.Load(cmd.OutOrStdout(), exe)
		},
	}
}

func (a *appContext) shell() (shell.Shell, string, error) {
	sh, err := shell.Detect(a.env.lookupEnv)
	if err != nil {
		return 0, "", err
	}
	exe, err := a.env.executable()
	if err != nil {
		return 0, "", fmt.Errorf("locate the promptr executable: %w", err)
	}
	return sh, exe, nil
}

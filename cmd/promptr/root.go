package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel   string
	quiet      bool
	configPath string
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithEnv(systemEnvironment())
}

func newRootCmdWithEnv(env *environment) *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{env: env, flags: flags}

	cmd := &cobra.Command{
		Use:   "promptr",
		Short: "promptr renders a colorful, segmented bash prompt",
		Long: "promptr renders a colorful, segmented bash prompt.\n\n" +
			"From an interactive bash run: source <(promptr init)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Diagnostics level: debug, info, warn or error (default $"+envLogLevel+" or warn)")
	cmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress diagnostics")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Configuration file (default $PROMPTR_CONFIG or the user configuration directory)")

	cmd.AddCommand(newPromptCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newSegmentCmd(app))
	cmd.AddCommand(newCurrentConfigCmd(app))
	cmd.AddCommand(newDefaultConfigCmd())
	cmd.AddCommand(newLocationCmd(app))
	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newLoadCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

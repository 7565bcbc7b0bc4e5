package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/promptr/internal/config"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func writeVersion(w io.Writer) error {
	_, err := fmt.Fprintf(w, "promptr %s (schema %d)\ncommit: %s\nbuilt: %s\ngo: %s\n",
		version, config.SchemaVersion, commit, date, runtime.Version())
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the promptr build and configuration schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeVersion(cmd.OutOrStdout())
		},
	}
}

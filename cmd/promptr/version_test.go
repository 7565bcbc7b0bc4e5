package main

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/promptr/internal/config"
)

func TestVersionCommandPrintsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2025-10-03"

	stdout, stderr, err := execute(t, nil, "version")
	require.NoError(t, err)
	require.Empty(t, stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Equal(t, []string{
		fmt.Sprintf("promptr 1.2.3 (schema %d)", config.SchemaVersion),
		"commit: abcdef1",
		"built: 2025-10-03",
		"go: " + runtime.Version(),
	}, lines)
}

func TestVersionCommandRejectsArguments(t *testing.T) {
	_, _, err := execute(t, nil, "version", "extra")
	require.Error(t, err)
}

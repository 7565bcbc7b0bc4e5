package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/promptr/internal/config"
	"github.com/alexisbeaulieu97/promptr/internal/facts"
	"github.com/alexisbeaulieu97/promptr/internal/logger"
	"github.com/alexisbeaulieu97/promptr/internal/providers/builtin"
	"github.com/alexisbeaulieu97/promptr/internal/segment"
)

const envLogLevel = "PROMPTR_LOG_LEVEL"

// environment is the process surface the commands read from.
type environment struct {
	environ    func() []string
	lookupEnv  config.LookupFunc
	executable func() (string, error)

	// collector overrides the system fact collector when set.
	collector *facts.Collector
}

func systemEnvironment() *environment {
	return &environment{
		environ:    os.Environ,
		lookupEnv:  os.LookupEnv,
		executable: os.Executable,
	}
}

// appContext bundles the services built once flags are parsed.
type appContext struct {
	env      *environment
	flags    *rootFlags
	log      *logger.Logger
	registry *segment.Registry
}

func (a *appContext) setup(cmd *cobra.Command) error {
	level := a.flags.logLevel
	if level == "" {
		level, _ = a.env.lookupEnv(envLogLevel)
	}
	if a.flags.quiet {
		level = "disabled"
	}

	stderr := cmd.ErrOrStderr()
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: isTerminal(stderr),
		Writer:        stderr,
	})
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	a.log = log
	a.registry = builtin.Registry(log)
	return nil
}

func (a *appContext) configPath() (string, error) {
	if a.flags.configPath != "" {
		return a.flags.configPath, nil
	}
	return config.Locate(a.env.lookupEnv)
}

// loadConfig never fails: problems are logged and the defaults are used.
func (a *appContext) loadConfig() *config.Config {
	path, err := a.configPath()
	if err != nil {
		a.log.Warn(err, "using default configuration")
		return config.Default()
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		a.log.WithFields(map[string]any{"path": path}).Warn(err, "using default configuration")
	}
	return cfg
}

// state snapshots the facts for one render. fallbacks fill keys the
// environment lacks.
func (a *appContext) state(ctx context.Context, cfg *config.Config, fallbacks map[string]string) *segment.State {
	collector := a.env.collector
	if collector == nil {
		collector = facts.NewCollector(a.log)
	}

	env := collector.Collect(ctx, a.env.environ())
	for key, value := range fallbacks {
		if _, ok := env[key]; !ok {
			env[key] = value
		}
	}
	return segment.NewState(&cfg.Theme, env)
}

func (a *appContext) evaluate(ctx context.Context, cfg *config.Config, fallbacks map[string]string) ([]segment.Segment, []segment.Outcome) {
	dispatcher := segment.NewDispatcher(a.registry, a.log)
	return dispatcher.EvaluateDetailed(cfg.Segments, a.state(ctx, cfg, fallbacks))
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

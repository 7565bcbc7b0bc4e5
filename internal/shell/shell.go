// Package shell detects the invoking shell and emits the scripts that hook
// promptr into it.
package shell

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Environment variables consulted by Detect, in order.
const (
	EnvShell        = "PROMPTR_SHELL"
	EnvDefaultShell = "SHELL"
)

//go:embed scripts/*.tmpl
var scripts embed.FS

var bashTemplates = template.Must(template.ParseFS(scripts, "scripts/bash.tmpl"))

// Shell is a supported command shell.
type Shell int

const (
	Bash Shell = iota
)

func (s Shell) String() string {
	switch s {
	case Bash:
		return "bash"
	default:
		return fmt.Sprintf("Shell(%d)", int(s))
	}
}

// UnsupportedError reports a shell promptr cannot hook into.
type UnsupportedError struct {
	Name string
}

func (e *UnsupportedError) Error() string {
	if e.Name == "" {
		return "couldn't determine the shell, set " + EnvShell
	}
	return fmt.Sprintf("shell %q is incompatible with promptr", e.Name)
}

// Detect identifies the shell from $PROMPTR_SHELL, falling back to the base
// name of $SHELL. A nil lookup uses os.LookupEnv.
func Detect(lookup func(string) (string, bool)) (Shell, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	value, ok := lookup(EnvShell)
	if !ok || value == "" {
		value, _ = lookup(EnvDefaultShell)
	}

	name := ""
	if value != "" {
		name = filepath.Base(value)
	}

	switch name {
	case "bash":
		return Bash, nil
	default:
		return 0, &UnsupportedError{Name: name}
	}
}

// Init writes the first-run script: it creates the configuration file when
// missing and installs the prompt hook.
func (s Shell) Init(w io.Writer, exe string) error {
	return s.execute(w, "init", exe)
}

// Load writes the script that installs the prompt hook without touching the
// configuration file.
func (s Shell) Load(w io.Writer, exe string) error {
	return s.execute(w, "load", exe)
}

func (s Shell) execute(w io.Writer, name, exe string) error {
	if s != Bash {
		return &UnsupportedError{Name: s.String()}
	}
	data := struct{ Exe string }{Exe: Quote(exe)}
	if err := bashTemplates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s %s script: %w", s, name, err)
	}
	return nil
}

// Quote single-quotes s for a POSIX shell.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

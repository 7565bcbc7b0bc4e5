package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// EnvConfigPath overrides the configuration file location.
const EnvConfigPath = "PROMPTR_CONFIG"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Locate returns the configuration file path: $PROMPTR_CONFIG when set,
// otherwise promptr/promptr.json under the user configuration directory.
func Locate(lookup LookupFunc) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if path, ok := lookup(EnvConfigPath); ok && path != "" {
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determine configuration directory: %w", err)
	}
	return filepath.Join(dir, "promptr", "promptr.json"), nil
}

// LoadOrDefault loads the configuration at path. A missing file yields the
// default configuration and a nil error; any other failure yields the
// default configuration together with the error so callers can report it.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Default(), err
}

package config

import (
	"encoding/json"

	"github.com/alexisbeaulieu97/promptr/internal/theme"
)

// SchemaVersion is the only promptr_config value this build accepts.
const SchemaVersion uint32 = 12

// Config represents the contents of a promptr.json file.
type Config struct {
	PromptrConfig uint32          `json:"promptr_config"`
	Segments      []SegmentConfig `json:"segments" validate:"dive"`
	Theme         theme.Theme     `json:"theme"`
}

// SegmentConfig requests one segment. Args is the provider's untyped
// argument blob; nil means the provider defaults apply.
type SegmentConfig struct {
	Name string          `json:"name" validate:"required,segment_name"`
	Args json.RawMessage `json:"args,omitempty"`
}

// HasArgs reports whether the entry carries a non-null argument blob.
func (s SegmentConfig) HasArgs() bool {
	return !isNull(s.Args)
}

// Default returns the configuration used when no file is found or the
// file is rejected.
func Default() *Config {
	return &Config{
		PromptrConfig: SchemaVersion,
		Segments:      DefaultSegments(),
		Theme:         theme.Default(),
	}
}

// DefaultSegments returns the segments rendered by default.
func DefaultSegments() []SegmentConfig {
	return []SegmentConfig{
		{Name: "username"},
		{Name: "paths"},
		{Name: "command_status"},
	}
}

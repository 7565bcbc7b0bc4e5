package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/promptr/internal/theme"
	promptrerrors "github.com/alexisbeaulieu97/promptr/pkg/errors"
)

// document mirrors Config with every field optional so absent fields can be
// told apart from zero values.
type document struct {
	PromptrConfig *uint32         `json:"promptr_config"`
	Segments      []SegmentConfig `json:"segments"`
	Theme         json.RawMessage `json:"theme"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, promptrerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes a configuration document. Unknown fields anywhere are an
// error, absent fields take their defaults and promptr_config must equal
// SchemaVersion.
func Parse(path string, data []byte) (*Config, error) {
	var doc document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, promptrerrors.NewParseError(path, errorOffset(err), err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, promptrerrors.NewParseError(path, dec.InputOffset(), fmt.Errorf("unexpected data after configuration object"))
	}

	if doc.PromptrConfig == nil {
		return nil, promptrerrors.NewSchemaVersionError(path, 0, SchemaVersion)
	}
	if *doc.PromptrConfig != SchemaVersion {
		return nil, promptrerrors.NewSchemaVersionError(path, *doc.PromptrConfig, SchemaVersion)
	}

	cfg := Default()
	if doc.Segments != nil {
		cfg.Segments = make([]SegmentConfig, 0, len(doc.Segments))
		for _, seg := range doc.Segments {
			if isNull(seg.Args) {
				seg.Args = nil
			}
			cfg.Segments = append(cfg.Segments, seg)
		}
	}

	merged, err := theme.Merge(cfg.Theme, doc.Theme)
	if err != nil {
		return nil, promptrerrors.NewParseError(path, 0, err)
	}
	cfg.Theme = merged

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Encode writes cfg as indented JSON.
func Encode(w io.Writer, cfg *Config) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(cfg)
}

func errorOffset(err error) int64 {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Offset
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Offset
	}
	return 0
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

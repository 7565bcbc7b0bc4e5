package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	promptrerrors "github.com/alexisbeaulieu97/promptr/pkg/errors"
)

// ValidateConfig performs structural validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return promptrerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if cfg.PromptrConfig != SchemaVersion {
		return promptrerrors.NewValidationError("promptr_config", fmt.Sprintf("must be %d", SchemaVersion), nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := jsonishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "segment_name" {
			msg = fmt.Sprintf("%q is not a valid segment name", ve.Value())
		}
		return promptrerrors.NewValidationError(field, msg, err)
	}

	return promptrerrors.NewValidationError("config", err.Error(), err)
}

// jsonishFieldName turns "Config.Segments[1].Name" into "segments[1].name".
func jsonishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for semantic errors the schema cannot
// express. Expects defaults to have been applied.
func Validate(cfg *Config) error {
	if cfg.Fixtures == nil || cfg.Fixtures.Directory == "" {
		return &ValidationError{Field: "fixtures.directory", Message: "is required"}
	}
	if cfg.Fixtures.Extension == "" {
		return &ValidationError{Field: "fixtures.extension", Message: "is required"}
	}

	if cfg.Parser == nil || cfg.Parser.Path == "" {
		return &ValidationError{Field: "parser.path", Message: "is required"}
	}

	if cfg.Classify == nil || cfg.Classify.Marker == "" {
		return &ValidationError{Field: "classify.marker", Message: "is required"}
	}
	// A marker spanning lines can never match: classification is
	// line-by-line.
	if strings.ContainsAny(cfg.Classify.Marker, "\r\n") {
		return &ValidationError{
			Field:   "classify.marker",
			Message: "must not contain newline characters",
		}
	}

	return nil
}

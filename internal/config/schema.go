// Package config provides configuration loading and validation for
// parsecheck.json and parsecheck.yaml.
package config

// Config represents the complete harness configuration.
// Every field is optional: a missing config file means an all-defaults run.
type Config struct {
	Fixtures *FixturesConfig `json:"fixtures,omitempty" yaml:"fixtures,omitempty"`
	Parser   *ParserConfig   `json:"parser,omitempty" yaml:"parser,omitempty"`
	Classify *ClassifyConfig `json:"classify,omitempty" yaml:"classify,omitempty"`
	Scratch  *ScratchConfig  `json:"scratch,omitempty" yaml:"scratch,omitempty"`
}

// FixturesConfig configures fixture discovery.
type FixturesConfig struct {
	// Directory is the fixture directory. Not recursed into.
	Directory string `json:"directory,omitempty" yaml:"directory,omitempty"`

	// Extension is the substring a file name must contain to be
	// treated as a fixture. Substring match, not a suffix match.
	Extension string `json:"extension,omitempty" yaml:"extension,omitempty"`
}

// ParserConfig configures the parser-under-test invocation.
type ParserConfig struct {
	// Path is the parser executable. Relative paths are resolved
	// against the working directory.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Args are extra arguments passed to the parser before the
	// fixture content is attached to stdin.
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`
}

// ClassifyConfig configures verdict classification.
type ClassifyConfig struct {
	// Marker is the case-sensitive substring whose presence on any
	// line of the captured output classifies a fixture as Fail.
	Marker string `json:"marker,omitempty" yaml:"marker,omitempty"`
}

// ScratchConfig configures the capture artifact.
type ScratchConfig struct {
	// Directory holds the per-fixture capture files. Empty means the
	// system temp directory.
	Directory string `json:"directory,omitempty" yaml:"directory,omitempty"`

	// Keep retains capture files after the run for debugging.
	Keep bool `json:"keep,omitempty" yaml:"keep,omitempty"`
}

package config

// Default configuration values. A run with no config file expects the
// conventional project layout: fixtures in ./tests, parser at ./parser.
const (
	DefaultFixturesDirectory = "tests"
	DefaultFixtureExtension  = ".dcf"
	DefaultParserPath        = "./parser"
	DefaultMarker            = "Error: syntax error"
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Fixtures == nil {
		cfg.Fixtures = &FixturesConfig{}
	}
	if cfg.Fixtures.Directory == "" {
		cfg.Fixtures.Directory = DefaultFixturesDirectory
	}
	if cfg.Fixtures.Extension == "" {
		cfg.Fixtures.Extension = DefaultFixtureExtension
	}

	if cfg.Parser == nil {
		cfg.Parser = &ParserConfig{}
	}
	if cfg.Parser.Path == "" {
		cfg.Parser.Path = DefaultParserPath
	}

	if cfg.Classify == nil {
		cfg.Classify = &ClassifyConfig{}
	}
	if cfg.Classify.Marker == "" {
		cfg.Classify.Marker = DefaultMarker
	}

	if cfg.Scratch == nil {
		// Empty Directory means the system temp directory.
		cfg.Scratch = &ScratchConfig{}
	}
}

// Default returns a configuration with all default values applied.
// Used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

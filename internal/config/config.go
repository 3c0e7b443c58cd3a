package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Maazi-78/parsecheck/internal/errors"
	"github.com/Maazi-78/parsecheck/internal/schema"
)

// Config file names probed by Locate, in precedence order.
const (
	ConfigFileJSON = "parsecheck.json"
	ConfigFileYAML = "parsecheck.yaml"
)

// Locate returns the path of the config file in dir, if one exists.
// parsecheck.json takes precedence over parsecheck.yaml.
func Locate(dir string) (string, bool) {
	for _, name := range []string{ConfigFileJSON, ConfigFileYAML} {
		path := filepath.Join(dir, name)
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Load reads and parses a configuration file (JSON or YAML by extension).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	jsonData, err := normalizeToJSON(path, data)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults reads a config file and applies default values.
func LoadWithDefaults(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// LoadAndValidate reads a config file, validates it against the embedded
// JSON schema, applies defaults, and returns warnings for unknown fields.
// All failures are reported as configuration errors so callers map them
// to the config exit code.
func LoadAndValidate(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Configf("failed to read config file: %v", err)
	}

	jsonData, err := normalizeToJSON(path, data)
	if err != nil {
		return nil, nil, errors.Configf("%v", err)
	}

	if err := schema.ValidateConfig(jsonData); err != nil {
		return nil, nil, errors.Configf("%s: %v", path, err)
	}

	cfg, warnings, err := LoadWithWarnings(jsonData)
	if err != nil {
		return nil, nil, errors.Configf("%v", err)
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, warnings, errors.Configf("%v", err)
	}

	return cfg, warnings, nil
}

// normalizeToJSON converts YAML config data to JSON so that schema
// validation and unknown-field detection share a single pipeline.
// JSON input is returned unchanged.
func normalizeToJSON(path string, data []byte) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return data, nil
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if doc == nil {
		// Empty YAML file behaves like an empty config object.
		doc = map[string]interface{}{}
	}

	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML config: %w", err)
	}
	return jsonData, nil
}

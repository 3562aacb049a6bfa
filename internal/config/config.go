// Package config loads the optional refcheck.yml configuration file.
//
// The file is entirely optional: when it is absent, Default() gives exactly
// the built-in paths and extensions, so a bare invocation behaves the same
// with or without a config file present.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"refcheck/internal/schema"
)

// DefaultFileName is the config file searched in the working directory.
const DefaultFileName = "refcheck.yml"

// Config holds the verification settings.
type Config struct {
	ResultsDir      string `yaml:"results_dir"`
	OutputsDir      string `yaml:"outputs_dir"`
	ResultExtension string `yaml:"result_extension"`
	OutputExtension string `yaml:"output_extension"`
	KeepGoing       bool   `yaml:"keep_going"`
	Strict          bool   `yaml:"strict"`
}

// Load reads and parses a refcheck.yml configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
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
// schema, applies defaults, runs semantic validation, and returns
// unknown-field warnings.
func LoadAndValidate(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := schema.ValidateConfig(data); err != nil {
		return nil, nil, err
	}

	cfg, warnings, err := LoadWithWarnings(data)
	if err != nil {
		return nil, nil, err
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, warnings, err
	}

	return cfg, warnings, nil
}

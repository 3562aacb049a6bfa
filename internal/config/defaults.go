package config

// Built-in defaults. A missing config file gives exactly these values, so
// the report for a bare invocation is byte-identical either way.
const (
	DefaultResultsDir      = "./result"
	DefaultOutputsDir      = "./output"
	DefaultResultExtension = ".result"
	DefaultOutputExtension = ".output"
)

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in zero-valued fields.
func applyDefaults(cfg *Config) {
	if cfg.ResultsDir == "" {
		cfg.ResultsDir = DefaultResultsDir
	}
	if cfg.OutputsDir == "" {
		cfg.OutputsDir = DefaultOutputsDir
	}
	if cfg.ResultExtension == "" {
		cfg.ResultExtension = DefaultResultExtension
	}
	if cfg.OutputExtension == "" {
		cfg.OutputExtension = DefaultOutputExtension
	}
}

package config

import (
	"strings"

	"refcheck/internal/errors"
)

// Validate checks semantic constraints after defaults have been applied.
// The embedded schema already enforces types; this covers what the schema
// cannot express conveniently.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.ResultsDir) == "" {
		return errors.Configf("field %q: must not be empty", "results_dir")
	}
	if strings.TrimSpace(cfg.OutputsDir) == "" {
		return errors.Configf("field %q: must not be empty", "outputs_dir")
	}
	if !strings.HasPrefix(cfg.ResultExtension, ".") {
		return errors.Configf("field %q: extension %q must start with '.'", "result_extension", cfg.ResultExtension)
	}
	if !strings.HasPrefix(cfg.OutputExtension, ".") {
		return errors.Configf("field %q: extension %q must start with '.'", "output_extension", cfg.OutputExtension)
	}
	return nil
}

package config

import (
	"strings"
	"testing"

	"refcheck/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "empty results dir",
			mutate:  func(cfg *Config) { cfg.ResultsDir = "  " },
			wantErr: "results_dir",
		},
		{
			name:    "empty outputs dir",
			mutate:  func(cfg *Config) { cfg.OutputsDir = "" },
			wantErr: "outputs_dir",
		},
		{
			name:    "result extension without dot",
			mutate:  func(cfg *Config) { cfg.ResultExtension = "result" },
			wantErr: "result_extension",
		},
		{
			name:    "output extension without dot",
			mutate:  func(cfg *Config) { cfg.OutputExtension = "txt" },
			wantErr: "output_extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatal("Validate() error = nil, want config error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want mention of %q", err.Error(), tt.wantErr)
			}
			if errors.GetExitCode(err) != errors.ExitConfigError {
				t.Errorf("GetExitCode() = %d, want %d", errors.GetExitCode(err), errors.ExitConfigError)
			}
		})
	}
}

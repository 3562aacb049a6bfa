// Package refcheck provides public constants for external tools wrapping
// the refcheck CLI.
package refcheck

// Exit codes returned by the refcheck CLI.
// These constants allow wrapping scripts to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the run completed (verdicts may still be failed
	// unless strict mode was requested).
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (an artifact could not be
	// read, or strict mode saw at least one failed verdict).
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid config file,
	// unknown flag, etc.).
	ExitConfigError = 2
)

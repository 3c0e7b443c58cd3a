// Package parsecheck provides public constants for external tools and
// scripts integrating with the parsecheck CLI.
package parsecheck

// Exit codes returned by the parsecheck CLI.
// These constants allow wrapper scripts and CI pipelines to check exit
// codes symbolically rather than using magic numbers.
const (
	// ExitSuccess indicates every discovered fixture passed.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (at least one fixture
	// failed conformance, or the run itself failed).
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid config
	// file, schema violation, etc.).
	ExitConfigError = 2

	// ExitEnvError indicates an environment error (fixture directory
	// unreadable, parser executable missing, etc.).
	ExitEnvError = 3
)

// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown id, unknown flag).
	UserError = 1

	// ConfigError indicates a configuration error (unreadable config.yaml).
	ConfigError = 2

	// StorageError indicates a persistence error (tasks file not writable).
	StorageError = 3
)

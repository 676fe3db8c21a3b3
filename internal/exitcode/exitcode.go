// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, bad config, unknown command).
	UserError = 1

	// AuthError indicates missing or rejected Google credentials.
	AuthError = 2

	// SourceError indicates a seed source failed to load.
	SourceError = 3
)

// Package errors provides error handling conventions for the agentlint CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions. It also re-exports the constructors
// of github.com/cockroachdb/errors so that call sites import a single
// errors package.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrAgentsDirNotFound) {
//	    // handle missing directory
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully (warnings allowed)
//   - ExitUser (1): Validation failed, or invalid input or configuration
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. [ExitCode] extracts the code from any error chain:
//
//	err := errors.NewUserError(errors.ErrNoConfigFiles, "Add *.yaml files to .github/agents")
//	os.Exit(errors.ExitCode(err))
package errors

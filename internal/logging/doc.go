// Package logging provides structured logging for the agentlint CLI using slog.
//
// Diagnostics go to stderr so they never interleave with the validation
// report on stdout. The text handler colorizes output on terminals and
// honors NO_COLOR; the JSON handler is the stdlib one.
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Format: logging.FormatText,
//	})
//	logger.Debug("validating agent config", "path", path)
//
// Commands carry the logger in their context; use [FromContext] to fetch it
// and [ForTest] to route log output through testing.T.
package logging

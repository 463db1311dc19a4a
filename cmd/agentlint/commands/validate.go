package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentlint/internal/agent"
	agentvalidator "github.com/thoreinstein/agentlint/internal/agent/validator"
	"github.com/thoreinstein/agentlint/internal/config"
	"github.com/thoreinstein/agentlint/internal/errors"
	"github.com/thoreinstein/agentlint/internal/logging"
	"github.com/thoreinstein/agentlint/internal/validator"
)

// runValidate discovers the agent configurations, validates each one in
// name order and prints the report. Per-file failures never stop the run.
func runValidate(c *cobra.Command, opts *rootOptions) error {
	logger := logging.FromContext(c.Context())

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return errors.NewConfigError(err)
	}
	logger.Debug("loaded config",
		"agents_dir", cfg.AgentsDir,
		"pattern", cfg.Pattern,
		"format", cfg.Format)

	reporter := validator.NewReporter(c.OutOrStdout(), validator.Format(cfg.Format))

	files, err := agent.Discover(cfg.AgentsDir, cfg.Pattern)
	switch {
	case errors.Is(err, agent.ErrDirNotFound):
		if err := reporter.Fatal(cfg.AgentsDir+" directory not found", "Run this command from the repository root"); err != nil {
			return errors.NewSystemError(err, "")
		}
		return errors.NewReportedError(errors.Mark(err, errors.ErrAgentsDirNotFound), errors.ExitUser)
	case err != nil:
		return errors.NewSystemError(err, "Check the permissions of "+cfg.AgentsDir)
	}

	reporter.Banner()

	if len(files) == 0 {
		dir := strings.TrimSuffix(cfg.AgentsDir, "/") + "/"
		if err := reporter.Notice("No YAML files found in " + dir); err != nil {
			return errors.NewSystemError(err, "")
		}
		return errors.NewReportedError(errors.Wrap(errors.ErrNoConfigFiles, dir), errors.ExitUser)
	}

	reporter.Found(len(files))

	v := agentvalidator.New(logger)
	report := validator.NewReport()
	for _, path := range files {
		reporter.FileStart(path)
		fr := report.Add(path, v.ValidateFile(path))
		reporter.FileDone(fr)
	}

	if err := reporter.Summary(report); err != nil {
		return errors.NewSystemError(err, "")
	}

	logger.Info("validation complete",
		"files", len(report.Files),
		"errors", report.TotalErrors,
		"warnings", report.TotalWarnings,
		"outcome", report.Outcome)

	if report.Failed() {
		return errors.NewExitError(errors.ErrValidationFailed, errors.ExitUser)
	}
	return nil
}

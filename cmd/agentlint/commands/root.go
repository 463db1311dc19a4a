// Package commands implements the agentlint CLI.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/agentlint/cmd"
	"github.com/thoreinstein/agentlint/internal/config"
	"github.com/thoreinstein/agentlint/internal/errors"
	"github.com/thoreinstein/agentlint/internal/logging"
	"github.com/thoreinstein/agentlint/internal/paths"
)

// debugEnv raises the log level when no -v flag is given.
const debugEnv = config.EnvPrefix + "_DEBUG"

// rootOptions holds the flag values of one command tree.
type rootOptions struct {
	agentsDir  string
	pattern    string
	format     string
	configFile string

	verbosity int
	quiet     bool
	logFormat string
	logFile   string

	// logCloser releases the --log-file handle once the command finishes.
	logCloser io.Closer
}

// Execute runs the agentlint command with os.Args.
func Execute() error {
	return execute(context.Background(), newRootCmd(), os.Args[1:])
}

func execute(ctx context.Context, root *cobra.Command, args []string) error {
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	def := config.Default()

	root := &cobra.Command{
		Use:   "agentlint",
		Short: "Validate custom agent configuration files",
		Long: `agentlint validates the custom agent configurations stored in
.github/agents/*.yaml against the agent schema.

Each file must be a YAML mapping with the required fields (name, description,
role, skills, tools, context, standards, deliverables, example_tasks and
files_to_reference). Missing fields and malformed lists are errors; empty
fields, short lists, short descriptions and unusual roles are warnings.

The command exits 1 when any file has errors, when the agents directory is
missing or when it holds no matching files.`,
		Example: `  # Validate .github/agents/*.yaml from the repository root
  agentlint

  # Validate another directory and emit JSON
  agentlint --dir configs/agents --format json

  # Show which checks run
  agentlint -vv`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			config.Init()
			if err := bindFlags(c.Root()); err != nil {
				return errors.NewSystemError(err, "")
			}
			return setupLogging(c, opts)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return opts.closeLog()
		},
		RunE: func(c *cobra.Command, _ []string) error {
			defer func() { _ = opts.closeLog() }()
			return runValidate(c, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.agentsDir, "dir", def.AgentsDir,
		"directory holding agent configurations")
	flags.StringVar(&opts.pattern, "pattern", def.Pattern,
		"file name pattern inside the agents directory")
	flags.StringVar(&opts.format, "format", def.Format,
		"report format: text, json")
	flags.StringVar(&opts.configFile, "config", "",
		"config file (default: ./agentlint.yaml, then "+paths.ConfigDir()+"/agentlint.yaml)")
	flags.CountVarP(&opts.verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false,
		"suppress log output below error level")
	flags.StringVar(&opts.logFormat, "log-format", string(logging.FormatText),
		"log format: text, json")
	flags.StringVar(&opts.logFile, "log-file", "",
		"write logs to file in JSON format")

	root.Version = cmd.Version
	root.SetVersionTemplate("agentlint version {{.Version}}\n")

	// Errors are printed by main so the exit code and output stay in one place.
	root.SilenceErrors = true
	root.SilenceUsage = true

	root.AddCommand(newVersionCmd())
	return root
}

// bindFlags makes the report flags override config file and environment
// values. Viper only prefers a bound flag when it was set explicitly.
func bindFlags(root *cobra.Command) error {
	bindings := map[string]string{
		config.KeyAgentsDir: "dir",
		config.KeyPattern:   "pattern",
		config.KeyFormat:    "format",
	}
	for key, name := range bindings {
		if err := viper.BindPFlag(key, root.PersistentFlags().Lookup(name)); err != nil {
			return errors.Wrapf(err, "binding --%s", name)
		}
	}
	return nil
}

// setupLogging configures the default logger based on verbosity flags and
// stores it in the command context.
func setupLogging(c *cobra.Command, opts *rootOptions) error {
	if opts.quiet && opts.verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"),
			"Pass either -q or -v")
	}

	var level slog.Level
	if opts.quiet {
		level = slog.LevelError
	} else {
		v := opts.verbosity

		// flags win over the environment
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var primary slog.Handler
	switch logging.Format(opts.logFormat) {
	case logging.FormatJSON:
		primary = slog.NewJSONHandler(c.ErrOrStderr(), handlerOpts)
	case logging.FormatText:
		primary = logging.NewHandler(c.ErrOrStderr(), handlerOpts)
	default:
		return errors.NewUserError(errors.Newf("invalid log format %q", opts.logFormat),
			"Use --log-format text or --log-format json")
	}

	handler := primary
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"),
				"Check that the --log-file directory exists and is writable")
		}
		opts.logCloser = f
		// file output is always JSON
		handler = logging.NewMultiHandler(primary, slog.NewJSONHandler(f, handlerOpts))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	c.SetContext(logging.NewContext(ctx, logger))

	return nil
}

func (o *rootOptions) closeLog() error {
	if o.logCloser == nil {
		return nil
	}
	err := o.logCloser.Close()
	o.logCloser = nil
	return errors.Wrap(err, "closing log file")
}

// PrintError writes err and its suggestion, if any, to w. Failures that
// were already part of the command output are skipped.
func PrintError(w io.Writer, err error) {
	if err == nil || errors.Reported(err) {
		return
	}

	fmt.Fprintln(w, color.RedString("Error: %s", err.Error()))

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "  %s\n", exitErr.Suggestion)
		return
	}
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(w, "  Run 'agentlint --help' for usage")
	}
}

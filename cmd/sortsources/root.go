package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"sortsources/internal/config"
	"sortsources/internal/errors"
	"sortsources/internal/logging"
	"sortsources/internal/prompt"
	"sortsources/internal/rewrite"
	"sortsources/internal/version"
)

// rootOptions holds the CLI flag values
type rootOptions struct {
	force       bool
	configPath  string
	logFormat   string
	logLevel    string
	diffContext int

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	o := &rootOptions{stdin: stdin, stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   "sortsources [flags] filename1 filename2 ...",
		Short: "Sort C-ish source file names in GYP/GN files",
		Long: `Given GYP/GN filenames, sort the C-ish source files listed in them.

Lines are matched with simple patterns; the build file syntax is not parsed.
A run of quoted source entries ending in .c, .cc, .cpp, .h, .mm, .rc,
.rc.version, .ico, .def or .release is sorted, and comment lines directly
above an entry move with it. A blank line inside a list splits it into two
separately sorted lists.

Shows a diff and asks for confirmation before rewriting each file.

Examples:
  sortsources BUILD.gn
  sortsources -f foo.gyp bar.gypi
  git diff --name-only | grep -E '\.(gn|gni|gyp|gypi)$' | xargs sortsources`,
		Version:       version.Info(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          o.run,
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(version.Full() + "\n")

	flags := cmd.Flags()
	flags.BoolVarP(&o.force, "force", "f", false, "Turn off confirmation prompt")
	flags.StringVar(&o.configPath, "config", "", "Config file (default: ./"+config.ConfigName+".{json,yaml,toml})")
	flags.StringVar(&o.logFormat, "log-format", "", "Log format: human or json")
	flags.StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.IntVar(&o.diffContext, "diff-context", 3, "Number of context lines in the diff")

	return cmd
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		_ = cmd.Help()
		return errors.NewSortError(errors.Usage, "no filenames given", nil)
	}

	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Logging, o.stderr)
	opts := rewrite.Options{
		Confirm:     cfg.Confirm,
		DiffContext: cfg.Diff.Context,
	}
	p := rewrite.NewProcessor(opts, prompt.YesNo(o.stdin, o.stdout), o.stdout, logger)

	summary, err := p.ProcessFiles(args)
	logger.Debug("Processing finished", map[string]interface{}{
		"files":     len(args),
		"unchanged": summary.Unchanged,
		"declined":  summary.Declined,
		"written":   summary.Written,
	})
	return err
}

// loadConfig resolves the effective configuration.
// Precedence: CLI flag > SORTSOURCES_* env var > config file > defaults
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.NewSortError(errors.InternalError, "cannot determine working directory", err)
	}

	result, err := config.LoadConfig(wd, o.configPath)
	if err != nil {
		return nil, errors.NewSortError(errors.ConfigInvalid, "cannot load configuration", err)
	}

	cfg := result.Config
	if o.force {
		cfg.Confirm = false
	}
	flags := cmd.Flags()
	if flags.Changed("log-format") {
		cfg.Logging.Format = o.logFormat
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if flags.Changed("diff-context") {
		cfg.Diff.Context = o.diffContext
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.NewSortError(errors.ConfigInvalid, "invalid configuration", err).
			WithDetails(map[string]string{"configPath": result.ConfigPath})
	}
	return cfg, nil
}

// newLogger builds the logger described by a validated logging config
func newLogger(cfg config.LoggingConfig, out io.Writer) *logging.Logger {
	logFormat := logging.HumanFormat
	if cfg.Format == "json" {
		logFormat = logging.JSONFormat
	}
	return logging.NewLogger(logging.Config{
		Format: logFormat,
		Level:  logging.LogLevel(cfg.Level),
		Output: out,
	})
}

// execute runs the root command and returns the process exit code
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		logger := logging.NewLogger(logging.Config{
			Format: logging.HumanFormat,
			Level:  logging.ErrorLevel,
			Output: stderr,
		})
		fields := map[string]interface{}{
			"error": err.Error(),
		}
		if fixes := errors.GetSuggestedFixes(errors.CodeOf(err)); len(fixes) > 0 {
			fields["hint"] = fixes[0].Description
		}
		logger.Error("Command execution failed", fields)
		return 1
	}
	return 0
}

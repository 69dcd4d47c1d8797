// Package cli implements the typex command-line interface.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-typex/internal/config"
	"github.com/hasbyte1/go-typex/internal/input"
	"github.com/hasbyte1/go-typex/internal/logging"
)

// app carries the streams and resolved settings shared by every command.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time

	// Global flags
	configPath  string
	output      string
	inputFormat string
	verbose     bool

	// Resolved values
	cfg    *config.Config
	logger *slog.Logger
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		now:    time.Now,
		cfg:    config.Default(),
		logger: slog.New(slog.DiscardHandler),
	}
}

// NewRootCmd builds the typex command tree reading from stdin and writing
// to stdout and stderr.
func NewRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return newApp(stdin, stdout, stderr).rootCmd()
}

// Execute runs the CLI against the process streams.
func Execute() error {
	return NewRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "typex",
		Short: "Filter, project and aggregate YAML, JSON and TOML item lists",
		Long: `typex reads a list of items from a file or stdin and filters, projects,
aggregates, hashes or pretty-prints it.

Input is a YAML or JSON list (a single document is a one-item list) or a
TOML document with an "items" array.

Examples:
  typex where items.yaml --member status --eq active --mode first
  typex foreach items.json --member name
  cat nums.yaml | typex sum
  typex date +2w --ago`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to config file")
	flags.Var(newEnumValue(&a.output, "yaml", "yaml", "json"), "format", "Output encoding: yaml or json (default from config)")
	flags.Var(newEnumValue(&a.inputFormat, "", "auto", "yaml", "json", "toml"), "input", "Input format: yaml, json or toml (default from file extension)")
	flags.BoolVar(&a.verbose, "verbose", false, "Log debug output to stderr")

	root.AddCommand(
		a.whereCmd(),
		a.foreachCmd(),
		a.sumCmd(),
		a.containsCmd(),
		a.hashCmd(),
		a.formatCmd(),
		a.dateCmd(),
		a.flattenCmd(),
		a.sliceCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.logger = logging.New(a.stderr, a.verbose)

	cfg, path, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg
	a.logger.Debug("config loaded", "path", path, "mode", cfg.DefaultMode, "algorithm", cfg.DefaultAlgorithm)

	if !cmd.Flags().Changed("format") {
		a.output = cfg.Output
	}
	return nil
}

// readItems decodes the items in args[0], or stdin when there is no
// argument or it is "-".
func (a *app) readItems(args []string) ([]any, error) {
	format, err := input.ParseFormat(a.inputFormat)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 || args[0] == "-" {
		a.logger.Debug("reading items", "source", "stdin", "format", format)
		return input.Decode(a.stdin, format)
	}
	a.logger.Debug("reading items", "source", args[0], "format", format)
	return input.ReadFile(args[0], format)
}

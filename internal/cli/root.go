package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Database string
	Config   string
	Search   string
	Sort     string

	// RunIDs allows overriding the run id generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs RunIDGenerator
}

// Subcommands lists the valid subcommand names.
var Subcommands = []string{"add", "done", "remove"}

// NewRootCommand creates the root command for the todo CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "todo - a tiny task tracker",
		Long: `A command-line task tracker backed by a local SQLite database.

With no arguments, lists every todo. Remove, done and search accept
either a numeric id or a title; anything that parses as an integer is
treated as an id.

Examples:
  todo add "buy milk" "walk dog"
  todo done 1
  todo remove "walk dog"
  todo --search milk
  todo --sort title`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTodo(cmd, opts, nil)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	flags.StringVar(&opts.Database, "db", "", "path to SQLite database (default $XDG_DATA_HOME/todo/todo.db)")
	flags.StringVar(&opts.Config, "config", "", "path to config file (default $XDG_CONFIG_HOME/todo/config.yaml)")
	flags.StringVarP(&opts.Search, "search", "s", "", "show the todo with this id, or todos whose title contains this text")
	flags.StringVarP(&opts.Sort, "sort", "o", "", "show todos sorted by column (id|title|done)")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewDoneCommand(opts))

	return cmd
}

// Execute runs the CLI with args and returns the process exit code.
// Errors are reported on stderr in the format selected by --format.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return execute(ctx, &RootOptions{}, args, stdout, stderr)
}

func execute(ctx context.Context, opts *RootOptions, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	// Anything cobra rejects before our RunE is a usage problem.
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		exitErr = WrapExitError(ExitUsageError, "invalid usage", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: stderr}
	_ = formatter.Error(exitErr)
	return exitErr.Code
}

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/todo/internal/command"
	"github.com/roach88/todo/internal/config"
	"github.com/roach88/todo/internal/dispatch"
	"github.com/roach88/todo/internal/present"
	"github.com/roach88/todo/internal/store"
)

// RunIDGenerator produces the id attached to every log line of one invocation.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-ordered UUIDv7 run ids.
type UUIDv7Generator struct{}

// Generate implements RunIDGenerator.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// runTodo is the single path every command takes: select the command, load
// configuration, open the store, dispatch.
func runTodo(cmd *cobra.Command, opts *RootOptions, sub command.Command) error {
	// Resolve the command first so usage errors never touch the store.
	sel := command.Selection{Subcommand: sub}
	if cmd.Flags().Changed("search") {
		sel.Search = &opts.Search
	}
	if cmd.Flags().Changed("sort") {
		sel.Sort = &opts.Sort
	}
	c, err := command.Select(sel)
	if err != nil {
		return WrapExitError(ExitUsageError, "invalid command", err)
	}

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return WrapExitError(ExitUsageError, "invalid configuration", err)
	}

	renderer, err := present.New(cfg.Format, cmd.OutOrStdout())
	if err != nil {
		return WrapExitError(ExitUsageError, "invalid configuration", err)
	}

	runIDs := opts.RunIDs
	if runIDs == nil {
		runIDs = UUIDv7Generator{}
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose).With("run", runIDs.Generate())

	if cfg.DefaultDatabase {
		if err := os.MkdirAll(filepath.Dir(cfg.Database), 0o755); err != nil {
			return WrapExitError(ExitFailure, "failed to create data directory", err)
		}
	}

	logger.Debug("opening database", "path", cfg.Database)
	st, err := store.Open(cfg.Database)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Debug("dispatching", "command", c.Name())
	if err := dispatch.New(st, renderer, logger).Run(ctx, c); err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("%s failed", c.Name()), err)
	}
	return nil
}

// resolveConfig layers explicitly set flags over the loaded configuration.
func resolveConfig(cmd *cobra.Command, opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Database = opts.Database
		cfg.DefaultDatabase = false
	}
	if flags.Changed("format") {
		cfg.Format = opts.Format
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.Verbose
	}

	if !present.IsValidFormat(cfg.Format) {
		return nil, fmt.Errorf("invalid format %q: must be one of %v", cfg.Format, present.ValidFormats)
	}
	// Error reporting reads the format from opts.
	opts.Format = cfg.Format

	return cfg, nil
}

// newLogger returns a text logger on w: warnings and above, or everything
// when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Package dispatch routes a parsed command to store mutations or queries.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/todo/internal/command"
	"github.com/roach88/todo/internal/present"
	"github.com/roach88/todo/internal/query"
	"github.com/roach88/todo/internal/todo"
)

// Store is the storage the dispatcher mutates and queries.
// Mutations return rows affected; zero means nothing matched.
type Store interface {
	query.Source
	Insert(ctx context.Context, title string) (int64, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	DeleteByTitle(ctx context.Context, title string) (int64, error)
	ToggleDoneByID(ctx context.Context, id int64) (int64, error)
	ToggleDoneByTitle(ctx context.Context, title string) (int64, error)
	Count(ctx context.Context) (int, error)
}

// Dispatcher executes commands against a single store handle.
type Dispatcher struct {
	store    Store
	queries  *query.Engine
	renderer present.Renderer
	logger   *slog.Logger
}

// New creates a dispatcher. A nil logger discards log output.
func New(st Store, renderer present.Renderer, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{
		store:    st,
		queries:  query.New(st),
		renderer: renderer,
		logger:   logger,
	}
}

// Run executes cmd. Multi-token commands are applied left to right and stop
// at the first error; earlier effects stay committed.
func (d *Dispatcher) Run(ctx context.Context, cmd command.Command) error {
	switch c := cmd.(type) {
	case command.Add:
		return d.mutated(ctx, d.add(ctx, c.Titles))
	case command.Remove:
		return d.mutated(ctx, d.each(ctx, c, c.Tokens, d.store.DeleteByID, d.store.DeleteByTitle))
	case command.Done:
		return d.mutated(ctx, d.each(ctx, c, c.Tokens, d.store.ToggleDoneByID, d.store.ToggleDoneByTitle))
	case command.List:
		return d.render(d.queries.List(ctx))
	case command.Search:
		return d.render(d.queries.Search(ctx, c.Query))
	case command.Sort:
		return d.render(d.queries.Sort(ctx, c.Column))
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}

func (d *Dispatcher) add(ctx context.Context, titles []string) error {
	for _, raw := range titles {
		title, err := todo.NormalizeTitle(raw)
		if err != nil {
			return err
		}

		id, err := d.store.Insert(ctx, title)
		if err != nil {
			return err
		}
		d.logger.Debug("todo added", "id", id, "title", title)
	}
	return nil
}

// each resolves every token and applies byID or byTitle to it.
func (d *Dispatcher) each(
	ctx context.Context,
	cmd command.Command,
	tokens []string,
	byID func(context.Context, int64) (int64, error),
	byTitle func(context.Context, string) (int64, error),
) error {
	for _, token := range tokens {
		ref := todo.Classify(token)

		var (
			n   int64
			err error
		)
		switch ref.Kind {
		case todo.RefID:
			n, err = byID(ctx, ref.ID)
		default:
			n, err = byTitle(ctx, ref.Title)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", ref, err)
		}

		if n == 0 {
			d.logger.Debug("no matching todo", "op", cmd.Name(), "ref", ref.String())
			continue
		}
		d.logger.Debug("todo updated", "op", cmd.Name(), "ref", ref.String())
	}
	return nil
}

// mutated logs the row count left by a mutation, including one that failed
// part way, and passes err through.
func (d *Dispatcher) mutated(ctx context.Context, err error) error {
	if !d.logger.Enabled(ctx, slog.LevelDebug) {
		return err
	}
	n, countErr := d.store.Count(ctx)
	if countErr != nil {
		d.logger.Debug("count failed", "error", countErr)
		return err
	}
	d.logger.Debug("todos stored", "count", n)
	return err
}

func (d *Dispatcher) render(todos []todo.Todo, err error) error {
	if err != nil {
		return err
	}
	if err := d.renderer.Render(todos); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

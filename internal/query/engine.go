// Package query implements the read side of the tracker: list, search and sort.
package query

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/cases"

	"github.com/roach88/todo/internal/command"
	"github.com/roach88/todo/internal/todo"
)

// Source is the read interface the engine needs from the store.
// Every method returns rows in id order.
type Source interface {
	All(ctx context.Context) ([]todo.Todo, error)
	ByID(ctx context.Context, id int64) (todo.Todo, error)
	TitleContains(ctx context.Context, substr string) ([]todo.Todo, error)
}

// Engine answers list, search and sort queries.
type Engine struct {
	src Source
}

// New creates an engine reading from src.
func New(src Source) *Engine {
	return &Engine{src: src}
}

// List returns every todo in store order.
func (e *Engine) List(ctx context.Context) ([]todo.Todo, error) {
	todos, err := e.src.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return todos, nil
}

// Search resolves q as an identifier. An id reference yields the todo with
// that id, if any. A title reference yields every todo whose title contains
// q, case-sensitively, in store order.
func (e *Engine) Search(ctx context.Context, q string) ([]todo.Todo, error) {
	ref := todo.Classify(q)

	if ref.Kind == todo.RefID {
		t, err := e.src.ByID(ctx, ref.ID)
		if errors.Is(err, todo.ErrNotFound) {
			return []todo.Todo{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("search %s: %w", ref, err)
		}
		return []todo.Todo{t}, nil
	}

	todos, err := e.src.TitleContains(ctx, ref.Title)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", ref, err)
	}
	return todos, nil
}

// Sort returns every todo reordered by col:
//   - id: descending, newest first
//   - title: ascending, case-insensitive
//   - done: not-done first
//
// Title and done sorts are stable, so ties keep store order.
func (e *Engine) Sort(ctx context.Context, col command.SortColumn) ([]todo.Todo, error) {
	todos, err := e.src.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("sort by %s: %w", col, err)
	}

	switch col {
	case command.SortByID:
		slices.SortFunc(todos, func(a, b todo.Todo) int {
			return cmp.Compare(b.ID, a.ID)
		})
	case command.SortByTitle:
		sortByFoldedTitle(todos)
	case command.SortByDone:
		slices.SortStableFunc(todos, func(a, b todo.Todo) int {
			return compareBool(a.Done, b.Done)
		})
	default:
		return nil, fmt.Errorf("sort: unknown column %q", col)
	}

	return todos, nil
}

// sortByFoldedTitle orders todos by Unicode case-folded title.
func sortByFoldedTitle(todos []todo.Todo) {
	fold := cases.Fold()
	keys := make(map[int64]string, len(todos))
	for _, t := range todos {
		keys[t.ID] = fold.String(t.Title)
	}

	slices.SortStableFunc(todos, func(a, b todo.Todo) int {
		return cmp.Compare(keys[a.ID], keys[b.ID])
	})
}

// compareBool orders false before true.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/todo/internal/todo"
)

// All returns every todo ordered by id.
//
// Returns an empty slice (not nil) if the store is empty.
func (s *Store) All(ctx context.Context) ([]todo.Todo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, done
		FROM todos
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	return scanTodos(rows)
}

// ByID retrieves a single todo by id.
// Returns todo.ErrNotFound if no row has that id.
func (s *Store) ByID(ctx context.Context, id int64) (todo.Todo, error) {
	var t todo.Todo
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, done
		FROM todos
		WHERE id = ?
	`, id).Scan(&t.ID, &t.Title, &t.Done)
	if errors.Is(err, sql.ErrNoRows) {
		return todo.Todo{}, fmt.Errorf("id %d: %w", id, todo.ErrNotFound)
	}
	if err != nil {
		return todo.Todo{}, fmt.Errorf("read todo %d: %w", id, err)
	}
	return t, nil
}

// TitleContains returns every todo whose title contains substr, ordered by id.
//
// Matching is case-sensitive: instr() compares bytes, unlike LIKE which
// folds ASCII case. An empty substr matches every row.
func (s *Store) TitleContains(ctx context.Context, substr string) ([]todo.Todo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, done
		FROM todos
		WHERE instr(title, ?) > 0 OR ? = ''
		ORDER BY id ASC
	`, substr, substr)
	if err != nil {
		return nil, fmt.Errorf("query todos by title: %w", err)
	}
	return scanTodos(rows)
}

// Count returns the number of todos.
// The dispatcher reports it in debug logs after each mutation.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM todos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count todos: %w", err)
	}
	return n, nil
}

func scanTodos(rows *sql.Rows) ([]todo.Todo, error) {
	defer rows.Close()

	todos := []todo.Todo{}
	for rows.Next() {
		var t todo.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Done); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}
	return todos, nil
}

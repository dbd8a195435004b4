package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ErrDuplicateTitle is returned when inserting a title that already exists.
var ErrDuplicateTitle = errors.New("duplicate title")

// Insert adds a todo with the given title and returns its assigned id.
// The title is stored as given; callers canonicalise it first.
//
// A title that already exists fails with ErrDuplicateTitle and leaves the
// existing row untouched.
func (s *Store) Insert(ctx context.Context, title string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO todos (title) VALUES (?)
	`, title)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert %q: %w", title, ErrDuplicateTitle)
		}
		return 0, fmt.Errorf("insert %q: %w", title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert %q: last insert id: %w", title, err)
	}
	return id, nil
}

// DeleteByID removes the todo with the given id.
// Returns the number of rows removed (0 or 1).
func (s *Store) DeleteByID(ctx context.Context, id int64) (int64, error) {
	return s.exec(ctx, "delete by id", `DELETE FROM todos WHERE id = ?`, id)
}

// DeleteByTitle removes the todo with exactly the given title.
// Returns the number of rows removed (0 or 1).
func (s *Store) DeleteByTitle(ctx context.Context, title string) (int64, error) {
	return s.exec(ctx, "delete by title", `DELETE FROM todos WHERE title = ?`, title)
}

// ToggleDoneByID flips the done flag of the todo with the given id.
// Returns the number of rows changed (0 or 1).
func (s *Store) ToggleDoneByID(ctx context.Context, id int64) (int64, error) {
	return s.exec(ctx, "toggle done by id", `UPDATE todos SET done = NOT done WHERE id = ?`, id)
}

// ToggleDoneByTitle flips the done flag of the todo with exactly the given title.
// Returns the number of rows changed (0 or 1).
func (s *Store) ToggleDoneByTitle(ctx context.Context, title string) (int64, error) {
	return s.exec(ctx, "toggle done by title", `UPDATE todos SET done = NOT done WHERE title = ?`, title)
}

func (s *Store) exec(ctx context.Context, op, query string, arg any) (int64, error) {
	result, err := s.db.ExecContext(ctx, query, arg)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: rows affected: %w", op, err)
	}
	return n, nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

package todo

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Todo is a single task record.
type Todo struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

var (
	// ErrEmptyTitle is returned when a title is empty or only whitespace.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrInvalidTitle is returned when a title contains control characters
	// such as tabs or newlines, which would break the table layout.
	ErrInvalidTitle = errors.New("title must not contain control characters")

	// ErrNotFound is returned by single-record lookups that match nothing.
	ErrNotFound = errors.New("todo not found")
)

// CanonicalTitle returns the NFC form of s.
func CanonicalTitle(s string) string {
	return norm.NFC.String(s)
}

// NormalizeTitle validates a title for insertion and returns its canonical form.
func NormalizeTitle(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyTitle, s)
	}
	if strings.IndexFunc(s, unicode.IsControl) >= 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTitle, s)
	}
	return CanonicalTitle(s), nil
}

// DoneLabel renders the done flag the way the table shows it.
func DoneLabel(done bool) string {
	if done {
		return "yes"
	}
	return "no"
}

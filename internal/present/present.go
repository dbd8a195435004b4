// Package present renders todo sequences for the terminal.
//
// Renderers never filter or reorder: they print exactly the sequence given.
package present

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/roach88/todo/internal/todo"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// IsValidFormat checks if the format is one of the allowed values.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Renderer writes a sequence of todos to an output.
type Renderer interface {
	Render(todos []todo.Todo) error
}

// New returns the renderer for format writing to w.
func New(format string, w io.Writer) (Renderer, error) {
	switch format {
	case FormatText:
		return &Table{Writer: w}, nil
	case FormatJSON:
		return &JSON{Writer: w}, nil
	default:
		return nil, fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
	}
}

// columnGap is the number of spaces between table columns.
const columnGap = 2

// Table renders todos as an aligned id/title/done table.
// The done column reads "yes" or "no". An empty sequence prints the header only.
// Columns are padded by terminal display width, so wide (CJK) runes align.
type Table struct {
	Writer io.Writer
}

// Render implements Renderer.
func (r *Table) Render(todos []todo.Todo) error {
	rows := make([][3]string, 0, len(todos)+1)
	rows = append(rows, [3]string{"id", "title", "done"})
	for _, t := range todos {
		rows = append(rows, [3]string{
			strconv.FormatInt(t.ID, 10),
			escapeControl(t.Title),
			todo.DoneLabel(t.Done),
		})
	}

	// The last column is never padded.
	var widths [2]int
	for _, row := range rows {
		for i := range widths {
			widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for i, w := range widths {
			b.WriteString(runewidth.FillRight(row[i], w+columnGap))
		}
		b.WriteString(row[2])
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.Writer, b.String())
	return err
}

// escapeControl replaces control characters with Go escape sequences so a
// stored title always occupies a single table cell.
func escapeControl(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsControl(r) {
			b.WriteRune(r)
			continue
		}
		q := strconv.QuoteRune(r)
		b.WriteString(q[1 : len(q)-1])
	}
	return b.String()
}

// JSON renders todos as an indented JSON array.
type JSON struct {
	Writer io.Writer
}

// Render implements Renderer.
func (r *JSON) Render(todos []todo.Todo) error {
	if todos == nil {
		todos = []todo.Todo{}
	}
	enc := json.NewEncoder(r.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(todos)
}

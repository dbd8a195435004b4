// Package command defines the typed commands the CLI can ask for and the
// precedence rules that pick one when several options are given at once.
package command

import (
	"fmt"
	"strings"
)

// Command is one parsed user request. The set of implementations is closed;
// consumers switch over the concrete types.
type Command interface {
	// Name is the user-facing name of the command.
	Name() string
	command()
}

// Add inserts one todo per title, in order.
type Add struct {
	Titles []string
}

// Remove deletes the todo addressed by each token, in order.
type Remove struct {
	Tokens []string
}

// Done flips the done flag of the todo addressed by each token, in order.
type Done struct {
	Tokens []string
}

// List shows every todo in store order.
type List struct{}

// Search shows the todo with id Query, or every todo whose title contains Query.
type Search struct {
	Query string
}

// Sort shows every todo reordered by Column.
type Sort struct {
	Column SortColumn
}

func (Add) Name() string    { return "add" }
func (Remove) Name() string { return "remove" }
func (Done) Name() string   { return "done" }
func (List) Name() string   { return "list" }
func (Search) Name() string { return "search" }
func (Sort) Name() string   { return "sort" }

func (Add) command()    {}
func (Remove) command() {}
func (Done) command()   {}
func (List) command()   {}
func (Search) command() {}
func (Sort) command()   {}

// SortColumn names a column todos can be sorted by.
type SortColumn string

const (
	SortByID    SortColumn = "id"
	SortByTitle SortColumn = "title"
	SortByDone  SortColumn = "done"
)

// SortColumns lists the valid sort columns in help order.
var SortColumns = []SortColumn{SortByID, SortByTitle, SortByDone}

// ParseSortColumn validates a user-supplied sort column.
func ParseSortColumn(s string) (SortColumn, error) {
	for _, c := range SortColumns {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid sort column %q: must be one of %s", s, strings.Join(sortColumnNames(), ", "))
}

func sortColumnNames() []string {
	names := make([]string, len(SortColumns))
	for i, c := range SortColumns {
		names[i] = string(c)
	}
	return names
}

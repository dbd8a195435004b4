package command

// Selection is everything the argument parser saw, before precedence is applied.
type Selection struct {
	// Search is non-nil when a search option was given, even if empty.
	Search *string

	// Sort is the raw sort column, nil when not given.
	Sort *string

	// Subcommand is the parsed subcommand, nil for a bare invocation.
	Subcommand Command
}

// Select applies precedence: search, then sort, then subcommand, then list.
// A bare invocation is a List, never an error.
func Select(sel Selection) (Command, error) {
	if sel.Search != nil {
		return Search{Query: *sel.Search}, nil
	}

	if sel.Sort != nil {
		col, err := ParseSortColumn(*sel.Sort)
		if err != nil {
			return nil, err
		}
		return Sort{Column: col}, nil
	}

	if sel.Subcommand != nil {
		return sel.Subcommand, nil
	}

	return List{}, nil
}

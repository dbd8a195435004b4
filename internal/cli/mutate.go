package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/todo/internal/command"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> [<title>...]",
		Short: "Add one todo per title",
		Long: `Add one todo per title, in the order given.

Titles must be unique. If a title already exists the command fails;
titles before it in the same invocation stay added.

Example:
  todo add "buy milk" "walk dog"`,
		Args: requireArgs("title"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTodo(cmd, rootOpts, command.Add{Titles: args})
		},
	}
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id|title> [<id|title>...]",
		Short: "Remove todos by id or title",
		Long: `Remove todos by id or title.

Tokens that parse as integers are ids; everything else is an exact
title. Removing something that does not exist is not an error.

Example:
  todo remove 3 "walk dog"`,
		Args: requireArgs("id or title"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTodo(cmd, rootOpts, command.Remove{Tokens: args})
		},
	}
}

// NewDoneCommand creates the done command.
func NewDoneCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id|title> [<id|title>...]",
		Short: "Toggle todos between done and not done",
		Long: `Toggle the done flag of todos by id or title.

Running done twice on the same todo restores it. Tokens that parse as
integers are ids; everything else is an exact title.

Example:
  todo done 1 "walk dog"`,
		Args: requireArgs("id or title"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTodo(cmd, rootOpts, command.Done{Tokens: args})
		},
	}
}

// requireArgs demands at least one positional argument, unless a search or
// sort option takes precedence over the subcommand.
func requireArgs(noun string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if queryRequested(cmd) {
			return nil
		}
		if len(args) == 0 {
			return NewExitError(ExitUsageError, fmt.Sprintf("%s requires at least one %s", cmd.Name(), noun))
		}
		return nil
	}
}

func queryRequested(cmd *cobra.Command) bool {
	flags := cmd.Flags()
	return flags.Changed("search") || flags.Changed("sort")
}

// Package main provides the todo CLI entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/roach88/todo/internal/cli"
	"github.com/roach88/todo/internal/config"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run loads .env from the working directory and executes the CLI.
// A malformed .env is a runtime failure, not a usage error.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitFailure
	}
	return cli.Execute(ctx, args, stdout, stderr)
}

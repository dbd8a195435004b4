package harness

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/todo/internal/cli"
	"github.com/roach88/todo/internal/store"
	"github.com/roach88/todo/internal/todo"
)

// Run executes a scenario against the database at dbPath, which should not
// exist yet. A non-empty configPath is passed as --config and must exist;
// an empty one leaves the default config location in effect.
func Run(ctx context.Context, scenario *Scenario, dbPath, configPath string) (*Result, error) {
	result := NewResult()

	for i, step := range scenario.Steps {
		args := append(append([]string{}, step.Args...), "--db", dbPath)
		if configPath != "" {
			args = append(args, "--config", configPath)
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		code := cli.Execute(ctx, args, stdout, stderr)

		result.Steps = append(result.Steps, StepResult{
			Args:   step.Args,
			Exit:   code,
			Stdout: stdout.String(),
			Stderr: stderr.String(),
		})

		if code != step.Exit {
			result.AddError(fmt.Sprintf("steps[%d] %s: exit %d, expected %d (stderr: %s)",
				i, commandLine(step.Args), code, step.Exit, strings.TrimSpace(stderr.String())))
		}
	}

	if scenario.Final != nil {
		if err := checkFinalState(ctx, dbPath, scenario.Final, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// checkFinalState compares the store contents with the expected rows.
func checkFinalState(ctx context.Context, dbPath string, want *FinalState, result *Result) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open store for final state: %w", err)
	}
	defer st.Close()

	got, err := st.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to read final state: %w", err)
	}

	expected := make([]todo.Todo, len(want.Todos))
	for i, e := range want.Todos {
		expected[i] = todo.Todo{ID: e.ID, Title: e.Title, Done: e.Done}
	}

	if len(got) != len(expected) {
		result.AddError(fmt.Sprintf("final: %d todos, expected %d: got %v", len(got), len(expected), got))
		return nil
	}
	for i := range expected {
		if got[i] != expected[i] {
			result.AddError(fmt.Sprintf("final[%d]: got %+v, expected %+v", i, got[i], expected[i]))
		}
	}
	return nil
}

// Transcript renders the steps of a result as a readable session log.
func (r *Result) Transcript() []byte {
	var b strings.Builder
	for _, step := range r.Steps {
		b.WriteString("$ ")
		b.WriteString(commandLine(step.Args))
		b.WriteString("\n")
		b.WriteString(step.Stdout)
		fmt.Fprintf(&b, "[exit %d]\n", step.Exit)
	}
	return []byte(b.String())
}

// commandLine formats args the way a user would type them.
func commandLine(args []string) string {
	parts := []string{"todo"}
	for _, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

package harness

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario in a temp directory, fails the test on
// any step or final-state mismatch, and compares the transcript against
// testdata/golden/{scenario.Name}.golden. Callers isolate the default config
// location (see testutil.IsolateEnv).
func RunWithGolden(t *testing.T, scenario *Scenario) *Result {
	t.Helper()

	dir := t.TempDir()
	result, err := Run(context.Background(), scenario, filepath.Join(dir, "todo.db"), "")
	if err != nil {
		t.Fatalf("scenario %s: %v", scenario.Name, err)
	}

	for _, msg := range result.Errors {
		t.Errorf("scenario %s: %s", scenario.Name, msg)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, result.Transcript())

	return result
}

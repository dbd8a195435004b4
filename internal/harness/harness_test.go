package harness

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/todo/internal/testutil"
)

func TestScenarios(t *testing.T) {
	testutil.IsolateEnv(t)

	paths, err := filepath.Glob(filepath.Join("testdata", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		scenario, err := LoadScenario(path)
		require.NoError(t, err, path)

		t.Run(scenario.Name, func(t *testing.T) {
			result := RunWithGolden(t, scenario)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestRun_ReportsUnexpectedExit(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := t.TempDir()

	scenario := &Scenario{
		Name: "wrong_exit",
		Steps: []Step{
			{Args: []string{"add", "milk"}},
			{Args: []string{"add", "milk"}},
		},
	}

	result, err := Run(context.Background(), scenario, filepath.Join(dir, "todo.db"), "")
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "steps[1] todo add milk: exit 1, expected 0")
	assert.Contains(t, result.Steps[1].Stderr, "duplicate title")
}

func TestRun_ReportsFinalStateMismatch(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := t.TempDir()

	scenario := &Scenario{
		Name:  "wrong_final",
		Steps: []Step{{Args: []string{"add", "milk"}}},
		Final: &FinalState{Todos: []ExpectedTodo{{ID: 1, Title: "milk", Done: true}}},
	}

	result, err := Run(context.Background(), scenario, filepath.Join(dir, "todo.db"), "")
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.True(t, strings.HasPrefix(result.Errors[0], "final[0]"), result.Errors[0])
}

func TestRun_ExplicitConfigApplies(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("format: json\n"), 0o644))

	scenario := &Scenario{Name: "json_config", Steps: []Step{{Args: nil}}}

	result, err := Run(context.Background(), scenario, filepath.Join(dir, "todo.db"), configPath)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, "[]\n", result.Steps[0].Stdout)
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\nstep:\n  - args: []\n"), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_MissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - args: []\n"), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoadScenario_NoSteps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: empty\n"), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps list is required")
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestCommandLine(t *testing.T) {
	assert.Equal(t, "todo", commandLine(nil))
	assert.Equal(t, `todo add "buy milk" eggs`, commandLine([]string{"add", "buy milk", "eggs"}))
	assert.Equal(t, `todo -s ""`, commandLine([]string{"-s", ""}))
}

func TestTranscript(t *testing.T) {
	r := NewResult()
	r.Steps = append(r.Steps,
		StepResult{Args: []string{"add", "x"}, Exit: 0},
		StepResult{Args: nil, Exit: 0, Stdout: "id  title  done\n"},
	)

	assert.Equal(t, "$ todo add x\n[exit 0]\n$ todo\nid  title  done\n[exit 0]\n", string(r.Transcript()))
}

package testutil

import (
	"path/filepath"
	"testing"
)

// EnvVars are the environment variables that change CLI behaviour.
var EnvVars = []string{"TODO_DB", "TODO_FORMAT", "TODO_VERBOSE"}

// IsolateEnv blanks every TODO_* variable and points HOME and the XDG
// config and data homes at a fresh temp directory, which it returns.
// Values are restored when the test ends.
func IsolateEnv(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	for _, key := range EnvVars {
		t.Setenv(key, "")
	}
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	return dir
}

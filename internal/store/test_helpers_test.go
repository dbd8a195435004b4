package store

import (
	"context"
	"path/filepath"
	"testing"
)

// createTestStore creates a new file-backed store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// seedTitles inserts titles in order and fails the test on any error.
func seedTitles(t *testing.T, s *Store, titles ...string) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(titles))
	for _, title := range titles {
		id, err := s.Insert(context.Background(), title)
		if err != nil {
			t.Fatalf("Insert(%q) failed: %v", title, err)
		}
		ids = append(ids, id)
	}
	return ids
}

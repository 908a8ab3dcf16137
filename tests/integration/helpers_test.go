// Package integration provides shared helpers for cross-component tests of
// the solver and the solution archive.
package integration

import (
	"testing"

	"github.com/dukaforge/shootingstars/internal/sqlite"
	"github.com/dukaforge/shootingstars/pkg/stars"
)

// setupArchive creates a backend attached to an isolated temp directory.
// Each test gets its own archive instance for isolation.
func setupArchive(t *testing.T) (*sqlite.Backend, string) {
	t.Helper()
	dir := t.TempDir()
	b := sqlite.NewBackend()
	if err := b.Attach(stars.Config{Backend: stars.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { b.Detach() })
	return b, dir
}

// mustSave archives a solution or fails the test.
func mustSave(t *testing.T, b *sqlite.Backend, s *stars.Solution) string {
	t.Helper()
	id, err := b.Save(s)
	if err != nil {
		t.Fatalf("Save grid %d: %v", s.Grid, err)
	}
	return id
}

// mustGet retrieves an archived solution or fails the test.
func mustGet(t *testing.T, b *sqlite.Backend, grid int) *stars.Solution {
	t.Helper()
	s, err := b.Get(grid)
	if err != nil {
		t.Fatalf("Get grid %d: %v", grid, err)
	}
	return s
}

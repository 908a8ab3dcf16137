package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/shootingstars/internal/solver"
	"github.com/dukaforge/shootingstars/internal/sqlite"
	"github.com/dukaforge/shootingstars/pkg/stars"
)

func TestSolveAndArchiveRoundTrip(t *testing.T) {
	b, dir := setupArchive(t)

	grid := stars.MaxGrid
	result, err := solver.Solve(grid)
	require.NoError(t, err)
	require.True(t, result.Found)

	id := mustSave(t, b, stars.NewSolution(grid, result))
	require.NoError(t, b.Detach())

	// Reopen the archive and read the solution back.
	b2 := sqlite.NewBackend()
	require.NoError(t, b2.Attach(stars.Config{Backend: stars.BackendSQLite, DataDir: dir}))
	defer b2.Detach()

	got := mustGet(t, b2, int(grid))
	assert.Equal(t, id, got.SolutionID)
	assert.Equal(t, result.Moves, got.Moves)
	assert.True(t, got.Solvable)

	// The archived sequence still replays to the winning grid.
	replayed := stars.Result{Moves: got.Moves, Found: got.Solvable}.Replay(grid)
	assert.Equal(t, stars.WinningGrid, replayed)
}

func TestSweepStoresFullStateSpace(t *testing.T) {
	b, _ := setupArchive(t)

	baseline := solver.LiveNodes()
	solvable := 0
	for value := 0; value <= int(stars.MaxGrid); value++ {
		result, err := solver.Solve(stars.Grid(value))
		require.NoError(t, err, "grid %d", value)
		if result.Found {
			solvable++
		}
		mustSave(t, b, stars.NewSolution(stars.Grid(value), result))
	}

	// Repeated searches must leave no live path nodes behind.
	assert.Equal(t, baseline, solver.LiveNodes())

	solutions, err := b.List()
	require.NoError(t, err)
	require.Len(t, solutions, 512)
	assert.Equal(t, 511, solvable, "only the empty grid is unsolvable")

	// Spot-check a few archived entries against a fresh solve.
	for _, value := range []int{0, 256, 495, 511} {
		got := mustGet(t, b, value)
		fresh, err := solver.Solve(stars.Grid(value))
		require.NoError(t, err)
		assert.Equal(t, fresh.Found, got.Solvable, "grid %d", value)
		assert.Equal(t, fresh.Moves, got.Moves, "grid %d", value)
	}
}

func TestArchiveUnsolvableGrid(t *testing.T) {
	b, _ := setupArchive(t)

	result, err := solver.Solve(stars.EmptyGrid)
	require.NoError(t, err)
	require.False(t, result.Found)

	mustSave(t, b, stars.NewSolution(stars.EmptyGrid, result))

	got := mustGet(t, b, 0)
	assert.False(t, got.Solvable)
	assert.Empty(t, got.Moves)
	assert.Zero(t, got.Length)
}

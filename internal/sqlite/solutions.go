package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dukaforge/shootingstars/pkg/stars"
)

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Save persists a solution. The first save of a grid assigns a UUID v7
// SolutionID and CreatedAt; saving an already-archived grid overwrites the
// stored moves and keeps the original identity. Returns the solution ID.
func (b *Backend) Save(solution *stars.Solution) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return "", stars.ErrArchiveDetached
	}
	if solution == nil {
		return "", stars.ErrInvalidSolution
	}
	if err := solution.Validate(); err != nil {
		return "", err
	}

	movesJSON, err := json.Marshal(solution.Moves)
	if err != nil {
		return "", fmt.Errorf("encoding moves: %w", err)
	}

	// Reuse the identity of an existing row for the same grid.
	var existingID, existingCreated string
	err = b.db.QueryRow(
		"SELECT solution_id, created_at FROM solutions WHERE grid = ?",
		solution.Grid,
	).Scan(&existingID, &existingCreated)
	switch {
	case err == sql.ErrNoRows:
		solution.SolutionID = newUUID()
		solution.CreatedAt = time.Now().UTC()
		_, err = b.db.Exec(
			"INSERT INTO solutions (solution_id, grid, rendered, moves, length, solvable, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			solution.SolutionID, solution.Grid, solution.Rendered,
			string(movesJSON), solution.Length, boolToInt(solution.Solvable),
			solution.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return "", fmt.Errorf("inserting solution: %w", err)
		}
	case err != nil:
		return "", fmt.Errorf("checking solution existence: %w", err)
	default:
		solution.SolutionID = existingID
		if created, perr := time.Parse(time.RFC3339, existingCreated); perr == nil {
			solution.CreatedAt = created
		}
		_, err = b.db.Exec(
			"UPDATE solutions SET rendered = ?, moves = ?, length = ?, solvable = ? WHERE grid = ?",
			solution.Rendered, string(movesJSON), solution.Length,
			boolToInt(solution.Solvable), solution.Grid,
		)
		if err != nil {
			return "", fmt.Errorf("updating solution: %w", err)
		}
	}

	return solution.SolutionID, nil
}

// Get returns the archived solution for the given grid value.
// Returns ErrNotFound if the grid has not been archived.
func (b *Backend) Get(grid int) (*stars.Solution, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, stars.ErrArchiveDetached
	}

	row := b.db.QueryRow(
		"SELECT solution_id, grid, rendered, moves, length, solvable, created_at FROM solutions WHERE grid = ?",
		grid,
	)
	solution, err := hydrateSolution(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, stars.ErrNotFound
		}
		return nil, fmt.Errorf("getting solution for grid %d: %w", grid, err)
	}
	return solution, nil
}

// List returns all archived solutions ordered by grid value.
func (b *Backend) List() ([]*stars.Solution, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, stars.ErrArchiveDetached
	}

	rows, err := b.db.Query(
		"SELECT solution_id, grid, rendered, moves, length, solvable, created_at FROM solutions ORDER BY grid",
	)
	if err != nil {
		return nil, fmt.Errorf("listing solutions: %w", err)
	}
	defer rows.Close()

	var solutions []*stars.Solution
	for rows.Next() {
		solution, err := hydrateSolution(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning solution: %w", err)
		}
		solutions = append(solutions, solution)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating solutions: %w", err)
	}
	return solutions, nil
}

// scanner abstracts *sql.Row and *sql.Rows for hydration.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateSolution scans one solutions row into a *stars.Solution.
func hydrateSolution(row scanner) (*stars.Solution, error) {
	var (
		solution  stars.Solution
		movesJSON string
		solvable  int
		createdAt string
	)
	err := row.Scan(
		&solution.SolutionID, &solution.Grid, &solution.Rendered,
		&movesJSON, &solution.Length, &solvable, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(movesJSON), &solution.Moves); err != nil {
		return nil, fmt.Errorf("decoding moves: %w", err)
	}
	solution.Solvable = solvable != 0
	solution.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &solution, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

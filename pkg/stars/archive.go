package stars

import "errors"

// Archive defines the interface for backend-agnostic solution storage.
// Callers attach to a backend, save and query solutions, and detach when done.
type Archive interface {
	// Attach connects the archive to the backend described by config.
	// Creates the DataDir if it does not exist.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, operations return ErrArchiveDetached.
	Detach() error

	// Save persists a solution, assigning a UUID v7 SolutionID and CreatedAt
	// on first save. Saving a grid that is already archived overwrites the
	// stored moves. Returns the solution ID.
	Save(solution *Solution) (string, error)

	// Get returns the archived solution for the given grid value.
	// Returns ErrNotFound if the grid has not been archived.
	Get(grid int) (*Solution, error)

	// List returns all archived solutions ordered by grid value.
	List() ([]*Solution, error)
}

// Archive lifecycle errors.
var (
	ErrArchiveDetached = errors.New("archive is detached")
	ErrAlreadyAttached = errors.New("archive is already attached")
	ErrNotFound        = errors.New("solution not found")
)

package stars

import (
	"errors"
	"time"
)

// Solution is an archived search result for one initial grid.
type Solution struct {
	SolutionID string    // UUID v7, generated on save.
	Grid       int       // Initial grid value in [0, 511]; unique per archive.
	Rendered   string    // Textual form of the initial grid.
	Moves      []int     // Winning move sequence, oldest first; empty if unsolvable.
	Length     int       // len(Moves); meaningful only when Solvable.
	Solvable   bool      // Whether a winning sequence exists.
	CreatedAt  time.Time // Timestamp of first archival.
}

// Solution validation errors.
var (
	ErrInvalidSolution = errors.New("invalid solution data")
	ErrInvalidMove     = errors.New("move must be a cell number 1..9")
)

// Validate checks that the solution is internally consistent: the grid value
// is in range, every move names a cell 1..9, and Length matches Moves.
func (s *Solution) Validate() error {
	if s.Grid < 0 || !Grid(s.Grid).Valid() {
		return ErrGridRange
	}
	for _, move := range s.Moves {
		if move < 1 || move > 9 {
			return ErrInvalidMove
		}
	}
	if s.Length != len(s.Moves) {
		return ErrInvalidSolution
	}
	if !s.Solvable && len(s.Moves) > 0 {
		return ErrInvalidSolution
	}
	return nil
}

// NewSolution builds a Solution from a search result. The caller persists it
// through an Archive, which assigns SolutionID and CreatedAt.
func NewSolution(initial Grid, result Result) *Solution {
	return &Solution{
		Grid:     int(initial),
		Rendered: initial.String(),
		Moves:    result.Moves,
		Length:   result.Length(),
		Solvable: result.Found,
	}
}

// Package stars defines the shooting-stars puzzle model: the Grid encoding,
// the explosion transition, outcome classification, the Result and Solution
// types, the Archive interface, and the standard error values shared by the
// solver and the storage backend.
package stars

import (
	"errors"
	"strings"
)

// Grid is one configuration of the 9-cell board, packed into the nine least
// significant bits of a uint16. Cell N (1..9, row-major on the 3x3 board)
// occupies bit 9-N, so cell 1 is the most significant of the nine bits.
type Grid uint16

// Distinguished grids.
const (
	// EmptyGrid has no stars. It is the losing configuration: no cell can
	// explode, so no move is legal.
	EmptyGrid Grid = 0b000000000

	// WinningGrid has a star in every cell except the center (cell 5).
	WinningGrid Grid = 0b111101111

	// ErrorGrid is the sentinel returned by Parse for malformed input.
	// It is outside the valid [0, 511] range and must never reach the solver.
	ErrorGrid Grid = 0xFFFF

	// MaxGrid is the largest valid grid value.
	MaxGrid Grid = 0b111111111
)

// Grid model errors.
var (
	ErrGridLength = errors.New("grid text must be exactly 11 characters")
	ErrGridChar   = errors.New("grid text may only contain '*', '.' and row breaks")
	ErrGridRange  = errors.New("grid value out of range [0, 511]")
)

// Outcome classifies a grid for the search.
type Outcome int

// Outcome values.
const (
	// Won means the grid equals WinningGrid.
	Won Outcome = iota
	// Lost means the grid equals EmptyGrid; no move is legal.
	Lost
	// Continue means the grid is non-terminal and has at least one star.
	Continue
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "continue"
	}
}

// toggleMasks[c] is the set of cells flipped when cell c explodes. The table
// is a fixed property of the puzzle: corners flip themselves, their two edge
// neighbors and the center; edge midpoints flip their full row or column;
// the center flips itself and the four edge midpoints.
var toggleMasks = [10]Grid{
	0,           // unused; cells are numbered 1..9
	0b110110000, // 1 -> {1,2,4,5}
	0b111000000, // 2 -> {1,2,3}
	0b011011000, // 3 -> {2,3,5,6}
	0b100100100, // 4 -> {1,4,7}
	0b010111010, // 5 -> {2,4,5,6,8}
	0b001001001, // 6 -> {3,6,9}
	0b000110110, // 7 -> {4,5,7,8}
	0b000000111, // 8 -> {7,8,9}
	0b000011011, // 9 -> {5,6,8,9}
}

// cellMask returns the bit for cell (1..9), or 0 for any other value.
func cellMask(cell int) Grid {
	if cell < 1 || cell > 9 {
		return 0
	}
	return 1 << (9 - cell)
}

// Valid reports whether g is a well-formed grid value in [0, 511].
func (g Grid) Valid() bool {
	return g <= MaxGrid
}

// IsStar reports whether cell (1..9) holds a star in g.
// Cells outside 1..9 are never stars.
func (g Grid) IsStar(cell int) bool {
	return g&cellMask(cell) != 0
}

// Explode returns the grid obtained by exploding cell in g, flipping the
// cell's toggle set. Exploding a cell that holds no star is a no-op and
// returns g unchanged.
func (g Grid) Explode(cell int) Grid {
	if !g.IsStar(cell) {
		return g
	}
	return g ^ toggleMasks[cell]
}

// Outcome classifies g: Won for the winning grid, Lost for the empty grid
// (no legal move exists), Continue otherwise.
func (g Grid) Outcome() Outcome {
	switch g {
	case WinningGrid:
		return Won
	case EmptyGrid:
		return Lost
	default:
		return Continue
	}
}

// Parse converts the textual form of a grid into a Grid value. The text is
// exactly 11 characters: three rows of '*' (star) or '.' (dark hole)
// separated by newlines, e.g. "*..\n...\n...". Any other length or character
// returns ErrorGrid and a sentinel error.
func Parse(text string) (Grid, error) {
	if len(text) != 11 {
		return ErrorGrid, ErrGridLength
	}

	grid := EmptyGrid
	cell := 1
	for i := 0; i < len(text); i++ {
		if i == 3 || i == 7 {
			if text[i] != '\n' {
				return ErrorGrid, ErrGridChar
			}
			continue
		}
		switch text[i] {
		case '*':
			grid |= cellMask(cell)
		case '.':
			// dark hole, bit stays 0
		default:
			return ErrorGrid, ErrGridChar
		}
		cell++
	}
	return grid, nil
}

// String renders g in the same 11-character form accepted by Parse.
// ErrorGrid and other out-of-range values render as "<invalid grid>".
func (g Grid) String() string {
	if !g.Valid() {
		return "<invalid grid>"
	}
	var b strings.Builder
	b.Grow(11)
	for cell := 1; cell <= 9; cell++ {
		if g.IsStar(cell) {
			b.WriteByte('*')
		} else {
			b.WriteByte('.')
		}
		if cell == 3 || cell == 6 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

package stars

// Result is the outcome of one shortest-path search.
type Result struct {
	// Moves is the winning move sequence, oldest move first. Empty when the
	// initial grid is already the winning grid. Nil when Found is false.
	Moves []int

	// Found reports whether a winning sequence exists.
	Found bool

	// Expanded counts the grids dequeued and classified during the search.
	Expanded int
}

// Length returns the number of moves in the result.
func (r Result) Length() int {
	return len(r.Moves)
}

// Replay applies the result's moves to the initial grid and returns the
// final grid. Replaying an empty result returns the initial grid.
func (r Result) Replay(initial Grid) Grid {
	g := initial
	for _, move := range r.Moves {
		g = g.Explode(move)
	}
	return g
}

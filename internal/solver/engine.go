package solver

import "github.com/dukaforge/shootingstars/pkg/stars"

// visitedSet is a presence bitset over the full 512-grid state space.
type visitedSet [8]uint64

func (v *visitedSet) mark(g stars.Grid) {
	v[g>>6] |= 1 << (g & 63)
}

func (v *visitedSet) has(g stars.Grid) bool {
	return v[g>>6]&(1<<(g&63)) != 0
}

// Solve runs a breadth-first search from the initial grid and returns the
// shortest winning move sequence. Returns ErrGridRange for values outside
// [0, 511]; the engine itself assumes validated input. When no winning
// sequence exists the result has Found false and nil Moves.
//
// Successors are expanded in ascending cell order 1..9, which fixes a
// deterministic choice among equally short solutions.
func Solve(initial stars.Grid) (stars.Result, error) {
	if !initial.Valid() {
		return stars.Result{}, stars.ErrGridRange
	}

	var visited visitedSet
	toVisit := newFrontier()
	defer toVisit.drain()

	toVisit.enqueue(nil, initial)

	var winning *Path
	found := false
	expanded := 0

	for {
		node, ok := toVisit.dequeue()
		if !ok {
			// Frontier drained without reaching the winning grid.
			return stars.Result{Expanded: expanded}, nil
		}
		if visited.has(node.grid) {
			// A grid can be enqueued by several same-level parents before
			// its first dequeue; only the first instance is expanded.
			Release(node.path)
			continue
		}
		expanded++
		visited.mark(node.grid)

		switch node.grid.Outcome() {
		case stars.Won:
			// First win dequeued is shortest by FIFO level order.
			winning = node.path
			found = true
			Retain(winning)
		case stars.Continue:
			for cell := 1; cell <= 9; cell++ {
				if !node.grid.IsStar(cell) {
					continue
				}
				next := node.grid.Explode(cell)
				if visited.has(next) {
					continue
				}
				// Extend takes its own reference to node.path, so the
				// entry's reference stays with the entry until released
				// below.
				toVisit.enqueue(Extend(node.path, cell), next)
			}
		case stars.Lost:
			// No star left, no successors.
		}

		Release(node.path)
		if found {
			break
		}
	}

	moves := winning.Moves()
	Release(winning)
	return stars.Result{Moves: moves, Found: true, Expanded: expanded}, nil
}

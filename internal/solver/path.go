// Package solver implements the breadth-first search over the 512-grid state
// space. The search frontier holds shared-tail move paths, so recording the
// route to every explored grid costs one node per enqueue instead of one
// copy of the whole route.
package solver

import "sync/atomic"

// Path is one node of an immutable, shared, reference-counted move chain.
// A node records the newest move and points at the shared remainder of the
// chain, so the chain reads in reverse chronological order. The empty path
// is nil.
//
// Ownership protocol: every holder of a path (a frontier entry, a child
// node's rest pointer, or the final result) owns exactly one reference.
// Release is the only way a node is given up; a node is reclaimed when its
// last reference is dropped, which in turn drops its reference to the rest
// of the chain. A suffix shared with another live path therefore survives.
type Path struct {
	refs int
	move int
	rest *Path
}

// liveNodes counts allocated path nodes that have not yet been released.
// The leak tests assert it returns to its baseline after a search.
var liveNodes atomic.Int64

// LiveNodes returns the number of path nodes currently alive.
func LiveNodes() int64 {
	return liveNodes.Load()
}

// Extend returns a new path whose newest move is move and whose remainder is
// p. The existing chain is shared, never copied: the new node takes one
// reference to p. The caller owns one reference to the returned path.
// O(1) time and space.
func Extend(p *Path, move int) *Path {
	liveNodes.Add(1)
	n := &Path{refs: 1, move: move, rest: p}
	Retain(p)
	return n
}

// Retain records an additional owner of p. No-op on the empty path.
func Retain(p *Path) {
	if p != nil {
		p.refs++
	}
}

// Release drops one reference to p. When a node's count reaches zero its
// reference to the rest of the chain is dropped as well, so an unshared
// chain is reclaimed in full while a suffix still owned by another path is
// left intact. The cascade walks the chain iteratively; no node with a
// positive count is ever touched. No-op on the empty path.
func Release(p *Path) {
	for p != nil {
		p.refs--
		if p.refs > 0 {
			return
		}
		rest := p.rest
		p.rest = nil
		liveNodes.Add(-1)
		p = rest
	}
}

// Moves reconstructs the forward-order move sequence, oldest move first.
// The path is not consumed. The result is never nil.
func (p *Path) Moves() []int {
	n := 0
	for node := p; node != nil; node = node.rest {
		n++
	}
	moves := make([]int, n)
	for node := p; node != nil; node = node.rest {
		n--
		moves[n] = node.move
	}
	return moves
}

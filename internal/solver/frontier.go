package solver

import "github.com/dukaforge/shootingstars/pkg/stars"

// entry pairs a grid awaiting expansion with the path that reached it.
// The entry owns one reference to its path.
type entry struct {
	path *Path
	grid stars.Grid
}

// frontier is the FIFO of grids awaiting expansion. Entries are appended at
// the tail and dequeued at the head, both O(1) amortized, over a growable
// slice with a moving head index. FIFO order is what makes the search visit
// grids in non-decreasing path length.
type frontier struct {
	entries []entry
	head    int
}

// newFrontier returns an empty frontier.
func newFrontier() *frontier {
	return &frontier{}
}

// enqueue appends an entry for grid. The entry takes ownership of one
// reference to path; a caller that keeps using path elsewhere must Retain
// it first.
func (f *frontier) enqueue(path *Path, grid stars.Grid) {
	f.entries = append(f.entries, entry{path: path, grid: grid})
}

// dequeue removes and returns the oldest entry, transferring ownership of
// its path reference to the caller. ok is false when the frontier is empty.
func (f *frontier) dequeue() (e entry, ok bool) {
	if f.head == len(f.entries) {
		return entry{}, false
	}
	e = f.entries[f.head]
	f.entries[f.head] = entry{}
	f.head++
	if f.head == len(f.entries) {
		f.entries = f.entries[:0]
		f.head = 0
	}
	return e, true
}

// drain releases the path reference of every remaining entry and empties
// the frontier. No entry is dropped without its ownership being honored.
func (f *frontier) drain() {
	for {
		e, ok := f.dequeue()
		if !ok {
			return
		}
		Release(e.path)
	}
}

package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/shootingstars/pkg/stars"
)

func TestFrontierFIFO(t *testing.T) {
	f := newFrontier()

	for value := 0; value < 20; value++ {
		f.enqueue(nil, stars.Grid(value))
	}

	for value := 0; value < 20; value++ {
		e, ok := f.dequeue()
		require.True(t, ok)
		assert.Equal(t, stars.Grid(value), e.grid)
	}

	_, ok := f.dequeue()
	assert.False(t, ok)
}

func TestFrontierInterleavedUse(t *testing.T) {
	f := newFrontier()

	f.enqueue(nil, 1)
	f.enqueue(nil, 2)

	e, ok := f.dequeue()
	require.True(t, ok)
	assert.Equal(t, stars.Grid(1), e.grid)

	f.enqueue(nil, 3)

	for _, want := range []stars.Grid{2, 3} {
		e, ok := f.dequeue()
		require.True(t, ok)
		assert.Equal(t, want, e.grid)
	}

	_, ok = f.dequeue()
	assert.False(t, ok)
}

func TestFrontierEntriesOwnPaths(t *testing.T) {
	baseline := LiveNodes()
	f := newFrontier()

	parent := Extend(nil, 5)
	for cell := 1; cell <= 3; cell++ {
		f.enqueue(Extend(parent, cell), stars.Grid(cell))
	}
	Release(parent)

	// The dequeued entry's path reference now belongs to the caller.
	e, ok := f.dequeue()
	require.True(t, ok)
	assert.Equal(t, []int{5, 1}, e.path.Moves())
	Release(e.path)

	// Draining releases every remaining entry's reference.
	f.drain()
	assert.Equal(t, baseline, LiveNodes())

	_, ok = f.dequeue()
	assert.False(t, ok)
}

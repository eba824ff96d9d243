package frontier

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landmass/pkg/engine/world"
)

// linked counts the cells reachable through every bucket chain.
func linked(q *BucketQueue) int {
	n := 0
	for _, head := range q.buckets {
		for i := head; i != none; i = q.next[i] {
			n++
		}
	}
	return n
}

func withPriority(g *world.Grid, index, distance, heuristic int) *world.Cell {
	c := g.CellAtIndex(index)
	c.Distance = distance
	c.SearchHeuristic = heuristic
	return c
}

func TestEmptyQueue(t *testing.T) {
	q := NewBucketQueue(world.NewGrid(2, 2))
	assert.Zero(t, q.Count())
	assert.Equal(t, math.MaxInt, q.Minimum())
	assert.Nil(t, q.Dequeue())
	assert.Zero(t, q.Count())
}

func TestDequeueOrder(t *testing.T) {
	g := world.NewGrid(1, 5)
	q := NewBucketQueue(g)

	q.Enqueue(withPriority(g, 0, 20, 0))
	q.Enqueue(withPriority(g, 1, 10, 10))
	q.Enqueue(withPriority(g, 2, 10, 0))
	q.Enqueue(withPriority(g, 3, 0, 0))
	q.Enqueue(withPriority(g, 4, 30, 10))
	require.Equal(t, 5, q.Count())
	assert.Equal(t, 0, q.Minimum())

	// Bucket 20 holds 0 then 1; the later one comes out first.
	want := []int{3, 2, 1, 0, 4}
	for _, idx := range want {
		c := q.Dequeue()
		require.NotNil(t, c)
		assert.Equal(t, idx, c.Index)
	}
	assert.Nil(t, q.Dequeue())
	assert.Zero(t, q.Count())
}

func TestEnqueueBelowMinimum(t *testing.T) {
	g := world.NewGrid(1, 3)
	q := NewBucketQueue(g)

	q.Enqueue(withPriority(g, 0, 40, 0))
	q.Enqueue(withPriority(g, 1, 50, 0))
	assert.Equal(t, 0, q.Dequeue().Index)
	assert.Equal(t, 40, q.Minimum())

	q.Enqueue(withPriority(g, 2, 5, 0))
	assert.Equal(t, 5, q.Minimum())
	assert.Equal(t, 2, q.Dequeue().Index)
	assert.Equal(t, 1, q.Dequeue().Index)
}

func TestRandomizedMinAndCount(t *testing.T) {
	g := world.NewGrid(20, 20)
	q := NewBucketQueue(g)
	r := rand.New(rand.NewPCG(7, 0))

	queued := map[int]bool{}
	next := 0
	for step := 0; step < 2000; step++ {
		if next < g.Len() && (len(queued) == 0 || r.IntN(3) > 0) {
			c := withPriority(g, next, r.IntN(200), 10*r.IntN(2))
			q.Enqueue(c)
			queued[c.Index] = true
			next++
		} else if len(queued) > 0 {
			c := q.Dequeue()
			require.NotNil(t, c)
			require.True(t, queued[c.Index])
			for idx := range queued {
				require.LessOrEqual(t, c.SearchPriority(), g.CellAtIndex(idx).SearchPriority())
			}
			delete(queued, c.Index)
		}
		require.Equal(t, len(queued), q.Count())
		require.Equal(t, q.Count(), linked(q))
	}
}

func TestChange(t *testing.T) {
	cases := []struct {
		name    string
		moved   int
		wantOut []int
	}{
		{"Head", 2, []int{2, 3, 1, 0}},
		{"Middle", 1, []int{1, 3, 2, 0}},
		{"Tail", 0, []int{0, 3, 2, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := world.NewGrid(1, 4)
			q := NewBucketQueue(g)
			for i := 0; i < 3; i++ {
				q.Enqueue(withPriority(g, i, 30, 0))
			}
			q.Enqueue(withPriority(g, 3, 20, 0))

			c := g.CellAtIndex(tc.moved)
			old := c.SearchPriority()
			c.Distance = 10
			q.Change(c, old)

			assert.Equal(t, 4, q.Count())
			assert.Equal(t, 4, linked(q))
			for _, idx := range tc.wantOut {
				assert.Equal(t, idx, q.Dequeue().Index)
			}
		})
	}
}

func TestChange_NotQueuedPanics(t *testing.T) {
	g := world.NewGrid(1, 3)
	q := NewBucketQueue(g)
	q.Enqueue(withPriority(g, 0, 5, 0))
	assert.Panics(t, func() { q.Change(g.CellAtIndex(1), 5) })
	assert.Panics(t, func() { q.Change(g.CellAtIndex(1), 99) })
}

func TestClear(t *testing.T) {
	g := world.NewGrid(2, 2)
	q := NewBucketQueue(g)
	q.Enqueue(withPriority(g, 0, 3, 0))
	q.Enqueue(withPriority(g, 1, 8, 0))
	q.Dequeue()

	q.Clear()
	assert.Zero(t, q.Count())
	assert.Equal(t, math.MaxInt, q.Minimum())
	assert.Nil(t, q.Dequeue())

	q.Enqueue(withPriority(g, 1, 1, 0))
	assert.Equal(t, 1, q.Dequeue().Index)
}

func TestEnqueue_NegativePriorityPanics(t *testing.T) {
	g := world.NewGrid(1, 1)
	q := NewBucketQueue(g)
	assert.Panics(t, func() { q.Enqueue(withPriority(g, 0, -1, 0)) })
}

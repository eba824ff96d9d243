// Package frontier implements the integer bucket priority queue used as the
// expansion frontier of a flood fill over a world.Grid.
//
// Cells are bucketed by their SearchPriority. Each bucket is a LIFO chain of
// cell indices; the chain links live in a queue-owned slice indexed by cell
// index, so the cells themselves carry no queue state.
package frontier

import (
	"fmt"
	"math"

	"landmass/pkg/engine/world"
)

const none = -1

// Cells is the arena a queue resolves cell indices against.
type Cells interface {
	Len() int
	CellAtIndex(index int) *world.Cell
}

// BucketQueue is a multi-queue keyed by non-negative integer priority.
// Ties within a bucket are served last-in first-out.
type BucketQueue struct {
	cells   Cells
	buckets []int // head cell index per priority, none when empty
	next    []int // next cell index in the same bucket, by cell index
	minimum int
	count   int
}

// NewBucketQueue creates an empty queue over the given cells.
func NewBucketQueue(cells Cells) *BucketQueue {
	q := &BucketQueue{
		cells: cells,
		next:  make([]int, cells.Len()),
	}
	q.Clear()
	return q
}

// Count returns the number of enqueued cells.
func (q *BucketQueue) Count() int {
	return q.count
}

// Minimum returns the lowest bucket that may hold a cell.
// It is math.MaxInt on an empty, freshly cleared queue.
func (q *BucketQueue) Minimum() int {
	return q.minimum
}

// Enqueue adds c at its current SearchPriority.
func (q *BucketQueue) Enqueue(c *world.Cell) {
	priority := c.SearchPriority()
	if priority < 0 {
		panic(fmt.Sprintf("frontier: negative priority %d for cell %d", priority, c.Index))
	}
	q.count++
	if priority < q.minimum {
		q.minimum = priority
	}
	for priority >= len(q.buckets) {
		q.buckets = append(q.buckets, none)
	}
	q.next[c.Index] = q.buckets[priority]
	q.buckets[priority] = c.Index
}

// Dequeue removes and returns the most recently enqueued cell of the lowest
// non-empty bucket, or nil when the queue is empty.
func (q *BucketQueue) Dequeue() *world.Cell {
	if q.count == 0 {
		return nil
	}
	for ; q.minimum < len(q.buckets); q.minimum++ {
		head := q.buckets[q.minimum]
		if head == none {
			continue
		}
		q.buckets[q.minimum] = q.next[head]
		q.next[head] = none
		q.count--
		return q.cells.CellAtIndex(head)
	}
	return nil
}

// Change moves c from the bucket at oldPriority to its current
// SearchPriority. c must be enqueued at oldPriority.
func (q *BucketQueue) Change(c *world.Cell, oldPriority int) {
	if oldPriority < 0 || oldPriority >= len(q.buckets) {
		panic(fmt.Sprintf("frontier: cell %d not queued at priority %d", c.Index, oldPriority))
	}
	current := q.buckets[oldPriority]
	if current == c.Index {
		q.buckets[oldPriority] = q.next[current]
	} else {
		for current != none && q.next[current] != c.Index {
			current = q.next[current]
		}
		if current == none {
			panic(fmt.Sprintf("frontier: cell %d not queued at priority %d", c.Index, oldPriority))
		}
		q.next[current] = q.next[c.Index]
	}
	q.count--
	q.Enqueue(c)
}

// Clear discards every bucket and resets the queue to empty.
func (q *BucketQueue) Clear() {
	q.buckets = q.buckets[:0]
	q.minimum = math.MaxInt
	q.count = 0
}

package fmm

import "container/heap"

// bandEntry is one pixel on the marching front: its arrival distance and
// coordinates. Each pixel is pushed exactly once.
type bandEntry struct {
	dist     float64
	row, col int
}

// less orders entries by distance, then row, then column, so pixels at equal
// distance are finalized in a reproducible order.
func (e bandEntry) less(o bandEntry) bool {
	if e.dist != o.dist {
		return e.dist < o.dist
	}
	if e.row != o.row {
		return e.row < o.row
	}
	return e.col < o.col
}

// bandHeap implements heap.Interface over bandEntry values.
type bandHeap []bandEntry

func (h bandHeap) Len() int            { return len(h) }
func (h bandHeap) Less(i, j int) bool  { return h[i].less(h[j]) }
func (h bandHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *bandHeap) Push(x interface{}) { *h = append(*h, x.(bandEntry)) }
func (h *bandHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// bandQueue is the min-priority queue of the front.
type bandQueue struct {
	h bandHeap
}

func (q *bandQueue) Len() int { return q.h.Len() }

func (q *bandQueue) push(e bandEntry) { heap.Push(&q.h, e) }

func (q *bandQueue) pop() bandEntry { return heap.Pop(&q.h).(bandEntry) }

// clone returns an independent queue with the same entries; the backing
// slice is already a valid heap, so no re-heapify is needed.
func (q *bandQueue) clone() bandQueue {
	h := make(bandHeap, len(q.h))
	copy(h, q.h)
	return bandQueue{h: h}
}

package mazesolve

import "github.com/katalvlaran/mazesim/grid"

// pqItem is one A* frontier entry.
type pqItem struct {
	pos   grid.Point
	gCost int    // path cost from Start
	fCost int    // gCost + heuristic
	seq   uint64 // insertion order, breaks fCost ties deterministically
	index int    // heap index, maintained by Swap
}

// frontierPQ is a binary min-heap over f = g + h, with insertion-order
// tie-breaking: of two entries with equal fCost, the earlier-inserted wins.
// Implements container/heap.Interface.
type frontierPQ []*pqItem

func (q frontierPQ) Len() int { return len(q) }

func (q frontierPQ) Less(i, j int) bool {
	if q[i].fCost != q[j].fCost {
		return q[i].fCost < q[j].fCost
	}

	return q[i].seq < q[j].seq
}

func (q frontierPQ) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *frontierPQ) Push(x any) {
	it := x.(*pqItem)
	it.index = len(*q)
	*q = append(*q, it)
}

func (q *frontierPQ) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // release for GC
	*q = old[:n-1]

	return it
}

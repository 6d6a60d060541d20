package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazesim/grid"
)

// backtracker implements iterative recursive backtracking.
//
// An explicit stack of visited rooms replaces call-stack recursion so memory
// stays bounded and deterministic on large grids. Each Step either extends
// into a random unvisited room at distance 2 (carving the wall between) or
// pops one stack frame when the head is a dead end. Exhaustion: stack empty.
type backtracker struct {
	g        *grid.Grid
	rng      *rand.Rand
	stack    []grid.Point // rooms on the current recursion path
	visited  []bool       // by room index
	steps    int
	finished bool
}

func newBacktracker(g *grid.Grid, rng *rand.Rand) *backtracker {
	rows, cols := g.Rooms()
	b := &backtracker{
		g:       g,
		rng:     rng,
		visited: make([]bool, g.RoomCount()),
	}
	// Seed the walk at a random room, as the classic algorithm does; the
	// spanning tree covers every room regardless of the entry point.
	start := g.RoomCell(rng.Intn(rows), rng.Intn(cols))
	_ = g.CarveRoom(start)
	b.visited[g.RoomIndex(start)] = true
	b.stack = append(b.stack, start)

	return b
}

// Algorithm identifies the strategy.
func (b *backtracker) Algorithm() Algorithm { return Backtracking }

// Finished reports structural exhaustion (empty stack).
func (b *backtracker) Finished() bool { return b.finished }

// Steps returns the units of work performed.
func (b *backtracker) Steps() int { return b.steps }

// FrontierLen returns the current stack depth.
func (b *backtracker) FrontierLen() int { return len(b.stack) }

// Step performs one expansion or one backtrack.
func (b *backtracker) Step() (StepResult, error) {
	if b.finished {
		return StepResult{Finished: true}, nil
	}

	// 1. Peek the head of the recursion path.
	head := b.stack[len(b.stack)-1]

	// 2. Collect unvisited rooms one wall away.
	var candidates []grid.Point
	for _, q := range b.g.RoomNeighbors(head) {
		if !b.visited[b.g.RoomIndex(q)] {
			candidates = append(candidates, q)
		}
	}

	if len(candidates) > 0 {
		// 3a. Extend: pick uniformly, carve the connecting wall, descend.
		next := candidates[b.rng.Intn(len(candidates))]
		wall, err := b.g.WallBetween(head, next)
		if err != nil {
			return StepResult{}, err
		}
		if err = b.g.CarveWall(wall); err != nil {
			return StepResult{}, err
		}
		if err = b.g.CarveRoom(next); err != nil {
			return StepResult{}, err
		}
		b.visited[b.g.RoomIndex(next)] = true
		b.stack = append(b.stack, next)
	} else {
		// 3b. Dead end: backtrack one frame.
		b.stack = b.stack[:len(b.stack)-1]
	}

	b.steps++
	if len(b.stack) == 0 {
		b.finished = true
	}

	return StepResult{Progressed: true, Finished: b.finished}, nil
}

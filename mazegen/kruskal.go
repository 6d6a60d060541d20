package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazesim/dsu"
	"github.com/katalvlaran/mazesim/grid"
)

// wallEdge is one candidate wall with the two rooms it separates.
type wallEdge struct {
	wall grid.Point
	a, b grid.Point
}

// kruskalGen implements randomized Kruskal's algorithm.
//
// The full list of between-rooms walls is built and shuffled once at
// construction; shuffle order is the sole source of randomness. Each Step
// consumes one wall: if its rooms belong to different sets, carve and union;
// otherwise discard (the wall would close a cycle). Exhaustion: wall list
// consumed. Every wall is visited exactly once, so no secondary tie-break
// is needed for determinism.
type kruskalGen struct {
	g        *grid.Grid
	sets     *dsu.DSU
	walls    []wallEdge // consumed from the tail
	steps    int
	finished bool
}

func newKruskalGen(g *grid.Grid, rng *rand.Rand) *kruskalGen {
	rows, cols := g.Rooms()
	k := &kruskalGen{
		g:    g,
		sets: dsu.New(g.RoomCount()),
	}

	// 1. Every room starts carved and in its own singleton set.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			_ = g.CarveRoom(g.RoomCell(r, c))
		}
	}

	// 2. Enumerate all candidate walls (right and down from each room) in
	//    row-major order, then shuffle once.
	k.walls = make([]wallEdge, 0, rows*cols*2)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a := g.RoomCell(r, c)
			if c+1 < cols {
				b := g.RoomCell(r, c+1)
				w, _ := g.WallBetween(a, b)
				k.walls = append(k.walls, wallEdge{wall: w, a: a, b: b})
			}
			if r+1 < rows {
				b := g.RoomCell(r+1, c)
				w, _ := g.WallBetween(a, b)
				k.walls = append(k.walls, wallEdge{wall: w, a: a, b: b})
			}
		}
	}
	rng.Shuffle(len(k.walls), func(i, j int) {
		k.walls[i], k.walls[j] = k.walls[j], k.walls[i]
	})

	if len(k.walls) == 0 {
		k.finished = true
	}

	return k
}

// Algorithm identifies the strategy.
func (k *kruskalGen) Algorithm() Algorithm { return Kruskal }

// Finished reports structural exhaustion (wall list consumed).
func (k *kruskalGen) Finished() bool { return k.finished }

// Steps returns the units of work performed.
func (k *kruskalGen) Steps() int { return k.steps }

// FrontierLen returns the number of walls not yet consumed.
func (k *kruskalGen) FrontierLen() int { return len(k.walls) }

// Roots exposes the number of distinct disjoint-set roots. After exhaustion
// it must be exactly 1 — the scheduler checks this invariant.
func (k *kruskalGen) Roots() int { return k.sets.Roots() }

// Step consumes one shuffled wall: carve+union or discard.
func (k *kruskalGen) Step() (StepResult, error) {
	if k.finished {
		return StepResult{Finished: true}, nil
	}

	// Pop the next wall from the pre-shuffled list.
	last := len(k.walls) - 1
	we := k.walls[last]
	k.walls = k.walls[:last]

	// Union-find check: carving inside one set would close a cycle.
	if k.sets.Union(k.g.RoomIndex(we.a), k.g.RoomIndex(we.b)) {
		if err := k.g.CarveWall(we.wall); err != nil {
			return StepResult{}, err
		}
	}

	k.steps++
	if len(k.walls) == 0 {
		k.finished = true
	}

	return StepResult{Progressed: true, Finished: k.finished}, nil
}

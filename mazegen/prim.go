package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazesim/grid"
)

// frontierWall is a candidate wall adjacent to the growing maze, together
// with the room on its far side.
type frontierWall struct {
	wall grid.Point
	room grid.Point // the room this wall would connect, if still unvisited
}

// primGen implements randomized Prim's algorithm.
//
// The frontier holds candidate walls bordering the visited region, each at
// most once. Each Step resolves one wall drawn uniformly at random: carve it
// when the far room is unvisited, discard it otherwise. Exhaustion: empty
// frontier. Discard steps progress the algorithm without changing the grid,
// which is why this strategy benefits most from scheduler batching.
type primGen struct {
	g          *grid.Grid
	rng        *rand.Rand
	visited    []bool               // by room index
	frontier   []frontierWall       // swap-remove pool for uniform draws
	inFrontier map[grid.Point]bool  // wall positions currently pooled
	steps      int
	finished   bool
}

func newPrimGen(g *grid.Grid, rng *rand.Rand) *primGen {
	rows, cols := g.Rooms()
	p := &primGen{
		g:          g,
		rng:        rng,
		visited:    make([]bool, g.RoomCount()),
		inFrontier: make(map[grid.Point]bool),
	}
	start := g.RoomCell(rng.Intn(rows), rng.Intn(cols))
	_ = g.CarveRoom(start)
	p.visited[g.RoomIndex(start)] = true
	p.growFrontier(start)
	// Degenerate 1×1 grid: nothing to carve.
	if len(p.frontier) == 0 {
		p.finished = true
	}

	return p
}

// Algorithm identifies the strategy.
func (p *primGen) Algorithm() Algorithm { return Prim }

// Finished reports structural exhaustion (empty frontier).
func (p *primGen) Finished() bool { return p.finished }

// Steps returns the units of work performed.
func (p *primGen) Steps() int { return p.steps }

// FrontierLen returns the number of pending candidate walls.
func (p *primGen) FrontierLen() int { return len(p.frontier) }

// growFrontier pools the walls between room and each unvisited neighbor.
// A wall already pooled is not added twice.
func (p *primGen) growFrontier(room grid.Point) {
	for _, q := range p.g.RoomNeighbors(room) {
		if p.visited[p.g.RoomIndex(q)] {
			continue
		}
		wall, err := p.g.WallBetween(room, q)
		if err != nil || p.inFrontier[wall] {
			continue
		}
		p.inFrontier[wall] = true
		p.frontier = append(p.frontier, frontierWall{wall: wall, room: q})
	}
}

// Step resolves one frontier wall: carve or discard.
func (p *primGen) Step() (StepResult, error) {
	if p.finished {
		return StepResult{Finished: true}, nil
	}

	// 1. Draw a wall uniformly at random; swap-remove keeps draws O(1).
	i := p.rng.Intn(len(p.frontier))
	fw := p.frontier[i]
	last := len(p.frontier) - 1
	p.frontier[i] = p.frontier[last]
	p.frontier = p.frontier[:last]
	delete(p.inFrontier, fw.wall)

	// 2. Carve only when the far room is still outside the maze.
	if !p.visited[p.g.RoomIndex(fw.room)] {
		if err := p.g.CarveWall(fw.wall); err != nil {
			return StepResult{}, err
		}
		if err := p.g.CarveRoom(fw.room); err != nil {
			return StepResult{}, err
		}
		p.visited[p.g.RoomIndex(fw.room)] = true
		p.growFrontier(fw.room)
	}

	p.steps++
	if len(p.frontier) == 0 {
		p.finished = true
	}

	return StepResult{Progressed: true, Finished: p.finished}, nil
}

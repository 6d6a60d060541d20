package mazesolve

import "github.com/katalvlaran/mazesim/grid"

// bfsSolver explores in level order: every position at distance d is popped
// before any at distance d+1, so the path found when End is popped is the
// graph-theoretic shortest path (ρ = 1.0 always).
type bfsSolver struct {
	g       *grid.Grid
	queue   []grid.Point
	parent  map[grid.Point]grid.Point // recorded on first visit
	visited map[grid.Point]bool
	popped  map[grid.Point]bool
	cur     head
	steps   int
	done    bool
	final   StepResult
}

func newBFS(g *grid.Grid) *bfsSolver {
	start := g.Start()

	return &bfsSolver{
		g:       g,
		queue:   []grid.Point{start},
		parent:  make(map[grid.Point]grid.Point),
		visited: map[grid.Point]bool{start: true},
		popped:  make(map[grid.Point]bool),
	}
}

// Algorithm identifies the strategy.
func (s *bfsSolver) Algorithm() Algorithm { return BFS }

// Done reports search termination.
func (s *bfsSolver) Done() bool { return s.done }

// Steps returns expansions performed.
func (s *bfsSolver) Steps() int { return s.steps }

// Path returns the found path, or nil.
func (s *bfsSolver) Path() []grid.Point { return s.final.Path }

// FrontierLen returns the queue length.
func (s *bfsSolver) FrontierLen() int { return len(s.queue) }

// VisitedLen returns how many positions were ever enqueued.
func (s *bfsSolver) VisitedLen() int { return len(s.visited) }

// Step dequeues the oldest position and expands it.
func (s *bfsSolver) Step() (StepResult, error) {
	if s.done {
		return s.final, nil
	}
	if len(s.queue) == 0 {
		s.done = true
		s.cur.finish(s.g)
		s.final = StepResult{Outcome: Exhausted}

		return s.final, nil
	}

	// 1. Pop FIFO.
	pos := s.queue[0]
	s.queue = s.queue[1:]
	if s.popped[pos] {
		return StepResult{}, ErrInvariantViolation
	}
	s.popped[pos] = true
	s.cur.advance(s.g, pos)
	s.steps++

	// 2. Goal check on pop: level order makes this distance optimal.
	if pos == s.g.End() {
		s.done = true
		s.cur.finish(s.g)
		path := reconstruct(s.parent, pos)
		tagSolution(s.g, path)
		s.final = StepResult{Outcome: GoalFound, Path: path}

		return s.final, nil
	}

	// 3. Enqueue unseen neighbors, recording parents on first visit.
	for _, q := range s.g.PassableNeighbors(pos) {
		if s.visited[q] {
			continue
		}
		s.visited[q] = true
		s.parent[q] = pos
		s.queue = append(s.queue, q)
	}

	return StepResult{Outcome: Progressed}, nil
}

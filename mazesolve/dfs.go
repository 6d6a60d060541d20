package mazesolve

import "github.com/katalvlaran/mazesim/grid"

// dfsFrame pairs a frontier position with the full path taken to reach it,
// so no parent map is needed and backtracking costs nothing to reconstruct.
type dfsFrame struct {
	pos  grid.Point
	path []grid.Point
}

// dfsSolver explores as deep as possible before backtracking. LIFO order
// gives no shortest-path guarantee: the optimality ratio may land well
// above 1.0 depending on which branch reaches the goal first.
type dfsSolver struct {
	g       *grid.Grid
	stack   []dfsFrame
	visited map[grid.Point]bool // enqueued-once discipline
	popped  map[grid.Point]bool // invariant: no position pops twice
	cur     head
	steps   int
	done    bool
	final   StepResult
}

func newDFS(g *grid.Grid) *dfsSolver {
	start := g.Start()
	s := &dfsSolver{
		g:       g,
		visited: map[grid.Point]bool{start: true},
		popped:  make(map[grid.Point]bool),
	}
	s.stack = append(s.stack, dfsFrame{pos: start, path: []grid.Point{start}})

	return s
}

// Algorithm identifies the strategy.
func (s *dfsSolver) Algorithm() Algorithm { return DFS }

// Done reports search termination.
func (s *dfsSolver) Done() bool { return s.done }

// Steps returns expansions performed.
func (s *dfsSolver) Steps() int { return s.steps }

// Path returns the found path, or nil.
func (s *dfsSolver) Path() []grid.Point { return s.final.Path }

// FrontierLen returns the stack depth.
func (s *dfsSolver) FrontierLen() int { return len(s.stack) }

// VisitedLen returns how many positions were ever enqueued.
func (s *dfsSolver) VisitedLen() int { return len(s.visited) }

// Step pops the most recent frame and expands it.
func (s *dfsSolver) Step() (StepResult, error) {
	if s.done {
		return s.final, nil
	}
	if len(s.stack) == 0 {
		s.done = true
		s.cur.finish(s.g)
		s.final = StepResult{Outcome: Exhausted}

		return s.final, nil
	}

	// 1. Pop LIFO.
	last := len(s.stack) - 1
	fr := s.stack[last]
	s.stack = s.stack[:last]
	if s.popped[fr.pos] {
		return StepResult{}, ErrInvariantViolation
	}
	s.popped[fr.pos] = true
	s.cur.advance(s.g, fr.pos)
	s.steps++

	// 2. Goal check on pop.
	if fr.pos == s.g.End() {
		s.done = true
		s.cur.finish(s.g)
		tagSolution(s.g, fr.path)
		s.final = StepResult{Outcome: GoalFound, Path: fr.path}

		return s.final, nil
	}

	// 3. Expand unblocked, unseen neighbors; each carries its own path copy.
	for _, q := range s.g.PassableNeighbors(fr.pos) {
		if s.visited[q] {
			continue
		}
		s.visited[q] = true
		next := make([]grid.Point, len(fr.path)+1)
		copy(next, fr.path)
		next[len(fr.path)] = q
		s.stack = append(s.stack, dfsFrame{pos: q, path: next})
	}

	return StepResult{Outcome: Progressed}, nil
}

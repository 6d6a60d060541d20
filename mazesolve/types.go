// Package mazesolve defines the search contract, algorithm selection and
// sentinel errors.
package mazesolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazesim/grid"
)

// Sentinel errors for solver construction and stepping.
var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to New.
	ErrGridNil = errors.New("mazesolve: grid is nil")

	// ErrUnknownAlgorithm is returned by New and ParseAlgorithm for an
	// algorithm outside the enum.
	ErrUnknownAlgorithm = errors.New("mazesolve: unknown search algorithm")

	// ErrInvariantViolation indicates a broken internal invariant (a
	// position popped twice from a frontier). It is a bug in the engine,
	// never user-recoverable, and is never silently swallowed.
	ErrInvariantViolation = errors.New("mazesolve: internal invariant violated")
)

// Algorithm selects a search strategy.
type Algorithm int

const (
	// DFS is depth-first search (explicit stack, path carried per frame).
	DFS Algorithm = iota
	// BFS is breadth-first search (FIFO queue, parent map).
	BFS
	// AStar is A* with Manhattan heuristic and insertion-order tie-break.
	AStar
)

// String returns the canonical lowercase name of a.
func (a Algorithm) String() string {
	switch a {
	case DFS:
		return "dfs"
	case BFS:
		return "bfs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Accepted: "dfs", "bfs", "astar" (also "a*").
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs":
		return DFS, nil
	case "bfs":
		return BFS, nil
	case "astar", "a*":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Outcome classifies the result of one Solver.Step call.
type Outcome int

const (
	// Progressed: one position expanded, goal not yet popped.
	Progressed Outcome = iota
	// GoalFound: the End position was popped this step; Path is set.
	GoalFound
	// Exhausted: the frontier emptied before End was popped — the maze is
	// unsolvable from Start. A result, not an error.
	Exhausted
)

// String returns a readable name for o.
func (o Outcome) String() string {
	switch o {
	case Progressed:
		return "progressed"
	case GoalFound:
		return "goal-found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// StepResult reports the outcome of one Solver.Step call.
// Path is the ordered Start→End position sequence, set only on GoalFound.
type StepResult struct {
	Outcome Outcome
	Path    []grid.Point
}

// Solver is the common contract of all search state machines. A Solver owns
// the grid's cell tags exclusively while it runs; wall topology is
// read-only to it.
type Solver interface {
	// Algorithm identifies the strategy.
	Algorithm() Algorithm

	// Step pops one position, tags it, and expands its neighbors.
	// After GoalFound or Exhausted, further calls repeat that final
	// result without doing work.
	Step() (StepResult, error)

	// Done reports whether the search has terminated (either way).
	Done() bool

	// Steps returns the number of expansions performed. One step is one
	// popped position, so this is also the expanded-node count.
	Steps() int

	// Path returns the Start→End path once GoalFound, else nil.
	Path() []grid.Point

	// FrontierLen returns the current frontier size; VisitedLen the
	// number of positions ever enqueued. Both feed the metrics layer's
	// peak-memory estimate.
	FrontierLen() int
	VisitedLen() int
}

// New constructs the Solver for alg over g, searching from g.Start() to
// g.End() through carved passages.
func New(alg Algorithm, g *grid.Grid) (Solver, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	switch alg {
	case DFS:
		return newDFS(g), nil
	case BFS:
		return newBFS(g), nil
	case AStar:
		return newAStar(g), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
}

// manhattan is the L1 distance between two cells: admissible and consistent
// on a 4-connected unit-cost grid, so A* never overestimates.
func manhattan(a, b grid.Point) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// head tracks the algorithm's active position and keeps the grid tags in
// sync: the new head becomes Current, the previous one Visited.
type head struct {
	pos grid.Point
	set bool
}

// advance moves the head to p on grid g.
func (h *head) advance(g *grid.Grid, p grid.Point) {
	if h.set {
		_ = g.Tag(h.pos, grid.Visited)
	}
	_ = g.Tag(p, grid.Current)
	h.pos, h.set = p, true
}

// finish demotes the final head position to Visited.
func (h *head) finish(g *grid.Grid) {
	if h.set {
		_ = g.Tag(h.pos, grid.Visited)
		h.set = false
	}
}

// tagSolution paints the reconstructed path onto the grid.
func tagSolution(g *grid.Grid, path []grid.Point) {
	for _, p := range path {
		_ = g.Tag(p, grid.Solution)
	}
}

// reconstruct walks parent links from goal back to the root and reverses,
// yielding the Start→End order.
func reconstruct(parent map[grid.Point]grid.Point, goal grid.Point) []grid.Point {
	path := []grid.Point{goal}
	for cur := goal; ; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

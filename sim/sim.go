package sim

import (
	"fmt"

	"github.com/katalvlaran/mazesim/grid"
	"github.com/katalvlaran/mazesim/mazegen"
	"github.com/katalvlaran/mazesim/mazesolve"
	"github.com/katalvlaran/mazesim/metrics"
)

// rooter is satisfied by generators that can report their union-find root
// count (Kruskal); the post-exhaustion connectivity check uses it.
type rooter interface {
	Roots() int
}

// Simulation owns the maze lifecycle for one rows×cols×seed context:
// the live grid, the post-generation backup, the active engine, the run
// state and the per-phase metric collectors.
type Simulation struct {
	rows, cols int
	seed       int64
	batch      int

	g      *grid.Grid
	backup *grid.Grid // clean maze taken at generation completion

	state      RunState
	pausedFrom RunState // originating state while Paused
	failure    error    // set when state == Failed

	gen mazegen.Generator
	sol mazesolve.Solver

	genCol   metrics.Collector
	solveCol metrics.Collector
	ratio    float64
	result   Result
}

// New constructs an Idle simulation over a rows×cols room grid.
// Dimension errors propagate as grid.ErrInvalidDimensions.
func New(rows, cols int, seed int64, opts ...Option) (*Simulation, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		rows:  rows,
		cols:  cols,
		seed:  seed,
		batch: o.BatchSize,
		g:     g,
		state: Idle,
	}, nil
}

// State returns the current run state.
func (s *Simulation) State() RunState { return s.state }

// Err returns the invariant-violation error when state is Failed, else nil.
func (s *Simulation) Err() error { return s.failure }

// Snapshot returns a read-only copy of the live grid for rendering.
func (s *Simulation) Snapshot() *grid.Snapshot { return s.g.Snapshot() }

// IsFinished reports whether the last started phase ran to completion.
func (s *Simulation) IsFinished() bool { return s.state == Completed }

// StartGeneration discards any previous maze and begins generating a new
// one with alg. Legal from Idle and Completed only.
func (s *Simulation) StartGeneration(alg mazegen.Algorithm) error {
	if s.state != Idle && s.state != Completed {
		return fmt.Errorf("%w: cannot start generation while %s", ErrInvalidTransition, s.state)
	}

	// Fresh all-Wall grid; the previous backup grid dies here.
	g, err := grid.New(s.rows, s.cols)
	if err != nil {
		return err
	}
	gen, err := mazegen.New(alg, g, mazegen.WithSeed(s.seed))
	if err != nil {
		return err
	}

	s.g = g
	s.backup = nil
	s.gen = gen
	s.sol = nil
	s.result = Result{Status: InProgress}
	s.ratio = 0
	s.solveCol = metrics.Collector{}
	s.genCol.Start()
	s.genCol.Sample(gen.FrontierLen())
	s.state = Generating

	return nil
}

// StartSolving restores the clean generated maze and begins searching it
// with alg. Legal from Completed only, and only once a maze exists.
func (s *Simulation) StartSolving(alg mazesolve.Algorithm) error {
	if s.state != Completed || s.backup == nil {
		return fmt.Errorf("%w: cannot start solving while %s", ErrInvalidTransition, s.state)
	}

	// Clear previous solve artifacts: the backup holds the pristine maze.
	if err := s.g.Restore(s.backup); err != nil {
		return err
	}
	sol, err := mazesolve.New(alg, s.g)
	if err != nil {
		return err
	}

	s.sol = sol
	s.result = Result{Status: InProgress}
	s.ratio = 0
	s.solveCol.Start()
	s.solveCol.Sample(sol.FrontierLen() + sol.VisitedLen())
	s.state = Solving

	return nil
}

// Step advances the active engine by exactly one algorithmic step.
// Legal while Generating or Solving; anything else is ErrInvalidTransition.
func (s *Simulation) Step() error {
	switch s.state {
	case Generating:
		return s.stepGeneration()
	case Solving:
		return s.stepSolve()
	default:
		return fmt.Errorf("%w: cannot step while %s", ErrInvalidTransition, s.state)
	}
}

// Tick advances the active engine by up to K steps (the batching policy),
// stopping early at phase completion. Returns the number of algorithmic
// steps actually executed.
func (s *Simulation) Tick() (int, error) {
	if s.state != Generating && s.state != Solving {
		return 0, fmt.Errorf("%w: cannot tick while %s", ErrInvalidTransition, s.state)
	}
	done := 0
	for i := 0; i < s.batch; i++ {
		if s.state != Generating && s.state != Solving {
			break
		}
		if err := s.Step(); err != nil {
			return done, err
		}
		done++
	}

	return done, nil
}

// Pause suspends the current activity. Legal from Generating, Solving and
// Completed; Failed is terminal and Idle has nothing to pause.
func (s *Simulation) Pause() error {
	switch s.state {
	case Generating, Solving, Completed:
		s.pausedFrom = s.state
		s.state = Paused
		return nil
	default:
		return fmt.Errorf("%w: cannot pause while %s", ErrInvalidTransition, s.state)
	}
}

// Resume returns from Paused to the originating state. The suspended
// engine's internal state was never touched, so stepping after Resume is
// identical to never having paused.
func (s *Simulation) Resume() error {
	if s.state != Paused {
		return fmt.Errorf("%w: cannot resume while %s", ErrInvalidTransition, s.state)
	}
	s.state = s.pausedFrom

	return nil
}

// Reset discards any active engine state, restores the grid from the backup
// (or to all-Wall when no generation has completed) and returns to Idle.
// Legal from every state; cancellation is synchronous and immediate.
func (s *Simulation) Reset() error {
	if s.backup != nil {
		if err := s.g.Restore(s.backup); err != nil {
			return err
		}
	} else {
		g, err := grid.New(s.rows, s.cols)
		if err != nil {
			return err
		}
		s.g = g
	}
	s.gen = nil
	s.sol = nil
	s.failure = nil
	s.result = Result{Status: InProgress}
	s.ratio = 0
	s.state = Idle

	return nil
}

// Result returns the search outcome: InProgress until a solve finishes,
// then Found (with path) or NotFound until the next generate or reset.
func (s *Simulation) Result() Result { return s.result }

// Metrics returns both phases' reports for the current run. Step counts are
// true algorithmic steps, unaffected by tick batching.
func (s *Simulation) Metrics() Metrics {
	return Metrics{
		Generation: metrics.Report{
			StepCount:       s.genCol.Steps(),
			Elapsed:         s.genCol.Elapsed(),
			PeakMemoryBytes: s.genCol.PeakMemoryBytes(),
		},
		Search: metrics.Report{
			StepCount:       s.solveCol.Steps(),
			Elapsed:         s.solveCol.Elapsed(),
			PeakMemoryBytes: s.solveCol.PeakMemoryBytes(),
			OptimalityRatio: s.ratio,
		},
		Solved: s.result.Status == Found,
	}
}

// stepGeneration advances the generator once and finalizes the phase on
// structural exhaustion.
func (s *Simulation) stepGeneration() error {
	res, err := s.gen.Step()
	if err != nil {
		return s.fail(err)
	}
	if res.Progressed {
		s.genCol.AddSteps(1)
		s.genCol.Sample(s.gen.FrontierLen())
	}
	if !res.Finished {
		return nil
	}

	// Post-conditions: a spanning tree has exactly rooms-1 passages, and
	// Kruskal's union-find must have coalesced to a single root.
	if carved, want := s.g.CarvedPassages(), s.g.RoomCount()-1; carved != want {
		return s.fail(fmt.Errorf("%w: %d passages carved, want %d", ErrInvariantViolation, carved, want))
	}
	if r, ok := s.gen.(rooter); ok && r.Roots() != 1 {
		return s.fail(fmt.Errorf("%w: %d disjoint-set roots after wall list exhausted", ErrInvariantViolation, r.Roots()))
	}

	s.genCol.Stop()
	s.backup = s.g.Clone()
	s.gen = nil
	s.state = Completed

	return nil
}

// stepSolve advances the solver once and finalizes the phase on goal
// discovery or frontier exhaustion.
func (s *Simulation) stepSolve() error {
	before := s.sol.Steps()
	res, err := s.sol.Step()
	if err != nil {
		return s.fail(err)
	}
	// The terminal Exhausted call pops nothing; count only real expansions.
	s.solveCol.AddSteps(s.sol.Steps() - before)
	s.solveCol.Sample(s.sol.FrontierLen() + s.sol.VisitedLen())

	switch res.Outcome {
	case mazesolve.Progressed:
		return nil
	case mazesolve.GoalFound:
		s.solveCol.Stop()
		if optimal, ok := metrics.OptimalPathLength(s.backup); ok {
			s.ratio = metrics.OptimalityRatio(len(res.Path), optimal)
		}
		s.result = Result{Status: Found, Path: res.Path}
	case mazesolve.Exhausted:
		s.solveCol.Stop()
		s.result = Result{Status: NotFound}
	}
	s.sol = nil
	s.state = Completed

	return nil
}

// fail records the violation and parks the run in Failed.
func (s *Simulation) fail(err error) error {
	s.genCol.Stop()
	s.solveCol.Stop()
	s.failure = err
	s.state = Failed

	return err
}

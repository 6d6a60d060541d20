// Package sim defines the run-state machine vocabulary, results, options
// and sentinel errors of the scheduler.
package sim

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazesim/grid"
	"github.com/katalvlaran/mazesim/metrics"
)

// Sentinel errors for scheduler operation.
var (
	// ErrInvalidTransition is returned for operations illegal in the
	// current run state (e.g. Step while Idle, Resume while not Paused).
	// The run state is left unchanged.
	ErrInvalidTransition = errors.New("sim: invalid run-state transition")

	// ErrInvariantViolation indicates a broken engine or post-condition
	// invariant. The run transitions to Failed and stays there until Reset.
	ErrInvariantViolation = errors.New("sim: internal invariant violated")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sim: invalid option supplied")
)

// RunState is the scheduler's lifecycle state. It is owned by the
// Simulation, never by individual engines.
type RunState int

const (
	// Idle: no maze generated, no engine active.
	Idle RunState = iota
	// Generating: a generation engine is being stepped.
	Generating
	// Solving: a search engine is being stepped.
	Solving
	// Paused: a logical suspension of Generating, Solving or Completed.
	Paused
	// Completed: the last phase ran to its natural end.
	Completed
	// Failed: an invariant violation occurred; terminal until Reset.
	Failed
)

// String returns a readable name for s.
func (s RunState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Generating:
		return "generating"
	case Solving:
		return "solving"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("runstate(%d)", int(s))
	}
}

// SolveStatus classifies the search outcome surfaced by Result.
type SolveStatus int

const (
	// InProgress: no solve has finished since the last generation.
	InProgress SolveStatus = iota
	// Found: a Start→End path was found.
	Found
	// NotFound: the frontier exhausted without reaching End — the maze is
	// unsolvable. An ordinary result, not an error.
	NotFound
)

// String returns a readable name for s.
func (s SolveStatus) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case Found:
		return "found"
	case NotFound:
		return "not-found"
	default:
		return fmt.Sprintf("solvestatus(%d)", int(s))
	}
}

// Result is the search outcome: a status, and on Found the ordered
// Start→End position sequence.
type Result struct {
	Status SolveStatus
	Path   []grid.Point
}

// Metrics bundles both phases of the current run.
type Metrics struct {
	Generation metrics.Report
	Search     metrics.Report
	Solved     bool
}

// defaultBatchSize is K, the per-tick step budget. Matches the pacing
// constant the interactive animation settled on.
const defaultBatchSize = 20

// Option configures a Simulation. Invalid options surface as
// ErrOptionViolation from New.
type Option func(*Options)

// Options holds scheduler parameters.
type Options struct {
	// BatchSize is K: the maximum engine steps one Tick may execute.
	BatchSize int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with BatchSize = 20.
func DefaultOptions() Options {
	return Options{BatchSize: defaultBatchSize, err: nil}
}

// WithBatchSize sets K (must be ≥ 1).
func WithBatchSize(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: batch size must be >= 1, got %d", ErrOptionViolation, k)
			return
		}
		o.BatchSize = k
	}
}

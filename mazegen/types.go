// Package mazegen defines the generation contract, algorithm selection,
// options and sentinel errors.
package mazegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazesim/grid"
)

// Sentinel errors for generator construction and stepping.
var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to New.
	ErrGridNil = errors.New("mazegen: grid is nil")

	// ErrUnknownAlgorithm is returned by New and ParseAlgorithm for an
	// algorithm outside the enum.
	ErrUnknownAlgorithm = errors.New("mazegen: unknown generation algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mazegen: invalid option supplied")
)

// Algorithm selects a generation strategy.
type Algorithm int

const (
	// Backtracking is iterative recursive backtracking (explicit stack).
	Backtracking Algorithm = iota
	// Prim is randomized Prim's algorithm over a frontier of walls.
	Prim
	// Kruskal is randomized Kruskal's algorithm with union-find.
	Kruskal
)

// String returns the canonical lowercase name of a.
func (a Algorithm) String() string {
	switch a {
	case Backtracking:
		return "backtracking"
	case Prim:
		return "prim"
	case Kruskal:
		return "kruskal"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Accepted: "backtracking", "prim", "kruskal".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "backtracking":
		return Backtracking, nil
	case "prim":
		return Prim, nil
	case "kruskal":
		return Kruskal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// StepResult reports the outcome of one Generator.Step call.
//
//	Progressed — a unit of algorithmic work was performed.
//	Finished   — the strategy's structural exhaustion condition holds;
//	             further Step calls are no-ops returning {false, true}.
type StepResult struct {
	Progressed bool
	Finished   bool
}

// Generator is the common contract of all generation state machines.
// A Generator owns its grid exclusively while it runs; it mutates the grid
// only through carving and keeps an internal step counter.
type Generator interface {
	// Algorithm identifies the strategy.
	Algorithm() Algorithm

	// Step performs one unit of work. Calling Step after Finished is a
	// harmless no-op.
	Step() (StepResult, error)

	// Finished reports whether structural exhaustion has been reached.
	Finished() bool

	// Steps returns the number of units of work performed so far.
	Steps() int

	// FrontierLen returns the current size of the pending structure
	// (stack, wall frontier or remaining wall list); used by the metrics
	// layer for its peak-memory estimate.
	FrontierLen() int
}

// Option configures generation via functional arguments. An invalid Option
// is recorded and surfaced as ErrOptionViolation from New.
type Option func(*Options)

// Options holds generation parameters.
type Options struct {
	// Seed drives the injected PRNG. Seed 0 selects a fixed default so
	// that "no seed" still reproduces.
	Seed int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Seed 0 (the fixed default stream).
func DefaultOptions() Options {
	return Options{Seed: 0, err: nil}
}

// WithSeed sets the PRNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// New constructs the Generator for alg over g.
// The grid must be freshly constructed (all walls intact); generators do not
// verify this and simply carve into whatever they are given.
func New(alg Algorithm, g *grid.Grid, opts ...Option) (Generator, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rng := rngFromSeed(o.Seed)
	switch alg {
	case Backtracking:
		return newBacktracker(g, rng), nil
	case Prim:
		return newPrimGen(g, rng), nil
	case Kruskal:
		return newKruskalGen(g, rng), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
}

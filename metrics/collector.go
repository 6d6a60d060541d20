package metrics

import (
	"time"

	"github.com/katalvlaran/mazesim/grid"
	"github.com/katalvlaran/mazesim/mazesolve"
)

// bytesPerEntry is the flat per-entry size used by the peak-memory
// estimate: a cell coordinate pair plus slice/map bookkeeping overhead.
// Deliberately coarse — the figure is an estimate for comparing runs, not
// an allocator measurement.
const bytesPerEntry = 48

// Collector accumulates one phase's metrics (one generation or one solve).
// The zero value is ready; call Start before the first step.
type Collector struct {
	startedAt   time.Time
	elapsed     time.Duration
	running     bool
	steps       int
	peakEntries int
}

// Start begins (or restarts) tracking, zeroing counters.
func (c *Collector) Start() {
	c.startedAt = time.Now()
	c.elapsed = 0
	c.running = true
	c.steps = 0
	c.peakEntries = 0
}

// AddSteps records n algorithmic steps.
func (c *Collector) AddSteps(n int) {
	if c.running {
		c.steps += n
	}
}

// Sample records the current live-entry count of the active engine
// (frontier plus bookkeeping), keeping the peak.
func (c *Collector) Sample(entries int) {
	if c.running && entries > c.peakEntries {
		c.peakEntries = entries
	}
}

// Stop freezes the elapsed time. Further AddSteps/Sample calls are ignored
// until the next Start.
func (c *Collector) Stop() {
	if c.running {
		c.elapsed = time.Since(c.startedAt)
		c.running = false
	}
}

// Steps returns the accumulated algorithmic step count.
func (c *Collector) Steps() int { return c.steps }

// Elapsed returns the frozen duration, or the running duration if tracking
// has not stopped yet.
func (c *Collector) Elapsed() time.Duration {
	if c.running {
		return time.Since(c.startedAt)
	}

	return c.elapsed
}

// PeakMemoryBytes returns the structural peak-memory estimate.
func (c *Collector) PeakMemoryBytes() int64 {
	return int64(c.peakEntries) * bytesPerEntry
}

// OptimalityRatio computes ρ = found/optimal. By convention an optimal
// length of 0 yields 0 (no ratio to speak of).
func OptimalityRatio(foundLen, optimalLen int) float64 {
	if optimalLen == 0 {
		return 0
	}

	return float64(foundLen) / float64(optimalLen)
}

// OptimalPathLength returns the length (in positions, Start and End
// inclusive) of the shortest Start→End path of g, or ok=false when no path
// exists. It runs a reference BFS over a clone, so g itself — and any
// engine attached to it — is never touched.
func OptimalPathLength(g *grid.Grid) (length int, ok bool) {
	if g == nil {
		return 0, false
	}
	ref, err := mazesolve.New(mazesolve.BFS, g.Clone())
	if err != nil {
		return 0, false
	}
	for {
		res, err := ref.Step()
		if err != nil {
			return 0, false
		}
		switch res.Outcome {
		case mazesolve.GoalFound:
			return len(res.Path), true
		case mazesolve.Exhausted:
			return 0, false
		}
	}
}

// Report bundles one finished run for callers and the benchmark CLI.
type Report struct {
	StepCount       int
	Elapsed         time.Duration
	PeakMemoryBytes int64
	OptimalityRatio float64
}

// PeakMemoryMB converts the estimate to megabytes for human output.
func (r Report) PeakMemoryMB() float64 {
	return float64(r.PeakMemoryBytes) / (1024 * 1024)
}

// ElapsedMS returns the duration in milliseconds for tabular output.
func (r Report) ElapsedMS() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Package sim is the step scheduler: it owns one Grid, drives one engine at
// a time (a mazegen.Generator or a mazesolve.Solver), and enforces the
// run-state machine
//
//	Idle → Generating → Completed(maze)
//	Completed → Solving → Completed(path | unsolvable)
//	Generating/Solving/Completed → Paused ↔ back to the originating state
//	any state → Idle via Reset
//	Failed only on an internal invariant violation; terminal until Reset
//
// What
//
//   - Simulation encapsulates Grid + backup grid + active engine + run
//     state behind an explicit constructor; no process-wide singleton.
//   - Step() advances the active engine exactly one algorithmic step;
//     Tick() advances up to K steps (WithBatchSize, default 20) so that
//     visually idle work — Prim's frontier discards, Kruskal's cycle
//     rejections — does not consume whole animation frames. Metrics always
//     count true steps, never ticks.
//   - Pause preserves the engine's complete internal state verbatim;
//     resuming is behaviorally identical to never having paused.
//   - Reset discards engine state, restores the backup grid (or all-Wall
//     when no generation has completed) and returns to Idle.
//   - StartSolving restores the clean post-generation maze first, so
//     successive solves on the same maze start from identical tags.
//
// Concurrency
//
//	Single-threaded and cooperative: exactly one engine is active at a
//	time and all mutation happens inside caller-issued Step/Tick calls.
//	There is no locking because there are no concurrent writers; Paused is
//	a logical suspension, not a blocking one.
//
// Errors
//
//   - ErrInvalidTransition — an operation illegal in the current run state;
//     rejected synchronously, state unchanged.
//   - ErrInvariantViolation — an engine or post-condition invariant broke
//     (e.g. >1 union-find root after Kruskal exhausted its walls);
//     transitions to Failed.
//   - ErrOptionViolation — invalid Option at construction.
//   - grid.ErrInvalidDimensions — from New, for unusable dimensions.
package sim

// Package metrics observes scheduler ticks and engine results to produce
// quantitative comparisons between algorithm runs: true step counts,
// wall-clock duration, a peak-memory estimate and the path optimality
// ratio ρ.
//
// What
//
//   - Collector: Start / AddSteps / Sample / Stop accumulate one phase's
//     numbers. Step counts always reflect algorithmic steps, never
//     scheduler ticks, so batching cannot distort them.
//   - The memory figure is a structural estimate: the peak number of live
//     frontier + bookkeeping entries times a fixed per-entry size. It is
//     deterministic per run, unlike allocator statistics.
//   - OptimalityRatio computes ρ = found/optimal; OptimalPathLength derives
//     the optimal length by running a reference BFS on a *clone* of the
//     grid, so the observed engines are never perturbed.
//   - Report bundles one finished run for callers and the benchmark CLI.
//
// Why
//
//	The metrics layer sits beside the engines, not inside them: engines
//	expose sizes and counters, the collector reads them between steps, and
//	algorithm behavior stays byte-for-byte identical with or without
//	observation.
package metrics

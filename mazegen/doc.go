// Package mazegen provides three interchangeable, resumable maze-generation
// state machines over a grid.Grid: Recursive Backtracking, randomized Prim
// and randomized Kruskal.
//
// What
//
//   - One contract: Generator.Step() performs exactly one unit of work
//     (one room expansion or backtrack, one wall resolved) and reports
//     StepResult{Progressed, Finished}.
//   - Termination happens only on structural exhaustion (stack empty,
//     frontier empty, wall list consumed) — never early. Every finished run
//     is a spanning tree: exactly rooms−1 carved passages, every room
//     reachable from every other, zero cycles.
//   - Randomness comes from one injected seeded PRNG (WithSeed); a fixed
//     seed reproduces the maze byte for byte.
//
// Why
//
//	Suspendable single-step execution is what lets a caller animate,
//	pause, resume, batch and benchmark generation without the algorithm
//	knowing it is being observed.
//
// Texture
//
//   - Backtracking favors depth-first extension: long corridors, few
//     branch points.
//   - Prim grows outward from one room: radial texture, many short dead
//     ends. Most steps resolve a wall that carves nothing; batch steps at
//     the scheduler to keep animation lively.
//   - Kruskal coalesces disjoint segments in shuffled-wall order: uniform,
//     bias-free texture. Shuffle order is the sole source of randomness.
//
// Usage
//
//	g, _ := grid.New(20, 20)
//	gen, err := mazegen.New(mazegen.Backtracking, g, mazegen.WithSeed(42))
//	for !gen.Finished() {
//	    if _, err = gen.Step(); err != nil { ... }
//	}
//
// Errors
//
//   - ErrGridNil         — nil grid passed to a constructor.
//   - ErrUnknownAlgorithm — New with an Algorithm outside the enum.
//   - ErrOptionViolation — invalid Option recorded at construction.
//
// Complexity (R = rooms): all three run in O(R·α(R)) total work and O(R)
// memory; a single Step is O(1) amortized.
package mazegen

// Package mazesolve provides three interchangeable, resumable search state
// machines over a carved grid.Grid: DFS, BFS and A*.
//
// What
//
//   - One contract: Solver.Step() pops exactly one position from the
//     strategy's frontier, tags it on the grid (Current, demoting the
//     previous head to Visited), and expands its unblocked neighbors.
//     The result is Progressed, GoalFound (carrying the reconstructed
//     path) or Exhausted.
//   - GoalFound fires the step the End cell is *popped*, not when it is
//     first discovered — the ordering that makes BFS's popped-goal distance
//     the graph-theoretic shortest distance.
//   - Solvers mutate cell tags only (Visited/Solution/Current); wall
//     topology is never touched. One step is one node expansion, so the
//     step count doubles as the expanded-node count.
//   - An empty frontier before the End is popped is Exhausted — the
//     ordinary "unsolvable" result, never an error. A position popped twice
//     is ErrInvariantViolation: a bug, loudly surfaced.
//
// Strategies
//
//   - DFS: stack of (position, path-so-far); no parent map, no optimality
//     guarantee (ρ ≥ 1.0).
//   - BFS: FIFO queue + parent map recorded on first visit; level-order
//     exploration guarantees ρ = 1.0.
//   - A*: binary heap keyed f = g + h with Manhattan h (admissible and
//     consistent on a unit grid) and insertion-order tie-breaking;
//     parent map on first visit; ρ = 1.0, typically with far fewer
//     expansions than BFS.
//
// Usage
//
//	s, err := mazesolve.New(mazesolve.AStar, g)
//	for {
//	    res, err := s.Step()
//	    if err != nil { ... }                    // invariant violation
//	    if res.Outcome != mazesolve.Progressed { // GoalFound or Exhausted
//	        break
//	    }
//	}
//
// Complexity (C = passable cells): O(C) total for DFS/BFS, O(C log C) for
// A*; memory O(C) (DFS path copies make its worst case O(C²) bytes, the
// price of carrying explicit paths).
package mazesolve

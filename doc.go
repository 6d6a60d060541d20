// Package mazesim is an in-memory laboratory for building grid mazes and
// searching them — one observable step at a time.
//
// 🚀 What is mazesim?
//
//	A deterministic, caller-driven library where every algorithm is a
//	resumable state machine:
//		• grid/      — the doubled-resolution cell/wall data model
//		• dsu/       — disjoint set (union-find) with rank & path compression
//		• mazegen/   — steppable generators: Backtracking, Prim, Kruskal
//		• mazesolve/ — steppable solvers: DFS, BFS, A*
//		• metrics/   — step counts, timing, memory estimate, optimality ratio
//		• sim/       — the run-state scheduler: tick, batch, pause, resume, reset
//
// ✨ Why choose mazesim?
//
//   - Step-accurate – one Step() call is one unit of algorithmic work
//   - Reproducible – every run is a pure function of (dimensions, seed)
//   - Observable – snapshots and metrics without perturbing the algorithms
//   - Pure Go core – no cgo; CLIs add only CSV, YAML and PNG output
//
// Quick ASCII example (3×3 rooms, after generation):
//
//	#######
//	#S    #
//	# ### #
//	#   # #
//	### # #
//	#    E#
//	#######
//
// Drive it from sim.Simulation, or step the engines in mazegen/ and
// mazesolve/ directly.
//
//	go get github.com/katalvlaran/mazesim
package mazesim

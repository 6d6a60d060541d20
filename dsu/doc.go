// Package dsu implements a disjoint-set (union-find) structure over a dense
// index arena, with union by rank and iterative path compression.
//
// What
//
//   - New(n) creates n singleton sets addressed 0..n-1.
//   - Find(i) returns the set root of i, compressing the path as it walks.
//   - Union(a, b) merges two sets by rank; reports whether a merge happened.
//   - Roots() counts the distinct components still standing.
//
// Why
//
//	Kruskal's generator needs an O(α(N)) amortized connectivity oracle:
//	two rooms are connected in the maze iff they share a set root, and a
//	finished run is fully connected iff Roots() == 1 — an invariant the
//	scheduler and the test suite both check.
//
// The arena is index-addressed (no map) so Find is allocation-free and the
// structure never relies on recursion depth.
//
// Complexity (n = arena size)
//
//   - New:          O(n)
//   - Find / Union: O(α(n)) amortized
//   - Roots:        O(1) (live counter maintained by Union)
package dsu

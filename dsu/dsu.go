package dsu

// DSU is a disjoint-set forest over indices 0..n-1.
// The zero value is unusable; construct with New.
type DSU struct {
	parent []int
	rank   []int
	sets   int // live component count, maintained by Union
}

// New returns a DSU of n singleton sets. A non-positive n yields an empty
// arena whose Roots() is 0.
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Size returns the arena size n.
func (d *DSU) Size() int { return len(d.parent) }

// Find returns the root of the set containing i, applying iterative
// grandparent path compression on the way up.
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(i int) int {
	for d.parent[i] != i {
		// Point i at its grandparent; halves the path each pass.
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}

	return i
}

// Union merges the sets containing a and b by rank.
// Returns true when two distinct sets were merged, false when a and b were
// already connected.
// Complexity: O(α(n)) amortized.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	// Attach the shallower tree under the deeper root.
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	d.sets--

	return true
}

// Connected reports whether a and b share a set root.
func (d *DSU) Connected(a, b int) bool { return d.Find(a) == d.Find(b) }

// Roots returns the number of distinct set roots. A fully coalesced arena
// has exactly one.
func (d *DSU) Roots() int { return d.sets }

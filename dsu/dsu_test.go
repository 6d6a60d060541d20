package dsu_test

import (
	"testing"

	"github.com/katalvlaran/mazesim/dsu"
)

func TestNew_Singletons(t *testing.T) {
	d := dsu.New(5)
	if d.Size() != 5 {
		t.Fatalf("Size = %d; want 5", d.Size())
	}
	if d.Roots() != 5 {
		t.Fatalf("Roots = %d; want 5", d.Roots())
	}
	for i := 0; i < 5; i++ {
		if d.Find(i) != i {
			t.Errorf("Find(%d) = %d; want itself", i, d.Find(i))
		}
	}
	if d.Connected(0, 1) {
		t.Error("fresh singletons reported connected")
	}
}

func TestNew_NonPositive(t *testing.T) {
	d := dsu.New(-3)
	if d.Size() != 0 || d.Roots() != 0 {
		t.Errorf("negative n: Size=%d Roots=%d; want 0,0", d.Size(), d.Roots())
	}
}

func TestUnion_MergeSemantics(t *testing.T) {
	d := dsu.New(4)
	if !d.Union(0, 1) {
		t.Fatal("first Union(0,1) should merge")
	}
	if d.Union(1, 0) {
		t.Fatal("repeated Union(1,0) should be a no-op")
	}
	if !d.Connected(0, 1) {
		t.Error("0 and 1 not connected after union")
	}
	if d.Roots() != 3 {
		t.Errorf("Roots = %d; want 3", d.Roots())
	}

	// Transitivity through a chain of unions.
	d.Union(1, 2)
	d.Union(2, 3)
	if !d.Connected(0, 3) {
		t.Error("0 and 3 not connected after chained unions")
	}
	if d.Roots() != 1 {
		t.Errorf("Roots = %d; want 1", d.Roots())
	}
}

// TestUnion_SpanningCount verifies the property generation relies on:
// exactly n-1 merging unions coalesce n elements into one set.
func TestUnion_SpanningCount(t *testing.T) {
	const n = 100
	d := dsu.New(n)
	merges := 0
	// Union every consecutive pair twice; only the first merge counts.
	for i := 0; i+1 < n; i++ {
		if d.Union(i, i+1) {
			merges++
		}
		if d.Union(i, i+1) {
			merges++
		}
	}
	if merges != n-1 {
		t.Errorf("merging unions = %d; want %d", merges, n-1)
	}
	if d.Roots() != 1 {
		t.Errorf("Roots = %d; want 1", d.Roots())
	}
}

package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/mazesim/grid"
)

// TestNew_Dimensions verifies construction bounds in both coordinate spaces.
func TestNew_Dimensions(t *testing.T) {
	if _, err := grid.New(0, 5); !errors.Is(err, grid.ErrInvalidDimensions) {
		t.Errorf("rows=0: want ErrInvalidDimensions, got %v", err)
	}
	if _, err := grid.New(5, -1); !errors.Is(err, grid.ErrInvalidDimensions) {
		t.Errorf("cols=-1: want ErrInvalidDimensions, got %v", err)
	}
	g, err := grid.New(3, 4)
	if err != nil {
		t.Fatalf("3x4 rooms: unexpected error %v", err)
	}
	if r, c := g.CellDims(); r != 7 || c != 9 {
		t.Errorf("CellDims = %dx%d; want 7x9", r, c)
	}
	if n := g.RoomCount(); n != 12 {
		t.Errorf("RoomCount = %d; want 12", n)
	}
}

// TestNewFromCellDims_RejectsEven verifies the doubled-resolution guard.
func TestNewFromCellDims_RejectsEven(t *testing.T) {
	for _, dims := range [][2]int{{8, 9}, {9, 8}, {2, 2}, {1, 9}, {9, 1}} {
		if _, err := grid.NewFromCellDims(dims[0], dims[1]); !errors.Is(err, grid.ErrInvalidDimensions) {
			t.Errorf("cell dims %dx%d: want ErrInvalidDimensions, got %v", dims[0], dims[1], err)
		}
	}
	g, err := grid.NewFromCellDims(7, 7)
	if err != nil {
		t.Fatalf("7x7 cells: unexpected error %v", err)
	}
	if r, c := g.Rooms(); r != 3 || c != 3 {
		t.Errorf("Rooms = %dx%d; want 3x3", r, c)
	}
}

// TestStartEnd_Invariant checks exactly one Start and one End after
// construction and after mutation.
func TestStartEnd_Invariant(t *testing.T) {
	g, _ := grid.New(4, 4)
	countStates := func() (starts, ends int) {
		rows, cols := g.CellDims()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				switch g.State(grid.Point{Row: r, Col: c}) {
				case grid.Start:
					starts++
				case grid.End:
					ends++
				}
			}
		}
		return starts, ends
	}

	if s, e := countStates(); s != 1 || e != 1 {
		t.Fatalf("after construction: %d starts, %d ends; want 1,1", s, e)
	}

	// Tagging Start/End must be a silent no-op.
	if err := g.Tag(g.Start(), grid.Visited); err != nil {
		t.Fatalf("Tag(start): %v", err)
	}
	if err := g.Tag(g.End(), grid.Solution); err != nil {
		t.Fatalf("Tag(end): %v", err)
	}
	// Carving the Start room must not demote it.
	if err := g.CarveRoom(g.Start()); err != nil {
		t.Fatalf("CarveRoom(start): %v", err)
	}
	if s, e := countStates(); s != 1 || e != 1 {
		t.Errorf("after mutation: %d starts, %d ends; want 1,1", s, e)
	}
}

// TestCarveWall covers idempotence and rejection of non-wall positions.
func TestCarveWall(t *testing.T) {
	g, _ := grid.New(3, 3)
	a, b := g.RoomCell(0, 0), g.RoomCell(0, 1)
	w, err := g.WallBetween(a, b)
	if err != nil {
		t.Fatalf("WallBetween: %v", err)
	}

	if err = g.CarveWall(w); err != nil {
		t.Fatalf("first carve: %v", err)
	}
	if got := g.State(w); got != grid.Path {
		t.Errorf("carved wall state = %v; want Path", got)
	}
	if n := g.CarvedPassages(); n != 1 {
		t.Errorf("CarvedPassages = %d; want 1", n)
	}
	// Idempotent: carving again is a no-op, not an error.
	if err = g.CarveWall(w); err != nil {
		t.Errorf("second carve: %v", err)
	}
	if n := g.CarvedPassages(); n != 1 {
		t.Errorf("CarvedPassages after re-carve = %d; want 1", n)
	}

	// A room is not a wall slot.
	if err = g.CarveWall(a); !errors.Is(err, grid.ErrNotAWall) {
		t.Errorf("carve room cell: want ErrNotAWall, got %v", err)
	}
	// Border cells are permanent walls.
	if err = g.CarveWall(grid.Point{Row: 0, Col: 1}); !errors.Is(err, grid.ErrNotAWall) {
		t.Errorf("carve border: want ErrNotAWall, got %v", err)
	}
	if err = g.CarveWall(grid.Point{Row: -1, Col: 1}); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("carve out of bounds: want ErrOutOfBounds, got %v", err)
	}
}

// TestWallBetween_Adjacency rejects non-adjacent room pairs.
func TestWallBetween_Adjacency(t *testing.T) {
	g, _ := grid.New(3, 3)
	if _, err := g.WallBetween(g.RoomCell(0, 0), g.RoomCell(0, 2)); !errors.Is(err, grid.ErrNotAdjacentRooms) {
		t.Errorf("two rooms over: want ErrNotAdjacentRooms, got %v", err)
	}
	if _, err := g.WallBetween(g.RoomCell(0, 0), g.RoomCell(1, 1)); !errors.Is(err, grid.ErrNotAdjacentRooms) {
		t.Errorf("diagonal: want ErrNotAdjacentRooms, got %v", err)
	}
	if _, err := g.WallBetween(grid.Point{Row: 0, Col: 0}, g.RoomCell(0, 1)); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("non-room point: want ErrOutOfBounds, got %v", err)
	}
}

// TestRoomNeighbors checks corner, edge and interior adjacency counts.
func TestRoomNeighbors(t *testing.T) {
	g, _ := grid.New(3, 3)
	if n := len(g.RoomNeighbors(g.RoomCell(0, 0))); n != 2 {
		t.Errorf("corner room neighbors = %d; want 2", n)
	}
	if n := len(g.RoomNeighbors(g.RoomCell(0, 1))); n != 3 {
		t.Errorf("edge room neighbors = %d; want 3", n)
	}
	if n := len(g.RoomNeighbors(g.RoomCell(1, 1))); n != 4 {
		t.Errorf("interior room neighbors = %d; want 4", n)
	}
	if got := g.RoomNeighbors(grid.Point{Row: 0, Col: 0}); got != nil {
		t.Errorf("non-room point: want nil, got %v", got)
	}
}

// TestPassableNeighbors follows carved topology only.
func TestPassableNeighbors(t *testing.T) {
	g, _ := grid.New(2, 2)
	start := g.Start()
	if n := len(g.PassableNeighbors(start)); n != 0 {
		t.Fatalf("uncarved grid: start has %d passable neighbors; want 0", n)
	}
	right := g.RoomCell(0, 1)
	w, _ := g.WallBetween(start, right)
	if err := g.CarveWall(w); err != nil {
		t.Fatal(err)
	}
	got := g.PassableNeighbors(start)
	if len(got) != 1 || got[0] != w {
		t.Errorf("passable neighbors = %v; want [%v]", got, w)
	}
}

// TestResetTags clears markers but never topology.
func TestResetTags(t *testing.T) {
	g, _ := grid.New(2, 2)
	a, b := g.Start(), g.RoomCell(0, 1)
	w, _ := g.WallBetween(a, b)
	_ = g.CarveWall(w)
	_ = g.CarveRoom(b)
	_ = g.Tag(b, grid.Visited)
	_ = g.Tag(w, grid.Solution)

	g.ResetTags()

	if got := g.State(b); got != grid.Path {
		t.Errorf("room tag after reset = %v; want Path", got)
	}
	if got := g.State(w); got != grid.Path {
		t.Errorf("wall after reset = %v; want Path (topology kept)", got)
	}
	if n := g.CarvedPassages(); n != 1 {
		t.Errorf("CarvedPassages after reset = %d; want 1", n)
	}
}

// TestTag_Validation rejects non-marker states and skips walls.
func TestTag_Validation(t *testing.T) {
	g, _ := grid.New(2, 2)
	if err := g.Tag(g.RoomCell(0, 1), grid.Path); !errors.Is(err, grid.ErrBadTag) {
		t.Errorf("Tag(Path): want ErrBadTag, got %v", err)
	}
	// Tagging an intact wall is a no-op: topology stays readable.
	w, _ := g.WallBetween(g.Start(), g.RoomCell(0, 1))
	if err := g.Tag(w, grid.Visited); err != nil {
		t.Fatalf("Tag(wall): %v", err)
	}
	if got := g.State(w); got != grid.Wall {
		t.Errorf("intact wall after Tag = %v; want Wall", got)
	}
}

// TestCloneRestoreEqual covers backup-grid mechanics.
func TestCloneRestoreEqual(t *testing.T) {
	g, _ := grid.New(3, 3)
	w, _ := g.WallBetween(g.Start(), g.RoomCell(0, 1))
	_ = g.CarveWall(w)

	backup := g.Clone()
	if !g.Equal(backup) {
		t.Fatal("clone differs from original")
	}

	// Mutate the original, then restore.
	w2, _ := g.WallBetween(g.RoomCell(1, 1), g.RoomCell(1, 2))
	_ = g.CarveWall(w2)
	if g.Equal(backup) {
		t.Fatal("mutation not visible")
	}
	if err := g.Restore(backup); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !g.Equal(backup) {
		t.Fatal("restore did not reproduce the backup")
	}

	other, _ := grid.New(4, 4)
	if err := g.Restore(other); !errors.Is(err, grid.ErrInvalidDimensions) {
		t.Errorf("restore with mismatched dims: want ErrInvalidDimensions, got %v", err)
	}
}

// TestString renders one rune per cell.
func TestString(t *testing.T) {
	g, _ := grid.New(1, 2)
	s := g.String()
	lines := strings.Split(s, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines; want 3", len(lines))
	}
	if lines[1] != "#S#E#" {
		t.Errorf("middle row = %q; want \"#S#E#\"", lines[1])
	}
}

// TestSnapshot_IsDetached verifies later mutation is invisible to an
// earlier snapshot.
func TestSnapshot_IsDetached(t *testing.T) {
	g, _ := grid.New(2, 2)
	snap := g.Snapshot()
	w, _ := g.WallBetween(g.Start(), g.RoomCell(0, 1))
	_ = g.CarveWall(w)
	if got := snap.State(w.Row, w.Col); got != grid.Wall {
		t.Errorf("snapshot saw later carve: state = %v; want Wall", got)
	}
	if got := snap.State(-1, 0); got != grid.Wall {
		t.Errorf("out-of-bounds snapshot state = %v; want Wall", got)
	}
}

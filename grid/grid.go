package grid

import "strings"

// Grid owns the 2D cell-state array of one maze. Dimensions are fixed for
// the lifetime of a generation/search run; all mutation goes through the
// methods below, which preserve the one-Start/one-End invariant.
type Grid struct {
	roomRows, roomCols int // rooms per axis
	cellRows, cellCols int // cells per axis, always odd
	cells              [][]CellState
	start, end         Point // cell coordinates of Start and End
}

// New constructs an all-Wall grid from room dimensions.
// A grid of rows×cols rooms has (2*rows+1)×(2*cols+1) cells.
// Returns ErrInvalidDimensions when rows or cols is < 1.
// Complexity: O(cells).
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}

	return newGrid(rows, cols), nil
}

// NewFromCellDims constructs a grid from raw doubled-resolution cell
// dimensions. Even or undersized (<3) dimensions cannot host the
// room/wall lattice and are rejected with ErrInvalidDimensions.
// Complexity: O(cells).
func NewFromCellDims(cellRows, cellCols int) (*Grid, error) {
	if cellRows < 3 || cellCols < 3 || cellRows%2 == 0 || cellCols%2 == 0 {
		return nil, ErrInvalidDimensions
	}

	return newGrid((cellRows-1)/2, (cellCols-1)/2), nil
}

// newGrid allocates the cell array and places Start and End.
func newGrid(roomRows, roomCols int) *Grid {
	g := &Grid{
		roomRows: roomRows,
		roomCols: roomCols,
		cellRows: 2*roomRows + 1,
		cellCols: 2*roomCols + 1,
	}
	g.cells = make([][]CellState, g.cellRows)
	for r := range g.cells {
		g.cells[r] = make([]CellState, g.cellCols) // zero value is Wall
	}
	// Start occupies room (0,0), End room (roomRows-1, roomCols-1).
	g.start = g.RoomCell(0, 0)
	g.end = g.RoomCell(roomRows-1, roomCols-1)
	g.cells[g.start.Row][g.start.Col] = Start
	g.cells[g.end.Row][g.end.Col] = End

	return g
}

// Rooms returns the room dimensions (rows, cols).
func (g *Grid) Rooms() (rows, cols int) { return g.roomRows, g.roomCols }

// RoomCount returns the total number of rooms.
func (g *Grid) RoomCount() int { return g.roomRows * g.roomCols }

// CellDims returns the cell-array dimensions (rows, cols), both odd.
func (g *Grid) CellDims() (rows, cols int) { return g.cellRows, g.cellCols }

// Start returns the cell coordinate of the unique Start cell.
func (g *Grid) Start() Point { return g.start }

// End returns the cell coordinate of the unique End cell.
func (g *Grid) End() Point { return g.end }

// InBounds reports whether p lies inside the cell array.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.cellRows && p.Col >= 0 && p.Col < g.cellCols
}

// IsRoom reports whether p is a room position (odd/odd cell coordinates).
func (g *Grid) IsRoom(p Point) bool {
	return g.InBounds(p) && p.Row%2 == 1 && p.Col%2 == 1
}

// isWallSlot reports whether p sits between two rooms (odd/even or even/odd).
func (g *Grid) isWallSlot(p Point) bool {
	return g.InBounds(p) && (p.Row%2)+(p.Col%2) == 1 &&
		p.Row > 0 && p.Row < g.cellRows-1 && p.Col > 0 && p.Col < g.cellCols-1
}

// State returns the state of the cell at p, or Wall for out-of-bounds
// coordinates (the world outside the grid is solid).
func (g *Grid) State(p Point) CellState {
	if !g.InBounds(p) {
		return Wall
	}

	return g.cells[p.Row][p.Col]
}

// RoomCell maps room coordinates to the cell coordinate of that room.
func (g *Grid) RoomCell(roomRow, roomCol int) Point {
	return Point{Row: 2*roomRow + 1, Col: 2*roomCol + 1}
}

// RoomIndex maps a room cell to a dense index in [0, RoomCount), row-major.
// Used as the union-find arena address of the room.
func (g *Grid) RoomIndex(p Point) int {
	return (p.Row/2)*g.roomCols + p.Col/2
}

// CarveWall opens the wall at w, making it a Path cell.
// Carving an already-open wall is a no-op; carving a non-wall-slot position
// returns ErrNotAWall (ErrOutOfBounds when outside the array).
// Complexity: O(1).
func (g *Grid) CarveWall(w Point) error {
	if !g.InBounds(w) {
		return ErrOutOfBounds
	}
	if !g.isWallSlot(w) {
		return ErrNotAWall
	}
	if g.cells[w.Row][w.Col] == Wall {
		g.cells[w.Row][w.Col] = Path
	}

	return nil
}

// CarveRoom marks the room at p as carved (Path). Start and End keep their
// states; carving them is a no-op. Returns ErrOutOfBounds / ErrNotAWall-style
// validation via IsRoom: a non-room p is rejected with ErrOutOfBounds.
func (g *Grid) CarveRoom(p Point) error {
	if !g.IsRoom(p) {
		return ErrOutOfBounds
	}
	if g.cells[p.Row][p.Col] == Wall {
		g.cells[p.Row][p.Col] = Path
	}

	return nil
}

// WallBetween returns the wall cell separating rooms a and b.
// The rooms must be exactly one wall (two cells) apart on one axis.
func (g *Grid) WallBetween(a, b Point) (Point, error) {
	if !g.IsRoom(a) || !g.IsRoom(b) {
		return Point{}, ErrOutOfBounds
	}
	dr, dc := b.Row-a.Row, b.Col-a.Col
	if !((dr == 0 && (dc == 2 || dc == -2)) || (dc == 0 && (dr == 2 || dr == -2))) {
		return Point{}, ErrNotAdjacentRooms
	}

	return Point{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}, nil
}

// RoomNeighbors returns the rooms reachable from p by crossing exactly one
// wall slot, in deterministic N/E/S/W-independent fixed order. The wall may
// be intact or carved; callers filter by their own visited bookkeeping.
func (g *Grid) RoomNeighbors(p Point) []Point {
	if !g.IsRoom(p) {
		return nil
	}
	out := make([]Point, 0, 4)
	for _, d := range roomOffsets {
		q := Point{Row: p.Row + d[0], Col: p.Col + d[1]}
		if g.IsRoom(q) {
			out = append(out, q)
		}
	}

	return out
}

// PassableNeighbors returns the 4-adjacent cells of p that a solver may step
// onto: in bounds and not an intact Wall. Fixed order keeps runs
// reproducible for a given seed.
func (g *Grid) PassableNeighbors(p Point) []Point {
	if !g.InBounds(p) {
		return nil
	}
	out := make([]Point, 0, 4)
	for _, d := range cellOffsets {
		q := Point{Row: p.Row + d[0], Col: p.Col + d[1]}
		if g.InBounds(q) && g.cells[q.Row][q.Col].Passable() {
			out = append(out, q)
		}
	}

	return out
}

// Tag writes a marker state (Visited, Solution or Current) onto the cell at
// p. Start and End are never overwritten (no-op); an intact Wall is never
// tagged (no-op) so topology stays readable from the state alone.
// Any other state value is rejected with ErrBadTag.
// Complexity: O(1).
func (g *Grid) Tag(p Point, s CellState) error {
	if s != Visited && s != Solution && s != Current {
		return ErrBadTag
	}
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	cur := g.cells[p.Row][p.Col]
	if cur == Start || cur == End || cur == Wall {
		return nil
	}
	g.cells[p.Row][p.Col] = s

	return nil
}

// ResetTags clears every Visited, Solution and Current marker back to Path,
// leaving wall topology and the Start/End cells untouched.
// Complexity: O(cells).
func (g *Grid) ResetTags() {
	for r := 0; r < g.cellRows; r++ {
		for c := 0; c < g.cellCols; c++ {
			switch g.cells[r][c] {
			case Visited, Solution, Current:
				g.cells[r][c] = Path
			}
		}
	}
}

// CarvedPassages counts the opened between-rooms walls. A finished spanning
// tree over R rooms has exactly R-1 of them.
// Complexity: O(cells).
func (g *Grid) CarvedPassages() int {
	n := 0
	for r := 0; r < g.cellRows; r++ {
		for c := 0; c < g.cellCols; c++ {
			p := Point{Row: r, Col: c}
			if g.isWallSlot(p) && g.cells[r][c].Passable() {
				n++
			}
		}
	}

	return n
}

// Clone returns a deep mutable copy of g. Used for the backup grid taken at
// generation completion and for metrics-side reference searches.
// Complexity: O(cells).
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		roomRows: g.roomRows,
		roomCols: g.roomCols,
		cellRows: g.cellRows,
		cellCols: g.cellCols,
		start:    g.start,
		end:      g.end,
	}
	cp.cells = make([][]CellState, g.cellRows)
	for r := range g.cells {
		cp.cells[r] = make([]CellState, g.cellCols)
		copy(cp.cells[r], g.cells[r])
	}

	return cp
}

// Restore overwrites g's cells with those of src. The two grids must share
// dimensions; mismatched dimensions return ErrInvalidDimensions.
// Complexity: O(cells).
func (g *Grid) Restore(src *Grid) error {
	if src == nil || src.cellRows != g.cellRows || src.cellCols != g.cellCols {
		return ErrInvalidDimensions
	}
	for r := range g.cells {
		copy(g.cells[r], src.cells[r])
	}
	g.start, g.end = src.start, src.end

	return nil
}

// Equal reports whether g and other hold identical dimensions and cell
// states. Used by determinism and pause/resume equivalence tests.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.cellRows != other.cellRows || g.cellCols != other.cellCols {
		return false
	}
	for r := 0; r < g.cellRows; r++ {
		for c := 0; c < g.cellCols; c++ {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}

	return true
}

// String renders the grid as ASCII art, one rune per cell, rows separated by
// newlines. Handy in tests and debug logs.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.cellRows * (g.cellCols + 1))
	for r := 0; r < g.cellRows; r++ {
		for c := 0; c < g.cellCols; c++ {
			b.WriteString(g.cells[r][c].String())
		}
		if r < g.cellRows-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

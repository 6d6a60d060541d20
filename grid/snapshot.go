package grid

// Snapshot is an immutable copy of a grid's cell states, safe to hand to a
// renderer while the owning engine keeps mutating the live grid.
type Snapshot struct {
	cellRows, cellCols int
	cells              [][]CellState
	start, end         Point
}

// Snapshot returns a deep read-only copy of the current cell states.
// Complexity: O(cells).
func (g *Grid) Snapshot() *Snapshot {
	s := &Snapshot{
		cellRows: g.cellRows,
		cellCols: g.cellCols,
		start:    g.start,
		end:      g.end,
	}
	s.cells = make([][]CellState, g.cellRows)
	for r := range g.cells {
		s.cells[r] = make([]CellState, g.cellCols)
		copy(s.cells[r], g.cells[r])
	}

	return s
}

// CellDims returns the snapshot's cell dimensions (rows, cols).
func (s *Snapshot) CellDims() (rows, cols int) { return s.cellRows, s.cellCols }

// Start returns the Start cell coordinate.
func (s *Snapshot) Start() Point { return s.start }

// End returns the End cell coordinate.
func (s *Snapshot) End() Point { return s.end }

// State returns the state at (row, col), or Wall outside the array.
func (s *Snapshot) State(row, col int) CellState {
	if row < 0 || row >= s.cellRows || col < 0 || col >= s.cellCols {
		return Wall
	}

	return s.cells[row][col]
}

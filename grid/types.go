// Package grid defines the cell states, coordinates and sentinel errors for
// the maze data model.
package grid

import "errors"

// Sentinel errors for grid construction and mutation.
var (
	// ErrInvalidDimensions indicates non-positive room counts, or cell
	// dimensions that are even or smaller than 3 under the
	// doubled-resolution model.
	ErrInvalidDimensions = errors.New("grid: invalid grid dimensions")

	// ErrOutOfBounds indicates a coordinate outside the cell array.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrNotAWall indicates CarveWall was called on a cell that is not a
	// wall position between two rooms.
	ErrNotAWall = errors.New("grid: not a between-rooms wall position")

	// ErrNotAdjacentRooms indicates WallBetween was called on two rooms that
	// are not exactly one wall apart.
	ErrNotAdjacentRooms = errors.New("grid: rooms are not adjacent")

	// ErrBadTag indicates Tag was called with a non-marker state.
	ErrBadTag = errors.New("grid: state is not a marker tag")
)

// CellState is the semantic role of a single cell.
// Wall and Path describe topology; Start and End are the fixed endpoints;
// Visited, Solution and Current are marker tags written during search and
// cleared by ResetTags.
type CellState uint8

const (
	// Wall is an impassable cell (intact wall, border or corner post).
	Wall CellState = iota
	// Path is a carved, traversable cell.
	Path
	// Start is the unique search origin (room 0,0).
	Start
	// End is the unique search target (room rows-1,cols-1).
	End
	// Visited marks a cell explored by a solver.
	Visited
	// Solution marks a cell on the final reconstructed path.
	Solution
	// Current marks the active head of the running algorithm.
	Current
)

// String returns a single-rune rendering of s, used by Grid.String.
func (s CellState) String() string {
	switch s {
	case Wall:
		return "#"
	case Path:
		return " "
	case Start:
		return "S"
	case End:
		return "E"
	case Visited:
		return "."
	case Solution:
		return "*"
	case Current:
		return "@"
	default:
		return "?"
	}
}

// Passable reports whether a solver may stand on a cell in state s.
// Everything except an intact Wall is traversable.
func (s CellState) Passable() bool {
	return s != Wall
}

// Point addresses one cell in cell (doubled-resolution) coordinates.
type Point struct {
	Row, Col int
}

// cardinal room offsets: one room over means two cells over.
var roomOffsets = [4][2]int{{0, 2}, {2, 0}, {0, -2}, {-2, 0}}

// cardinal cell offsets used by search adjacency.
var cellOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

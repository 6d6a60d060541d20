// Package grid provides the doubled-resolution maze data model shared by
// every generator and solver in mazesim.
//
// What
//
//   - A rectangular array of CellState at double resolution: rooms live on
//     odd/odd cell coordinates, walls between two rooms on odd/even or
//     even/odd coordinates, and the outer border plus corner posts are
//     permanent walls.
//   - Controlled mutation only: CarveWall opens a passage (idempotent),
//     Tag writes Visited/Solution/Current markers without ever touching
//     wall topology, ResetTags clears markers between solves.
//   - Exactly one Start (room 0,0) and one End (room rows-1,cols-1) exist at
//     all times; every mutator preserves that invariant.
//   - Snapshot returns a deep, read-only copy for rendering; Clone returns a
//     full mutable copy (used for the post-generation backup grid).
//
// Why
//
//	Modeling walls as first-class, independently addressable cells is what
//	lets generation algorithms treat wall-removal as one unit of work, and
//	lets solvers walk rooms without ever mutating topology.
//
// Coordinates
//
//	Rooms are addressed either in room space (row, col with
//	0 ≤ row < Rooms) or in cell space via RoomCell. A grid built from r×c
//	rooms has (2r+1)×(2c+1) cells — always odd; NewFromCellDims rejects
//	even or undersized cell dimensions with ErrInvalidDimensions.
//
// Complexity
//
//   - Construction, Clone, Snapshot, ResetTags: O(cells).
//   - CarveWall, Tag, State, neighbor queries: O(1).
//
// Errors
//
//   - ErrInvalidDimensions — construction with non-positive room counts, or
//     even/undersized cell dimensions.
//   - ErrOutOfBounds      — any operation on a coordinate outside the grid.
//   - ErrNotAWall         — CarveWall on a cell that is not a between-rooms
//     wall position.
//   - ErrNotAdjacentRooms — WallBetween on rooms not exactly one wall apart.
//   - ErrBadTag           — Tag with a state other than Visited, Solution or
//     Current.
package grid

package mazesolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesim/grid"
	"github.com/katalvlaran/mazesim/mazegen"
	"github.com/katalvlaran/mazesim/mazesolve"
)

// perfectMaze generates a backtracking maze on a rows×cols room grid and
// returns the pristine result; tests clone it so every solver starts clean.
func perfectMaze(t *testing.T, rows, cols int, seed int64) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	gen, err := mazegen.New(mazegen.Backtracking, g, mazegen.WithSeed(seed))
	require.NoError(t, err)
	for !gen.Finished() {
		_, err = gen.Step()
		require.NoError(t, err)
	}

	return g
}

// solve drives sol to termination and returns the final result.
func solve(t *testing.T, sol mazesolve.Solver) mazesolve.StepResult {
	t.Helper()
	for {
		res, err := sol.Step()
		require.NoError(t, err)
		if res.Outcome != mazesolve.Progressed {
			return res
		}
	}
}

// requireValidPath checks the Start→End contract: correct endpoints, unit
// moves, and every position carved (or Start/End) on the reference grid.
func requireValidPath(t *testing.T, g *grid.Grid, path []grid.Point) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, g.Start(), path[0], "path must begin at Start")
	require.Equal(t, g.End(), path[len(path)-1], "path must end at End")
	for i, p := range path {
		require.True(t, g.State(p).Passable(), "position %v is not passable", p)
		if i > 0 {
			prev := path[i-1]
			dist := abs(p.Row-prev.Row) + abs(p.Col-prev.Col)
			require.Equal(t, 1, dist, "non-unit move %v -> %v", prev, p)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var allAlgs = []mazesolve.Algorithm{mazesolve.DFS, mazesolve.BFS, mazesolve.AStar}

func TestParseAlgorithm(t *testing.T) {
	got, err := mazesolve.ParseAlgorithm("A*")
	require.NoError(t, err)
	assert.Equal(t, mazesolve.AStar, got)

	_, err = mazesolve.ParseAlgorithm("dijkstra")
	assert.ErrorIs(t, err, mazesolve.ErrUnknownAlgorithm)
}

func TestNew_Validation(t *testing.T) {
	_, err := mazesolve.New(mazesolve.BFS, nil)
	assert.ErrorIs(t, err, mazesolve.ErrGridNil)

	g := perfectMaze(t, 2, 2, 1)
	_, err = mazesolve.New(mazesolve.Algorithm(42), g)
	assert.ErrorIs(t, err, mazesolve.ErrUnknownAlgorithm)
}

// TestUniquePath: a perfect maze has exactly one Start→End path, so all
// three strategies must return the identical sequence — and the optimality
// ratio question collapses to 1.0 for every one of them.
func TestUniquePath(t *testing.T) {
	maze := perfectMaze(t, 8, 8, 42)

	paths := make(map[mazesolve.Algorithm][]grid.Point)
	for _, alg := range allAlgs {
		g := maze.Clone()
		sol, err := mazesolve.New(alg, g)
		require.NoError(t, err)

		res := solve(t, sol)
		require.Equal(t, mazesolve.GoalFound, res.Outcome, alg)
		requireValidPath(t, maze, res.Path)
		paths[alg] = res.Path

		assert.True(t, sol.Done(), alg)
		assert.Equal(t, res.Path, sol.Path(), alg)
		assert.Positive(t, sol.Steps(), alg)
	}

	assert.Equal(t, paths[mazesolve.BFS], paths[mazesolve.AStar], "BFS and A* disagree")
	assert.Equal(t, paths[mazesolve.BFS], paths[mazesolve.DFS], "DFS found a different path in a tree")
}

// TestGridTags: after GoalFound the path is painted Solution, the head
// marker is gone, and Start/End keep their states.
func TestGridTags(t *testing.T) {
	maze := perfectMaze(t, 5, 5, 7)
	g := maze.Clone()
	sol, err := mazesolve.New(mazesolve.BFS, g)
	require.NoError(t, err)

	res := solve(t, sol)
	require.Equal(t, mazesolve.GoalFound, res.Outcome)

	assert.Equal(t, grid.Start, g.State(g.Start()))
	assert.Equal(t, grid.End, g.State(g.End()))
	for _, p := range res.Path[1 : len(res.Path)-1] {
		assert.Equal(t, grid.Solution, g.State(p), "interior path position %v", p)
	}

	rows, cols := g.CellDims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			assert.NotEqual(t, grid.Current, g.State(grid.Point{Row: r, Col: c}),
				"head marker left at (%d,%d)", r, c)
		}
	}
}

// TestExhausted: an uncarved grid is unsolvable — a result, not an error.
func TestExhausted(t *testing.T) {
	for _, alg := range allAlgs {
		t.Run(alg.String(), func(t *testing.T) {
			g, err := grid.New(4, 4)
			require.NoError(t, err)
			sol, err := mazesolve.New(alg, g)
			require.NoError(t, err)

			res := solve(t, sol)
			assert.Equal(t, mazesolve.Exhausted, res.Outcome)
			assert.Nil(t, res.Path)
			assert.True(t, sol.Done())
			// Only Start itself was expandable.
			assert.Equal(t, 1, sol.Steps())
		})
	}
}

// TestExhausted_PartialRegion: a carved pocket around Start that never
// reaches End is fully explored before the frontier empties.
func TestExhausted_PartialRegion(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	w, err := g.WallBetween(g.RoomCell(0, 0), g.RoomCell(0, 1))
	require.NoError(t, err)
	require.NoError(t, g.CarveWall(w))
	require.NoError(t, g.CarveRoom(g.RoomCell(0, 1)))

	for _, alg := range allAlgs {
		t.Run(alg.String(), func(t *testing.T) {
			sol, serr := mazesolve.New(alg, g.Clone())
			require.NoError(t, serr)
			res := solve(t, sol)
			assert.Equal(t, mazesolve.Exhausted, res.Outcome)
			// Start, the carved wall and the second room: three expansions.
			assert.Equal(t, 3, sol.Steps())
		})
	}
}

// TestStepAfterDone: the final result repeats with no further work.
func TestStepAfterDone(t *testing.T) {
	maze := perfectMaze(t, 4, 4, 3)
	for _, alg := range allAlgs {
		t.Run(alg.String(), func(t *testing.T) {
			sol, err := mazesolve.New(alg, maze.Clone())
			require.NoError(t, err)

			final := solve(t, sol)
			steps := sol.Steps()
			again, err := sol.Step()
			require.NoError(t, err)
			assert.Equal(t, final, again)
			assert.Equal(t, steps, sol.Steps())
		})
	}
}

// TestDeterminism: identical maze, identical run — step counts and paths
// must reproduce exactly.
func TestDeterminism(t *testing.T) {
	maze := perfectMaze(t, 9, 6, 1337)
	for _, alg := range allAlgs {
		t.Run(alg.String(), func(t *testing.T) {
			run := func() (int, []grid.Point) {
				sol, err := mazesolve.New(alg, maze.Clone())
				require.NoError(t, err)
				res := solve(t, sol)
				require.Equal(t, mazesolve.GoalFound, res.Outcome)
				return sol.Steps(), res.Path
			}

			steps1, path1 := run()
			steps2, path2 := run()
			assert.Equal(t, steps1, steps2)
			assert.Equal(t, path1, path2)
		})
	}
}

// TestSingleRoom: Start and End coincide on a 1×1 grid; the first pop is
// the goal.
func TestSingleRoom(t *testing.T) {
	for _, alg := range allAlgs {
		t.Run(alg.String(), func(t *testing.T) {
			g, err := grid.New(1, 1)
			require.NoError(t, err)
			sol, err := mazesolve.New(alg, g)
			require.NoError(t, err)

			res, err := sol.Step()
			require.NoError(t, err)
			assert.Equal(t, mazesolve.GoalFound, res.Outcome)
			assert.Equal(t, []grid.Point{g.Start()}, res.Path)
			assert.Equal(t, 1, sol.Steps())
		})
	}
}

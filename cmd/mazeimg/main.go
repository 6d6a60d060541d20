// Command mazeimg generates a maze (optionally solving it first) and writes
// a scaled PNG of the final snapshot.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/mazesim/grid"
	"github.com/katalvlaran/mazesim/mazegen"
	"github.com/katalvlaran/mazesim/mazesolve"
	"github.com/katalvlaran/mazesim/sim"
)

// snapshotImage adapts a grid snapshot to image.Image, one pixel per cell;
// scaling to presentable sizes happens afterwards.
type snapshotImage struct {
	snap *grid.Snapshot
}

func (m *snapshotImage) ColorModel() color.Model { return color.RGBAModel }

func (m *snapshotImage) Bounds() image.Rectangle {
	rows, cols := m.snap.CellDims()

	return image.Rect(0, 0, cols, rows)
}

func (m *snapshotImage) At(x, y int) color.Color {
	switch m.snap.State(y, x) {
	case grid.Wall:
		return color.RGBA{A: 255}
	case grid.Path:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case grid.Start:
		return color.RGBA{G: 255, A: 255}
	case grid.End:
		return color.RGBA{R: 255, A: 255}
	case grid.Visited:
		return color.RGBA{R: 173, G: 216, B: 230, A: 255}
	case grid.Solution:
		return color.RGBA{R: 255, G: 255, A: 255}
	case grid.Current:
		return color.RGBA{R: 128, B: 128, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}

func run() error {
	var (
		rows    = flag.Int("rows", 20, "room rows")
		cols    = flag.Int("cols", 20, "room columns")
		seed    = flag.Int64("seed", 42, "PRNG seed (0 = fixed default)")
		genName = flag.String("gen", "backtracking", "generator: backtracking, prim, kruskal")
		solName = flag.String("solve", "", "solver to run and overlay: dfs, bfs, astar (empty = none)")
		scale   = flag.Int("scale", 12, "pixels per cell")
		outPath = flag.String("o", "maze.png", "output PNG path")
	)
	flag.Parse()

	if *scale < 1 {
		return fmt.Errorf("scale must be >= 1, got %d", *scale)
	}
	genAlg, err := mazegen.ParseAlgorithm(*genName)
	if err != nil {
		return err
	}

	s, err := sim.New(*rows, *cols, *seed)
	if err != nil {
		return err
	}
	if err = s.StartGeneration(genAlg); err != nil {
		return err
	}
	for !s.IsFinished() {
		if _, err = s.Tick(); err != nil {
			return err
		}
	}

	if *solName != "" {
		solAlg, perr := mazesolve.ParseAlgorithm(*solName)
		if perr != nil {
			return perr
		}
		if err = s.StartSolving(solAlg); err != nil {
			return err
		}
		for !s.IsFinished() {
			if _, err = s.Tick(); err != nil {
				return err
			}
		}
		if s.Result().Status == sim.NotFound {
			fmt.Fprintln(os.Stderr, "no solution found; rendering explored maze")
		}
	}

	base := &snapshotImage{snap: s.Snapshot()}
	b := base.Bounds()
	scaled := image_utils.ResizeImage(base, b.Dx()*(*scale), b.Dy()*(*scale))

	out, err := os.Create(*outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return png.Encode(out, scaled)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mazeimg: %v\n", err)
		os.Exit(1)
	}
}

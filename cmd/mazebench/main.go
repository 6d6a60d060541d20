// Command mazebench is the headless benchmark driver: it sweeps algorithm
// combinations across grid sizes and seeds, and persists one CSV row per
// run. The CSV table is the sole artifact; the core persists nothing.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/katalvlaran/mazesim/mazegen"
	"github.com/katalvlaran/mazesim/mazesolve"
	"github.com/katalvlaran/mazesim/sim"
)

// csvHeader matches the benchmark interface column for column.
var csvHeader = []string{
	"generation_algorithm", "search_algorithm", "grid_rows", "grid_cols",
	"seed", "generation_steps", "search_steps", "elapsed_time_ms",
	"peak_memory_mb", "optimality_ratio", "solved",
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML suite config (empty = built-in default sweep)")
		outPath    = flag.String("out", "results.csv", "output CSV path")
		verbose    = flag.Bool("v", false, "log every run, not just the summary")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(log, *configPath, *outPath); err != nil {
		log.Error("benchmark failed", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, configPath, outPath string) error {
	cfg, err := LoadSuite(configPath)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("mazebench: create output: %w", err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	defer w.Flush()
	if err = w.Write(csvHeader); err != nil {
		return err
	}

	total := len(cfg.Generators) * len(cfg.Solvers) * len(cfg.Grids) * len(cfg.Seeds)
	log.Info("starting sweep", "runs", total, "out", outPath)

	done := 0
	for _, genName := range cfg.Generators {
		genAlg, perr := mazegen.ParseAlgorithm(genName)
		if perr != nil {
			return perr
		}
		for _, solName := range cfg.Solvers {
			solAlg, perr := mazesolve.ParseAlgorithm(solName)
			if perr != nil {
				return perr
			}
			for _, gs := range cfg.Grids {
				for _, seed := range cfg.Seeds {
					row, rerr := benchOne(genAlg, solAlg, gs, seed, cfg.BatchSize)
					if rerr != nil {
						return rerr
					}
					if err = w.Write(row); err != nil {
						return err
					}
					done++
					log.Debug("run complete",
						"generator", genName, "solver", solName,
						"grid", fmt.Sprintf("%dx%d", gs.Rows, gs.Cols),
						"seed", seed, "progress", fmt.Sprintf("%d/%d", done, total))
				}
			}
		}
	}

	w.Flush()
	log.Info("sweep complete", "runs", done, "out", outPath)

	return w.Error()
}

// benchOne executes one generation+solve run to completion and formats its
// CSV row.
func benchOne(genAlg mazegen.Algorithm, solAlg mazesolve.Algorithm, gs GridSize, seed int64, batch int) ([]string, error) {
	s, err := sim.New(gs.Rows, gs.Cols, seed, sim.WithBatchSize(batch))
	if err != nil {
		return nil, err
	}
	if err = s.StartGeneration(genAlg); err != nil {
		return nil, err
	}
	if err = drive(s); err != nil {
		return nil, err
	}
	if err = s.StartSolving(solAlg); err != nil {
		return nil, err
	}
	if err = drive(s); err != nil {
		return nil, err
	}

	m := s.Metrics()
	elapsedMS := m.Generation.ElapsedMS() + m.Search.ElapsedMS()
	peakMB := m.Generation.PeakMemoryMB()
	if m.Search.PeakMemoryMB() > peakMB {
		peakMB = m.Search.PeakMemoryMB()
	}

	return []string{
		genAlg.String(),
		solAlg.String(),
		strconv.Itoa(gs.Rows),
		strconv.Itoa(gs.Cols),
		strconv.FormatInt(seed, 10),
		strconv.Itoa(m.Generation.StepCount),
		strconv.Itoa(m.Search.StepCount),
		strconv.FormatFloat(elapsedMS, 'f', 3, 64),
		strconv.FormatFloat(peakMB, 'f', 6, 64),
		strconv.FormatFloat(m.Search.OptimalityRatio, 'f', 4, 64),
		strconv.FormatBool(m.Solved),
	}, nil
}

// drive ticks the scheduler until the active phase completes.
func drive(s *sim.Simulation) error {
	for !s.IsFinished() {
		if _, err := s.Tick(); err != nil {
			return err
		}
	}

	return nil
}

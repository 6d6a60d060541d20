package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GridSize is one rows×cols room-grid entry of the suite.
type GridSize struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SuiteConfig describes a benchmark sweep: every generator × solver × grid
// × seed combination is run once and persisted as one CSV row.
type SuiteConfig struct {
	// Grids lists the room dimensions to benchmark.
	Grids []GridSize `yaml:"grids"`

	// Seeds drive the deterministic PRNG; one full sweep per seed.
	Seeds []int64 `yaml:"seeds"`

	// Generators and Solvers name the algorithms to cross
	// (mazegen/mazesolve spellings: backtracking, prim, kruskal; dfs,
	// bfs, astar).
	Generators []string `yaml:"generators"`
	Solvers    []string `yaml:"solvers"`

	// BatchSize is the scheduler's K. Batching never changes step counts,
	// only how many steps one Tick executes.
	BatchSize int `yaml:"batch_size"`
}

// DefaultSuite returns the sweep used when no config file is given:
// all nine algorithm combinations over three grid sizes and three seeds.
func DefaultSuite() SuiteConfig {
	return SuiteConfig{
		Grids:      []GridSize{{Rows: 10, Cols: 10}, {Rows: 20, Cols: 20}, {Rows: 40, Cols: 40}},
		Seeds:      []int64{1, 42, 1337},
		Generators: []string{"backtracking", "prim", "kruskal"},
		Solvers:    []string{"dfs", "bfs", "astar"},
		BatchSize:  20,
	}
}

// LoadSuite reads a YAML suite description, filling omitted fields from
// DefaultSuite. An empty path returns the defaults unchanged.
func LoadSuite(path string) (SuiteConfig, error) {
	cfg := DefaultSuite()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("mazebench: read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("mazebench: parse config: %w", err)
	}
	if err = cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// validate rejects sweeps that could not produce a single row.
func (c SuiteConfig) validate() error {
	if len(c.Grids) == 0 || len(c.Seeds) == 0 || len(c.Generators) == 0 || len(c.Solvers) == 0 {
		return fmt.Errorf("mazebench: config needs at least one grid, seed, generator and solver")
	}
	for _, g := range c.Grids {
		if g.Rows < 1 || g.Cols < 1 {
			return fmt.Errorf("mazebench: invalid grid size %dx%d", g.Rows, g.Cols)
		}
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("mazebench: batch_size must be >= 1, got %d", c.BatchSize)
	}

	return nil
}

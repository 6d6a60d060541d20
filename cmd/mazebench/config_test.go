package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSuite_EmptyPath(t *testing.T) {
	cfg, err := LoadSuite("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSuite(), cfg)
}

func TestLoadSuite_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	doc := `
grids:
  - {rows: 3, cols: 4}
seeds: [5]
batch_size: 2
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := LoadSuite(path)
	require.NoError(t, err)
	assert.Equal(t, []GridSize{{Rows: 3, Cols: 4}}, cfg.Grids)
	assert.Equal(t, []int64{5}, cfg.Seeds)
	assert.Equal(t, 2, cfg.BatchSize)
	// Omitted lists keep the defaults.
	assert.Equal(t, DefaultSuite().Generators, cfg.Generators)
	assert.Equal(t, DefaultSuite().Solvers, cfg.Solvers)
}

func TestLoadSuite_Invalid(t *testing.T) {
	write := func(doc string) string {
		path := filepath.Join(t.TempDir(), "suite.yaml")
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
		return path
	}

	_, err := LoadSuite(write("grids: []\n"))
	assert.Error(t, err)

	_, err = LoadSuite(write("grids: [{rows: 0, cols: 5}]\n"))
	assert.Error(t, err)

	_, err = LoadSuite(write("batch_size: -1\n"))
	assert.Error(t, err)

	_, err = LoadSuite(write("grids: ["))
	assert.Error(t, err)

	_, err = LoadSuite(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

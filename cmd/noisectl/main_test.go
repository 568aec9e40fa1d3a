package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/danmuck/libnoise/internal/catalog"
	"github.com/danmuck/libnoise/internal/config"
	"github.com/danmuck/libnoise/internal/noise"
	"github.com/danmuck/libnoise/internal/testutil/testlog"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "noisectl.toml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestCatalogFormats(t *testing.T) {
	testlog.Start(t)

	text, _, err := run(t, "catalog")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	assert.Len(t, lines, 24)
	assert.True(t, strings.HasPrefix(lines[0], "SYMBOL"))
	assert.Contains(t, text, "noise_cell4_manhattan_range_inv")

	out, _, err := run(t, "catalog", "--format", "json")
	require.NoError(t, err)
	var rows []catalogRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 23)
	assert.Equal(t, "noise_perlin2", rows[0].Symbol)
	assert.Equal(t, 2, rows[0].Dims)

	out, _, err = run(t, "catalog", "--format", "yaml")
	require.NoError(t, err)
	rows = nil
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 23)

	_, _, err = run(t, "catalog", "--format", "csv")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestSampleMatchesEngine(t *testing.T) {
	testlog.Start(t)
	out, _, err := run(t, "sample", "noise_perlin3", "0.2", "0.3", "1.5", "--seed", "42")
	require.NoError(t, err)
	again, _, err := run(t, "sample", "noise_perlin3", "0.2", "0.3", "1.5", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	s := noise.NewSeed(42)
	want := strconv.FormatFloat(noise.Perlin.Eval3(&s, 0.2, 0.3, 1.5), 'g', -1, 64)
	assert.Equal(t, want, strings.TrimSpace(out))
}

func TestSampleSeedFromConfig(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, "seed = 9\n")
	fromConfig, _, err := run(t, "--config", path, "sample", "noise_cell2_value", "3.7", "-1.2")
	require.NoError(t, err)
	fromFlag, _, err := run(t, "sample", "noise_cell2_value", "3.7", "-1.2", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, fromFlag, fromConfig)
}

func TestSampleErrors(t *testing.T) {
	testlog.Start(t)
	_, _, err := run(t, "sample", "noise_perlin3", "1", "2")
	assert.ErrorIs(t, err, catalog.ErrArity)

	_, _, err = run(t, "sample", "noise_open_simplex4", "1", "2", "3", "4")
	assert.ErrorContains(t, err, "unknown symbol")

	_, _, err = run(t, "sample", "noise_perlin2", "1", "north")
	assert.ErrorContains(t, err, "coordinate 1")

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "sample", "noise_perlin2", "1", "2")
	assert.Error(t, err)
}

func TestGridIsDeterministicAcrossWorkers(t *testing.T) {
	testlog.Start(t)
	args := []string{"grid", "noise_open_simplex2", "--width", "8", "--height", "6", "--format", "json", "--seed", "5"}

	serial, _, err := run(t, append(args, "--workers", "1")...)
	require.NoError(t, err)
	parallel, _, err := run(t, append(args, "--workers", "6")...)
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)

	var rows [][]float64
	require.NoError(t, json.Unmarshal([]byte(serial), &rows))
	require.Len(t, rows, 6)
	for _, row := range rows {
		assert.Len(t, row, 8)
	}

	s := noise.NewSeed(5)
	step := config.DefaultNoisectlConfig().Step
	assert.Equal(t, noise.OpenSimplex.Eval2(&s, 3*step, 2*step), rows[2][3])
}

func TestGridUsesConfigOrigin(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, "seed = 3\nstep = 0.5\norigin = [10.0, -4.0, 2.0]\n")
	out, _, err := run(t, "--config", path, "grid", "noise_cell3_range", "--width", "2", "--height", "2", "--format", "json")
	require.NoError(t, err)

	var rows [][]float64
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	s := noise.NewSeed(3)
	assert.Equal(t, noise.CellRange.Eval3(&s, 10.5, -3.5, 2.0), rows[1][1])
}

func TestGridTextAndMetrics(t *testing.T) {
	testlog.Start(t)
	out, stderr, err := run(t, "grid", "noise_perlin2", "--width", "3", "--height", "2", "--metrics")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, strings.Fields(lines[0]), 3)
	assert.Contains(t, stderr, "libnoise_eval_samples_total")

	_, _, err = run(t, "grid", "noise_perlin2", "--width", "0")
	assert.Error(t, err)
}

func TestConfigInitThenValidate(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "noisectl.toml")

	out, _, err := run(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, _, err = run(t, "--config", path, "config", "init")
	assert.Error(t, err)
	_, _, err = run(t, "--config", path, "config", "init", "--force")
	assert.NoError(t, err)

	out, _, err = run(t, "--config", path, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Validated")

	bad := writeConfig(t, "workers = 0\n")
	_, _, err = run(t, "--config", bad, "config", "validate")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

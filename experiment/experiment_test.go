// Package experiment_test drives the sweep runner end to end on a tiny
// instance: config parsing, per-run seed derivation, statistics, the SQLite
// store roundtrip and the text report.
package experiment_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evotsp/evolve"
	"github.com/katalvlaran/evotsp/experiment"
	"github.com/katalvlaran/evotsp/instance"
)

func tinyInstance(t *testing.T) *instance.Instance {
	t.Helper()
	inst, err := instance.New([][]float64{
		{0, 2, 9, 10},
		{1, 0, 6, 4},
		{15, 7, 0, 8},
		{6, 3, 12, 0},
	}, "asym4")
	require.NoError(t, err)

	return inst
}

func TestParseConfig(t *testing.T) {
	cfg, err := experiment.ParseConfig([]byte(`
name: sweep-demo
generator:
  kind: random
  cities: 8
  width: 100
  height: 100
runs: 3
seed: 42
base:
  mu: 10
  lambda: 20
  generations: 15
  mutation_rate: 0.25
  crossover: PMX
sweep:
  mu: [5, 10]
  mutation_rate: [0.1, 0.3]
`))
	require.NoError(t, err)
	require.Equal(t, "sweep-demo", cfg.Name)
	require.Equal(t, 3, cfg.Runs)
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, []int{5, 10}, cfg.Sweep.Mu)

	opts, err := cfg.Base.Options()
	require.NoError(t, err)
	require.Equal(t, 10, opts.Mu)
	require.Equal(t, evolve.CrossoverPMX, opts.Crossover)
	// Unset fields fall back to the defaults.
	require.Equal(t, 3, opts.TournamentSize)
}

func TestParseConfig_Rejections(t *testing.T) {
	cases := []string{
		"runs: 3\n",                               // no instance and no generator
		"instance: a.tsp\ngenerator: {kind: random}\n", // both
		"instance: a.tsp\nruns: -1\n",             // bad runs
		"instance: a.tsp\nbase: {crossover: BAD}\n",
		"instance: [not, a, mapping]\n",
	}
	for _, in := range cases {
		_, err := experiment.ParseConfig([]byte(in))
		require.ErrorIs(t, err, experiment.ErrBadConfig, "input %q", in)
	}
}

func TestBuildInstance_Generators(t *testing.T) {
	cfg, err := experiment.ParseConfig([]byte(`
generator: {kind: grid, grid_x: 3, grid_y: 3, spacing_x: 1, spacing_y: 1}
`))
	require.NoError(t, err)

	inst, err := cfg.BuildInstance()
	require.NoError(t, err)
	require.Equal(t, 9, inst.N())

	// Deterministic: the random generator is seeded from the experiment seed.
	cfg2, err := experiment.ParseConfig([]byte(`
seed: 7
generator: {kind: random, cities: 6, width: 10, height: 10}
`))
	require.NoError(t, err)
	a, err := cfg2.BuildInstance()
	require.NoError(t, err)
	b, err := cfg2.BuildInstance()
	require.NoError(t, err)
	require.Equal(t, a.Coordinates(), b.Coordinates())

	cfg3, err := experiment.ParseConfig([]byte(`
generator: {kind: hexagon}
`))
	require.NoError(t, err)
	_, err = cfg3.BuildInstance()
	require.ErrorIs(t, err, experiment.ErrBadConfig)
}

func sweepConfig(t *testing.T, storePath string) experiment.Config {
	t.Helper()
	cfg, err := experiment.ParseConfig([]byte(`
name: asym4-sweep
instance: placeholder.tsp
runs: 4
seed: 99
base:
  mu: 10
  lambda: 20
  generations: 25
sweep:
  mu: [5, 10]
  crossover: [OX, ERX]
`))
	require.NoError(t, err)
	cfg.StorePath = storePath

	return cfg
}

func TestRunner_SweepStatisticsAndDeterminism(t *testing.T) {
	inst := tinyInstance(t)
	cfg := sweepConfig(t, "")

	out, err := experiment.NewRunner(inst, cfg, nil).Run(context.Background())
	require.NoError(t, err)

	// 4 swept values × 4 runs.
	require.Len(t, out.Results, 16)
	require.Len(t, out.Summaries, 4)
	require.Equal(t, "asym4", out.InstanceName)

	seeds := make(map[int64]bool)
	for _, res := range out.Results {
		require.NotEmpty(t, res.RunID)
		require.NoError(t, evolve.ValidatePermutation(res.Tour, inst.N()))
		require.False(t, seeds[res.Seed], "per-run seeds must be unique")
		seeds[res.Seed] = true
	}

	for _, sum := range out.Summaries {
		require.Equal(t, 4, sum.Runs)
		require.LessOrEqual(t, sum.Best, sum.Median)
		require.LessOrEqual(t, sum.Best, sum.Mean)
		require.GreaterOrEqual(t, sum.StdDev, 0.0)
	}

	// The whole sweep is a pure function of the experiment seed.
	again, err := experiment.NewRunner(inst, cfg, nil).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, out.Summaries, again.Summaries)
	for i := range out.Results {
		require.Equal(t, out.Results[i].Seed, again.Results[i].Seed)
		require.Equal(t, out.Results[i].BestFitness, again.Results[i].BestFitness)
	}
}

func TestRunner_EmptySweepRunsBase(t *testing.T) {
	inst := tinyInstance(t)

	cfg, err := experiment.ParseConfig([]byte(`
instance: placeholder.tsp
runs: 2
base: {mu: 5, lambda: 10, generations: 10}
`))
	require.NoError(t, err)

	out, err := experiment.NewRunner(inst, cfg, nil).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Summaries, 1)
	require.Equal(t, "base", out.Summaries[0].Axis)
	require.Len(t, out.Results, 2)
}

func TestRunner_ContextCancellation(t *testing.T) {
	inst := tinyInstance(t)
	cfg := sweepConfig(t, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := experiment.NewRunner(inst, cfg, nil).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.db")
	store := experiment.NewStore(path)
	ctx := context.Background()

	require.NoError(t, store.Init(ctx))
	require.NoError(t, store.Init(ctx)) // idempotent
	defer store.Close()

	inst := tinyInstance(t)
	cfg := sweepConfig(t, path)
	cfg.Runs = 2
	cfg.Sweep = experiment.SweepAxes{Mu: []int{5}}

	out, err := experiment.NewRunner(inst, cfg, store).Run(ctx)
	require.NoError(t, err)

	runs, err := store.Runs(ctx, cfg.Name)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, out.Results[0].BestFitness, runs[0].BestFitness)
	require.Equal(t, out.Results[0].Tour, runs[0].Tour)
	require.Equal(t, out.Results[1].Seed, runs[1].Seed)

	sums, err := store.Summaries(ctx, cfg.Name)
	require.NoError(t, err)
	require.Len(t, sums, 1)
	require.Equal(t, out.Summaries[0].Mean, sums[0].Mean)
	require.Equal(t, out.Summaries[0].Median, sums[0].Median)

	require.NoError(t, store.Close())
	require.NoError(t, store.Close()) // safe to call twice
	_, err = store.Runs(ctx, cfg.Name)
	require.ErrorIs(t, err, experiment.ErrStoreClosed)
}

func TestStore_RequiresInit(t *testing.T) {
	store := experiment.NewStore(filepath.Join(t.TempDir(), "x.db"))
	err := store.SaveRun(context.Background(), "e", "i", experiment.Result{})
	require.ErrorIs(t, err, experiment.ErrStoreClosed)
}

func TestWriteReport(t *testing.T) {
	inst := tinyInstance(t)
	cfg := sweepConfig(t, "")
	cfg.Runs = 2
	cfg.Sweep = experiment.SweepAxes{Mu: []int{5, 10}}

	out, err := experiment.NewRunner(inst, cfg, nil).Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, experiment.WriteReport(&buf, cfg, out))
	report := buf.String()

	require.True(t, strings.HasPrefix(report, "--- asym4-sweep ---"))
	require.Contains(t, report, "Instance: asym4")
	require.Contains(t, report, "Runs per configuration: 2")
	require.Contains(t, report, "=== mu = 5 ===")
	require.Contains(t, report, "=== mu = 10 ===")
	require.Contains(t, report, "mean:")
	require.Contains(t, report, "median:")
	require.Contains(t, report, "stddev:")
	require.Equal(t, 4, strings.Count(report, "run "))
}

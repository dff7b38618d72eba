// Package instance_test covers the synthetic generators: determinism under a
// fixed RNG, box bounds and the exact lattice geometry of Grid.
package instance_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evotsp/instance"
)

func TestRandomEuclidean_DeterministicAndBounded(t *testing.T) {
	a, err := instance.RandomEuclidean(12, 100, 50, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := instance.RandomEuclidean(12, 100, 50, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	require.Equal(t, 12, a.N())
	require.Equal(t, a.Coordinates(), b.Coordinates())

	for _, p := range a.Coordinates() {
		require.GreaterOrEqual(t, p[0], 0.0)
		require.Less(t, p[0], 100.0)
		require.GreaterOrEqual(t, p[1], 0.0)
		require.Less(t, p[1], 50.0)
	}

	// nil RNG selects the fixed default stream, still deterministic.
	c, err := instance.RandomEuclidean(5, 10, 10, nil)
	require.NoError(t, err)
	d, err := instance.RandomEuclidean(5, 10, 10, nil)
	require.NoError(t, err)
	require.Equal(t, c.Coordinates(), d.Coordinates())

	_, err = instance.RandomEuclidean(0, 10, 10, nil)
	require.ErrorIs(t, err, instance.ErrEmptyInstance)
}

func TestClustered_SizeAndBounds(t *testing.T) {
	inst, err := instance.Clustered(4, 6, 200, 100, 5, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.Equal(t, 24, inst.N())

	for _, p := range inst.Coordinates() {
		require.GreaterOrEqual(t, p[0], 0.0)
		require.LessOrEqual(t, p[0], 200.0)
		require.GreaterOrEqual(t, p[1], 0.0)
		require.LessOrEqual(t, p[1], 100.0)
	}

	_, err = instance.Clustered(0, 6, 200, 100, 5, nil)
	require.ErrorIs(t, err, instance.ErrEmptyInstance)
}

func TestGrid_ExactLatticeDistances(t *testing.T) {
	inst, err := instance.Grid(3, 2, 10, 4)
	require.NoError(t, err)
	require.Equal(t, 6, inst.N())

	// Points are laid out column-major: index = i*gridY + j at (10i, 4j).
	d, err := inst.Distance(0, 1) // (0,0) -> (0,4)
	require.NoError(t, err)
	require.InDelta(t, 4.0, d, 1e-12)

	d, err = inst.Distance(0, 2) // (0,0) -> (10,0)
	require.NoError(t, err)
	require.InDelta(t, 10.0, d, 1e-12)

	d, err = inst.Distance(1, 4) // (0,4) -> (20,0)
	require.NoError(t, err)
	require.InDelta(t, 20.396078054371138, d, 1e-9)

	_, err = instance.Grid(0, 2, 1, 1)
	require.ErrorIs(t, err, instance.ErrEmptyInstance)
}

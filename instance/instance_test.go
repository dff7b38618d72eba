// Package instance_test validates the distance-oracle contract: strict
// construction-time validation, O(1) bounds-checked lookups and the cyclic
// tour-length semantics the evolutionary core depends on.
package instance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evotsp/instance"
)

// symmetric5 is a small hand-checkable symmetric matrix.
func symmetric5() [][]float64 {
	return [][]float64{
		{0, 2, 4, 6, 8},
		{2, 0, 3, 5, 7},
		{4, 3, 0, 1, 9},
		{6, 5, 1, 0, 2},
		{8, 7, 9, 2, 0},
	}
}

func TestNew_RejectsEmptyMatrix(t *testing.T) {
	_, err := instance.New(nil, "empty")
	require.ErrorIs(t, err, instance.ErrEmptyInstance)

	_, err = instance.New([][]float64{}, "empty")
	require.ErrorIs(t, err, instance.ErrEmptyInstance)
}

func TestNew_RejectsNonSquareMatrix(t *testing.T) {
	_, err := instance.New([][]float64{{0, 1}, {1}}, "ragged")
	require.ErrorIs(t, err, instance.ErrNonSquare)

	_, err = instance.New([][]float64{{0, 1, 2}, {1, 0, 2}}, "wide")
	require.ErrorIs(t, err, instance.ErrNonSquare)
}

func TestNew_RejectsNegativeAndNonFiniteEntries(t *testing.T) {
	_, err := instance.New([][]float64{{0, -1}, {1, 0}}, "neg")
	require.ErrorIs(t, err, instance.ErrNegativeDistance)

	_, err = instance.New([][]float64{{0, math.NaN()}, {1, 0}}, "nan")
	require.ErrorIs(t, err, instance.ErrNonFiniteDistance)

	_, err = instance.New([][]float64{{0, math.Inf(1)}, {1, 0}}, "inf")
	require.ErrorIs(t, err, instance.ErrNonFiniteDistance)
}

func TestNew_DeepCopiesTheMatrix(t *testing.T) {
	m := [][]float64{{0, 1}, {2, 0}}
	inst, err := instance.New(m, "copy")
	require.NoError(t, err)

	// Mutating the caller's matrix must not leak into the instance.
	m[0][1] = 99
	d, err := inst.Distance(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)
}

func TestDistance_BoundsAndAsymmetry(t *testing.T) {
	inst, err := instance.New([][]float64{{0, 2}, {7, 0}}, "atsp")
	require.NoError(t, err)

	d01, err := inst.Distance(0, 1)
	require.NoError(t, err)
	d10, err := inst.Distance(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, d01)
	require.Equal(t, 7.0, d10)

	_, err = inst.Distance(-1, 0)
	require.ErrorIs(t, err, instance.ErrIndexOutOfRange)
	_, err = inst.Distance(0, 2)
	require.ErrorIs(t, err, instance.ErrIndexOutOfRange)
}

func TestTourLength_IncludesClosingEdge(t *testing.T) {
	inst, err := instance.New(symmetric5(), "sym5")
	require.NoError(t, err)

	// 0→1→2→3→4→0 = 2+3+1+2+8.
	got, err := inst.TourLength([]int{0, 1, 2, 3, 4})
	require.NoError(t, err)
	require.InDelta(t, 16.0, got, 1e-12)
}

func TestTourLength_RotationAndReversalInvariance(t *testing.T) {
	inst, err := instance.New(symmetric5(), "sym5")
	require.NoError(t, err)

	base := []int{3, 0, 4, 1, 2}
	want, err := inst.TourLength(base)
	require.NoError(t, err)

	// Every rotation of a cyclic tour has the same length.
	n := len(base)
	for r := 1; r < n; r++ {
		rot := make([]int, n)
		for i := 0; i < n; i++ {
			rot[i] = base[(i+r)%n]
		}
		got, lerr := inst.TourLength(rot)
		require.NoError(t, lerr)
		require.InDelta(t, want, got, 1e-12, "rotation by %d", r)
	}

	// Full reversal flips every edge; on a symmetric matrix the length holds.
	rev := make([]int, n)
	for i := 0; i < n; i++ {
		rev[i] = base[n-1-i]
	}
	got, err := inst.TourLength(rev)
	require.NoError(t, err)
	require.InDelta(t, want, got, 1e-12)
}

func TestTourLength_RejectsBadTours(t *testing.T) {
	inst, err := instance.New(symmetric5(), "sym5")
	require.NoError(t, err)

	_, err = inst.TourLength([]int{0, 1, 2})
	require.ErrorIs(t, err, instance.ErrInvalidTour)

	_, err = inst.TourLength([]int{0, 1, 2, 3, 5})
	require.ErrorIs(t, err, instance.ErrIndexOutOfRange)
}

func TestTourLength_SingleCity(t *testing.T) {
	inst, err := instance.New([][]float64{{0}}, "one")
	require.NoError(t, err)

	got, err := inst.TourLength([]int{0})
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestCoordinates_OwnedCopy(t *testing.T) {
	inst, err := instance.FromPoints([][2]float64{{0, 0}, {3, 4}}, "pts")
	require.NoError(t, err)

	a := inst.Coordinates()
	require.Len(t, a, 2)
	a[0][0] = 42
	b := inst.Coordinates()
	require.Equal(t, 0.0, b[0][0])

	// Matrix-born instances carry no coordinates.
	bare, err := instance.New([][]float64{{0}}, "bare")
	require.NoError(t, err)
	require.Nil(t, bare.Coordinates())
}

func TestFromPoints_EuclideanDistances(t *testing.T) {
	inst, err := instance.FromPoints([][2]float64{{0, 0}, {3, 4}, {0, 4}}, "tri")
	require.NoError(t, err)

	d, err := inst.Distance(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 5.0, d, 1e-12)

	d, err = inst.Distance(1, 0)
	require.NoError(t, err)
	require.InDelta(t, 5.0, d, 1e-12)

	d, err = inst.Distance(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
}

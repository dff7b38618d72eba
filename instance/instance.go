// Package instance - immutable TSP instances (distance oracle).
//
// An Instance wraps a square, non-negative distance matrix together with a
// display name and (optionally) the 2-D city coordinates it was derived from.
// It is the single read-only collaborator the evolutionary core consumes:
//
//   - Distance(i, j): O(1) pairwise lookup with strict bounds checking.
//   - TourLength(tour): total length of the cyclic tour, including the
//     closing edge tour[n-1] -> tour[0].
//
// Design principles (shared with the rest of the library):
//   - Strict sentinels: only errors declared in this file; no fmt.Errorf in
//     the oracle hot path.
//   - Immutability: the matrix is deep-copied at construction and never
//     mutated afterwards; an Instance is safe for any number of concurrent
//     readers.
//   - No logging, no panics on user input.
package instance

import (
	"errors"
	"math"
)

// Sentinel errors returned by instance construction and lookups.
var (
	// ErrEmptyInstance indicates a nil or zero-row distance matrix.
	ErrEmptyInstance = errors.New("instance: distance matrix is empty")

	// ErrNonSquare indicates that some row length differs from the row count.
	ErrNonSquare = errors.New("instance: distance matrix is not square")

	// ErrNegativeDistance indicates a negative entry in the matrix.
	ErrNegativeDistance = errors.New("instance: negative distance")

	// ErrNonFiniteDistance indicates a NaN or infinite entry in the matrix.
	ErrNonFiniteDistance = errors.New("instance: non-finite distance")

	// ErrIndexOutOfRange indicates a city index outside [0..n-1].
	ErrIndexOutOfRange = errors.New("instance: city index out of range")

	// ErrInvalidTour indicates a tour whose length differs from the
	// instance size; TourLength refuses to score such a tour.
	ErrInvalidTour = errors.New("instance: tour length does not match instance size")
)

// Instance is an immutable TSP instance: n cities and an n×n distance table.
// The matrix is not required to be symmetric (ATSP instances are welcome);
// the diagonal is conventionally zero but not enforced beyond finiteness.
type Instance struct {
	name   string       // display name (opaque to the solver)
	n      int          // number of cities
	dist   []float64    // row-major n×n distance buffer
	coords [][2]float64 // optional city coordinates; nil when unknown
}

// New validates and deep-copies matrix into a fresh Instance.
//
// Validation:
//   - matrix non-nil with at least one row (ErrEmptyInstance),
//   - every row of length n (ErrNonSquare),
//   - every entry finite (ErrNonFiniteDistance) and >= 0 (ErrNegativeDistance).
//
// Complexity: O(n²) time and space.
func New(matrix [][]float64, name string) (*Instance, error) {
	n := len(matrix)
	if n == 0 {
		return nil, ErrEmptyInstance
	}

	buf := make([]float64, n*n)

	var (
		i, j int     // matrix indices
		v    float64 // entry under validation
	)
	for i = 0; i < n; i++ {
		if len(matrix[i]) != n {
			return nil, ErrNonSquare
		}
		for j = 0; j < n; j++ {
			v = matrix[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNonFiniteDistance
			}
			if v < 0 {
				return nil, ErrNegativeDistance
			}
			buf[i*n+j] = v
		}
	}

	return &Instance{name: name, n: n, dist: buf}, nil
}

// withCoords attaches coordinates to an instance built from points.
// Called only by the generators and the TSPLIB reader in this package,
// before the instance escapes to callers; immutability is preserved.
func (in *Instance) withCoords(coords [][2]float64) *Instance {
	in.coords = coords
	return in
}

// N returns the number of cities.
func (in *Instance) N() int { return in.n }

// Name returns the display name of the instance.
func (in *Instance) Name() string { return in.name }

// Distance returns the stored distance from city i to city j.
// Fails with ErrIndexOutOfRange when either index is outside [0..n-1].
//
// Complexity: O(1).
func (in *Instance) Distance(i, j int) (float64, error) {
	if i < 0 || i >= in.n || j < 0 || j >= in.n {
		return 0, ErrIndexOutOfRange
	}

	return in.dist[i*in.n+j], nil
}

// TourLength sums the cyclic tour length: sum of dist(tour[i], tour[i+1])
// for i in [0..n-1] with the index taken modulo n (the closing edge back to
// tour[0] is included). Fails with ErrInvalidTour when len(tour) != n and
// with ErrIndexOutOfRange when any entry is outside [0..n-1].
//
// Note: the permutation property (no duplicates) is deliberately NOT checked
// here - scoring sits on the hot path of the evolutionary loop and every
// producer in evolve guarantees the invariant by construction. Use
// evolve.ValidatePermutation when scoring tours of unknown provenance.
//
// Complexity: O(n) time, O(1) space.
func (in *Instance) TourLength(tour []int) (float64, error) {
	if len(tour) != in.n {
		return 0, ErrInvalidTour
	}

	var (
		sum  float64 // accumulated length
		i    int     // position in the tour
		u, v int     // consecutive cities
	)
	for i = 0; i < in.n; i++ {
		u = tour[i]
		v = tour[(i+1)%in.n]
		if u < 0 || u >= in.n || v < 0 || v >= in.n {
			return 0, ErrIndexOutOfRange
		}
		sum += in.dist[u*in.n+v]
	}

	return sum, nil
}

// Coordinates returns an owned copy of the city coordinates, or nil when the
// instance was built from a bare matrix. The copy keeps Instance immutable.
//
// Complexity: O(n) time and space.
func (in *Instance) Coordinates() [][2]float64 {
	if in.coords == nil {
		return nil
	}
	out := make([][2]float64, len(in.coords))
	copy(out, in.coords)

	return out
}

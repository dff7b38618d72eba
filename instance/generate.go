// Package instance - synthetic instance generators.
//
// Three Euclidean layouts, matching the shapes commonly used to benchmark
// tour-construction heuristics:
//
//   - RandomEuclidean: cities scattered uniformly over a width×height box.
//   - Clustered: a fixed number of uniformly placed cluster centers, each
//     surrounded by cities within ±spread (clamped to the box).
//   - Grid: a regular gridX×gridY lattice (fully deterministic).
//
// All randomized generators take an explicit *rand.Rand; nil selects the
// package's fixed deterministic stream so results stay reproducible.
package instance

import (
	"fmt"
	"math/rand"
)

// defaultGenSeed seeds the fallback stream used when callers pass a nil RNG.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultGenSeed int64 = 1

// RandomEuclidean scatters n cities uniformly over [0,width)×[0,height).
//
// Complexity: O(n²) (distance matrix construction dominates).
func RandomEuclidean(n int, width, height float64, rng *rand.Rand) (*Instance, error) {
	if n <= 0 {
		return nil, ErrEmptyInstance
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultGenSeed))
	}

	points := make([][2]float64, n)
	var i int
	for i = 0; i < n; i++ {
		points[i] = [2]float64{rng.Float64() * width, rng.Float64() * height}
	}

	return FromPoints(points, fmt.Sprintf("random-%d", n))
}

// Clustered places clusters uniformly over [0,width)×[0,height) and scatters
// perCluster cities within ±spread of each center, clamped to the box.
//
// Complexity: O((clusters·perCluster)²).
func Clustered(clusters, perCluster int, width, height, spread float64, rng *rand.Rand) (*Instance, error) {
	if clusters <= 0 || perCluster <= 0 {
		return nil, ErrEmptyInstance
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultGenSeed))
	}

	n := clusters * perCluster
	points := make([][2]float64, 0, n)

	var (
		c, k int
		cx   float64 // cluster center x
		cy   float64 // cluster center y
		x, y float64
	)
	for c = 0; c < clusters; c++ {
		cx = rng.Float64() * width
		cy = rng.Float64() * height
		for k = 0; k < perCluster; k++ {
			x = clamp(cx+(rng.Float64()-0.5)*2*spread, 0, width)
			y = clamp(cy+(rng.Float64()-0.5)*2*spread, 0, height)
			points = append(points, [2]float64{x, y})
		}
	}

	return FromPoints(points, fmt.Sprintf("clustered-%dx%d", clusters, perCluster))
}

// Grid lays cities on a regular gridX×gridY lattice with the given spacing.
// No randomness is consumed; the result is fully deterministic.
//
// Complexity: O((gridX·gridY)²).
func Grid(gridX, gridY int, spacingX, spacingY float64) (*Instance, error) {
	if gridX <= 0 || gridY <= 0 {
		return nil, ErrEmptyInstance
	}

	points := make([][2]float64, 0, gridX*gridY)
	var i, j int
	for i = 0; i < gridX; i++ {
		for j = 0; j < gridY; j++ {
			points = append(points, [2]float64{float64(i) * spacingX, float64(j) * spacingY})
		}
	}

	return FromPoints(points, fmt.Sprintf("grid-%dx%d", gridX, gridY))
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Package evolve - genome model and constructors.
//
// An Individual is a permutation of the city indices [0..n-1] plus its
// cached tour length. The cache is never an independent source of truth:
// it is recomputed via evaluate whenever the tour changes, and every code
// path that perturbs a tour re-evaluates before the individual is compared
// or merged.
//
// Ownership: an Individual exclusively owns its tour buffer. The only
// exposed view is Tour(), which returns an owned copy; internal code works
// on the buffer directly and clones explicitly at the few points where an
// independent lifetime is required (best-ever tracking, offspring).
package evolve

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/evotsp/instance"
)

// Individual is one candidate solution: a city permutation and its fitness
// (total cyclic tour length; lower is better). The zero value is not a valid
// individual - use the constructors.
type Individual struct {
	tour    []int
	fitness float64
}

// Len returns the number of cities in the tour.
func (in *Individual) Len() int { return len(in.tour) }

// Fitness returns the cached tour length.
func (in *Individual) Fitness() float64 { return in.fitness }

// Tour returns an owned copy of the permutation. Mutating the returned
// slice never affects the individual.
//
// Complexity: O(n) time and space.
func (in *Individual) Tour() []int {
	out := make([]int, len(in.tour))
	copy(out, in.tour)

	return out
}

// evaluate recomputes the cached fitness from the current tour.
//
// Complexity: O(n).
func (in *Individual) evaluate(inst *instance.Instance) error {
	f, err := inst.TourLength(in.tour)
	if err != nil {
		return err
	}
	in.fitness = f

	return nil
}

// clone returns a deep copy with an independent tour buffer.
//
// Complexity: O(n) time and space.
func (in *Individual) clone() Individual {
	return Individual{tour: in.Tour(), fitness: in.fitness}
}

// NewRandomIndividual builds an individual with a uniform random permutation
// of [0..n-1]. Fitness is left at zero until evaluated against an instance;
// the orchestrator evaluates every member before generation 0.
//
// Complexity: O(n) time and space.
func NewRandomIndividual(n int, rng *rand.Rand) (Individual, error) {
	if n < 1 {
		return Individual{}, ErrDimensionMismatch
	}
	tour, err := permRange(n, rng)
	if err != nil {
		return Individual{}, err
	}

	return Individual{tour: tour}, nil
}

// NewGreedyIndividual builds a nearest-neighbor tour on inst.
//
// Behavior:
//   - start < 0 selects a uniformly random start city from rng; start >= 0
//     is used verbatim and consumes no randomness (deterministic result).
//   - At each step the nearest unvisited city wins; on ties the first
//     encountered minimum is kept.
//   - If no candidate is found (pathological; cannot happen with a finite
//     matrix but kept as an explicit guard), the first unvisited city is
//     taken, which guarantees termination and a complete permutation.
//
// Fitness is computed immediately; no separate evaluation step is needed.
//
// Complexity: O(n²) time, O(n) space.
func NewGreedyIndividual(inst *instance.Instance, start int, rng *rand.Rand) (Individual, error) {
	if inst == nil {
		return Individual{}, ErrNilInstance
	}
	n := inst.N()

	current := start
	if current < 0 {
		if rng == nil {
			rng = rngFromSeed(0)
		}
		current = rng.Intn(n)
	}
	if current >= n {
		return Individual{}, ErrDimensionMismatch
	}

	tour := make([]int, n)
	visited := make([]bool, n)
	tour[0] = current
	visited[current] = true

	var (
		i, j int
		next int
		best float64
		d    float64
		err  error
	)
	for i = 1; i < n; i++ {
		next = -1
		best = math.MaxFloat64

		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d, err = inst.Distance(current, j)
			if err != nil {
				return Individual{}, err
			}
			if d < best {
				best = d
				next = j
			}
		}

		if next == -1 {
			// Fallback: take the first unvisited city.
			for j = 0; j < n; j++ {
				if !visited[j] {
					next = j
					break
				}
			}
		}

		tour[i] = next
		visited[next] = true
		current = next
	}

	ind := Individual{tour: tour}
	if err = ind.evaluate(inst); err != nil {
		return Individual{}, err
	}

	return ind, nil
}

// ValidatePermutation checks that tour is a permutation of [0..n-1] of
// length n: every index present exactly once, no out-of-range entries.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(tour []int, n int) error {
	if n <= 0 || len(tour) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

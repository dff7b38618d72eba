// Package evolve - population construction and bookkeeping.
package evolve

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/evotsp/instance"
)

// initPopulation builds the μ-sized starting generation.
//
// Policy: when greedy is set, exactly one nearest-neighbor individual is
// seeded (from a random start city) regardless of μ; the remainder is always
// uniform random. Every member is evaluated before the first generation.
//
// Complexity: O(μ·n) plus O(n²) for the optional greedy seed.
func initPopulation(inst *instance.Instance, mu int, greedy bool, rng *rand.Rand) ([]Individual, error) {
	pop := make([]Individual, 0, mu)

	if greedy {
		g, err := NewGreedyIndividual(inst, -1, rng)
		if err != nil {
			return nil, err
		}
		pop = append(pop, g) // already evaluated by construction
	}

	var (
		ind Individual
		err error
	)
	for len(pop) < mu {
		ind, err = NewRandomIndividual(inst.N(), rng)
		if err != nil {
			return nil, err
		}
		if err = ind.evaluate(inst); err != nil {
			return nil, err
		}
		pop = append(pop, ind)
	}

	return pop, nil
}

// sortByFitness orders pop ascending by tour length. The sort is stable so
// equal-fitness survivors keep their insertion order, which keeps survivor
// truncation fully deterministic given the merged pool.
//
// Complexity: O(m log m).
func sortByFitness(pop []Individual) {
	sort.SliceStable(pop, func(i, j int) bool {
		return pop[i].fitness < pop[j].fitness
	})
}

// averageFitness returns the mean tour length over pop (0 for empty input).
//
// Complexity: O(m).
func averageFitness(pop []Individual) float64 {
	if len(pop) == 0 {
		return 0
	}

	var sum float64
	for i := range pop {
		sum += pop[i].fitness
	}

	return sum / float64(len(pop))
}

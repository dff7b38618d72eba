// Package evolve - parent-selection strategies.
//
// Both strategies are stateless: they read the current population and an
// explicit RNG, and return a pool of exactly λ parents sampled with
// replacement. The orchestrator then pairs parents uniformly at random from
// this pool (not from the original population) for every crossover call.
package evolve

import "math/rand"

// selectParents returns λ parents drawn from pop by the configured strategy.
// The unknown-kind branch is unreachable after validateOptions but kept so
// the dispatch stays total.
//
// Complexity: O(λ·k) for tournament, O(λ·μ) for roulette.
func selectParents(pop []Individual, lambda int, opts Options, rng *rand.Rand) ([]Individual, error) {
	parents := make([]Individual, 0, lambda)

	var i int
	switch opts.Selection {
	case SelectionTournament:
		for i = 0; i < lambda; i++ {
			parents = append(parents, tournamentPick(pop, opts.TournamentSize, rng))
		}
	case SelectionRoulette:
		for i = 0; i < lambda; i++ {
			parents = append(parents, roulettePick(pop, rng))
		}
	default:
		return nil, ErrUnknownSelection
	}

	return parents, nil
}

// tournamentPick draws k candidates uniformly with replacement and returns
// the one with minimum fitness. Ties resolve in favor of the earliest draw
// (strictly-smaller comparison), which keeps the pick deterministic given
// the draw sequence.
//
// Complexity: O(k).
func tournamentPick(pop []Individual, k int, rng *rand.Rand) Individual {
	var (
		best    int  // index of the current winner in pop
		haveOne bool // whether a candidate has been drawn yet
		i       int
		c       int // candidate index
	)
	for i = 0; i < k; i++ {
		c = rng.Intn(len(pop))
		if !haveOne || pop[c].fitness < pop[best].fitness {
			best = c
			haveOne = true
		}
	}

	return pop[best]
}

// roulettePick performs fitness-proportionate selection adapted to
// minimization. Each genome is weighted maxFitness - fitness + 1, so every
// weight is at least 1 and the population best never has zero probability.
// A uniform value in [0,total) is walked along the cumulative weights; the
// first genome whose cumulative weight meets it wins.
//
// The total==0 branch (all genomes sharing the identical worst fitness with
// a zero shift) cannot arise with the +1 shift but is kept as an explicit
// degenerate-case fallback to a uniform pick, as is the post-walk fallback.
//
// Complexity: O(μ) time, O(μ) space for the weight vector.
func roulettePick(pop []Individual, rng *rand.Rand) Individual {
	var (
		maxF  float64
		i     int
		total float64
	)
	maxF = pop[0].fitness
	for i = 1; i < len(pop); i++ {
		if pop[i].fitness > maxF {
			maxF = pop[i].fitness
		}
	}

	weights := make([]float64, len(pop))
	for i = 0; i < len(pop); i++ {
		weights[i] = maxF - pop[i].fitness + 1
		total += weights[i]
	}

	if total == 0 {
		return pop[rng.Intn(len(pop))]
	}

	var (
		r   = rng.Float64() * total
		sum float64
	)
	for i = 0; i < len(pop); i++ {
		sum += weights[i]
		if r <= sum {
			return pop[i]
		}
	}

	// Unreachable with non-zero total; uniform fallback keeps the pick total.
	return pop[rng.Intn(len(pop))]
}

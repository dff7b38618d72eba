// Package evolve - the (μ+λ) generational orchestrator.
//
// Run is the single entry point of the core. One generation is:
//
//  1. draw λ parents via the configured selection strategy;
//  2. pair parents uniformly with replacement from that pool and recombine,
//     two children at a time, until exactly λ offspring exist (for odd λ the
//     second child of the final pair is discarded);
//  3. mutate each offspring independently with probability MutationRate;
//  4. evaluate every offspring against the distance oracle;
//  5. merge the μ survivors with the λ offspring, stable-sort ascending by
//     fitness and truncate to the best μ (elitist "plus" strategy);
//  6. refresh the best-ever genome if the new population best improves on it.
//
// Termination is solely the generation budget. The best-ever genome is an
// owned copy, never an alias into the live population.
package evolve

import "github.com/katalvlaran/evotsp/instance"

// Run executes one full evolutionary run against inst and returns the
// best-ever individual found. All stochastic choices are drawn from a single
// generator seeded by opts.Seed (0 selects the fixed default stream), so
// equal inputs yield equal outputs.
//
// Errors: every Err* sentinel from validateOptions, surfaced before
// generation 0; nothing fails mid-run.
//
// Complexity: O(G · (μ+λ) · n) time for the generational loop plus the
// selection cost per generation; O(μ+λ) genomes of O(n) space.
func Run(inst *instance.Instance, opts Options) (Individual, error) {
	if err := validateOptions(inst, opts); err != nil {
		return Individual{}, err
	}

	rng := rngFromSeed(opts.Seed)

	pop, err := initPopulation(inst, opts.Mu, opts.GreedyInit, rng)
	if err != nil {
		return Individual{}, err
	}
	sortByFitness(pop)

	best := pop[0].clone()

	var (
		gen       int
		i         int
		parents   []Individual
		offspring []Individual
		c1, c2    Individual
	)
	for gen = 0; gen < opts.Generations; gen++ {
		parents, err = selectParents(pop, opts.Lambda, opts, rng)
		if err != nil {
			return Individual{}, err
		}

		offspring = make([]Individual, 0, opts.Lambda+1)
		for len(offspring) < opts.Lambda {
			c1, c2, err = crossoverPair(
				&parents[rng.Intn(len(parents))],
				&parents[rng.Intn(len(parents))],
				opts.Crossover,
				rng,
			)
			if err != nil {
				return Individual{}, err
			}
			offspring = append(offspring, c1)
			if len(offspring) < opts.Lambda {
				offspring = append(offspring, c2)
			}
		}

		for i = range offspring {
			if rng.Float64() < opts.MutationRate {
				if err = mutate(&offspring[i], opts.Mutation, rng); err != nil {
					return Individual{}, err
				}
			}
			if err = offspring[i].evaluate(inst); err != nil {
				return Individual{}, err
			}
		}

		pop = append(pop, offspring...)
		sortByFitness(pop)
		pop = pop[:opts.Mu]

		if pop[0].fitness < best.fitness {
			best = pop[0].clone()
		}

		if opts.OnGeneration != nil {
			opts.OnGeneration(Progress{
				Generation:     gen,
				BestFitness:    pop[0].fitness,
				AverageFitness: averageFitness(pop),
			})
		}
	}

	return best, nil
}

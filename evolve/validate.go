// Package evolve - up-front configuration validation.
package evolve

import "github.com/katalvlaran/evotsp/instance"

// validateOptions rejects every malformed configuration before the run
// starts. The policy is fail-fast: the core never substitutes defaults for
// unrecognized kinds (callers may default before invoking Run), and once
// this function returns nil a run cannot fail on configuration mid-flight.
//
// Complexity: O(1).
func validateOptions(inst *instance.Instance, opts Options) error {
	if inst == nil {
		return ErrNilInstance
	}
	if opts.Mu < 1 {
		return ErrBadPopulationSize
	}
	if opts.Lambda < 1 {
		return ErrBadOffspringSize
	}
	if opts.Generations < 0 {
		return ErrBadGenerations
	}
	if opts.MutationRate < 0 || opts.MutationRate > 1 {
		return ErrBadMutationRate
	}

	switch opts.Crossover {
	case CrossoverOX, CrossoverPMX, CrossoverERX:
	default:
		return ErrUnknownCrossover
	}

	switch opts.Mutation {
	case MutationSwap, MutationInsert, MutationInvert:
	default:
		return ErrUnknownMutation
	}

	switch opts.Selection {
	case SelectionTournament:
		if opts.TournamentSize < 1 {
			return ErrBadTournamentSize
		}
	case SelectionRoulette:
	default:
		return ErrUnknownSelection
	}

	return nil
}

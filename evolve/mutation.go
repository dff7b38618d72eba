// Package evolve - in-place mutation operators.
//
// Each operator rearranges one tour in place and never inserts or removes
// values, so the permutation invariant holds by construction. All three are
// no-ops for n<2 (there is nothing to rearrange) and consume no randomness
// in that case. The caller re-evaluates fitness after any mutation.
package evolve

import "math/rand"

// mutate applies the configured operator to ind's tour in place. The cached
// fitness is NOT refreshed here; the orchestrator evaluates the whole
// offspring pool after the mutation step.
// The unknown-kind branch is unreachable after validateOptions.
func mutate(ind *Individual, kind MutationKind, rng *rand.Rand) error {
	switch kind {
	case MutationSwap:
		mutateSwap(ind.tour, rng)
	case MutationInsert:
		mutateInsert(ind.tour, rng)
	case MutationInvert:
		mutateInvert(ind.tour, rng)
	default:
		return ErrUnknownMutation
	}

	return nil
}

// mutateSwap exchanges the cities at two distinct random positions.
//
// Complexity: O(1) expected (the distinct-position redraw loop terminates
// with probability 1-1/n per draw).
func mutateSwap(tour []int, rng *rand.Rand) {
	n := len(tour)
	if n < 2 {
		return
	}

	i := rng.Intn(n)
	j := rng.Intn(n)
	for j == i {
		j = rng.Intn(n)
	}

	tour[i], tour[j] = tour[j], tour[i]
}

// mutateInsert removes the city at a random source position and reinserts it
// at a distinct random target position, shifting the cities in between.
//
// Complexity: O(n) for the shift.
func mutateInsert(tour []int, rng *rand.Rand) {
	n := len(tour)
	if n < 2 {
		return
	}

	src := rng.Intn(n)
	dst := rng.Intn(n)
	for dst == src {
		dst = rng.Intn(n)
	}

	city := tour[src]
	if src < dst {
		copy(tour[src:dst], tour[src+1:dst+1])
	} else {
		copy(tour[dst+1:src+1], tour[dst:src])
	}
	tour[dst] = city
}

// mutateInvert reverses a random inclusive sub-range. Coincident endpoints
// are widened to a two-city span with the same policy as the crossover cut
// normalization, so the operator always changes at least one edge.
//
// Complexity: O(n) worst case for the reversal.
func mutateInvert(tour []int, rng *rand.Rand) {
	n := len(tour)
	if n < 2 {
		return
	}

	lo, hi := normalizeCuts(rng.Intn(n), rng.Intn(n), n)
	for lo < hi {
		tour[lo], tour[hi] = tour[hi], tour[lo]
		lo++
		hi--
	}
}

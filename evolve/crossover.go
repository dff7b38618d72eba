// Package evolve - segment-based recombination operators (OX, PMX).
//
// Every operator takes two parent permutations of length n and produces two
// children that satisfy the permutation invariant by construction. Children
// are returned unevaluated; the orchestrator scores the whole offspring pool
// in one pass.
//
// Degenerate input: for n<2 there is no meaningful cut, so all operators
// return plain copies of the parents and consume no randomness.
package evolve

import "math/rand"

// crossoverPair dispatches to the configured recombination operator.
// The unknown-kind branch is unreachable after validateOptions.
func crossoverPair(p1, p2 *Individual, kind CrossoverKind, rng *rand.Rand) (Individual, Individual, error) {
	if p1.Len() < 2 {
		return p1.clone(), p2.clone(), nil
	}

	switch kind {
	case CrossoverOX:
		c1, c2 := orderCrossover(p1.tour, p2.tour, rng)
		return Individual{tour: c1}, Individual{tour: c2}, nil
	case CrossoverPMX:
		c1, c2 := pmxCrossover(p1.tour, p2.tour, rng)
		return Individual{tour: c1}, Individual{tour: c2}, nil
	case CrossoverERX:
		c1, c2 := erxCrossover(p1.tour, p2.tour, rng)
		return Individual{tour: c1}, Individual{tour: c2}, nil
	default:
		return Individual{}, Individual{}, ErrUnknownCrossover
	}
}

// normalizeCuts orders two random cut indices and widens a coincident pair
// to a one-city segment: extend right, or left when already at the last
// index. Pre-condition n >= 2; post-condition 0 <= lo < hi <= n-1 or
// lo == hi with a non-empty segment (lo==hi only widens, never stays).
func normalizeCuts(a, b, n int) (lo, hi int) {
	lo, hi = a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		if lo == n-1 {
			lo--
		} else {
			hi++
		}
	}

	return lo, hi
}

// orderCrossover implements OX.
//
// Child i inherits the [lo..hi] segment of parent i verbatim (same
// positions). The remaining positions are filled starting immediately after
// hi with wraparound, scanning the *other* parent from the same wrap offset
// and inserting every city not already placed, preserving that parent's
// relative order.
//
// Complexity: O(n) time, O(n) space per child.
func orderCrossover(p1, p2 []int, rng *rand.Rand) (c1, c2 []int) {
	n := len(p1)
	lo, hi := normalizeCuts(rng.Intn(n), rng.Intn(n), n)

	c1 = oxChild(p1, p2, lo, hi)
	c2 = oxChild(p2, p1, lo, hi)

	return c1, c2
}

// oxChild builds one OX child: segment from seg, remainder from other.
func oxChild(seg, other []int, lo, hi int) []int {
	n := len(seg)
	child := make([]int, n)
	used := make([]bool, n)

	var i int
	for i = lo; i <= hi; i++ {
		child[i] = seg[i]
		used[seg[i]] = true
	}

	var (
		write = (hi + 1) % n // next free slot, wrapping
		city  int
	)
	for i = 0; i < n; i++ {
		city = other[(hi+1+i)%n]
		if used[city] {
			continue
		}
		child[write] = city
		used[city] = true
		write = (write + 1) % n
	}

	return child
}

// pmxCrossover implements PMX.
//
// Child i inherits the [lo..hi] segment of parent i. The paired segment
// induces a city↔city mapping; every outside position takes the other
// parent's city and, while that city already appears in the copied segment,
// substitutes through the mapping until it resolves to an unused city.
//
// Complexity: O(n) time amortized (mapping chains are walked at most once
// per element overall), O(n) space per child.
func pmxCrossover(p1, p2 []int, rng *rand.Rand) (c1, c2 []int) {
	n := len(p1)
	lo, hi := normalizeCuts(rng.Intn(n), rng.Intn(n), n)

	// pos1[v] / pos2[v]: segment position of city v inside p1 / p2, or -1.
	pos1 := make([]int, n)
	pos2 := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		pos1[i] = -1
		pos2[i] = -1
	}
	for i = lo; i <= hi; i++ {
		pos1[p1[i]] = i
		pos2[p2[i]] = i
	}

	c1 = pmxChild(p1, p2, pos1, lo, hi)
	c2 = pmxChild(p2, p1, pos2, lo, hi)

	return c1, c2
}

// pmxChild builds one PMX child: segment from seg; outside positions from
// other, chased through the segment mapping. segPos[v] gives v's position
// inside seg's copied segment (or -1), so the chase city -> other city at
// the same segment position runs in O(1) per hop.
func pmxChild(seg, other []int, segPos []int, lo, hi int) []int {
	n := len(seg)
	child := make([]int, n)

	var (
		i    int
		city int
	)
	for i = lo; i <= hi; i++ {
		child[i] = seg[i]
	}
	for i = 0; i < n; i++ {
		if i >= lo && i <= hi {
			continue
		}
		city = other[i]
		// While the candidate collides with the copied segment, replace it
		// with the city the other parent holds at the colliding position.
		for segPos[city] >= 0 {
			city = other[segPos[city]]
		}
		child[i] = city
	}

	return child
}

// Package evolve - edge recombination crossover (ERX).
//
// ERX works on the undirected edge sets of both parents rather than on index
// segments: the two tours are merged into one adjacency table (each city's
// neighbors across both parents), and an offspring is grown city by city,
// always preferring the unvisited neighbor whose own unvisited neighborhood
// is smallest. Dead ends (all neighbors visited) restart from a uniformly
// random unvisited city.
//
// The adjacency table is stored as small ordered slices, never maps: the
// candidate ranking below must visit neighbors in a reproducible order or a
// fixed seed would not fix the run.
package evolve

import "math/rand"

// erxCrossover produces two children from the merged parent edge sets.
// The first child starts from a random city of p1, the second from a random
// city of p2 with the parent roles swapped, so both edge orders contribute.
//
// Each child is verified to be a permutation before it is accepted; on a
// verification failure (cannot occur with a correct adjacency table, kept as
// a guard) the child is replaced by a uniform random permutation.
//
// Complexity: O(n·d²) time per child where d<=4 is the merged degree bound,
// so effectively O(n); O(n) space for the adjacency table.
func erxCrossover(p1, p2 []int, rng *rand.Rand) (c1, c2 []int) {
	n := len(p1)

	c1 = erxOffspring(p1, p2, rng)
	if ValidatePermutation(c1, n) != nil {
		c1, _ = permRange(n, rng)
	}

	c2 = erxOffspring(p2, p1, rng)
	if ValidatePermutation(c2, n) != nil {
		c2, _ = permRange(n, rng)
	}

	return c1, c2
}

// erxOffspring grows one tour from the merged neighbor sets of both parents,
// starting at a uniformly random city of first.
//
// Step rule: among the current city's unvisited neighbors, pick the one with
// the fewest unvisited neighbors of its own; ties are broken uniformly at
// random. With no unvisited neighbor left, continue from a uniformly random
// unvisited city.
func erxOffspring(first, second []int, rng *rand.Rand) []int {
	n := len(first)
	adj := mergedNeighborSets(first, second)

	tour := make([]int, n)
	visited := make([]bool, n)

	current := first[rng.Intn(n)]
	tour[0] = current
	visited[current] = true

	var (
		i          int
		c          int
		candidates = make([]int, 0, 4)
		bestDeg    int
		deg        int
	)
	for i = 1; i < n; i++ {
		// Rank unvisited neighbors by their remaining (unvisited) degree.
		candidates = candidates[:0]
		bestDeg = n + 1
		for _, c = range adj[current] {
			if visited[c] {
				continue
			}
			deg = unvisitedDegree(adj[c], visited)
			if deg < bestDeg {
				bestDeg = deg
				candidates = append(candidates[:0], c)
			} else if deg == bestDeg {
				candidates = append(candidates, c)
			}
		}

		if len(candidates) > 0 {
			current = candidates[rng.Intn(len(candidates))]
		} else {
			current = randomUnvisited(visited, rng)
		}

		tour[i] = current
		visited[current] = true
	}

	return tour
}

// mergedNeighborSets builds the undirected adjacency table of both tours:
// adj[c] holds every city adjacent to c in either parent cycle (2 to 4
// entries, deduplicated, in edge-discovery order).
func mergedNeighborSets(p1, p2 []int) [][]int {
	n := len(p1)
	adj := make([][]int, n)

	var (
		i    int
		a, b int
	)
	for _, t := range [][]int{p1, p2} {
		for i = 0; i < n; i++ {
			a = t[i]
			b = t[(i+1)%n]
			if a == b {
				continue // n==1 self-edge carries no information
			}
			adj[a] = addNeighbor(adj[a], b)
			adj[b] = addNeighbor(adj[b], a)
		}
	}

	return adj
}

// addNeighbor appends c to set unless already present (sets hold at most 4).
func addNeighbor(set []int, c int) []int {
	for _, v := range set {
		if v == c {
			return set
		}
	}

	return append(set, c)
}

// unvisitedDegree counts the unvisited members of one neighbor set.
func unvisitedDegree(set []int, visited []bool) int {
	var deg int
	for _, c := range set {
		if !visited[c] {
			deg++
		}
	}

	return deg
}

// randomUnvisited picks one unvisited city uniformly at random. It must only
// be called while at least one unvisited city remains.
func randomUnvisited(visited []bool, rng *rand.Rand) int {
	remaining := make([]int, 0, len(visited))
	for c := range visited {
		if !visited[c] {
			remaining = append(remaining, c)
		}
	}

	return remaining[rng.Intn(len(remaining))]
}

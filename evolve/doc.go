// Package evolve provides a (μ+λ) evolutionary solver for the Travelling
// Salesman Problem.
//
// The genome is a permutation of city indices with a cached cyclic tour
// length (lower is better). Each generation selects λ parents, recombines
// them into λ offspring, mutates each offspring with a configurable
// probability, and keeps the best μ of the merged μ+λ pool (elitist "plus"
// survivor selection). Termination is a fixed generation budget.
//
// Operators:
//
//   - Selection: tournament (draw k, keep the fittest) or roulette
//     (fitness-proportionate, adapted to minimization).
//
//   - Recombination: OX (order crossover), PMX (partially mapped crossover)
//     or ERX (edge recombination). Each produces two children per pair, and
//     every child satisfies the permutation invariant by construction.
//
//   - Mutation: SWAP, INSERT or INVERT, all in place.
//
// Determinism: one *rand.Rand per run, created from Options.Seed (0 selects
// a fixed default stream); no time-based randomness anywhere. Equal instance,
// options and seed yield byte-equal results. Use DeriveSeed to fan a parent
// seed out into independent streams for repeated runs.
//
// Use this package when exact solvers become infeasible (n beyond ~16) and a
// good tour within a fixed compute budget is the goal; it makes no optimality
// guarantee.
package evolve

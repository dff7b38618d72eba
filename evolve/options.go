// Package evolve - run configuration.
package evolve

// Options configures a single evolutionary run.
//
// Mu             – steady-state population size (μ ≥ 1).
// Lambda         – offspring produced per generation (λ ≥ 1).
// Generations    – fixed generation budget; the sole termination criterion.
// MutationRate   – per-offspring probability of applying the mutation
//                  operator, within [0,1].
// Crossover      – recombination operator (OX/PMX/ERX).
// Mutation       – mutation operator (SWAP/INSERT/INVERT).
// Selection      – parent-selection strategy (TOURNAMENT/ROULETTE).
// TournamentSize – tournament draw count k; used only with tournament
//                  selection (k ≥ 1).
// GreedyInit     – seed exactly one nearest-neighbor individual into the
//                  initial population; the remainder is always random.
// Seed           – RNG seed; 0 selects the fixed default stream, so every
//                  run is reproducible (see rng.go).
// OnGeneration   – optional per-generation observer; nil disables reporting.
type Options struct {
	Mu             int
	Lambda         int
	Generations    int
	MutationRate   float64
	Crossover      CrossoverKind
	Mutation       MutationKind
	Selection      SelectionKind
	TournamentSize int
	GreedyInit     bool
	Seed           int64
	OnGeneration   func(Progress)
}

// DefaultOptions returns the baseline configuration: μ=50, λ=100,
// 1000 generations, mutation rate 0.2, OX crossover, swap mutation,
// tournament selection with k=3, random initialization, deterministic seed.
func DefaultOptions() Options {
	return Options{
		Mu:             50,
		Lambda:         100,
		Generations:    1000,
		MutationRate:   0.2,
		Crossover:      CrossoverOX,
		Mutation:       MutationSwap,
		Selection:      SelectionTournament,
		TournamentSize: 3,
		GreedyInit:     false,
		Seed:           0,
	}
}

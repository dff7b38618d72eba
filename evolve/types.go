// Package evolve - shared types, operator kinds and sentinel errors.
//
// The package implements a (μ+λ) evolutionary algorithm over city
// permutations. All configuration mistakes are rejected up front by Run
// (see validate.go); once a run has started it can no longer fail on
// configuration, so every sentinel below surfaces before generation 0.
package evolve

import "errors"

// Sentinel errors returned by Run and the public constructors.
var (
	// ErrNilInstance indicates that no distance oracle was supplied.
	ErrNilInstance = errors.New("evolve: instance is nil")

	// ErrUnknownCrossover indicates an unrecognized CrossoverKind.
	// The core rejects instead of silently substituting a default;
	// callers that want defaulting must do it before invoking Run.
	ErrUnknownCrossover = errors.New("evolve: unknown crossover kind")

	// ErrUnknownMutation indicates an unrecognized MutationKind.
	ErrUnknownMutation = errors.New("evolve: unknown mutation kind")

	// ErrUnknownSelection indicates an unrecognized SelectionKind.
	ErrUnknownSelection = errors.New("evolve: unknown selection kind")

	// ErrBadPopulationSize indicates μ < 1.
	ErrBadPopulationSize = errors.New("evolve: population size must be at least 1")

	// ErrBadOffspringSize indicates λ < 1.
	ErrBadOffspringSize = errors.New("evolve: offspring size must be at least 1")

	// ErrBadGenerations indicates a negative generation budget.
	ErrBadGenerations = errors.New("evolve: generations must be non-negative")

	// ErrBadMutationRate indicates a mutation rate outside [0,1].
	ErrBadMutationRate = errors.New("evolve: mutation rate must be within [0,1]")

	// ErrBadTournamentSize indicates tournament size < 1 while tournament
	// selection is configured.
	ErrBadTournamentSize = errors.New("evolve: tournament size must be at least 1")

	// ErrDimensionMismatch indicates an internal shape violation
	// (mismatched tour lengths, negative sizes) in the tour utilities.
	ErrDimensionMismatch = errors.New("evolve: dimension mismatch")
)

// CrossoverKind selects the recombination operator.
type CrossoverKind int

const (
	// CrossoverOX is order crossover: one positional segment from each
	// parent, the remainder filled in the other parent's relative order.
	CrossoverOX CrossoverKind = iota

	// CrossoverPMX is partially mapped crossover: positional segments plus
	// a city↔city repair mapping for the outside positions.
	CrossoverPMX

	// CrossoverERX is edge recombination crossover: children are grown
	// greedily along the undirected edge sets merged from both parents.
	CrossoverERX
)

// String returns the canonical short name (OX/PMX/ERX).
func (k CrossoverKind) String() string {
	switch k {
	case CrossoverOX:
		return "OX"
	case CrossoverPMX:
		return "PMX"
	case CrossoverERX:
		return "ERX"
	default:
		return "unknown"
	}
}

// ParseCrossoverKind maps a short name to its kind (case-sensitive,
// canonical upper-case names). Returns ErrUnknownCrossover otherwise.
func ParseCrossoverKind(s string) (CrossoverKind, error) {
	switch s {
	case "OX":
		return CrossoverOX, nil
	case "PMX":
		return CrossoverPMX, nil
	case "ERX":
		return CrossoverERX, nil
	default:
		return 0, ErrUnknownCrossover
	}
}

// MutationKind selects the mutation operator.
type MutationKind int

const (
	// MutationSwap exchanges two distinct positions.
	MutationSwap MutationKind = iota

	// MutationInsert removes one city and reinserts it elsewhere,
	// shifting the intervening cities.
	MutationInsert

	// MutationInvert reverses an inclusive sub-range.
	MutationInvert
)

// String returns the canonical short name (SWAP/INSERT/INVERT).
func (k MutationKind) String() string {
	switch k {
	case MutationSwap:
		return "SWAP"
	case MutationInsert:
		return "INSERT"
	case MutationInvert:
		return "INVERT"
	default:
		return "unknown"
	}
}

// ParseMutationKind maps a short name to its kind.
// Returns ErrUnknownMutation otherwise.
func ParseMutationKind(s string) (MutationKind, error) {
	switch s {
	case "SWAP":
		return MutationSwap, nil
	case "INSERT":
		return MutationInsert, nil
	case "INVERT":
		return MutationInvert, nil
	default:
		return 0, ErrUnknownMutation
	}
}

// SelectionKind selects the parent-selection strategy.
type SelectionKind int

const (
	// SelectionTournament draws k candidates with replacement and keeps
	// the fittest (minimum tour length).
	SelectionTournament SelectionKind = iota

	// SelectionRoulette is fitness-proportionate selection adapted to
	// minimization via the shifted weight maxFitness - fitness + 1.
	SelectionRoulette
)

// String returns the canonical short name (TOURNAMENT/ROULETTE).
func (k SelectionKind) String() string {
	switch k {
	case SelectionTournament:
		return "TOURNAMENT"
	case SelectionRoulette:
		return "ROULETTE"
	default:
		return "unknown"
	}
}

// ParseSelectionKind maps a short name to its kind.
// Returns ErrUnknownSelection otherwise.
func ParseSelectionKind(s string) (SelectionKind, error) {
	switch s {
	case "TOURNAMENT":
		return SelectionTournament, nil
	case "ROULETTE":
		return SelectionRoulette, nil
	default:
		return 0, ErrUnknownSelection
	}
}

// Progress is the per-generation event delivered to Options.OnGeneration.
// It is a pure observation: sinks never influence control flow.
type Progress struct {
	// Generation is the zero-based index of the completed generation.
	Generation int

	// BestFitness is the minimum tour length in the population after
	// survivor selection.
	BestFitness float64

	// AverageFitness is the mean tour length over the μ survivors.
	AverageFitness float64
}

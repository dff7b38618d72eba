// Package evolve_test runnable examples.
package evolve_test

import (
	"fmt"

	"github.com/katalvlaran/evotsp/evolve"
	"github.com/katalvlaran/evotsp/instance"
)

// Example_run evolves a small asymmetric instance and prints the best tour
// length found. With a fixed seed the run is fully reproducible; this
// instance converges to its brute-force optimum (21) well within the budget.
func Example_run() {
	inst, err := instance.New([][]float64{
		{0, 2, 9, 10},
		{1, 0, 6, 4},
		{15, 7, 0, 8},
		{6, 3, 12, 0},
	}, "asym4")
	if err != nil {
		fmt.Println("instance:", err)
		return
	}

	opts := evolve.DefaultOptions()
	opts.Generations = 200
	opts.Seed = 1

	best, err := evolve.Run(inst, opts)
	if err != nil {
		fmt.Println("run:", err)
		return
	}
	fmt.Printf("best tour length: %.0f\n", best.Fitness())

	// Output:
	// best tour length: 21
}

// ExampleNewGreedyIndividual builds a nearest-neighbor tour from a fixed
// start city; the construction is deterministic and consumes no randomness.
func ExampleNewGreedyIndividual() {
	inst, err := instance.New([][]float64{
		{0, 2, 4, 6, 8},
		{2, 0, 3, 5, 7},
		{4, 3, 0, 1, 9},
		{6, 5, 1, 0, 2},
		{8, 7, 9, 2, 0},
	}, "sym5")
	if err != nil {
		fmt.Println("instance:", err)
		return
	}

	greedy, err := evolve.NewGreedyIndividual(inst, 0, nil)
	if err != nil {
		fmt.Println("greedy:", err)
		return
	}
	fmt.Println("tour:", greedy.Tour())
	fmt.Printf("length: %.0f\n", greedy.Fitness())

	// Output:
	// tour: [0 1 2 3 4]
	// length: 16
}

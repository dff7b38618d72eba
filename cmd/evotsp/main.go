// Command evotsp runs the evolutionary TSP solver.
//
// Two modes:
//
//   - solve (default): load or generate one instance, run the EA once with
//     parameters from an optional YAML config overridden by flags, print
//     progress and write the best tour to a result file;
//   - sweep (-sweep <file>): run a parameter-justification experiment from a
//     YAML experiment config, optionally persisting runs to SQLite and
//     writing a text report.
//
// Unknown operator names given to the CLI fall back to the defaults with a
// warning; the core library itself rejects unknown kinds.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evotsp/evolve"
	"github.com/katalvlaran/evotsp/experiment"
	"github.com/katalvlaran/evotsp/instance"
)

// fileConfig is the YAML shape of a single-run config file.
type fileConfig struct {
	Instance string              `yaml:"instance"`
	Cities   int                 `yaml:"cities"`
	Seed     int64               `yaml:"seed"`
	Output   string              `yaml:"output"`
	Params   experiment.ParamSet `yaml:"params"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "evotsp:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("evotsp", flag.ExitOnError)

	var (
		configPath = fs.String("config", "", "YAML run config (flags override it)")
		sweepPath  = fs.String("sweep", "", "YAML experiment config; runs the sweep harness instead of a single solve")
		file       = fs.String("file", "", "TSPLIB instance file")
		cities     = fs.Int("cities", 50, "city count for a generated random instance (when -file is absent)")
		mu         = fs.Int("mu", 50, "parent population size (μ)")
		lambda     = fs.Int("lambda", 100, "offspring population size (λ)")
		gens       = fs.Int("generations", 1000, "generation budget")
		rate       = fs.Float64("rate", 0.2, "mutation rate in [0,1]")
		crossover  = fs.String("crossover", "OX", "crossover operator: OX, PMX or ERX")
		mutation   = fs.String("mutation", "SWAP", "mutation operator: SWAP, INSERT or INVERT")
		selection  = fs.String("selection", "TOURNAMENT", "parent selection: TOURNAMENT or ROULETTE")
		tournament = fs.Int("tournament", 3, "tournament size (tournament selection only)")
		greedy     = fs.Bool("greedy", false, "seed one nearest-neighbor individual into the initial population")
		quiet      = fs.Bool("quiet", false, "suppress the parameter banner and per-generation progress")
		seed       = fs.Int64("seed", 0, "RNG seed; 0 selects the fixed default stream")
		out        = fs.String("out", "best_tour_results.txt", "result file for the best tour; empty disables")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *sweepPath != "" {
		return runSweep(*sweepPath, *quiet)
	}

	// Config file first, explicit flags override it.
	cfg := fileConfig{Cities: *cities, Output: *out}
	if *configPath != "" {
		raw, err := os.ReadFile(*configPath)
		if err != nil {
			return err
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return fmt.Errorf("config %s: %w", *configPath, err)
		}
		if cfg.Cities == 0 {
			cfg.Cities = *cities
		}
		if cfg.Output == "" {
			cfg.Output = *out
		}
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["file"] {
		cfg.Instance = *file
	}
	if set["cities"] {
		cfg.Cities = *cities
	}
	if set["seed"] {
		cfg.Seed = *seed
	}
	if set["out"] {
		cfg.Output = *out
	}
	if set["mu"] || cfg.Params.Mu == 0 {
		cfg.Params.Mu = *mu
	}
	if set["lambda"] || cfg.Params.Lambda == 0 {
		cfg.Params.Lambda = *lambda
	}
	if set["generations"] || cfg.Params.Generations == 0 {
		cfg.Params.Generations = *gens
	}
	if set["rate"] || cfg.Params.MutationRate == 0 {
		cfg.Params.MutationRate = *rate
	}
	if set["crossover"] || cfg.Params.Crossover == "" {
		cfg.Params.Crossover = *crossover
	}
	if set["mutation"] || cfg.Params.Mutation == "" {
		cfg.Params.Mutation = *mutation
	}
	if set["selection"] || cfg.Params.Selection == "" {
		cfg.Params.Selection = *selection
	}
	if set["tournament"] || cfg.Params.TournamentSize == 0 {
		cfg.Params.TournamentSize = *tournament
	}
	if set["greedy"] {
		cfg.Params.GreedyInit = *greedy
	}

	return runSolve(cfg, *quiet)
}

// runSolve executes one evolutionary run from a resolved config.
func runSolve(cfg fileConfig, quiet bool) error {
	inst, err := buildInstance(cfg, quiet)
	if err != nil {
		return err
	}

	opts := buildOptions(cfg.Params)
	opts.Seed = cfg.Seed

	if !quiet {
		printBanner(inst, opts, cfg.Output)

		// Print roughly ten progress lines regardless of the budget.
		every := opts.Generations / 10
		if every < 1 {
			every = 1
		}
		opts.OnGeneration = func(p evolve.Progress) {
			if (p.Generation+1)%every == 0 || p.Generation == opts.Generations-1 {
				fmt.Printf("generation %d: best = %.2f, average = %.2f\n",
					p.Generation+1, p.BestFitness, p.AverageFitness)
			}
		}
	}

	best, err := evolve.Run(inst, opts)
	if err != nil {
		return err
	}

	fmt.Println("\n--- EA Simulation Complete ---")
	fmt.Println("Best Tour Found:", best.Tour())
	fmt.Printf("Overall Best Fitness: %.2f\n", best.Fitness())

	if cfg.Output != "" {
		if err = saveBestTour(cfg.Output, inst, best); err != nil {
			return err
		}
		fmt.Println("Best tour saved to:", cfg.Output)
	}

	return nil
}

// runSweep executes an experiment config end to end.
func runSweep(path string, quiet bool) error {
	cfg, err := experiment.LoadConfig(path)
	if err != nil {
		return err
	}

	inst, err := cfg.BuildInstance()
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Printf("experiment %q on %s (%d cities), %d runs per configuration\n",
			cfg.Name, inst.Name(), inst.N(), cfg.Runs)
	}

	ctx := context.Background()

	var store *experiment.Store
	if cfg.StorePath != "" {
		store = experiment.NewStore(cfg.StorePath)
		if err = store.Init(ctx); err != nil {
			return err
		}
		defer store.Close()
	}

	outcome, err := experiment.NewRunner(inst, cfg, store).Run(ctx)
	if err != nil {
		return err
	}

	if cfg.ReportPath == "" {
		return experiment.WriteReport(os.Stdout, cfg, outcome)
	}
	f, err := os.Create(cfg.ReportPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = experiment.WriteReport(f, cfg, outcome); err != nil {
		return err
	}
	if !quiet {
		fmt.Println("report written to:", cfg.ReportPath)
	}

	return nil
}

// buildInstance loads the TSPLIB file or generates a random instance.
func buildInstance(cfg fileConfig, quiet bool) (*instance.Instance, error) {
	if cfg.Instance != "" {
		if !quiet {
			fmt.Println("Reading TSP instance from file:", cfg.Instance)
		}

		return instance.Load(cfg.Instance)
	}

	if !quiet {
		fmt.Printf("Generating random TSP instance with %d cities.\n", cfg.Cities)
	}
	rng := rand.New(rand.NewSource(evolve.DeriveSeed(cfg.Seed, 0)))

	return instance.RandomEuclidean(cfg.Cities, 1000, 1000, rng)
}

// buildOptions converts the parameter set, substituting defaults with a
// warning for unknown operator names. Defaulting is a CLI courtesy; the core
// rejects unknown kinds outright.
func buildOptions(p experiment.ParamSet) evolve.Options {
	opts := evolve.DefaultOptions()
	opts.Mu = p.Mu
	opts.Lambda = p.Lambda
	opts.Generations = p.Generations
	opts.MutationRate = p.MutationRate
	opts.TournamentSize = p.TournamentSize
	opts.GreedyInit = p.GreedyInit

	var err error
	if opts.Crossover, err = evolve.ParseCrossoverKind(p.Crossover); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown crossover type %q. Using OX.\n", p.Crossover)
		opts.Crossover = evolve.CrossoverOX
	}
	if opts.Mutation, err = evolve.ParseMutationKind(p.Mutation); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown mutation type %q. Using SWAP.\n", p.Mutation)
		opts.Mutation = evolve.MutationSwap
	}
	if opts.Selection, err = evolve.ParseSelectionKind(p.Selection); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown selection type %q. Using TOURNAMENT.\n", p.Selection)
		opts.Selection = evolve.SelectionTournament
	}

	return opts
}

// printBanner echoes the effective parameters before the run.
func printBanner(inst *instance.Instance, opts evolve.Options, output string) {
	fmt.Println("\n--- Evolutionary Algorithm Parameters ---")
	fmt.Printf("TSP Instance: %s (%d cities)\n", inst.Name(), inst.N())
	fmt.Println("Parent Population Size (mu):", opts.Mu)
	fmt.Println("Offspring Population Size (lambda):", opts.Lambda)
	fmt.Println("Generations:", opts.Generations)
	fmt.Printf("Mutation Rate: %.2f\n", opts.MutationRate)
	fmt.Println("Crossover Type:", opts.Crossover)
	fmt.Println("Mutation Type:", opts.Mutation)
	fmt.Println("Parent Selection Type:", opts.Selection)
	if opts.Selection == evolve.SelectionTournament {
		fmt.Println("Tournament Size:", opts.TournamentSize)
	}
	fmt.Println("Greedy Initialization:", opts.GreedyInit)
	if output != "" {
		fmt.Println("Results will be saved to:", output)
	}
	fmt.Println("-----------------------------------------")
}

// saveBestTour writes the result file in the classic plain-text shape.
func saveBestTour(path string, inst *instance.Instance, best evolve.Individual) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, "--- TSP EA Results ---")
	fmt.Fprintf(f, "TSP Instance: %s (%d cities)\n", inst.Name(), inst.N())
	fmt.Fprintf(f, "Best Fitness (Total Distance): %.2f\n", best.Fitness())
	fmt.Fprintln(f, "Best Tour Sequence (0-indexed cities):")

	tour := best.Tour()
	for i, c := range tour {
		if i > 0 {
			fmt.Fprint(f, ", ")
		}
		fmt.Fprint(f, c)
	}
	fmt.Fprintln(f)
	fmt.Fprintln(f, "----------------------")

	return nil
}

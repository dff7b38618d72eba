// Package experiment - the sweep runner.
//
// A Runner executes every sweep axis one parameter at a time: for each value
// it performs Config.Runs repeated evolutionary runs with independent seeds
// derived from the experiment seed (evolve.DeriveSeed, one stream per run)
// and aggregates the best fitnesses into a Summary. Runs within one
// experiment never share RNG state, so the whole sweep is reproducible from
// a single seed.
package experiment

import (
	"context"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/evotsp/evolve"
	"github.com/katalvlaran/evotsp/instance"
)

// Result is the outcome of one evolutionary run within a sweep.
type Result struct {
	RunID       string  // uuid, primary key in the store
	Axis        string  // swept parameter ("mu", "lambda", ... or "base")
	Value       string  // swept value rendered as text
	Run         int     // zero-based repetition index within the configuration
	Seed        int64   // derived per-run seed, recorded for replay
	BestFitness float64 // best tour length of the run
	Tour        []int   // best tour of the run
}

// Summary aggregates the repeated runs of one swept configuration.
type Summary struct {
	Axis   string
	Value  string
	Runs   int
	Mean   float64
	Median float64
	StdDev float64
	Best   float64 // minimum best fitness across the runs
}

// Outcome is everything one sweep produced, in execution order.
type Outcome struct {
	InstanceName string
	Results      []Result
	Summaries    []Summary
}

// Runner executes a sweep against one instance.
type Runner struct {
	inst  *instance.Instance
	cfg   Config
	store *Store // optional; nil disables persistence

	stream uint64 // next DeriveSeed stream id
}

// NewRunner pairs a config with its resolved instance. A non-nil store
// receives every Result and Summary as they are produced.
func NewRunner(inst *instance.Instance, cfg Config, store *Store) *Runner {
	return &Runner{inst: inst, cfg: cfg, store: store}
}

// variant is one point of the sweep: an axis label, a rendered value and the
// options mutation that applies it on top of the base set.
type variant struct {
	axis  string
	value string
	apply func(*evolve.Options)
}

// variants expands the sweep axes into the ordered list of configurations,
// mirroring the one-parameter-at-a-time protocol. An empty sweep yields the
// base configuration alone.
func (r *Runner) variants() []variant {
	sweep := r.cfg.Sweep
	if sweep.empty() {
		return []variant{{axis: "base", value: "-", apply: func(*evolve.Options) {}}}
	}

	var out []variant
	for _, v := range sweep.Mu {
		v := v
		out = append(out, variant{"mu", strconv.Itoa(v), func(o *evolve.Options) { o.Mu = v }})
	}
	for _, v := range sweep.Lambda {
		v := v
		out = append(out, variant{"lambda", strconv.Itoa(v), func(o *evolve.Options) { o.Lambda = v }})
	}
	for _, v := range sweep.Generations {
		v := v
		out = append(out, variant{"generations", strconv.Itoa(v), func(o *evolve.Options) { o.Generations = v }})
	}
	for _, v := range sweep.MutationRate {
		v := v
		out = append(out, variant{
			"mutation_rate",
			strconv.FormatFloat(v, 'g', -1, 64),
			func(o *evolve.Options) { o.MutationRate = v },
		})
	}
	for _, v := range sweep.Crossover {
		v := v
		out = append(out, variant{"crossover", v, func(o *evolve.Options) {
			if k, err := evolve.ParseCrossoverKind(v); err == nil {
				o.Crossover = k
			}
		}})
	}
	for _, v := range sweep.Mutation {
		v := v
		out = append(out, variant{"mutation", v, func(o *evolve.Options) {
			if k, err := evolve.ParseMutationKind(v); err == nil {
				o.Mutation = k
			}
		}})
	}
	for _, v := range sweep.Selection {
		v := v
		out = append(out, variant{"selection", v, func(o *evolve.Options) {
			if k, err := evolve.ParseSelectionKind(v); err == nil {
				o.Selection = k
			}
		}})
	}

	return out
}

// Run executes the full sweep. The context is consulted between runs and
// passed to the store; an in-flight evolutionary run is never interrupted.
func (r *Runner) Run(ctx context.Context) (*Outcome, error) {
	base, err := r.cfg.Base.Options()
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{InstanceName: r.inst.Name()}

	var (
		opts    evolve.Options
		best    evolve.Individual
		res     Result
		fitness []float64
		run     int
	)
	for _, v := range r.variants() {
		fitness = fitness[:0]

		for run = 0; run < r.cfg.Runs; run++ {
			if err = ctx.Err(); err != nil {
				return nil, err
			}

			opts = base
			v.apply(&opts)
			opts.Seed = evolve.DeriveSeed(r.cfg.Seed, r.stream)
			r.stream++

			best, err = evolve.Run(r.inst, opts)
			if err != nil {
				return nil, err
			}

			res = Result{
				RunID:       uuid.NewString(),
				Axis:        v.axis,
				Value:       v.value,
				Run:         run,
				Seed:        opts.Seed,
				BestFitness: best.Fitness(),
				Tour:        best.Tour(),
			}
			outcome.Results = append(outcome.Results, res)
			fitness = append(fitness, res.BestFitness)

			if r.store != nil {
				if err = r.store.SaveRun(ctx, r.cfg.Name, r.inst.Name(), res); err != nil {
					return nil, err
				}
			}
		}

		sum := summarize(v.axis, v.value, fitness)
		outcome.Summaries = append(outcome.Summaries, sum)
		if r.store != nil {
			if err = r.store.SaveSummary(ctx, r.cfg.Name, sum); err != nil {
				return nil, err
			}
		}
	}

	return outcome, nil
}

// summarize computes the aggregate statistics over one configuration's best
// fitnesses: mean, empirical median, sample standard deviation and minimum.
func summarize(axis, value string, fitness []float64) Summary {
	sorted := append([]float64(nil), fitness...)
	sort.Float64s(sorted)

	s := Summary{
		Axis:  axis,
		Value: value,
		Runs:  len(fitness),
		Mean:  stat.Mean(sorted, nil),
		Best:  sorted[0],
	}
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}

	return s
}

// Package experiment - YAML sweep configuration.
//
// A Config describes one parameter-justification experiment: the instance
// (file path or synthetic generator), the number of repeated runs per
// configuration, a base parameter set and the sweep axes that vary one
// parameter at a time around it. Optional sinks: a SQLite store and a plain
// text report.
package experiment

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evotsp/evolve"
	"github.com/katalvlaran/evotsp/instance"
)

// ErrBadConfig is wrapped by every configuration validation failure.
var ErrBadConfig = errors.New("experiment: invalid configuration")

// defaultRuns is the repeat count per configuration when the YAML omits it.
const defaultRuns = 5

// instanceStream is the DeriveSeed stream id reserved for synthetic instance
// generation, far outside the per-run stream range.
const instanceStream uint64 = 1 << 32

// ParamSet is the YAML-friendly mirror of evolve.Options. Operator kinds are
// carried as their canonical short names and parsed strictly.
type ParamSet struct {
	Mu             int     `yaml:"mu"`
	Lambda         int     `yaml:"lambda"`
	Generations    int     `yaml:"generations"`
	MutationRate   float64 `yaml:"mutation_rate"`
	Crossover      string  `yaml:"crossover"`
	Mutation       string  `yaml:"mutation"`
	Selection      string  `yaml:"selection"`
	TournamentSize int     `yaml:"tournament_size"`
	GreedyInit     bool    `yaml:"greedy_init"`
}

// Options converts the parameter set into validated run options. Zero-valued
// fields fall back to evolve.DefaultOptions, so a YAML base block only needs
// to name what it changes.
func (p ParamSet) Options() (evolve.Options, error) {
	opts := evolve.DefaultOptions()

	if p.Mu != 0 {
		opts.Mu = p.Mu
	}
	if p.Lambda != 0 {
		opts.Lambda = p.Lambda
	}
	if p.Generations != 0 {
		opts.Generations = p.Generations
	}
	if p.MutationRate != 0 {
		opts.MutationRate = p.MutationRate
	}
	if p.TournamentSize != 0 {
		opts.TournamentSize = p.TournamentSize
	}
	opts.GreedyInit = p.GreedyInit

	var err error
	if p.Crossover != "" {
		if opts.Crossover, err = evolve.ParseCrossoverKind(p.Crossover); err != nil {
			return evolve.Options{}, fmt.Errorf("%w: crossover %q", ErrBadConfig, p.Crossover)
		}
	}
	if p.Mutation != "" {
		if opts.Mutation, err = evolve.ParseMutationKind(p.Mutation); err != nil {
			return evolve.Options{}, fmt.Errorf("%w: mutation %q", ErrBadConfig, p.Mutation)
		}
	}
	if p.Selection != "" {
		if opts.Selection, err = evolve.ParseSelectionKind(p.Selection); err != nil {
			return evolve.Options{}, fmt.Errorf("%w: selection %q", ErrBadConfig, p.Selection)
		}
	}

	return opts, nil
}

// GeneratorConfig describes a synthetic instance when no file is given.
type GeneratorConfig struct {
	Kind       string  `yaml:"kind"` // random | clustered | grid
	Cities     int     `yaml:"cities"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Clusters   int     `yaml:"clusters"`
	PerCluster int     `yaml:"per_cluster"`
	Spread     float64 `yaml:"spread"`
	GridX      int     `yaml:"grid_x"`
	GridY      int     `yaml:"grid_y"`
	SpacingX   float64 `yaml:"spacing_x"`
	SpacingY   float64 `yaml:"spacing_y"`
}

// SweepAxes lists the values tried per parameter; empty axes are skipped.
// Each axis varies exactly one parameter around the base set.
type SweepAxes struct {
	Mu           []int     `yaml:"mu"`
	Lambda       []int     `yaml:"lambda"`
	Generations  []int     `yaml:"generations"`
	MutationRate []float64 `yaml:"mutation_rate"`
	Crossover    []string  `yaml:"crossover"`
	Mutation     []string  `yaml:"mutation"`
	Selection    []string  `yaml:"selection"`
}

// empty reports whether no axis has any value.
func (s SweepAxes) empty() bool {
	return len(s.Mu) == 0 && len(s.Lambda) == 0 && len(s.Generations) == 0 &&
		len(s.MutationRate) == 0 && len(s.Crossover) == 0 &&
		len(s.Mutation) == 0 && len(s.Selection) == 0
}

// Config is one experiment description, loaded from YAML.
type Config struct {
	Name       string           `yaml:"name"`
	Instance   string           `yaml:"instance"` // TSPLIB file path
	Generator  *GeneratorConfig `yaml:"generator"`
	Runs       int              `yaml:"runs"`
	Seed       int64            `yaml:"seed"`
	Base       ParamSet         `yaml:"base"`
	Sweep      SweepAxes        `yaml:"sweep"`
	StorePath  string           `yaml:"store"`
	ReportPath string           `yaml:"report"`
}

// LoadConfig reads and validates a YAML experiment file.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	return ParseConfig(raw)
}

// ParseConfig decodes and validates YAML bytes.
func ParseConfig(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	if cfg.Name == "" {
		cfg.Name = "experiment"
	}
	if cfg.Runs == 0 {
		cfg.Runs = defaultRuns
	}
	if cfg.Runs < 1 {
		return Config{}, fmt.Errorf("%w: runs must be at least 1", ErrBadConfig)
	}
	if cfg.Instance == "" && cfg.Generator == nil {
		return Config{}, fmt.Errorf("%w: either instance or generator is required", ErrBadConfig)
	}
	if cfg.Instance != "" && cfg.Generator != nil {
		return Config{}, fmt.Errorf("%w: instance and generator are mutually exclusive", ErrBadConfig)
	}

	// Fail on malformed base parameters now, not mid-sweep.
	if _, err := cfg.Base.Options(); err != nil {
		return Config{}, err
	}
	for _, v := range cfg.Sweep.Crossover {
		if _, err := evolve.ParseCrossoverKind(v); err != nil {
			return Config{}, fmt.Errorf("%w: sweep crossover %q", ErrBadConfig, v)
		}
	}
	for _, v := range cfg.Sweep.Mutation {
		if _, err := evolve.ParseMutationKind(v); err != nil {
			return Config{}, fmt.Errorf("%w: sweep mutation %q", ErrBadConfig, v)
		}
	}
	for _, v := range cfg.Sweep.Selection {
		if _, err := evolve.ParseSelectionKind(v); err != nil {
			return Config{}, fmt.Errorf("%w: sweep selection %q", ErrBadConfig, v)
		}
	}

	return cfg, nil
}

// BuildInstance resolves the configured instance: a TSPLIB file when a path
// is given, otherwise the synthetic generator seeded deterministically from
// the experiment seed.
func (c Config) BuildInstance() (*instance.Instance, error) {
	if c.Instance != "" {
		return instance.Load(c.Instance)
	}

	g := c.Generator
	rng := rand.New(rand.NewSource(evolve.DeriveSeed(c.Seed, instanceStream)))
	switch g.Kind {
	case "random":
		return instance.RandomEuclidean(g.Cities, g.Width, g.Height, rng)
	case "clustered":
		return instance.Clustered(g.Clusters, g.PerCluster, g.Width, g.Height, g.Spread, rng)
	case "grid":
		return instance.Grid(g.GridX, g.GridY, g.SpacingX, g.SpacingY)
	default:
		return nil, fmt.Errorf("%w: unknown generator kind %q", ErrBadConfig, g.Kind)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/knapsack/generator"
	"github.com/katalvlaran/knapsack/loader"
	"github.com/katalvlaran/knapsack/solver"
	"github.com/spf13/cobra"
)

// errUsage wraps every command-line mistake; cobra prints the usage for it.
var errUsage = errors.New("knapsack: invalid arguments")

// config is the validated command line.
type config struct {
	algos      []solver.Algorithm
	file       string
	capacity   int64
	count      int
	weights    generator.Range
	benefits   generator.Range
	seed       int64
	save       string
	iterations int
	parallel   int
	chartWidth int
	logLevel   string
	logFormat  string
	metrics    string
	s3         loader.S3Config
}

// rawFlags holds flag values that still need parsing.
type rawFlags struct {
	algo     string
	weights  string
	benefits string
}

// newRootCmd builds the knapsack command. exec receives the validated config
// once PreRunE has accepted the flags.
func newRootCmd(stdout, stderr io.Writer, exec func(context.Context, config) error) *cobra.Command {
	var (
		cfg config
		raw rawFlags
	)
	cmd := &cobra.Command{
		Use:   "knapsack",
		Short: "Solve 0/1 knapsack instances and time the algorithms",
		Long: `Solve a 0/1 knapsack instance read from a file (local, s3://bucket/key,
optionally .zst or .lz4) or generated from a seed, with exhaustive search,
bottom-up tabulation or memoized recursion. --algo all runs every algorithm,
requires their optimal benefits to agree and draws a bar chart of the
average times.`,
		Example: `  knapsack --algo tabulation --file problems/p1.txt --iterations 100
  knapsack --algo all --capacity 50 -n 20 --weights 1-20 --benefits 1-50
  knapsack --algo recursive --file s3://bucket/p1.txt.zst --s3-endpoint localhost:9000`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return fmt.Errorf("%w: %w", errUsage, err)
			}

			return nil
		},
		SilenceErrors: true,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return cfg.resolve(raw)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// flags are fine from here on; runtime failures need no usage text
			cmd.SilenceUsage = true

			return exec(cmd.Context(), cfg)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	f := cmd.Flags()
	f.StringVarP(&raw.algo, "algo", "a", "tabulation", "exhaustive | tabulation | recursive | all")
	f.StringVarP(&cfg.file, "file", "f", "", "instance location: path or s3://bucket/key (.zst/.lz4 decoded)")
	f.Int64VarP(&cfg.capacity, "capacity", "c", 0, "capacity of a generated instance")
	f.IntVarP(&cfg.count, "items", "n", 0, "number of generated items")
	f.StringVar(&raw.weights, "weights", "1-10", "generated weight range min-max")
	f.StringVar(&raw.benefits, "benefits", "1-10", "generated benefit range min-max")
	f.Int64Var(&cfg.seed, "seed", 0, "generator seed (0 = fixed default stream)")
	f.StringVar(&cfg.save, "save", "", "write the instance to this path before solving")
	f.IntVarP(&cfg.iterations, "iterations", "i", 1, "solves per algorithm; the average time is reported")
	f.IntVarP(&cfg.parallel, "parallel", "p", 1, "concurrent iterations")
	f.IntVar(&cfg.chartWidth, "chart-width", 50, "bar chart width for --algo all")
	f.StringVar(&cfg.logLevel, "log-level", "warn", "debug | info | warn | error")
	f.StringVar(&cfg.logFormat, "log-format", "text", "text | json")
	f.StringVar(&cfg.metrics, "metrics-addr", "", "serve Prometheus metrics on this address after solving")
	f.StringVar(&cfg.s3.Endpoint, "s3-endpoint", "s3.amazonaws.com", "S3-compatible endpoint for s3:// files")
	f.StringVar(&cfg.s3.AccessKey, "s3-access-key", "", "S3 access key (default: AWS_*/MINIO_* env)")
	f.StringVar(&cfg.s3.SecretKey, "s3-secret-key", "", "S3 secret key")
	f.StringVar(&cfg.s3.Region, "s3-region", "", "S3 bucket region")
	f.BoolVar(&cfg.s3.Secure, "s3-secure", true, "use TLS for S3")

	return cmd
}

// resolve parses the raw flags into cfg and checks the combination.
// Exactly one instance source is required: --file, or --capacity with -n.
func (cfg *config) resolve(raw rawFlags) error {
	if raw.algo == "all" || raw.algo == "4" {
		cfg.algos = solver.Algorithms
	} else {
		a, err := solver.ParseAlgorithm(raw.algo)
		if err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		cfg.algos = []solver.Algorithm{a}
	}

	generate := cfg.capacity > 0 || cfg.count > 0
	switch {
	case cfg.file != "" && generate:
		return fmt.Errorf("%w: use either --file or --capacity/-n, not both", errUsage)
	case cfg.file == "" && !generate:
		return fmt.Errorf("%w: an instance is required: --file, or --capacity and -n", errUsage)
	case generate && (cfg.capacity <= 0 || cfg.count <= 0):
		return fmt.Errorf("%w: --capacity and -n must both be greater than 0", errUsage)
	}
	if generate {
		var err error
		if cfg.weights, err = generator.ParseRange(raw.weights); err != nil {
			return fmt.Errorf("%w: --weights: %w", errUsage, err)
		}
		if cfg.benefits, err = generator.ParseRange(raw.benefits); err != nil {
			return fmt.Errorf("%w: --benefits: %w", errUsage, err)
		}
	}
	if cfg.iterations <= 0 {
		return fmt.Errorf("%w: --iterations must be greater than 0", errUsage)
	}
	if cfg.parallel <= 0 {
		return fmt.Errorf("%w: --parallel must be greater than 0", errUsage)
	}

	return nil
}

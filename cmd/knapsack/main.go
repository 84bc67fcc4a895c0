// Command knapsack solves 0/1 knapsack instances and times the algorithms.
//
// Usage:
//
//	knapsack --algo tabulation --file problems/p1.txt --iterations 100
//	knapsack --algo all --capacity 50 -n 20 --weights 1-20 --benefits 1-50 -i 10
//	knapsack --algo recursive --file s3://bucket/p1.txt.zst --s3-endpoint localhost:9000
//
// With --algo all every algorithm runs, the optimal benefits must agree, and a
// text bar chart of the average times is printed. With --metrics-addr the
// Prometheus metrics of the run are served until the process is interrupted.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/katalvlaran/knapsack/bench"
	"github.com/katalvlaran/knapsack/generator"
	"github.com/katalvlaran/knapsack/loader"
	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run executes one command line.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr, func(ctx context.Context, cfg config) error {
		return execute(ctx, cfg, stdout, stderr)
	})
	cmd.SetArgs(args)

	return cmd.ExecuteContext(ctx)
}

// execute solves the configured instance and writes the report to stdout.
func execute(ctx context.Context, cfg config, stdout, stderr io.Writer) error {
	log, err := bench.NewLogger(stderr, cfg.logFormat, cfg.logLevel)
	if err != nil {
		return err
	}

	inst, scale, err := loadInstance(ctx, cfg, log)
	if err != nil {
		return err
	}
	if cfg.save != "" {
		if err = saveInstance(cfg.save, inst, scale); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	collector, err := bench.NewPrometheusCollector(reg)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\nIterations: %d\n", cfg.iterations)
	if err = report.Instance(stdout, inst, scale); err != nil {
		return err
	}

	results, err := bench.CompareAlgorithms(ctx, inst, cfg.algos,
		bench.WithIterations(cfg.iterations),
		bench.WithParallelism(cfg.parallel),
		bench.WithLogger(log),
		bench.WithCollector(collector),
	)
	if err != nil {
		return err
	}
	for _, res := range results {
		if err = report.Result(stdout, res, scale); err != nil {
			return err
		}
	}
	if len(results) > 1 {
		fmt.Fprintln(stdout, "\nAverage times:")
		if err = report.Averages(stdout, results); err != nil {
			return err
		}
		fmt.Fprintln(stdout)
		if err = report.BarChart(stdout, results, cfg.chartWidth); err != nil {
			return err
		}
	}

	if cfg.metrics != "" {
		return serveMetrics(ctx, cfg.metrics, reg, log)
	}

	return nil
}

// loadInstance reads -file or generates an instance from the -capacity/-n flags.
func loadInstance(ctx context.Context, cfg config, log *slog.Logger) (model.Instance, model.Scale, error) {
	if cfg.file == "" {
		inst, err := generator.Instance(cfg.capacity, cfg.count, cfg.weights, cfg.benefits, cfg.seed)
		if err != nil {
			return model.Instance{}, model.Scale{}, err
		}
		log.Debug("instance generated", "items", inst.Len(), "capacity", inst.Capacity, "seed", cfg.seed)

		return inst, model.UnitScale(), nil
	}

	var opts []loader.Option
	if strings.HasPrefix(cfg.file, "s3://") {
		client, err := loader.NewS3Client(cfg.s3)
		if err != nil {
			return model.Instance{}, model.Scale{}, err
		}
		opts = append(opts, loader.WithClient(client))
	}
	inst, scale, err := loader.LoadFile(ctx, cfg.file, opts...)
	if err != nil {
		return model.Instance{}, model.Scale{}, err
	}
	log.Debug("instance loaded", "location", cfg.file, "items", inst.Len(), "capacity", inst.Capacity)

	return inst, scale, nil
}

func saveInstance(path string, inst model.Instance, scale model.Scale) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = loader.Format(f, inst, scale); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// serveMetrics exposes reg on addr until ctx is done.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry, log *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	log.Info("serving metrics", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdown)
	}
}

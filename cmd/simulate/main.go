package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/tracing"
	"cpu-scheduler/internal/util"
	"cpu-scheduler/internal/workload"
)

const version = "0.1.0"

func main() {
	workloadURL := flag.String("workload", "", "workload file or URL (.yaml, .json, .csv)")
	algorithm := flag.String("algorithm", "all", "all, fcfs, sjf or priority")
	configDir := flag.String("config", "./", "directory containing config.yaml")
	gantt := flag.Bool("gantt", true, "print a gantt chart per algorithm")
	flag.Parse()

	if err := run(context.Background(), os.Stdout, *workloadURL, *algorithm, *configDir, *gantt); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, workloadURL, algorithm, configDir string, gantt bool) error {
	if workloadURL == "" {
		return fmt.Errorf("-workload is required")
	}
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	slog.SetDefault(util.BuildLogger(cfg.LogLevel))
	if cfg.TracingEnabled {
		if err := tracing.Init(cfg.ServiceName, version, cfg.TracingOutput); err != nil {
			return err
		}
		defer func() { _ = tracing.Shutdown(ctx) }()
	}

	request, err := workload.New().Load(ctx, workloadURL)
	if err != nil {
		return err
	}

	names := cfg.Algorithms
	if !strings.EqualFold(algorithm, "all") {
		names = []string{algorithm}
	}
	algorithms := make([]schedulers.Algorithm, 0, len(names))
	for _, name := range names {
		parsed, err := schedulers.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		algorithms = append(algorithms, parsed)
	}

	comparison, err := schedulers.Compare(ctx, request.Processes(), algorithms...)
	if err != nil {
		return err
	}
	for _, result := range comparison.Results {
		_, _ = fmt.Fprintf(w, "\nRunning %s Scheduling\n", result.Algorithm)
		report.WriteSchedule(w, result)
		if gantt {
			report.WriteGantt(w, result)
		}
	}
	if len(comparison.Results) > 1 {
		_, _ = fmt.Fprintln(w)
		report.WriteComparison(w, comparison)
	}
	return nil
}

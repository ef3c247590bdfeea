package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/theflywheel/schash/internal/catcher"
	"github.com/theflywheel/schash/internal/config"
	"github.com/theflywheel/schash/internal/driver"
	"github.com/theflywheel/schash/internal/metrics"
	"github.com/theflywheel/schash/internal/report"
)

var version = "dev"

// CLI flags override values from the configuration file.
type CLI struct {
	Input string `arg:"" optional:"" help:"CSV file of player records (header row first)" type:"path"`
	Lines *int   `arg:"" optional:"" help:"Number of records to load (0 loads all)"`

	Config      string           `short:"c" help:"Configuration file path" env:"SCHASH_CONFIG" type:"path"`
	Report      string           `short:"r" help:"Report file timings are appended to" env:"SCHASH_REPORT"`
	Size        int              `short:"s" help:"Initial bucket count hint" env:"SCHASH_SIZE"`
	Seed        *uint64          `help:"Shuffle seed" env:"SCHASH_SEED"`
	MetricsFile string           `help:"Write Prometheus metrics to this textfile after the run" env:"SCHASH_METRICS_FILE"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("schash-bench"),
		kong.Description("Time insert, search and removal on a separate-chaining hash table."),
		kong.Vars{"version": version},
	)

	cfg, err := cli.loadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		slog.Error("Benchmark failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file, applies the flags and validates
// the merged result.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *CLI) apply(cfg *config.Config) {
	if c.Input != "" {
		cfg.Input = c.Input
	}
	if c.Lines != nil {
		cfg.Lines = *c.Lines
	}
	if c.Report != "" {
		cfg.Report = c.Report
	}
	if c.Size != 0 {
		cfg.InitialSize = c.Size
	}
	if c.Seed != nil {
		cfg.Seed = *c.Seed
	}
	if c.MetricsFile != "" {
		cfg.MetricsFile = c.MetricsFile
	}
	if c.Verbose {
		cfg.Log.Level = config.LogLevelDebug
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Input == "" {
		return fmt.Errorf("no input file given")
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	records, err := catcher.Load(f, cfg.Lines)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}
	logger.Info("Loaded records", "input", cfg.Input, "count", len(records))

	reg := prom.NewRegistry()
	runner := driver.New(
		driver.Config{InitialSize: cfg.InitialSize, Seed: cfg.Seed},
		driver.WithRecorder(metrics.NewPrometheusRecorder(reg)),
		driver.WithLogger(logger),
	)

	res, runErr := runner.Run(ctx, records)

	if cfg.MetricsFile != "" {
		if err := prom.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			logger.Warn("Failed to write metrics", "path", cfg.MetricsFile, "error", err)
		}
	}
	if runErr != nil {
		return runErr
	}

	for _, r := range res.Results {
		fmt.Printf("%s %s: %d nanoseconds.\n", r.Order, r.Phase, r.Elapsed.Nanoseconds())
	}

	if err := report.Append(cfg.Report, res.Lines, res.Durations()); err != nil {
		return err
	}
	logger.Info("Report updated", "path", cfg.Report, "run_id", res.ID.String())
	return nil
}

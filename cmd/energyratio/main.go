package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ja7ad/energyratio/pkg/energyratio"
)

type opts struct {
	// inputs
	baselinePath   string
	controlledPath string

	// binning
	bins     []float64
	binStart float64
	binStop  float64
	binWidth float64

	// estimator
	confidence float64
	bootstrap  int
	overlap    float64
	seed       int64
	workers    int

	// outputs
	csvPath  string
	jsonPath string

	configPath string
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "energyratio",
		Short: "Balanced energy ratio analysis for wind turbine control tests",
		Long: `The energyratio tool compares the power of a test turbine against an
unaffected reference turbine, between a baseline and a controlled operating
period, per wind direction bin. Wind speed distributions are balanced between
the two periods before the ratio is taken, and confidence bounds come from
bootstrap resampling.

Inputs are CSV files with one row per sample:
  ref_power,test_power,wind_speed,wind_dir

Examples:
  energyratio --baseline base.csv --controlled con.csv --bin-start 250 --bin-stop 290 --bin-width 5
  energyratio --baseline base.csv --controlled con.csv --bins 260,270,280 --confidence 90 --seed 1
  energyratio --config analysis.yaml --baseline base.csv --controlled con.csv --json out.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.configPath != "" {
				fc, err := loadFileConfig(o.configPath)
				if err != nil {
					return err
				}
				applyFileConfig(cmd, &o, fc)
			}
			return run(cmd.Context(), o)
		},
	}

	root.Flags().StringVar(&o.baselinePath, "baseline", "", "CSV file with baseline samples (required)")
	root.Flags().StringVar(&o.controlledPath, "controlled", "", "CSV file with controlled samples (required)")
	_ = root.MarkFlagRequired("baseline")
	_ = root.MarkFlagRequired("controlled")

	root.Flags().Float64SliceVar(&o.bins, "bins", nil, "explicit bin centers in degrees (uniformly spaced)")
	root.Flags().Float64Var(&o.binStart, "bin-start", 0, "first bin center in degrees")
	root.Flags().Float64Var(&o.binStop, "bin-stop", 360, "last bin center in degrees (inclusive)")
	root.Flags().Float64Var(&o.binWidth, "bin-width", 5, "spacing between bin centers in degrees")

	root.Flags().Float64Var(&o.confidence, "confidence", 95, "two-sided confidence level in percent, in (0,100)")
	root.Flags().IntVar(&o.bootstrap, "bootstrap", 0, "bootstrap resamples per bin (0 = derive from bin size)")
	root.Flags().Float64Var(&o.overlap, "overlap", 0, "bin overlap as a percentage of the bin width")
	root.Flags().Int64Var(&o.seed, "seed", 0, "random seed for reproducible intervals (0 = fresh seed)")
	root.Flags().IntVar(&o.workers, "workers", 0, "bins processed concurrently (0 = GOMAXPROCS)")

	root.Flags().StringVar(&o.csvPath, "csv", "", "write per-bin results to CSV file")
	root.Flags().StringVar(&o.jsonPath, "json", "", "write per-bin results to JSON file")
	root.Flags().StringVar(&o.configPath, "config", "", "YAML config file with analysis defaults")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, o opts) error {
	centers := o.bins
	if len(centers) == 0 {
		var err error
		centers, err = binCenters(o.binStart, o.binStop, o.binWidth)
		if err != nil {
			return err
		}
	}

	baseline, err := loadRegime(o.baselinePath)
	if err != nil {
		return fmt.Errorf("baseline: %w", err)
	}
	controlled, err := loadRegime(o.controlledPath)
	if err != nil {
		return fmt.Errorf("controlled: %w", err)
	}
	slog.Info("samples loaded",
		"baseline", baseline.Len(), "controlled", controlled.Len(), "bins", len(centers))

	est := energyratio.New(&energyratio.Config{
		Confidence:    o.confidence,
		NBootstrap:    o.bootstrap,
		BinOverlapPct: o.overlap,
		Seed:          o.seed,
		Workers:       o.workers,
	})

	// Ctrl-C aborts the bootstrap work cleanly.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	rep, err := est.Compute(ctx, baseline, controlled, centers)
	if err != nil {
		return err
	}
	slog.Info("report computed", "elapsed", time.Since(start).Round(time.Millisecond))

	printTable(os.Stdout, rep)
	printSummary(os.Stdout, rep)

	if o.csvPath != "" {
		if err := writeCSV(o.csvPath, rep); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	if o.jsonPath != "" {
		if err := writeJSON(o.jsonPath, rep); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	}
	return nil
}

// binCenters expands start/stop/width into the uniformly spaced center list.
func binCenters(start, stop, width float64) ([]float64, error) {
	if width <= 0 {
		return nil, fmt.Errorf("bin-width must be > 0")
	}
	if stop < start {
		return nil, fmt.Errorf("bin-stop must be >= bin-start")
	}
	var centers []float64
	for c := start; c <= stop+1e-9; c += width {
		centers = append(centers, c)
	}
	return centers, nil
}

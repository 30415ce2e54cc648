package energyratio

import "runtime"

// Method selects how bootstrap confidence bounds are constructed.
type Method int

const (
	// MethodSimplePercentile takes the raw percentile values of the
	// bootstrap distribution as the interval bounds.
	MethodSimplePercentile Method = iota

	// MethodReflected reflects the percentile values around the central
	// estimate (the basic, or pivotal, bootstrap). This corrects for skew
	// in the bootstrap distribution instead of trusting the raw
	// percentiles.
	MethodReflected
)

// String returns the canonical spelling of the method.
func (m Method) String() string {
	switch m {
	case MethodReflected:
		return "reflected"
	default:
		return "simple_percentile"
	}
}

// Regime holds the per-sample arrays for one operating condition (baseline
// or controlled). The four slices are parallel: one row per observation.
// Units:
//   - RefPower/TestPower: power of the reference/test turbine (any consistent unit)
//   - WindSpeed: m/s (truncated to integer buckets internally)
//   - WindDir: compass degrees
type Regime struct {
	RefPower  []float64
	TestPower []float64
	WindSpeed []float64
	WindDir   []float64
}

// Len returns the number of rows in the regime.
func (r Regime) Len() int { return len(r.RefPower) }

func (r Regime) validate() error {
	n := len(r.RefPower)
	if len(r.TestPower) != n || len(r.WindSpeed) != n || len(r.WindDir) != n {
		return ErrLengthMismatch
	}
	return nil
}

// Series holds the per-bin outputs for one statistic: the point estimate,
// the bootstrap confidence bounds, and the sample count backing it. All four
// slices are indexed by bin, same order as the bin centers passed to Compute.
// Entries for under-populated bins are NaN.
type Series struct {
	Values []float64
	Lower  []float64
	Upper  []float64
	Counts []float64
}

// Report is the full balanced energy ratio result: one Series per statistic,
// plus the bin centers they are indexed by.
type Report struct {
	Bins      []float64
	RatioBase Series
	RatioCon  Series
	Diff      Series
	PctChange Series
}

// Config holds the pipeline knobs.
// Fields left at zero in the caller's cfg take defaults in New.
type Config struct {
	// Confidence is the two-sided interval level in percent, in (0,100).
	Confidence float64

	// NBootstrap fixes the resample count per bin. Zero derives it per bin
	// from that bin's baseline sample size (see Iterations). Negative is
	// rejected by Compute.
	NBootstrap int

	// BinOverlapPct widens each direction bin by the given percentage of
	// the bin width, letting adjacent bins share samples. Zero means
	// contiguous, non-overlapping bins.
	BinOverlapPct float64

	// Seed makes the resampling reproducible. Each bin draws from its own
	// seed-derived stream, so results do not depend on scheduling order.
	// Zero draws a fresh seed per Compute call.
	Seed int64

	// Workers bounds the number of bins processed concurrently.
	Workers int
}

func _defaultConfig() *Config {
	return &Config{
		Confidence:    95,
		NBootstrap:    0, // derive per bin
		BinOverlapPct: 0,
		Seed:          0, // non-deterministic
		Workers:       runtime.GOMAXPROCS(0),
	}
}

// Estimator computes balanced energy ratio reports.
type Estimator struct {
	cfg *Config
}

// New creates an estimator with the given config.
// Notes:
//   - Confidence != 0 overrides the default (validity is checked in Compute).
//   - NBootstrap, BinOverlapPct and Seed are taken verbatim; zero keeps the
//     default behavior (auto iterations, no overlap, fresh seed).
//   - Workers must be > 0 to override GOMAXPROCS.
func New(cfg *Config) *Estimator {
	base := _defaultConfig()

	if cfg == nil {
		return &Estimator{cfg: base}
	}

	merged := *base
	if cfg.Confidence != 0 {
		merged.Confidence = cfg.Confidence
	}
	merged.NBootstrap = cfg.NBootstrap
	merged.BinOverlapPct = cfg.BinOverlapPct
	merged.Seed = cfg.Seed
	if cfg.Workers > 0 {
		merged.Workers = cfg.Workers
	}

	return &Estimator{cfg: &merged}
}

func newSeries(n int) Series {
	return Series{
		Values: nanSlice(n),
		Lower:  nanSlice(n),
		Upper:  nanSlice(n),
		Counts: nanSlice(n),
	}
}

func newReport(bins []float64) *Report {
	n := len(bins)
	centers := make([]float64, n)
	copy(centers, bins)
	return &Report{
		Bins:      centers,
		RatioBase: newSeries(n),
		RatioCon:  newSeries(n),
		Diff:      newSeries(n),
		PctChange: newSeries(n),
	}
}

// Package energyratio computes balanced energy ratios: how much power a test
// turbine produced relative to an unaffected reference turbine, compared
// between a baseline and a controlled operating period, per wind direction
// bin, with bootstrap confidence bounds.
//
// The "balanced" part is the wind speed correction. Baseline and controlled
// periods rarely sample the same wind speed mix, and the ratio would
// otherwise be confounded by it. Within each direction bin, wind speeds are
// truncated to integer buckets and each regime's samples are weighted by the
// other regime's prevalence at that bucket, so only speeds observed in both
// regimes contribute, and in matched proportion.
//
// Usage:
//
//	est := energyratio.New(&energyratio.Config{Confidence: 95, Seed: 1})
//	rep, err := est.Compute(ctx, baseline, controlled, binCenters)
//
// Each of rep.RatioBase, rep.RatioCon, rep.Diff and rep.PctChange carries
// the per-bin point estimate, bootstrap lower/upper bounds, and sample
// count. Bins with no samples in one regime, or with no shared speed bucket,
// are NaN across the board; that is expected output for thin sectors, not an
// error.
//
// The computation is pure and stateless: it consumes plain slices, returns
// plain slices, and holds nothing between calls. Where the inputs come from
// (SCADA logs, simulation output) and what happens to the report afterwards
// are the caller's business.
package energyratio

package energyratio

import (
	"math"
	"math/rand"

	"github.com/ja7ad/energyratio/pkg/stats"
)

const (
	minIterations = 2000
	maxIterations = 10000
)

// Iterations returns the default bootstrap resample count for a bin whose
// baseline subset has n samples: n*log10(n) clamped to [2000, 10000] and
// rounded. Larger samples produce noisier high-n estimates and need more
// resamples for stable percentiles, but the count is bounded for cost.
func Iterations(n int) int {
	if n < 2 {
		return minIterations
	}
	v := float64(n) * math.Log10(float64(n))
	v = math.Min(v, maxIterations)
	v = math.Max(v, minIterations)
	return int(math.Round(v))
}

// ConfidenceBounds returns the percentile pair probed for a two-sided
// interval at the given confidence level in percent:
//
//	[50 + confidence/2, 50 - confidence/2]
//
// The first percentile feeds the lower bound and the second the upper, in
// that order. The pairing is part of the interval contract; see Bounds.
func ConfidenceBounds(confidence float64) (first, second float64) {
	return 50 + 0.5*confidence, 50 - 0.5*confidence
}

// Bounds derives the (lower, upper) interval from a vector of bootstrap
// statistics. The first probed percentile value becomes lower and the second
// upper, for both methods:
//
//	MethodSimplePercentile: lower = P[50+c/2],           upper = P[50-c/2]
//	MethodReflected:        lower = 2*central - P[50+c/2], upper = 2*central - P[50-c/2]
//
// central is only consulted by MethodReflected. A NaN anywhere in samples
// yields NaN bounds.
func Bounds(samples []float64, confidence float64, method Method, central float64) (lower, upper float64) {
	first, second := ConfidenceBounds(confidence)
	q := stats.Percentiles(samples, first, second)

	switch method {
	case MethodReflected:
		return 2*central - q[0], 2*central - q[1]
	default:
		return q[0], q[1]
	}
}

// binIntervals are the per-statistic confidence bounds for one bin.
type binIntervals struct {
	ratioBase [2]float64
	ratioCon  [2]float64
	diff      [2]float64
	pctChange [2]float64
}

// resampleInto fills dst with a with-replacement draw from src of the same
// size. dst must have been sized to src.len().
func resampleInto(rng *rand.Rand, src, dst binSamples) {
	n := src.len()
	for i := 0; i < n; i++ {
		j := rng.Intn(n)
		dst.ref[i] = src.ref[j]
		dst.test[i] = src.test[j]
		dst.ws[i] = src.ws[j]
	}
}

// bootstrapBin estimates the confidence bounds for one bin by resampling the
// baseline and controlled subsets independently (the regimes are not paired)
// and recomputing the ratio statistics for each draw.
func bootstrapBin(rng *rand.Rand, base, con binSamples, iters int, confidence float64, method Method, central binStats) binIntervals {
	ratioBase := make([]float64, iters)
	ratioCon := make([]float64, iters)
	diff := make([]float64, iters)
	pctChange := make([]float64, iters)

	baseDraw := newBinSamples(base.len())
	conDraw := newBinSamples(con.len())

	for i := 0; i < iters; i++ {
		resampleInto(rng, base, baseDraw)
		resampleInto(rng, con, conDraw)

		st := energyRatio(baseDraw, conDraw)
		ratioBase[i] = st.ratioBase
		ratioCon[i] = st.ratioCon
		diff[i] = st.diff
		pctChange[i] = st.pctChange
	}

	var iv binIntervals
	iv.ratioBase[0], iv.ratioBase[1] = Bounds(ratioBase, confidence, method, central.ratioBase)
	iv.ratioCon[0], iv.ratioCon[1] = Bounds(ratioCon, confidence, method, central.ratioCon)
	iv.diff[0], iv.diff[1] = Bounds(diff, confidence, method, central.diff)
	iv.pctChange[0], iv.pctChange[1] = Bounds(pctChange, confidence, method, central.pctChange)
	return iv
}

// Package stats provides the order-statistics helpers backing the energy
// ratio pipeline: linear-interpolation percentiles over bootstrap samples
// and plain means.
package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of values, or NaN for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Percentile returns the p-th percentile (p in [0,100]) of values using
// linear interpolation between the two nearest order statistics:
//
//	pos = p/100 * (n-1)
//
// Any NaN in values makes the result NaN, as does an empty slice or a p
// outside [0,100].
func Percentile(values []float64, p float64) float64 {
	return Percentiles(values, p)[0]
}

// Percentiles evaluates several percentiles against one sorted copy of
// values. See Percentile for the interpolation and NaN rules.
func Percentiles(values []float64, ps ...float64) []float64 {
	out := make([]float64, len(ps))

	sorted := make([]float64, 0, len(values))
	hasNaN := false
	for _, v := range values {
		if math.IsNaN(v) {
			hasNaN = true
			break
		}
		sorted = append(sorted, v)
	}
	if hasNaN || len(values) == 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	sort.Float64s(sorted)

	n := len(sorted)
	for i, p := range ps {
		if p < 0 || p > 100 {
			out[i] = math.NaN()
			continue
		}
		pos := p / 100 * float64(n-1)
		lo := int(math.Floor(pos))
		hi := int(math.Ceil(pos))
		if lo == hi {
			out[i] = sorted[lo]
			continue
		}
		frac := pos - float64(lo)
		out[i] = sorted[lo]*(1-frac) + sorted[hi]*frac
	}
	return out
}

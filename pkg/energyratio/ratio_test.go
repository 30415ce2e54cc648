package energyratio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeatF(v float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func repeatI(v, n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func TestEnergyRatio_PointExample(t *testing.T) {
	base := binSamples{
		ref:  repeatF(100, 10),
		test: repeatF(50, 10),
		ws:   repeatI(8, 10),
	}
	con := binSamples{
		ref:  repeatF(100, 10),
		test: repeatF(55, 10),
		ws:   repeatI(8, 10),
	}

	st := energyRatio(base, con)

	assert.InDelta(t, 0.50, st.ratioBase, 1e-12)
	assert.InDelta(t, 0.55, st.ratioCon, 1e-12)
	assert.InDelta(t, 0.05, st.diff, 1e-12)
	assert.InDelta(t, 10.0, st.pctChange, 1e-9)
	assert.Equal(t, 10.0, st.countBase)
	assert.Equal(t, 10.0, st.countCon)
	assert.Equal(t, 10.0, st.countDiff)
	assert.Equal(t, 10.0, st.countPct)
}

func TestEnergyRatio_IdenticalRegimes(t *testing.T) {
	s := binSamples{
		ref:  []float64{120, 90, 100, 110, 95},
		test: []float64{60, 40, 55, 52, 48},
		ws:   []int{7, 7, 8, 8, 9},
	}

	st := energyRatio(s, s)

	require.False(t, math.IsNaN(st.ratioBase))
	assert.Equal(t, st.ratioBase, st.ratioCon, "identical inputs, identical ratios")
	assert.Zero(t, st.diff)
	assert.Zero(t, st.pctChange)
}

func TestEnergyRatio_DisjointBucketsAllNaN(t *testing.T) {
	base := binSamples{ref: repeatF(100, 4), test: repeatF(50, 4), ws: repeatI(5, 4)}
	con := binSamples{ref: repeatF(100, 4), test: repeatF(50, 4), ws: repeatI(9, 4)}

	st := energyRatio(base, con)

	for name, v := range map[string]float64{
		"ratioBase": st.ratioBase, "ratioCon": st.ratioCon,
		"diff": st.diff, "pctChange": st.pctChange,
		"countBase": st.countBase, "countCon": st.countCon,
		"countDiff": st.countDiff, "countPct": st.countPct,
	} {
		assert.True(t, math.IsNaN(v), "%s should be NaN with no shared bucket", name)
	}
}

func TestEnergyRatio_BalancedWeightingReducesToMeans(t *testing.T) {
	// Two buckets, identical per-bucket counts in both regimes: all weights
	// collapse to 0.5 and the weighted ratio equals the plain sum ratio.
	base := binSamples{
		ref:  []float64{100, 100, 200, 200},
		test: []float64{50, 52, 98, 102},
		ws:   []int{6, 6, 10, 10},
	}
	con := binSamples{
		ref:  []float64{110, 90, 210, 190},
		test: []float64{60, 58, 110, 108},
		ws:   []int{6, 6, 10, 10},
	}

	st := energyRatio(base, con)

	sum := func(v []float64) float64 {
		total := 0.0
		for _, x := range v {
			total += x
		}
		return total
	}
	assert.InDelta(t, sum(base.test)/sum(base.ref), st.ratioBase, 1e-12)
	assert.InDelta(t, sum(con.test)/sum(con.ref), st.ratioCon, 1e-12)
}

func TestEnergyRatio_RestrictsToSharedBuckets(t *testing.T) {
	// Bucket 12 exists only in baseline; its rows must not count.
	base := binSamples{
		ref:  []float64{100, 100, 500},
		test: []float64{50, 50, 400},
		ws:   []int{8, 8, 12},
	}
	con := binSamples{
		ref:  []float64{100, 100},
		test: []float64{55, 55},
		ws:   []int{8, 8},
	}

	st := energyRatio(base, con)

	assert.Equal(t, 2.0, st.countBase, "bucket-12 row excluded from baseline count")
	assert.Equal(t, 2.0, st.countCon)
	assert.InDelta(t, 0.50, st.ratioBase, 1e-12)
	assert.InDelta(t, 0.55, st.ratioCon, 1e-12)
}

func TestEnergyRatio_ZeroReferencePropagates(t *testing.T) {
	// Zero weighted reference sum divides through as +Inf, not an error.
	base := binSamples{ref: repeatF(0, 3), test: repeatF(50, 3), ws: repeatI(8, 3)}
	con := binSamples{ref: repeatF(100, 3), test: repeatF(55, 3), ws: repeatI(8, 3)}

	st := energyRatio(base, con)

	assert.True(t, math.IsInf(st.ratioBase, 1), "ratioBase should be +Inf")
	assert.False(t, math.IsNaN(st.countBase), "counts stay defined")
}

func TestEnergyRatio_EmptyInputsAllNaN(t *testing.T) {
	st := energyRatio(binSamples{}, binSamples{})
	assert.True(t, math.IsNaN(st.ratioBase))
	assert.True(t, math.IsNaN(st.countBase))
}

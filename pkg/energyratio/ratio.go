package energyratio

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// binSamples is the slice of one regime that falls inside a direction bin,
// with wind speeds already truncated to integer buckets.
type binSamples struct {
	ref  []float64
	test []float64
	ws   []int
}

func newBinSamples(capacity int) binSamples {
	return binSamples{
		ref:  make([]float64, capacity),
		test: make([]float64, capacity),
		ws:   make([]int, capacity),
	}
}

func (s binSamples) len() int { return len(s.ref) }

// restrict keeps only the rows whose speed bucket lies in keep.
func (s binSamples) restrict(keep map[int]struct{}) binSamples {
	out := binSamples{
		ref:  make([]float64, 0, len(s.ref)),
		test: make([]float64, 0, len(s.test)),
		ws:   make([]int, 0, len(s.ws)),
	}
	for i, k := range s.ws {
		if _, ok := keep[k]; !ok {
			continue
		}
		out.ref = append(out.ref, s.ref[i])
		out.test = append(out.test, s.test[i])
		out.ws = append(out.ws, k)
	}
	return out
}

// bucketIntersection returns the speed buckets observed in both regimes.
func bucketIntersection(wsBase, wsCon []int) map[int]struct{} {
	inBase := make(map[int]struct{}, len(wsBase))
	for _, k := range wsBase {
		inBase[k] = struct{}{}
	}
	shared := make(map[int]struct{})
	for _, k := range wsCon {
		if _, ok := inBase[k]; ok {
			shared[k] = struct{}{}
		}
	}
	return shared
}

// binStats are the point statistics for one direction bin.
type binStats struct {
	ratioBase float64
	ratioCon  float64
	diff      float64
	pctChange float64
	countBase float64
	countCon  float64
	countDiff float64
	countPct  float64
}

func nanStats() binStats {
	nan := math.NaN()
	return binStats{nan, nan, nan, nan, nan, nan, nan, nan}
}

func nanSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}

// energyRatio computes the balanced energy ratio statistics for one
// direction bin. Both samples are first restricted to the speed buckets they
// share; with no shared bucket the statistics are undefined and every field
// is NaN. A zero weighted reference sum propagates as ±Inf/NaN per floating
// point division, never as an error.
func energyRatio(base, con binSamples) binStats {
	shared := bucketIntersection(base.ws, con.ws)
	if len(shared) == 0 {
		return nanStats()
	}

	base = base.restrict(shared)
	con = con.restrict(shared)

	tbl := newWeightTable(base.ws, con.ws)
	wBase := expand(tbl.base, base.ws)
	wCon := expand(tbl.con, con.ws)

	sumRefBase := floats.Dot(base.ref, wBase)
	sumTestBase := floats.Dot(base.test, wBase)
	sumRefCon := floats.Dot(con.ref, wCon)
	sumTestCon := floats.Dot(con.test, wCon)

	ratioBase := sumTestBase / sumRefBase
	ratioCon := sumTestCon / sumRefCon
	diff := ratioCon - ratioBase

	nBase := base.len()
	nCon := con.len()

	return binStats{
		ratioBase: ratioBase,
		ratioCon:  ratioCon,
		diff:      diff,
		pctChange: 100 * diff / ratioBase,
		countBase: float64(nBase),
		countCon:  float64(nCon),
		countDiff: float64(min(nBase, nCon)),
		countPct:  float64(min(nBase, nCon)),
	}
}

package energyratio

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
)

// Compute runs the full pipeline: for every bin center, select the samples
// of each regime falling in that direction bin, compute the balanced ratio
// point estimates, and bracket them with bootstrap percentile intervals.
//
// The sixteen report arrays are indexed by bin, in the order of binCenters.
// Bins with no samples in either regime, or with no shared speed bucket,
// stay NaN across all of their outputs; that is expected steady state, not
// an error. Hard errors are reserved for malformed inputs: regime shape
// mismatches, irregular bin centers, confidence outside (0,100), or a
// negative bootstrap count.
//
// Bins are independent and run on a bounded worker pool; ctx cancels the
// remaining work and is returned as the error.
func (e *Estimator) Compute(ctx context.Context, baseline, controlled Regime, binCenters []float64) (*Report, error) {
	if err := baseline.validate(); err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}
	if err := controlled.validate(); err != nil {
		return nil, fmt.Errorf("controlled: %w", err)
	}
	if e.cfg.Confidence <= 0 || e.cfg.Confidence >= 100 {
		return nil, ErrConfidence
	}
	if e.cfg.NBootstrap < 0 {
		return nil, ErrBootstrap
	}

	radius, err := binRadius(binCenters, e.cfg.BinOverlapPct)
	if err != nil {
		return nil, err
	}

	rep := newReport(binCenters)

	// Each bin draws from its own seed-derived stream, so the report is
	// identical regardless of how bins are scheduled across workers.
	seed := e.cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	workers := e.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(rep.Bins) {
		workers = len(rep.Bins)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				e.computeBin(rep, baseline, controlled, i, radius, seed)
			}
		}()
	}

feed:
	for i := range rep.Bins {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rep, nil
}

// computeBin fills the report slots for one bin. Workers touch disjoint
// indices, so no locking is needed.
func (e *Estimator) computeBin(rep *Report, baseline, controlled Regime, i int, radius float64, seed int64) {
	center := rep.Bins[i]
	base := selectBin(baseline, center, radius)
	con := selectBin(controlled, center, radius)

	// A bin empty in either regime has no defined ratio; its slots stay
	// NaN and no bootstrap runs for it.
	if base.len() == 0 || con.len() == 0 {
		return
	}

	st := energyRatio(base, con)

	rep.RatioBase.Values[i] = st.ratioBase
	rep.RatioBase.Counts[i] = st.countBase
	rep.RatioCon.Values[i] = st.ratioCon
	rep.RatioCon.Counts[i] = st.countCon
	rep.Diff.Values[i] = st.diff
	rep.Diff.Counts[i] = st.countDiff
	rep.PctChange.Values[i] = st.pctChange
	rep.PctChange.Counts[i] = st.countPct

	// No shared speed bucket: the point estimate is undefined, and so is
	// any interval around it.
	if math.IsNaN(st.ratioBase) {
		return
	}

	iters := e.cfg.NBootstrap
	if iters == 0 {
		iters = Iterations(base.len())
	}

	rng := rand.New(rand.NewSource(seed + int64(i)))
	iv := bootstrapBin(rng, base, con, iters, e.cfg.Confidence, MethodSimplePercentile, st)

	rep.RatioBase.Lower[i], rep.RatioBase.Upper[i] = iv.ratioBase[0], iv.ratioBase[1]
	rep.RatioCon.Lower[i], rep.RatioCon.Upper[i] = iv.ratioCon[0], iv.ratioCon[1]
	rep.Diff.Lower[i], rep.Diff.Upper[i] = iv.diff[0], iv.diff[1]
	rep.PctChange.Lower[i], rep.PctChange.Upper[i] = iv.pctChange[0], iv.pctChange[1]
}

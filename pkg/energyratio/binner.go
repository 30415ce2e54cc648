package energyratio

import "math"

// spacingTol is the relative tolerance when checking that bin centers are
// uniformly spaced.
const spacingTol = 1e-9

// fullCircleDeg is the width assumed for a single, spacing-less bin center.
const fullCircleDeg = 360.0

// binRadius derives the half-width of every direction bin from the spacing
// of the supplied centers:
//
//	radius = (1 + overlapPct/100) * width / 2
//
// Centers must be strictly increasing and uniformly spaced; the radius would
// otherwise be wrong for some gaps. A single center gets the full circle, so
// one-bin calls stay well defined.
func binRadius(centers []float64, overlapPct float64) (float64, error) {
	if len(centers) == 0 {
		return 0, ErrNoBins
	}

	width := fullCircleDeg
	if len(centers) > 1 {
		width = centers[1] - centers[0]
		if width <= 0 {
			return 0, ErrBinSpacing
		}
		for i := 2; i < len(centers); i++ {
			gap := centers[i] - centers[i-1]
			if math.Abs(gap-width) > spacingTol*width {
				return 0, ErrBinSpacing
			}
		}
	}

	return (1 + overlapPct/100) * width / 2, nil
}

// selectBin copies the rows of one regime whose wind direction falls in the
// half-open interval [center-radius, center+radius), truncating wind speeds
// to integer buckets on the way. Truncation, not rounding: bucket membership
// decides the weighting, and rounding would move samples across buckets.
func selectBin(r Regime, center, radius float64) binSamples {
	lo := center - radius
	hi := center + radius

	out := binSamples{}
	for i, d := range r.WindDir {
		if d < lo || d >= hi {
			continue
		}
		out.ref = append(out.ref, r.RefPower[i])
		out.test = append(out.test, r.TestPower[i])
		out.ws = append(out.ws, int(math.Trunc(r.WindSpeed[i])))
	}
	return out
}

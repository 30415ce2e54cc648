package energyratio

// weightTable maps an integer wind speed bucket to the balancing weight of
// each regime inside one direction bin. Each regime is weighted by the OTHER
// regime's prevalence at that speed, so a bucket well represented in one
// regime but thin in the other cannot dominate either weighted sum:
//
//	w_base[k] = n_con[k] / (n_base[k] + n_con[k])
//	w_con[k]  = n_base[k] / (n_base[k] + n_con[k])
//
// Only buckets present in both regimes appear in the table; everything else
// weighs zero.
type weightTable struct {
	base map[int]float64
	con  map[int]float64
}

func bucketCounts(ws []int) map[int]int {
	counts := make(map[int]int, len(ws))
	for _, k := range ws {
		counts[k]++
	}
	return counts
}

// newWeightTable derives per-bucket weights from the bucket populations of
// the two regimes.
func newWeightTable(wsBase, wsCon []int) weightTable {
	countBase := bucketCounts(wsBase)
	countCon := bucketCounts(wsCon)

	t := weightTable{
		base: make(map[int]float64, len(countBase)),
		con:  make(map[int]float64, len(countCon)),
	}
	for k, nb := range countBase {
		nc, ok := countCon[k]
		if !ok {
			continue
		}
		total := float64(nb + nc)
		t.base[k] = float64(nc) / total
		t.con[k] = float64(nb) / total
	}
	return t
}

// expand returns one weight per sample. Buckets absent from the table weigh
// zero; an empty input yields an empty weight slice.
func expand(weights map[int]float64, ws []int) []float64 {
	out := make([]float64, len(ws))
	for i, k := range ws {
		out[i] = weights[k]
	}
	return out
}

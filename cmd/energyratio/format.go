package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"

	"github.com/ja7ad/energyratio/pkg/energyratio"
	"github.com/ja7ad/energyratio/pkg/types"
)

// jfloat marshals NaN and ±Inf as null; encoding/json rejects them outright,
// and under-populated bins are all NaN.
type jfloat float64

func (v jfloat) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

type binRow struct {
	Bin         jfloat `json:"wind_dir_bin_deg"`
	RatioBase   jfloat `json:"ratio_base"`
	RatioBaseLo jfloat `json:"ratio_base_lower"`
	RatioBaseHi jfloat `json:"ratio_base_upper"`
	CountBase   jfloat `json:"count_base"`
	RatioCon    jfloat `json:"ratio_con"`
	RatioConLo  jfloat `json:"ratio_con_lower"`
	RatioConHi  jfloat `json:"ratio_con_upper"`
	CountCon    jfloat `json:"count_con"`
	Diff        jfloat `json:"diff"`
	DiffLo      jfloat `json:"diff_lower"`
	DiffHi      jfloat `json:"diff_upper"`
	CountDiff   jfloat `json:"count_diff"`
	PctChange   jfloat `json:"pct_change"`
	PctChangeLo jfloat `json:"pct_change_lower"`
	PctChangeHi jfloat `json:"pct_change_upper"`
	CountPct    jfloat `json:"count_pct_change"`
}

func reportRows(rep *energyratio.Report) []binRow {
	rows := make([]binRow, len(rep.Bins))
	for i, c := range rep.Bins {
		rows[i] = binRow{
			Bin:         jfloat(c),
			RatioBase:   jfloat(rep.RatioBase.Values[i]),
			RatioBaseLo: jfloat(rep.RatioBase.Lower[i]),
			RatioBaseHi: jfloat(rep.RatioBase.Upper[i]),
			CountBase:   jfloat(rep.RatioBase.Counts[i]),
			RatioCon:    jfloat(rep.RatioCon.Values[i]),
			RatioConLo:  jfloat(rep.RatioCon.Lower[i]),
			RatioConHi:  jfloat(rep.RatioCon.Upper[i]),
			CountCon:    jfloat(rep.RatioCon.Counts[i]),
			Diff:        jfloat(rep.Diff.Values[i]),
			DiffLo:      jfloat(rep.Diff.Lower[i]),
			DiffHi:      jfloat(rep.Diff.Upper[i]),
			CountDiff:   jfloat(rep.Diff.Counts[i]),
			PctChange:   jfloat(rep.PctChange.Values[i]),
			PctChangeLo: jfloat(rep.PctChange.Lower[i]),
			PctChangeHi: jfloat(rep.PctChange.Upper[i]),
			CountPct:    jfloat(rep.PctChange.Counts[i]),
		}
	}
	return rows
}

func printTable(w io.Writer, rep *energyratio.Report) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BIN\tRATIO_BASE [LO, HI]\tN\tRATIO_CON [LO, HI]\tN\tDIFF\tPCT_CHANGE")
	fmt.Fprintln(tw, "---\t-------------------\t-\t------------------\t-\t----\t----------")
	for _, r := range reportRows(rep) {
		fmt.Fprintf(tw, "%s\t%.4f [%.4f, %.4f]\t%.0f\t%.4f [%.4f, %.4f]\t%.0f\t%+.4f\t%+.2f%%\n",
			types.Degrees(r.Bin),
			float64(r.RatioBase), float64(r.RatioBaseLo), float64(r.RatioBaseHi), float64(r.CountBase),
			float64(r.RatioCon), float64(r.RatioConLo), float64(r.RatioConHi), float64(r.CountCon),
			float64(r.Diff), float64(r.PctChange),
		)
	}
	tw.Flush()
}

func printSummary(w io.Writer, rep *energyratio.Report) {
	var pct []float64
	for _, v := range rep.PctChange.Values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			pct = append(pct, v)
		}
	}

	fmt.Fprintln(w)
	if len(pct) == 0 {
		fmt.Fprintln(w, "no bin had enough data for a defined ratio")
		return
	}
	fmt.Fprintf(w, "bins resolved: %d/%d, mean percent change: %+.2f%%\n",
		len(pct), len(rep.Bins), stat.Mean(pct, nil))
}

var csvHeader = []string{
	"wind_dir_bin_deg",
	"ratio_base", "ratio_base_lower", "ratio_base_upper", "count_base",
	"ratio_con", "ratio_con_lower", "ratio_con_upper", "count_con",
	"diff", "diff_lower", "diff_upper", "count_diff",
	"pct_change", "pct_change_lower", "pct_change_upper", "count_pct_change",
}

func writeCSV(path string, rep *energyratio.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	fmtF := func(v jfloat) string { return fmt.Sprintf("%g", float64(v)) }
	for _, r := range reportRows(rep) {
		rec := []string{
			fmtF(r.Bin),
			fmtF(r.RatioBase), fmtF(r.RatioBaseLo), fmtF(r.RatioBaseHi), fmtF(r.CountBase),
			fmtF(r.RatioCon), fmtF(r.RatioConLo), fmtF(r.RatioConHi), fmtF(r.CountCon),
			fmtF(r.Diff), fmtF(r.DiffLo), fmtF(r.DiffHi), fmtF(r.CountDiff),
			fmtF(r.PctChange), fmtF(r.PctChangeLo), fmtF(r.PctChangeHi), fmtF(r.CountPct),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSON(path string, rep *energyratio.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(reportRows(rep))
}

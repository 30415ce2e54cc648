package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/ja7ad/energyratio/pkg/energyratio"
)

// loadRegime reads one regime's samples from a CSV file with columns
//
//	ref_power,test_power,wind_speed,wind_dir
//
// A non-numeric first row is treated as a header and skipped.
func loadRegime(path string) (energyratio.Regime, error) {
	var r energyratio.Regime

	f, err := os.Open(path)
	if err != nil {
		return r, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 4
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return r, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) == 0 {
		return r, fmt.Errorf("%s: no rows", path)
	}

	rows := records
	if _, err := strconv.ParseFloat(records[0][0], 64); err != nil {
		rows = records[1:] // header row
	}

	for i, rec := range rows {
		vals := make([]float64, 4)
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return energyratio.Regime{}, fmt.Errorf("%s row %d col %d: %w", path, i+1, j+1, err)
			}
			vals[j] = v
		}
		r.RefPower = append(r.RefPower, vals[0])
		r.TestPower = append(r.TestPower, vals[1])
		r.WindSpeed = append(r.WindSpeed, vals[2])
		r.WindDir = append(r.WindDir, vals[3])
	}
	return r, nil
}

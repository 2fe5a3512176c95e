package analytics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnSummary describes the distribution of one metric across a batch.
type ColumnSummary struct {
	Column string  `json:"column"`
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize returns one summary per metric in Columns order, or nil for an
// empty batch. StdDev is the sample standard deviation and is 0 for a
// single record.
func Summarize(records []Record) []ColumnSummary {
	if len(records) == 0 {
		return nil
	}

	cols := make([][]float64, len(Columns))
	for i := range cols {
		cols[i] = make([]float64, len(records))
	}
	for j, rec := range records {
		for i, v := range rec.Values() {
			cols[i][j] = v
		}
	}

	out := make([]ColumnSummary, len(Columns))
	for i, name := range Columns {
		x := cols[i]
		mean, std := stat.MeanStdDev(x, nil)
		if len(x) < 2 {
			std = 0
		}
		out[i] = ColumnSummary{
			Column: name,
			N:      len(x),
			Mean:   mean,
			StdDev: std,
			Min:    floats.Min(x),
			Max:    floats.Max(x),
		}
	}
	return out
}

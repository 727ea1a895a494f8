package engine

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"dfsummary/domain/frame"
	domstats "dfsummary/domain/stats"
)

// BuildSummaryTable computes one SummaryRow per dataset column. Statistics
// are computed uniformly over every column's float view; for non-numeric
// columns (and for statistics undefined on the available data) the result
// is NaN rather than an error. The input dataframe is not mutated.
func (e *Engine) BuildSummaryTable(df dataframe.DataFrame) *domstats.SummaryTable {
	names := df.Names()
	types := df.Types()
	nrow := df.Nrow()

	rows := make([]domstats.SummaryRow, 0, len(names))
	for i, name := range names {
		nullCount := frame.NullCount(df, name)
		vals := frame.NonNull(df, name)

		row := domstats.SummaryRow{
			Column:      name,
			DType:       string(types[i]),
			NullCount:   nullCount,
			NullPercent: nullPercent(nullCount, nrow),
			UniqueVals:  frame.UniqueCount(df, name),
			Mean:        orNaN(stats.Mean(vals)),
			Min:         orNaN(stats.Min(vals)),
			Max:         orNaN(stats.Max(vals)),
			Std:         orNaN(stats.StandardDeviationSample(vals)),
			Q25:         orNaN(stats.Percentile(vals, 25)),
			Median:      orNaN(stats.Median(vals)),
			Q75:         orNaN(stats.Percentile(vals, 75)),
			Skewness:    skewness(vals),
			Kurtosis:    kurtosis(vals),
		}
		rows = append(rows, row)
	}
	return &domstats.SummaryTable{Rows: rows}
}

// nullPercent is null_count/row_count*100 rounded to 2 decimals.
func nullPercent(nullCount, rowCount int) float64 {
	if rowCount == 0 {
		return math.NaN()
	}
	pct := float64(nullCount) / float64(rowCount) * 100
	return math.Round(pct*100) / 100
}

// orNaN collapses the library's empty-input errors into NaN.
func orNaN(v float64, err error) float64 {
	if err != nil {
		return math.NaN()
	}
	return v
}

// skewness needs at least three observations to be defined.
func skewness(vals []float64) float64 {
	if len(vals) < 3 {
		return math.NaN()
	}
	return stat.Skew(vals, nil)
}

// kurtosis is the excess kurtosis, defined from four observations.
func kurtosis(vals []float64) float64 {
	if len(vals) < 4 {
		return math.NaN()
	}
	return stat.ExKurtosis(vals, nil)
}

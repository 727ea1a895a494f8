// Package stats holds the domain types for descriptive summaries and
// correlation preparation: methods, drop policies, summary rows, and the
// subplot grid layout.
package stats

import (
	"math"
	"strings"

	"dfsummary/domain/core"
)

// Method selects the correlation estimator.
type Method string

const (
	MethodPearson  Method = "pearson"
	MethodSpearman Method = "spearman"
	MethodKendall  Method = "kendall"
)

// ParseMethod normalizes and validates a correlation method name.
// Matching is case-insensitive; anything outside the three recognized
// estimators is an input error.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodPearson:
		return MethodPearson, nil
	case MethodSpearman:
		return MethodSpearman, nil
	case MethodKendall:
		return MethodKendall, nil
	default:
		return "", core.NewInvalidMethodError(s)
	}
}

// Title returns the capitalized method name for plot titles.
func (m Method) Title() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}

// DropKind names a null-dropping rule applied before correlation.
type DropKind string

const (
	DropNone    DropKind = ""
	DropAnyRows DropKind = "any_rows"
	DropAnyCols DropKind = "any_cols"
	DropSubset  DropKind = "subset"
)

// DropPolicy determines which rows or columns are excluded before computing
// correlations. An unrecognized Kind is treated as DropNone with a warning.
type DropPolicy struct {
	Kind   DropKind
	Subset []string
}

// NoDrop keeps all rows and columns; correlations fall back to
// pairwise deletion of missing values.
func NoDrop() DropPolicy { return DropPolicy{Kind: DropNone} }

// DropRowsWithNulls removes every row containing at least one null.
func DropRowsWithNulls() DropPolicy { return DropPolicy{Kind: DropAnyRows} }

// DropColumnsWithNulls removes every column containing at least one null.
func DropColumnsWithNulls() DropPolicy { return DropPolicy{Kind: DropAnyCols} }

// DropRowsMissingIn removes every row with a null in any of the named columns.
func DropRowsMissingIn(columns ...string) DropPolicy {
	return DropPolicy{Kind: DropSubset, Subset: columns}
}

// ParseDropPolicy converts a textual policy into a DropPolicy. The forms
// "", "any_rows", "any_cols" and "subset:col_a,col_b" are recognized; any
// other value passes through as-is so the correlation prep can report it
// as invalid and fall back to no drop.
func ParseDropPolicy(s string) DropPolicy {
	s = strings.TrimSpace(s)
	switch DropKind(s) {
	case DropNone:
		return NoDrop()
	case DropAnyRows:
		return DropRowsWithNulls()
	case DropAnyCols:
		return DropColumnsWithNulls()
	}
	if rest, ok := strings.CutPrefix(s, "subset:"); ok {
		cols := strings.Split(rest, ",")
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
		return DropRowsMissingIn(cols...)
	}
	return DropPolicy{Kind: DropKind(s)}
}

// SummaryRow holds the descriptive statistics for one dataset column.
// Numeric statistics are NaN for non-numeric columns and for statistics
// that are undefined on the available data.
type SummaryRow struct {
	Column      string  `json:"column"`
	DType       string  `json:"dtype"`
	NullCount   int     `json:"null_count"`
	NullPercent float64 `json:"null_percent"`
	UniqueVals  int     `json:"unique_vals"`
	Mean        float64 `json:"mean"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Std         float64 `json:"std"`
	Q25         float64 `json:"25%"`
	Median      float64 `json:"median"`
	Q75         float64 `json:"75%"`
	Skewness    float64 `json:"skewness"`
	Kurtosis    float64 `json:"kurtosis"`
}

// SummaryTable is the per-column descriptive statistics for a dataset,
// one SummaryRow per input column, presented transposed: dataset columns
// become rows, statistic names become columns.
type SummaryTable struct {
	Rows []SummaryRow `json:"rows"`
}

// CorrelationResult is a symmetric matrix of pairwise correlation
// coefficients over the numeric columns, plus metadata describing what
// was dropped before computing it.
type CorrelationResult struct {
	Columns         []string    `json:"columns"`
	Matrix          [][]float64 `json:"matrix"`
	Method          Method      `json:"method"`
	DropCount       int         `json:"drop_count"`
	DropDescription string      `json:"drop_description"`
}

// At returns the coefficient for the column pair (i, j).
func (r *CorrelationResult) At(i, j int) float64 {
	return r.Matrix[i][j]
}

// IsEmpty reports whether the matrix contains no usable entries at all.
func (r *CorrelationResult) IsEmpty() bool {
	for _, row := range r.Matrix {
		for _, v := range row {
			if !math.IsNaN(v) {
				return false
			}
		}
	}
	return true
}

// Package frame provides the dataset helpers the summary layer is built on:
// numeric-subset selection, null accounting, and the row/column dropping used
// before correlation. A dataset is a gota dataframe; missing values are NaN.
package frame

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"dfsummary/domain/core"
)

// IsNumericType reports whether a series type counts as numeric for
// summary statistics and plotting.
func IsNumericType(t series.Type) bool {
	return t == series.Int || t == series.Float
}

// NumericColumns returns the names of the numeric columns in order.
func NumericColumns(df dataframe.DataFrame) []string {
	names := df.Names()
	types := df.Types()
	numeric := make([]string, 0, len(names))
	for i, name := range names {
		if IsNumericType(types[i]) {
			numeric = append(numeric, name)
		}
	}
	return numeric
}

// NumericSubset returns the dataframe restricted to its numeric columns.
// The subset is derived fresh on every call.
func NumericSubset(df dataframe.DataFrame) dataframe.DataFrame {
	cols := NumericColumns(df)
	if len(cols) == 0 {
		return dataframe.New()
	}
	return df.Select(cols)
}

// Floats returns the column as float64 values, NaN for missing entries.
func Floats(df dataframe.DataFrame, column string) []float64 {
	return df.Col(column).Float()
}

// NonNull returns the column's non-missing values as float64.
func NonNull(df dataframe.DataFrame, column string) []float64 {
	s := df.Col(column)
	vals := s.Float()
	mask := s.IsNaN()
	out := make([]float64, 0, len(vals))
	for i, v := range vals {
		if !mask[i] {
			out = append(out, v)
		}
	}
	return out
}

// NullCount returns the number of missing values in the column.
func NullCount(df dataframe.DataFrame, column string) int {
	count := 0
	for _, isNA := range df.Col(column).IsNaN() {
		if isNA {
			count++
		}
	}
	return count
}

// TotalNulls returns the number of missing values across the whole dataframe.
func TotalNulls(df dataframe.DataFrame) int {
	total := 0
	for _, name := range df.Names() {
		total += NullCount(df, name)
	}
	return total
}

// UniqueCount returns the number of distinct non-missing values in the column.
func UniqueCount(df dataframe.DataFrame, column string) int {
	s := df.Col(column)
	records := s.Records()
	mask := s.IsNaN()
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if mask[i] {
			continue
		}
		seen[rec] = struct{}{}
	}
	return len(seen)
}

// DropNullRows removes every row containing at least one missing value and
// returns the reduced dataframe with the number of rows removed.
func DropNullRows(df dataframe.DataFrame) (dataframe.DataFrame, int) {
	return dropRowsWithNullsIn(df, df.Names())
}

// DropNullRowsSubset removes every row with a missing value in any of the
// named columns. A column that does not exist aborts the drop.
func DropNullRowsSubset(df dataframe.DataFrame, columns []string) (dataframe.DataFrame, int, error) {
	have := make(map[string]struct{}, df.Ncol())
	for _, name := range df.Names() {
		have[name] = struct{}{}
	}
	for _, col := range columns {
		if _, ok := have[col]; !ok {
			return df, 0, core.NewColumnNotFoundError(col)
		}
	}
	reduced, dropped := dropRowsWithNullsIn(df, columns)
	return reduced, dropped, nil
}

// DropNullColumns removes every column containing at least one missing value
// and returns the reduced dataframe with the number of columns removed.
func DropNullColumns(df dataframe.DataFrame) (dataframe.DataFrame, int) {
	keep := make([]string, 0, df.Ncol())
	for _, name := range df.Names() {
		if NullCount(df, name) == 0 {
			keep = append(keep, name)
		}
	}
	dropped := df.Ncol() - len(keep)
	if dropped == 0 {
		return df, 0
	}
	if len(keep) == 0 {
		return dataframe.New(), dropped
	}
	return df.Select(keep), dropped
}

// Head returns the first n rows (fewer when the dataframe is shorter).
func Head(df dataframe.DataFrame, n int) dataframe.DataFrame {
	return df.Subset(rowRange(0, min(n, df.Nrow())))
}

// Tail returns the last n rows (fewer when the dataframe is shorter).
func Tail(df dataframe.DataFrame, n int) dataframe.DataFrame {
	start := df.Nrow() - n
	if start < 0 {
		start = 0
	}
	return df.Subset(rowRange(start, df.Nrow()))
}

func dropRowsWithNullsIn(df dataframe.DataFrame, columns []string) (dataframe.DataFrame, int) {
	nrow := df.Nrow()
	masks := make([][]bool, len(columns))
	for i, name := range columns {
		masks[i] = df.Col(name).IsNaN()
	}
	keep := make([]int, 0, nrow)
	for row := 0; row < nrow; row++ {
		hasNull := false
		for _, mask := range masks {
			if mask[row] {
				hasNull = true
				break
			}
		}
		if !hasNull {
			keep = append(keep, row)
		}
	}
	dropped := nrow - len(keep)
	if dropped == 0 {
		return df, 0
	}
	return df.Subset(keep), dropped
}

func rowRange(start, end int) []int {
	idx := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		idx = append(idx, i)
	}
	return idx
}

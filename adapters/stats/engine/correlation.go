package engine

import (
	"math"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/stat"

	"dfsummary/domain/core"
	"dfsummary/domain/frame"
	domstats "dfsummary/domain/stats"
)

// Prepare applies the drop policy to the numeric subset and computes the
// pairwise correlation matrix with the selected method. All policy
// failures are soft: a missing subset column or an unrecognized policy is
// logged and the full subset is used with drop_count 0. Missing values
// that survive the drop participate by pairwise deletion.
func (e *Engine) Prepare(numeric dataframe.DataFrame, method domstats.Method, policy domstats.DropPolicy) *domstats.CorrelationResult {
	reduced, dropCount, dropDescription := e.applyDropPolicy(numeric, policy)

	names := reduced.Names()
	cols := make([][]float64, len(names))
	for i, name := range names {
		cols[i] = frame.Floats(reduced, name)
	}

	matrix := make([][]float64, len(cols))
	for i := range cols {
		matrix[i] = make([]float64, len(cols))
		for j := range cols {
			if j < i {
				matrix[i][j] = matrix[j][i]
				continue
			}
			matrix[i][j] = pairCorrelation(cols[i], cols[j], method)
		}
	}

	return &domstats.CorrelationResult{
		Columns:         names,
		Matrix:          matrix,
		Method:          method,
		DropCount:       dropCount,
		DropDescription: dropDescription,
	}
}

func (e *Engine) applyDropPolicy(df dataframe.DataFrame, policy domstats.DropPolicy) (dataframe.DataFrame, int, string) {
	switch policy.Kind {
	case domstats.DropAnyRows:
		reduced, dropped := frame.DropNullRows(df)
		return reduced, dropped, "rows"
	case domstats.DropAnyCols:
		reduced, dropped := frame.DropNullColumns(df)
		return reduced, dropped, "columns"
	case domstats.DropSubset:
		reduced, dropped, err := frame.DropNullRowsSubset(df, policy.Subset)
		if err != nil {
			e.log.Warn("%v. Specified column does not exist in data. No null values were dropped.", err)
			return df, 0, "rows or columns"
		}
		return reduced, dropped, "rows (subsetted on " + strings.Join(policy.Subset, ", ") + ") Null values"
	case domstats.DropNone:
		return df, 0, "rows or columns"
	default:
		e.log.Warn("incorrect drop criteria %q specified. No null values were dropped.", string(policy.Kind))
		return df, 0, "rows or columns"
	}
}

// pairCorrelation computes the coefficient for one column pair over the
// rows where both values are present. Fewer than two shared observations
// yields NaN.
func pairCorrelation(x, y []float64, method domstats.Method) float64 {
	xs, ys := pairwiseComplete(x, y)
	if len(xs) < 2 {
		return math.NaN()
	}
	switch method {
	case domstats.MethodSpearman:
		return stat.Correlation(ranks(xs), ranks(ys), nil)
	case domstats.MethodKendall:
		return stat.Kendall(xs, ys, nil)
	default:
		return stat.Correlation(xs, ys, nil)
	}
}

func pairwiseComplete(x, y []float64) ([]float64, []float64) {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys
}

// Guard validates the inputs the orchestrator must check before asking for
// a correlation heatmap.
func Guard(numericCols int, method string) (domstats.Method, error) {
	m, err := domstats.ParseMethod(method)
	if err != nil {
		return "", err
	}
	if numericCols < 2 {
		return "", core.ErrTooFewNumericCols
	}
	return m, nil
}

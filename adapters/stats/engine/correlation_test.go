package engine

import (
	"bytes"
	"log"
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"

	"dfsummary/domain/core"
	domstats "dfsummary/domain/stats"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(orig) })
	return &buf
}

func TestPrepareDropPolicies(t *testing.T) {
	nan := math.NaN()
	df := dataframe.New(
		series.New([]float64{1, nan, 3, 4}, series.Float, "A"),
		series.New([]float64{1, 2, 3, nan}, series.Float, "B"),
	)
	eng := NewEngine(nil)

	t.Run("drop any rows", func(t *testing.T) {
		res := eng.Prepare(df, domstats.MethodPearson, domstats.DropRowsWithNulls())
		assert.Equal(t, 2, res.DropCount)
		assert.Equal(t, "rows", res.DropDescription)
	})

	t.Run("drop any columns", func(t *testing.T) {
		res := eng.Prepare(df, domstats.MethodPearson, domstats.DropColumnsWithNulls())
		assert.Equal(t, 2, res.DropCount)
		assert.Equal(t, "columns", res.DropDescription)
		assert.Empty(t, res.Columns)
		assert.True(t, res.IsEmpty())
	})

	t.Run("drop rows missing in subset", func(t *testing.T) {
		res := eng.Prepare(df, domstats.MethodPearson, domstats.DropRowsMissingIn("A"))
		assert.Equal(t, 1, res.DropCount)
		assert.Contains(t, res.DropDescription, "subsetted on A")
	})

	t.Run("missing subset column falls back to no drop", func(t *testing.T) {
		buf := captureLog(t)
		res := eng.Prepare(df, domstats.MethodPearson, domstats.DropRowsMissingIn("missing"))
		assert.Equal(t, 0, res.DropCount)
		assert.Equal(t, "rows or columns", res.DropDescription)
		assert.Contains(t, buf.String(), "[WARN]")
	})

	t.Run("unrecognized policy falls back to no drop with warning", func(t *testing.T) {
		buf := captureLog(t)
		res := eng.Prepare(df, domstats.MethodPearson, domstats.DropPolicy{Kind: "bogus"})
		assert.Equal(t, 0, res.DropCount)
		assert.Equal(t, "rows or columns", res.DropDescription)
		assert.Contains(t, buf.String(), "bogus")
	})

	t.Run("no drop stays silent", func(t *testing.T) {
		buf := captureLog(t)
		res := eng.Prepare(df, domstats.MethodPearson, domstats.NoDrop())
		assert.Equal(t, 0, res.DropCount)
		assert.NotContains(t, buf.String(), "[WARN]")
	})
}

func TestPrepareMatrixProperties(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{1, 2, 3, 4}, series.Float, "A"),
		series.New([]float64{2, 4, 6, 8}, series.Float, "B"),
		series.New([]float64{4, 1, 3, 2}, series.Float, "C"),
	)
	res := NewEngine(nil).Prepare(df, domstats.MethodPearson, domstats.NoDrop())

	t.Run("symmetric with unit diagonal", func(t *testing.T) {
		n := len(res.Columns)
		for i := 0; i < n; i++ {
			assert.InDelta(t, 1.0, res.At(i, i), 1e-12)
			for j := 0; j < n; j++ {
				assert.Equal(t, res.At(i, j), res.At(j, i))
			}
		}
	})

	t.Run("perfectly correlated pair", func(t *testing.T) {
		assert.InDelta(t, 1.0, res.At(0, 1), 1e-12)
	})
}

func TestPreparePairwiseDeletion(t *testing.T) {
	nan := math.NaN()
	df := dataframe.New(
		series.New([]float64{1, 2, 3, nan}, series.Float, "A"),
		series.New([]float64{2, 4, nan, 8}, series.Float, "B"),
	)
	res := NewEngine(nil).Prepare(df, domstats.MethodPearson, domstats.NoDrop())

	// Only rows 0 and 1 are complete for the pair; the coefficient is
	// computed over them rather than coming back NaN.
	assert.False(t, math.IsNaN(res.At(0, 1)))
}

func TestPrepareMethods(t *testing.T) {
	// Monotonic but nonlinear: rank-based estimators see a perfect
	// relationship.
	df := dataframe.New(
		series.New([]float64{1, 2, 3, 4, 5}, series.Float, "X"),
		series.New([]float64{1, 4, 9, 16, 25}, series.Float, "Y"),
	)
	eng := NewEngine(nil)

	spearman := eng.Prepare(df, domstats.MethodSpearman, domstats.NoDrop())
	assert.InDelta(t, 1.0, spearman.At(0, 1), 1e-12)

	kendall := eng.Prepare(df, domstats.MethodKendall, domstats.NoDrop())
	assert.InDelta(t, 1.0, kendall.At(0, 1), 1e-12)

	pearson := eng.Prepare(df, domstats.MethodPearson, domstats.NoDrop())
	assert.Less(t, pearson.At(0, 1), 1.0)
}

func TestRanks(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3}, ranks([]float64{10, 20, 30}))
	assert.Equal(t, []float64{3, 1, 2}, ranks([]float64{30, 10, 20}))
	// Ties share the average of their positions.
	assert.Equal(t, []float64{1.5, 1.5, 3}, ranks([]float64{5, 5, 9}))
	assert.Empty(t, ranks(nil))
}

func TestGuard(t *testing.T) {
	m, err := Guard(2, "PEARSON")
	assert.NoError(t, err)
	assert.Equal(t, domstats.MethodPearson, m)

	_, err = Guard(1, "pearson")
	assert.ErrorIs(t, err, core.ErrTooFewNumericCols)

	_, err = Guard(5, "invalid")
	assert.ErrorIs(t, err, core.ErrInvalidMethod)
}

func TestPrepareAllNull(t *testing.T) {
	nan := math.NaN()
	df := dataframe.New(
		series.New([]float64{nan, nan}, series.Float, "A"),
		series.New([]float64{nan, nan}, series.Float, "B"),
	)
	res := NewEngine(nil).Prepare(df, domstats.MethodPearson, domstats.NoDrop())
	assert.True(t, res.IsEmpty())
}

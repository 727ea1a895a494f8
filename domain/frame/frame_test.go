package frame

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"

	"dfsummary/domain/core"
)

func testFrame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]float64{1, 2, 3, math.NaN()}, series.Float, "A"),
		series.New([]int{4, 5, 6, 7}, series.Int, "B"),
		series.New([]string{"x", "y", "z", "w"}, series.String, "C"),
	)
}

func TestNumericColumns(t *testing.T) {
	df := testFrame()
	assert.Equal(t, []string{"A", "B"}, NumericColumns(df))

	sub := NumericSubset(df)
	assert.Equal(t, 2, sub.Ncol())
	assert.Equal(t, 4, sub.Nrow())
}

func TestNullAccounting(t *testing.T) {
	df := testFrame()
	assert.Equal(t, 1, NullCount(df, "A"))
	assert.Equal(t, 0, NullCount(df, "B"))
	assert.Equal(t, 1, TotalNulls(df))
}

func TestNonNull(t *testing.T) {
	df := testFrame()
	assert.Equal(t, []float64{1, 2, 3}, NonNull(df, "A"))
	assert.Len(t, NonNull(df, "B"), 4)
}

func TestUniqueCount(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{1, 1, 2, math.NaN()}, series.Float, "A"),
	)
	assert.Equal(t, 2, UniqueCount(df, "A"))
}

func TestDropNullRows(t *testing.T) {
	df := NumericSubset(testFrame())
	reduced, dropped := DropNullRows(df)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, 3, reduced.Nrow())

	// No nulls: the frame comes back untouched.
	clean, dropped := DropNullRows(reduced)
	assert.Equal(t, 0, dropped)
	assert.Equal(t, 3, clean.Nrow())
}

func TestDropNullColumns(t *testing.T) {
	df := NumericSubset(testFrame())
	reduced, dropped := DropNullColumns(df)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, []string{"B"}, reduced.Names())
}

func TestDropNullRowsSubset(t *testing.T) {
	df := NumericSubset(testFrame())

	t.Run("drops rows missing in named columns", func(t *testing.T) {
		reduced, dropped, err := DropNullRowsSubset(df, []string{"A"})
		assert.NoError(t, err)
		assert.Equal(t, 1, dropped)
		assert.Equal(t, 3, reduced.Nrow())
	})

	t.Run("nulls outside the subset are kept", func(t *testing.T) {
		_, dropped, err := DropNullRowsSubset(df, []string{"B"})
		assert.NoError(t, err)
		assert.Equal(t, 0, dropped)
	})

	t.Run("missing column aborts the drop", func(t *testing.T) {
		_, dropped, err := DropNullRowsSubset(df, []string{"missing"})
		assert.ErrorIs(t, err, core.ErrColumnNotFound)
		assert.Equal(t, 0, dropped)
	})
}

func TestHeadTail(t *testing.T) {
	df := testFrame()
	assert.Equal(t, 4, Head(df, 5).Nrow())
	assert.Equal(t, 2, Head(df, 2).Nrow())
	assert.Equal(t, 2, Tail(df, 2).Nrow())
}

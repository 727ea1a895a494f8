package render

import (
	"bytes"
	"log"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func numericFrame(cols int, rows int) dataframe.DataFrame {
	names := []string{"a", "b", "c", "d", "e", "f"}
	ss := make([]series.Series, cols)
	for i := 0; i < cols; i++ {
		vals := make([]float64, rows)
		for j := range vals {
			vals[j] = float64(i+1) * float64(j+1)
		}
		ss[i] = series.New(vals, series.Float, names[i])
	}
	return dataframe.New(ss...)
}

func TestHistogramGridDistribution(t *testing.T) {
	r := NewRenderer(Config{}, nil)
	fig, err := r.Histograms(numericFrame(4, 20))
	require.NoError(t, err)

	assert.Equal(t, domstats.GridLayout{Rows: 2, Cols: 3}, fig.Layout)

	// Four plots fill the first four cells; the trailing cells stay blank.
	for idx := 0; idx < fig.Layout.Cells(); idx++ {
		p := fig.Plot(idx/fig.Layout.Cols, idx%fig.Layout.Cols)
		if idx < 4 {
			assert.NotNil(t, p, "cell %d", idx)
		} else {
			assert.Nil(t, p, "cell %d", idx)
		}
	}
}

func TestHistogramsPNG(t *testing.T) {
	r := NewRenderer(Config{}, nil)
	fig, err := r.Histograms(numericFrame(2, 30))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fig.WritePNG(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "expected PNG magic")
}

func TestHistogramsWithNulls(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{1, 2, math.NaN(), 4}, series.Float, "a"),
		series.New([]float64{math.NaN(), math.NaN(), math.NaN(), math.NaN()}, series.Float, "b"),
	)
	r := NewRenderer(Config{}, nil)
	fig, err := r.Histograms(df)
	require.NoError(t, err)

	assert.Contains(t, fig.Plot(0, 0).Title.Text, "(1 NaN values dropped)")
	// An all-null column still gets its subplot, just with nothing drawn.
	assert.Contains(t, fig.Plot(0, 1).Title.Text, "(4 NaN values dropped)")
}

func TestSwarmSampleCap(t *testing.T) {
	r := NewRenderer(Config{SwarmCap: 2000}, nil)
	vals := make([]float64, 2001)
	for i := range vals {
		vals[i] = float64(i)
	}

	buf := captureLog(t)
	sample := r.swarmSample(r.sampleRand(), "load", vals)

	assert.Len(t, sample, 2000)
	assert.Contains(t, buf.String(), "2001")
	assert.Contains(t, buf.String(), `"load"`)
}

func TestSwarmSampleDeterministic(t *testing.T) {
	r := NewRenderer(Config{SwarmCap: 5, Seed: 7}, nil)
	vals := make([]float64, 50)
	for i := range vals {
		vals[i] = float64(i)
	}

	captureLog(t)
	first := r.swarmSample(r.sampleRand(), "a", vals)
	second := r.swarmSample(r.sampleRand(), "a", vals)
	assert.Equal(t, first, second)
}

func TestSwarmSampleUnderCap(t *testing.T) {
	r := NewRenderer(Config{SwarmCap: 2000}, nil)
	vals := []float64{1, 2, 3}

	buf := captureLog(t)
	sample := r.swarmSample(rand.New(rand.NewSource(1)), "small", vals)

	assert.Equal(t, vals, sample)
	assert.Empty(t, buf.String())
}

func TestBoxplotsSwarm(t *testing.T) {
	r := NewRenderer(Config{}, nil)
	fig, err := r.Boxplots(numericFrame(1, 25), true)
	require.NoError(t, err)
	assert.Equal(t, "Swarmplots of numeric data fields", fig.Title)

	fig, err = r.Boxplots(numericFrame(1, 25), false)
	require.NoError(t, err)
	assert.Equal(t, "Boxplots of numeric data fields", fig.Title)
}

func TestBoxplotsConcurrent(t *testing.T) {
	r := NewRenderer(Config{SwarmCap: 10}, nil)
	df := numericFrame(3, 50)

	captureLog(t)
	errs := make(chan error, 4)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Boxplots(df, true)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestHeatmapMasksUpperTriangle(t *testing.T) {
	res := &domstats.CorrelationResult{
		Columns: []string{"a", "b", "c"},
		Matrix: [][]float64{
			{1, 0.5, 0.2},
			{0.5, 1, 0.7},
			{0.2, 0.7, 1},
		},
		Method: domstats.MethodPearson,
	}
	g := &corrGrid{res: res}

	cols, rows := g.Dims()
	assert.Equal(t, 3, cols)
	assert.Equal(t, 3, rows)

	masked, drawn := 0, 0
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			row := rows - 1 - r
			v := g.Z(c, r)
			if row <= c {
				assert.True(t, math.IsNaN(v), "cell (%d,%d) should be masked", row, c)
				masked++
			} else {
				assert.Equal(t, res.At(row, c), v)
				drawn++
			}
		}
	}
	// Strict lower triangle of a 3x3 matrix has 3 cells.
	assert.Equal(t, 3, drawn)
	assert.Equal(t, 6, masked)
}

func TestHeatmapFigure(t *testing.T) {
	res := &domstats.CorrelationResult{
		Columns:         []string{"a", "b"},
		Matrix:          [][]float64{{1, 0.4}, {0.4, 1}},
		Method:          domstats.MethodSpearman,
		DropCount:       2,
		DropDescription: "rows",
	}
	r := NewRenderer(Config{}, nil)
	fig, err := r.Heatmap(res)
	require.NoError(t, err)

	p := fig.Plot(0, 0)
	assert.Contains(t, p.Title.Text, "Spearman")
	assert.Contains(t, p.Title.Text, "2 rows dropped")
}

func TestRendererDefaults(t *testing.T) {
	r := NewRenderer(Config{}, nil)
	cfg := r.Config()
	assert.Equal(t, 3, cfg.ColumnsPerRow)
	assert.Equal(t, 2000, cfg.SwarmCap)
}

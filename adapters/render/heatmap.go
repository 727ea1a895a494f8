package render

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	domstats "dfsummary/domain/stats"
)

// Heatmap renders a correlation matrix as an annotated heatmap with a
// fixed -1..1 color scale. Only the strict lower triangle is drawn; the
// diagonal and upper triangle are masked out. The title reports the
// estimator and what was dropped before the computation.
func (r *Renderer) Heatmap(res *domstats.CorrelationResult) (*Figure, error) {
	grid := &corrGrid{res: res}

	p := r.newSubplot(fmt.Sprintf(
		"Heatmap of %s correlation between numeric fields with %d %s dropped",
		res.Method.Title(), res.DropCount, res.DropDescription,
	))

	h := plotter.NewHeatMap(grid, moreland.SmoothBlueRed().Palette(255))
	h.Min = -1
	h.Max = 1
	p.Add(h)

	labels, err := annotations(grid, res)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = r.fontSize()
	}
	p.Add(labels)

	n := len(res.Columns)
	xTicks := make([]plot.Tick, n)
	yTicks := make([]plot.Tick, n)
	for i, name := range res.Columns {
		xTicks[i] = plot.Tick{Value: float64(i), Label: name}
		// The matrix is drawn with row 0 at the top.
		yTicks[n-1-i] = plot.Tick{Value: float64(n - 1 - i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	p.X.Tick.Label.Rotation = math.Pi / 2

	return singleFigure("Correlation heatmap", p, 10*vg.Inch), nil
}

// corrGrid adapts a CorrelationResult to plotter.GridXYZ, masking the
// diagonal and upper triangle with NaN so those cells are not drawn.
type corrGrid struct {
	res *domstats.CorrelationResult
}

func (g *corrGrid) Dims() (int, int) {
	n := len(g.res.Columns)
	return n, n
}

func (g *corrGrid) X(c int) float64 { return float64(c) }
func (g *corrGrid) Y(r int) float64 { return float64(r) }

func (g *corrGrid) Z(c, r int) float64 {
	n := len(g.res.Columns)
	row := n - 1 - r // row 0 of the matrix at the top of the plot
	if row <= c {
		return math.NaN()
	}
	return g.res.At(row, c)
}

func annotations(g *corrGrid, res *domstats.CorrelationResult) (*plotter.Labels, error) {
	cols, rows := g.Dims()
	var xyl plotter.XYLabels
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			v := g.Z(c, r)
			if math.IsNaN(v) {
				continue
			}
			xyl.XYs = append(xyl.XYs, plotter.XY{X: g.X(c), Y: g.Y(r)})
			xyl.Labels = append(xyl.Labels, fmt.Sprintf("%.2f", v))
		}
	}
	return plotter.NewLabels(xyl)
}

package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"dfsummary/domain/frame"
	domstats "dfsummary/domain/stats"
)

var (
	colorBlack   = color.Black
	colorDimGray = color.Gray{Y: 0x69}
)

// Histograms renders one frequency histogram per numeric column into a
// subplot grid. Nulls are dropped per column and the dropped count is
// reported in each subplot title. Vertical markers show the mean, median
// and 25th/75th percentiles.
func (r *Renderer) Histograms(numeric dataframe.DataFrame) (*Figure, error) {
	names := numeric.Names()
	layout := domstats.ComputeGridLayout(len(names), r.cfg.ColumnsPerRow)

	return r.gridFigure("Histograms of numeric data fields", layout, len(names), func(idx int) (*plot.Plot, error) {
		name := names[idx]
		vals := frame.NonNull(numeric, name)
		dropped := frame.NullCount(numeric, name)

		p := r.newSubplot(fmt.Sprintf("%s: (%d NaN values dropped)", name, dropped))
		p.X.Label.Text = "Value"
		p.Y.Label.Text = "Value count"
		if len(vals) == 0 {
			return p, nil
		}

		h, err := plotter.NewHist(plotter.Values(vals), r.cfg.Bins)
		if err != nil {
			return nil, err
		}
		h.FillColor = plotutil.Color(idx)
		p.Add(h)

		// Marker lines span the tallest bin.
		top := 0.0
		for _, bin := range h.Bins {
			if bin.Weight > top {
				top = bin.Weight
			}
		}

		markers := []struct {
			label  string
			value  float64
			color  color.Color
			dashed bool
		}{
			{"Mean", orNaN(stats.Mean(vals)), colorBlack, false},
			{"Median", orNaN(stats.Median(vals)), colorBlack, true},
			{"25th percentile", orNaN(stats.Percentile(vals, 25)), colorDimGray, true},
			{"75th percentile", orNaN(stats.Percentile(vals, 75)), colorDimGray, false},
		}
		for _, m := range markers {
			if math.IsNaN(m.value) {
				continue
			}
			line, err := vline(m.value, top, m.color, m.dashed)
			if err != nil {
				return nil, err
			}
			p.Add(line)
			p.Legend.Add(m.label, line)
		}
		p.Legend.Top = true
		p.Legend.TextStyle.Font.Size = r.fontSize()

		return p, nil
	})
}

// newSubplot creates a plot with the renderer's shared subplot styling.
func (r *Renderer) newSubplot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = r.titleSize()
	p.X.Label.TextStyle.Font.Size = r.fontSize()
	p.Y.Label.TextStyle.Font.Size = r.fontSize()
	p.X.Tick.Label.Font.Size = r.fontSize()
	p.Y.Tick.Label.Font.Size = r.fontSize()

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{Y: 0xd3}
	grid.Horizontal.Color = color.Gray{Y: 0xd3}
	p.Add(grid)
	return p
}

func vline(x, top float64, c color.Color, dashed bool) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: top}})
	if err != nil {
		return nil, err
	}
	line.LineStyle = draw.LineStyle{
		Color: c,
		Width: vg.Points(0.9),
	}
	if dashed {
		line.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
	}
	return line, nil
}

func orNaN(v float64, err error) float64 {
	if err != nil {
		return math.NaN()
	}
	return v
}

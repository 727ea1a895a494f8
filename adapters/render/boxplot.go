package render

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"dfsummary/domain/frame"
	domstats "dfsummary/domain/stats"
)

var colorDarkBlue = color.RGBA{R: 0, G: 0, B: 0x8b, A: 0xff}

// Boxplots renders one boxplot per numeric column into a subplot grid,
// nulls dropped per column. With swarm enabled, a scatter of individual
// points is overlaid; columns larger than the swarm cap are uniformly
// downsampled to the cap with a warning.
func (r *Renderer) Boxplots(numeric dataframe.DataFrame, swarm bool) (*Figure, error) {
	names := numeric.Names()
	layout := domstats.ComputeGridLayout(len(names), r.cfg.ColumnsPerRow)

	title := "Boxplots of numeric data fields"
	if swarm {
		title = "Swarmplots of numeric data fields"
	}
	rng := r.sampleRand()

	return r.gridFigure(title, layout, len(names), func(idx int) (*plot.Plot, error) {
		name := names[idx]
		vals := frame.NonNull(numeric, name)
		dropped := frame.NullCount(numeric, name)

		p := r.newSubplot(fmt.Sprintf("%s: (%d NaN values dropped)", name, dropped))
		p.Y.Label.Text = "Value"
		p.X.Tick.Marker = plot.ConstantTicks(nil)
		if len(vals) == 0 {
			return p, nil
		}

		box, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(vals))
		if err != nil {
			return nil, err
		}
		box.FillColor = plotutil.Color(idx)
		p.Add(box)

		if swarm {
			pts := r.swarmSample(rng, name, vals)
			scatter, err := plotter.NewScatter(jittered(rng, pts))
			if err != nil {
				return nil, err
			}
			scatter.GlyphStyle.Radius = vg.Points(0.9)
			scatter.GlyphStyle.Color = colorDarkBlue
			p.Add(scatter)
		}

		return p, nil
	})
}

// swarmSample caps the overlay at the configured point budget. Larger
// columns get a uniform random sample and a warning naming the column and
// its non-null count.
func (r *Renderer) swarmSample(rng *rand.Rand, column string, vals []float64) []float64 {
	if len(vals) <= r.cfg.SwarmCap {
		return vals
	}
	r.log.Warn("there are %d non-null data points in the %q field. %d random points (only) will be plotted in the swarm overlay.",
		len(vals), column, r.cfg.SwarmCap)

	sample := make([]float64, r.cfg.SwarmCap)
	for i, j := range rng.Perm(len(vals))[:r.cfg.SwarmCap] {
		sample[i] = vals[j]
	}
	return sample
}

// jittered spreads points horizontally around the box position.
func jittered(rng *rand.Rand, vals []float64) plotter.XYs {
	xys := make(plotter.XYs, len(vals))
	for i, v := range vals {
		xys[i] = plotter.XY{X: (rng.Float64() - 0.5) * 0.3, Y: v}
	}
	return xys
}

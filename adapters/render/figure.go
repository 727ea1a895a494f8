package render

import (
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	domstats "dfsummary/domain/stats"
)

// Figure is a renderable grid of subplots. Nil entries are blank filler
// cells. The caller owns it; writing it out holds no background resources.
type Figure struct {
	Title  string
	Layout domstats.GridLayout

	plots  [][]*plot.Plot
	width  vg.Length
	height vg.Length
}

// Plot returns the subplot at the given grid cell, nil for filler cells.
func (f *Figure) Plot(row, col int) *plot.Plot {
	return f.plots[row][col]
}

// WritePNG encodes the figure as PNG.
func (f *Figure) WritePNG(w io.Writer) error {
	img := vgimg.New(f.width, f.height)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: f.Layout.Rows,
		Cols: f.Layout.Cols,
		PadX: vg.Points(12),
		PadY: vg.Points(12),
	}
	canvases := plot.Align(f.plots, tiles, dc)
	for i := range f.plots {
		for j := range f.plots[i] {
			if f.plots[i][j] != nil {
				f.plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	_, err := png.WriteTo(w)
	return err
}

// SavePNG writes the figure to a file.
func (f *Figure) SavePNG(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return f.WritePNG(out)
}

// gridFigure distributes n subplots into the layout's cells, padding the
// trailing cells with blanks. The cell callback builds subplot idx; the
// cursor advances once per cell whether or not a plot was produced. Both
// the histogram and boxplot grids walk the grid through here.
func (r *Renderer) gridFigure(title string, layout domstats.GridLayout, n int, cell func(idx int) (*plot.Plot, error)) (*Figure, error) {
	plots := make([][]*plot.Plot, layout.Rows)
	idx := 0
	for i := 0; i < layout.Rows; i++ {
		plots[i] = make([]*plot.Plot, layout.Cols)
		for j := 0; j < layout.Cols; j++ {
			if idx < n {
				p, err := cell(idx)
				if err != nil {
					return nil, err
				}
				plots[i][j] = p
			}
			idx++
		}
	}
	return &Figure{
		Title:  title,
		Layout: layout,
		plots:  plots,
		width:  15 * vg.Inch,
		height: vg.Length(layout.Rows) * 4 * vg.Inch,
	}, nil
}

// singleFigure wraps one plot as a 1x1 figure.
func singleFigure(title string, p *plot.Plot, size vg.Length) *Figure {
	return &Figure{
		Title:  title,
		Layout: domstats.GridLayout{Rows: 1, Cols: 1},
		plots:  [][]*plot.Plot{{p}},
		width:  size,
		height: size,
	}
}

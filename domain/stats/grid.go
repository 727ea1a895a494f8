package stats

// DefaultColumnsPerRow is the subplot column count used when a layout is
// requested without an explicit width.
const DefaultColumnsPerRow = 3

// GridLayout is the row/column arrangement of per-column subplots.
// Rows*Cols >= item count; Rows is floored at 2 so single-row layouts
// still render with reasonable proportions.
type GridLayout struct {
	Rows int
	Cols int
}

// Cells returns the total number of subplot cells in the grid.
func (g GridLayout) Cells() int { return g.Rows * g.Cols }

// ComputeGridLayout sizes a subplot grid for n items at perRow columns per
// row. perRow values below 1 fall back to DefaultColumnsPerRow.
func ComputeGridLayout(n, perRow int) GridLayout {
	if perRow < 1 {
		perRow = DefaultColumnsPerRow
	}
	rows := (n + perRow - 1) / perRow
	if rows < 2 {
		rows = 2
	}
	return GridLayout{Rows: rows, Cols: perRow}
}

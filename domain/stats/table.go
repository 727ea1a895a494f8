package stats

import (
	"fmt"
	"math"
	"strings"
)

// statNames are the output columns of the transposed summary table, in
// presentation order.
var statNames = []string{
	"dtype", "null_count", "null_percent", "unique_vals",
	"mean", "min", "max", "std", "25%", "median", "75%",
	"skewness", "kurtosis",
}

func (r SummaryRow) cells() []string {
	return []string{
		r.DType,
		fmt.Sprintf("%d", r.NullCount),
		formatFloat(r.NullPercent),
		fmt.Sprintf("%d", r.UniqueVals),
		formatFloat(r.Mean),
		formatFloat(r.Min),
		formatFloat(r.Max),
		formatFloat(r.Std),
		formatFloat(r.Q25),
		formatFloat(r.Median),
		formatFloat(r.Q75),
		formatFloat(r.Skewness),
		formatFloat(r.Kurtosis),
	}
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.4f", v)
}

// String renders the table as aligned plain text, dataset columns as rows
// and statistic names as columns.
func (t *SummaryTable) String() string {
	widths := make([]int, len(statNames)+1)
	widths[0] = len("column")
	for i, name := range statNames {
		widths[i+1] = len(name)
	}
	cells := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells[i] = append([]string{row.Column}, row.cells()...)
		for j, c := range cells[i] {
			if len(c) > widths[j] {
				widths[j] = len(c)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cols []string) {
		for j, c := range cols {
			if j > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%-*s", widths[j], c)
		}
		b.WriteByte('\n')
	}
	writeRow(append([]string{"column"}, statNames...))
	for _, row := range cells {
		writeRow(row)
	}
	return b.String()
}

// Markdown renders the table as a markdown pipe table.
func (t *SummaryTable) Markdown() string {
	var b strings.Builder
	b.WriteString("| column | " + strings.Join(statNames, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(statNames)+1) + "\n")
	for _, row := range t.Rows {
		b.WriteString("| " + row.Column + " | " + strings.Join(row.cells(), " | ") + " |\n")
	}
	return b.String()
}

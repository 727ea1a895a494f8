// Package app wires the dataset, the statistics engine and the renderer
// into the report operations: summary table, histogram grid, correlation
// heatmap and boxplot/swarm grid.
package app

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-gota/gota/dataframe"

	"dfsummary/adapters/render"
	"dfsummary/adapters/stats/engine"
	"dfsummary/domain/core"
	"dfsummary/domain/frame"
	domstats "dfsummary/domain/stats"
	"dfsummary/internal"
)

// ReportService owns one dataset and produces its descriptive report.
// Each call is stateless apart from caching the most recent summary table
// and heatmap data; the caches are guarded, so concurrent callers (the
// report server in particular) are safe.
type ReportService struct {
	id       core.ReportID
	df       dataframe.DataFrame
	engine   *engine.Engine
	renderer *render.Renderer
	log      *internal.Logger

	// caches, overwritten on each corresponding call
	mu          sync.Mutex
	summary     *domstats.SummaryTable
	heatmapData *domstats.CorrelationResult
}

// NewReportService creates a report service over the dataset. The render
// config doubles as the formatting configuration for the whole report.
func NewReportService(df dataframe.DataFrame, cfg render.Config, logger *internal.Logger) *ReportService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ReportService{
		id:       core.NewReportID(),
		df:       df,
		engine:   engine.NewEngine(logger),
		renderer: render.NewRenderer(cfg, logger),
		log:      logger,
	}
}

// ID returns the report identifier.
func (s *ReportService) ID() core.ReportID { return s.id }

// Dataset returns the owned dataframe.
func (s *ReportService) Dataset() dataframe.DataFrame { return s.df }

// Overview describes the dataset's shape and overall null count.
type Overview struct {
	Rows       int
	Cols       int
	TotalNulls int
}

// Overview computes the dataset overview.
func (s *ReportService) Overview() Overview {
	return Overview{
		Rows:       s.df.Nrow(),
		Cols:       s.df.Ncol(),
		TotalNulls: frame.TotalNulls(s.df),
	}
}

// Summary computes the per-column descriptive statistics table. The result
// is cached until the next call.
func (s *ReportService) Summary() *domstats.SummaryTable {
	table := s.engine.BuildSummaryTable(s.df)
	s.mu.Lock()
	s.summary = table
	s.mu.Unlock()
	return table
}

// WriteSummary prints the dataset overview, head, tail and the transposed
// summary table.
func (s *ReportService) WriteSummary(w io.Writer) error {
	ov := s.Overview()
	fmt.Fprintf(w, "Dataframe shape: (%d, %d)\n", ov.Rows, ov.Cols)
	fmt.Fprintf(w, "Total number of null values in data: %d\n", ov.TotalNulls)
	fmt.Fprintf(w, "\nFirst 5 rows of data:\n%v\n", frame.Head(s.df, 5))
	fmt.Fprintf(w, "\nLast 5 rows of data:\n%v\n", frame.Tail(s.df, 5))
	fmt.Fprintf(w, "\n------------\nDATA SUMMARY\n------------\n")
	_, err := io.WriteString(w, s.Summary().String())
	return err
}

// Histograms renders the histogram grid over the numeric columns.
func (s *ReportService) Histograms() (*render.Figure, error) {
	return s.renderer.Histograms(frame.NumericSubset(s.df))
}

// Boxplots renders the boxplot grid, with an optional swarm overlay.
func (s *ReportService) Boxplots(swarm bool) (*render.Figure, error) {
	return s.renderer.Boxplots(frame.NumericSubset(s.df), swarm)
}

// Heatmap prepares and renders the correlation heatmap. Invalid input and
// empty results are reported, recoverable conditions: the figure is nil,
// the error satisfies core.IsRecoverable, and the caller can continue.
// The prepared correlation data is cached until the next call.
func (s *ReportService) Heatmap(method string, policy domstats.DropPolicy) (*render.Figure, error) {
	numeric := frame.NumericSubset(s.df)

	m, err := engine.Guard(numeric.Ncol(), method)
	if err != nil {
		s.log.Warn("invalid data or correlation method provided for heatmap to be generated: %v", err)
		return nil, err
	}

	data := s.engine.Prepare(numeric, m, policy)
	s.mu.Lock()
	s.heatmapData = data
	s.mu.Unlock()

	if data.IsEmpty() {
		s.log.Warn("there is no data left for calculating pair-wise correlations.")
		return nil, core.ErrEmptyCorrelation
	}

	return s.renderer.Heatmap(data)
}

// HeatmapData returns the correlation result from the most recent Heatmap
// call, nil before the first call.
func (s *ReportService) HeatmapData() *domstats.CorrelationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heatmapData
}

// Package ui serves the dataset report over HTTP: an HTML summary page
// and PNG endpoints for the three figure types.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/semaphore"

	"dfsummary/app"
	"dfsummary/internal"
)

// maxConcurrentRenders bounds simultaneous figure rendering; plots are
// CPU-bound and memory-hungry at full figure size.
const maxConcurrentRenders = 2

// Server serves one dataset's report.
type Server struct {
	router  *chi.Mux
	reports *app.ReportService
	log     *internal.Logger
	renders *semaphore.Weighted
}

// NewServer creates a report server around a report service.
func NewServer(reports *app.ReportService, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	s := &Server{
		router:  chi.NewRouter(),
		reports: reports,
		log:     logger,
		renders: semaphore.NewWeighted(maxConcurrentRenders),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/plots/histograms.png", s.handleHistograms)
	s.router.Get("/plots/heatmap.png", s.handleHeatmap)
	s.router.Get("/plots/boxplots.png", s.handleBoxplots)
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the server on the given port.
func (s *Server) Start(port string) error {
	s.log.Info("report server listening on :%s (report %s)", port, s.reports.ID())
	return http.ListenAndServe(":"+port, s.router)
}

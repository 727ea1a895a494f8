package ui

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"dfsummary/adapters/render"
	"dfsummary/domain/core"
	domstats "dfsummary/domain/stats"
	apperrors "dfsummary/internal/errors"
)

const pageShell = `<!DOCTYPE html>
<html>
<head>
<title>Dataset summary</title>
<style>
body { font-family: sans-serif; margin: 2rem; max-width: 75rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: right; }
th:first-child, td:first-child { text-align: left; }
img { max-width: 100%%; }
</style>
</head>
<body>
%s
</body>
</html>`

// handleIndex renders the overview and summary table as HTML, with the
// plot endpoints embedded as images.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ov := s.reports.Overview()
	table := s.reports.Summary()

	var md strings.Builder
	fmt.Fprintf(&md, "# Dataset summary\n\n")
	fmt.Fprintf(&md, "Report `%s`\n\n", s.reports.ID())
	fmt.Fprintf(&md, "- Shape: %d rows × %d columns\n", ov.Rows, ov.Cols)
	fmt.Fprintf(&md, "- Total null values: %d\n\n", ov.TotalNulls)
	md.WriteString(table.Markdown())
	md.WriteString("\n## Histograms\n\n![histograms](/plots/histograms.png)\n")
	md.WriteString("\n## Correlation heatmap\n\n![heatmap](/plots/heatmap.png)\n")
	md.WriteString("\n## Boxplots\n\n![boxplots](/plots/boxplots.png)\n")

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	body := markdown.ToHTML([]byte(md.String()), p, renderer)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, body)
}

func (s *Server) handleHistograms(w http.ResponseWriter, r *http.Request) {
	s.servePNG(w, r, func() (*render.Figure, error) {
		return s.reports.Histograms()
	})
}

func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Query().Get("method")
	if method == "" {
		method = string(domstats.MethodPearson)
	}
	policy := domstats.ParseDropPolicy(r.URL.Query().Get("drop"))

	s.servePNG(w, r, func() (*render.Figure, error) {
		return s.reports.Heatmap(method, policy)
	})
}

func (s *Server) handleBoxplots(w http.ResponseWriter, r *http.Request) {
	swarm := r.URL.Query().Get("swarm") == "1" || r.URL.Query().Get("swarm") == "true"
	s.servePNG(w, r, func() (*render.Figure, error) {
		return s.reports.Boxplots(swarm)
	})
}

// servePNG renders a figure under the concurrency bound and writes it out.
// Recoverable conditions (invalid method, too few columns, empty matrix)
// come back as 422 with the message, matching the library's
// warn-and-continue contract.
func (s *Server) servePNG(w http.ResponseWriter, r *http.Request, build func() (*render.Figure, error)) {
	if err := s.renders.Acquire(r.Context(), 1); err != nil {
		http.Error(w, "request cancelled", http.StatusRequestTimeout)
		return
	}
	defer s.renders.Release(1)

	fig, err := build()
	if err != nil {
		if core.IsRecoverable(err) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		s.serveRenderError(w, "figure rendering failed", err)
		return
	}

	var buf bytes.Buffer
	if err := fig.WritePNG(&buf); err != nil {
		s.serveRenderError(w, "PNG encoding failed", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (s *Server) serveRenderError(w http.ResponseWriter, message string, err error) {
	appErr := apperrors.RenderError(message, err)
	s.log.Error("%s: %v", apperrors.GetCode(appErr), appErr)
	http.Error(w, appErr.Message, http.StatusInternalServerError)
}

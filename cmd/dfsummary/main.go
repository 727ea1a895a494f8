// Command dfsummary prints the dataset overview and descriptive statistics
// and renders the histogram, heatmap and boxplot figures to PNG files.
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"dfsummary/adapters/render"
	"dfsummary/app"
	"dfsummary/domain/core"
	domstats "dfsummary/domain/stats"
	"dfsummary/internal"
	"dfsummary/internal/config"
)

func main() {
	// .env is optional; environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	logger := internal.NewDefaultLogger()

	df, err := app.LoadDataset(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}

	svc := app.NewReportService(df, render.Config{
		ColumnsPerRow: cfg.Plot.ColumnsPerRow,
		Bins:          cfg.Plot.Bins,
		SwarmCap:      cfg.Plot.SwarmCap,
		FontSize:      cfg.Plot.FontSize,
	}, logger)

	if err := svc.WriteSummary(os.Stdout); err != nil {
		log.Fatalf("failed to write summary: %v", err)
	}

	if err := os.MkdirAll(cfg.Data.OutputDir, 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	save := func(name string, fig *render.Figure, err error) {
		if err != nil {
			if core.IsRecoverable(err) {
				// Already logged as a warning; skip the figure and move on.
				return
			}
			log.Fatalf("failed to render %s: %v", name, err)
		}
		path := filepath.Join(cfg.Data.OutputDir, name)
		if err := fig.SavePNG(path); err != nil {
			log.Fatalf("failed to save %s: %v", name, err)
		}
		logger.Info("wrote %s", path)
	}

	fig, err := svc.Histograms()
	save("histograms.png", fig, err)

	fig, err = svc.Heatmap(cfg.Data.CorrMethod, domstats.ParseDropPolicy(cfg.Data.DropPolicy))
	save("heatmap.png", fig, err)

	fig, err = svc.Boxplots(cfg.Data.Swarm)
	save("boxplots.png", fig, err)

	logger.Info("report %s complete", svc.ID())
}

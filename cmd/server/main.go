// Command server exposes the dataset report over HTTP: an HTML summary
// page and PNG plot endpoints.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"dfsummary/adapters/render"
	"dfsummary/app"
	"dfsummary/internal"
	"dfsummary/internal/config"
	"dfsummary/ui"
)

func main() {
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

	server := ui.NewServer(svc, logger)
	if err := server.Start(cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// Package render draws summary figures with gonum/plot: histogram grids,
// correlation heatmaps and boxplot/swarm grids. It owns only layout and
// styling; statistics arrive precomputed.
package render

import (
	"math/rand"

	"gonum.org/v1/plot/vg"

	"dfsummary/internal"
)

// Config holds per-renderer formatting settings. Every field has a working
// default from DefaultConfig; instances never share mutable state.
type Config struct {
	ColumnsPerRow int
	Bins          int     // histogram bin count
	SwarmCap      int     // max points drawn in a swarm overlay
	FontSize      float64 // base font size in points
	Seed          int64   // seed for swarm downsampling
}

// DefaultConfig mirrors the tool's historical formatting defaults.
func DefaultConfig() Config {
	return Config{
		ColumnsPerRow: 3,
		Bins:          10,
		SwarmCap:      2000,
		FontSize:      9,
		Seed:          1,
	}
}

// Renderer draws figures for one dataset report. Renders share no mutable
// state, so concurrent calls are safe.
type Renderer struct {
	cfg Config
	log *internal.Logger
}

// NewRenderer creates a renderer. Zero-valued config fields are replaced
// with defaults; a nil logger falls back to the process default.
func NewRenderer(cfg Config, logger *internal.Logger) *Renderer {
	def := DefaultConfig()
	if cfg.ColumnsPerRow < 1 {
		cfg.ColumnsPerRow = def.ColumnsPerRow
	}
	if cfg.Bins < 1 {
		cfg.Bins = def.Bins
	}
	if cfg.SwarmCap < 1 {
		cfg.SwarmCap = def.SwarmCap
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = def.FontSize
	}
	if cfg.Seed == 0 {
		cfg.Seed = def.Seed
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Renderer{
		cfg: cfg,
		log: logger,
	}
}

// sampleRand returns a fresh deterministic source for one render, so
// sampling stays reproducible without sharing state across renders.
func (r *Renderer) sampleRand() *rand.Rand {
	return rand.New(rand.NewSource(r.cfg.Seed))
}

// Config returns the renderer's effective configuration.
func (r *Renderer) Config() Config { return r.cfg }

func (r *Renderer) fontSize() vg.Length {
	return vg.Points(r.cfg.FontSize)
}

func (r *Renderer) titleSize() vg.Length {
	return vg.Points(r.cfg.FontSize + 2)
}

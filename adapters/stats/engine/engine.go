// Package engine computes descriptive statistics and correlation matrices
// for dataframes. All estimators are delegated to montanaflynn/stats and
// gonum; the engine's own work is null accounting, drop-policy application
// and matrix assembly.
package engine

import (
	"dfsummary/internal"
)

// Engine computes summary statistics and correlation preparations.
type Engine struct {
	log *internal.Logger
}

// NewEngine creates a statistics engine. A nil logger falls back to the
// process default.
func NewEngine(logger *internal.Logger) *Engine {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Engine{log: logger}
}

package config

import (
	"os"
	"strconv"

	"dfsummary/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Plot     PlotConfig
	Server   ServerConfig
	Database DatabaseConfig
}

// DataConfig holds dataset input and report output settings
type DataConfig struct {
	InputPath  string // CSV or XLSX file
	Sheet      string // XLSX sheet name, defaults to Sheet1
	OutputDir  string
	CorrMethod string // pearson (default), spearman or kendall
	DropPolicy string // "", any_rows, any_cols or subset:col_a,col_b
	Swarm      bool
}

// PlotConfig holds figure formatting settings. These were class-level
// defaults in earlier renditions of this tool; they are explicit
// per-instance configuration here so instances cannot interfere.
type PlotConfig struct {
	ColumnsPerRow int
	Bins          int
	SwarmCap      int
	FontSize      float64
}

// ServerConfig holds report server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds the optional SQL ingestion settings
type DatabaseConfig struct {
	URL   string
	Query string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Data: DataConfig{
			InputPath:  os.Getenv("DFSUMMARY_INPUT"),
			Sheet:      getEnv("DFSUMMARY_SHEET", "Sheet1"),
			OutputDir:  getEnv("DFSUMMARY_OUT", "reports"),
			CorrMethod: getEnv("DFSUMMARY_CORR_METHOD", "pearson"),
			DropPolicy: os.Getenv("DFSUMMARY_DROP"),
			Swarm:      os.Getenv("DFSUMMARY_SWARM") == "true",
		},
		Plot: PlotConfig{
			ColumnsPerRow: getEnvInt("PLOT_COLUMNS", 3),
			Bins:          getEnvInt("PLOT_BINS", 10),
			SwarmCap:      getEnvInt("PLOT_SWARM_CAP", 2000),
			FontSize:      getEnvFloat("PLOT_FONT_SIZE", 9),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL:   os.Getenv("DATABASE_URL"),
			Query: os.Getenv("DATABASE_QUERY"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Data.InputPath == "" && (c.Database.URL == "" || c.Database.Query == "") {
		return errors.ConfigInvalid("either DFSUMMARY_INPUT or DATABASE_URL plus DATABASE_QUERY is required")
	}
	if c.Plot.ColumnsPerRow < 1 {
		return errors.ConfigInvalid("PLOT_COLUMNS must be at least 1")
	}
	if c.Plot.SwarmCap < 1 {
		return errors.ConfigInvalid("PLOT_SWARM_CAP must be at least 1")
	}
	return nil
}

// UsesDatabase reports whether the dataset comes from SQL rather than a file.
func (c *Config) UsesDatabase() bool {
	return c.Data.InputPath == "" && c.Database.URL != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

package app

import (
	"context"

	"github.com/go-gota/gota/dataframe"
	"github.com/jmoiron/sqlx"

	"dfsummary/adapters/excel"
	"dfsummary/adapters/postgres"
	"dfsummary/domain/core"
	"dfsummary/internal"
	"dfsummary/internal/config"
	"dfsummary/internal/errors"
)

// LoadDataset resolves the configured dataset source: a CSV/XLSX file, or
// a SQL query when no input path is set. The postgres driver must be
// registered by the caller.
func LoadDataset(ctx context.Context, cfg *config.Config, logger *internal.Logger) (dataframe.DataFrame, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}

	var df dataframe.DataFrame
	if cfg.UsesDatabase() {
		db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.URL)
		if err != nil {
			return dataframe.DataFrame{}, errors.DatabaseError("failed to connect to database", err)
		}
		defer db.Close()

		logger.Info("loading dataset from SQL query")
		df, err = postgres.NewDatasetReader(db).Query(ctx, cfg.Database.Query)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
	} else {
		reader, err := excel.NewDataReader(cfg.Data.InputPath)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		logger.Info("loading dataset from %s", cfg.Data.InputPath)
		df, err = reader.WithSheet(cfg.Data.Sheet).Read()
		if err != nil {
			return dataframe.DataFrame{}, err
		}
	}

	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, core.ErrEmptyDataset
	}
	logger.Info("dataset loaded (%d rows, %d columns)", df.Nrow(), df.Ncol())
	return df, nil
}

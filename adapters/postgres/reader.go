// Package postgres loads SQL query results into dataframes.
package postgres

import (
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/jmoiron/sqlx"

	"dfsummary/adapters/excel"
	"dfsummary/internal/errors"
)

// DatasetReader runs queries and returns the result sets as dataframes.
type DatasetReader struct {
	db *sqlx.DB
}

// NewDatasetReader creates a reader over an open connection pool.
func NewDatasetReader(db *sqlx.DB) *DatasetReader {
	return &DatasetReader{db: db}
}

// Query executes the query and loads the result set as a dataframe with
// detected column types. SQL NULLs become missing values.
func (r *DatasetReader) Query(ctx context.Context, query string) (dataframe.DataFrame, error) {
	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return dataframe.DataFrame{}, errors.DatabaseError("query failed", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return dataframe.DataFrame{}, errors.DatabaseError("failed to read result columns", err)
	}

	records := [][]string{cols}
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return dataframe.DataFrame{}, errors.DatabaseError("failed to scan row", err)
		}
		record := make([]string, len(vals))
		for i, v := range vals {
			record[i] = formatValue(v)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return dataframe.DataFrame{}, errors.DatabaseError("result iteration failed", err)
	}

	return excel.RecordsFrame(records)
}

// formatValue renders a scanned SQL value for dataframe loading. NULLs
// become empty cells, which load as missing values.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}

// Package excel loads XLSX and CSV files into dataframes.
package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"

	"dfsummary/domain/core"
	"dfsummary/internal/errors"
)

// DataReader handles reading Excel and CSV files into a dataframe.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
}

// NewDataReader creates a reader for the file; the type is inferred from
// the extension.
func NewDataReader(filePath string) (*DataReader, error) {
	var fileType string
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		fileType = "csv"
	case ".xlsx", ".xlsm":
		fileType = "xlsx"
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedFileType, filePath)
	}
	return &DataReader{filePath: filePath, fileType: fileType, sheet: "Sheet1"}, nil
}

// WithSheet selects the XLSX sheet to read. Ignored for CSV files.
func (r *DataReader) WithSheet(sheet string) *DataReader {
	if sheet != "" {
		r.sheet = sheet
	}
	return r
}

// Read loads the file as a dataframe with detected column types. The
// first row is the header.
func (r *DataReader) Read() (dataframe.DataFrame, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return dataframe.DataFrame{}, errors.IOError(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath), err)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	default:
		return r.readExcel()
	}
}

func (r *DataReader) readCSV() (dataframe.DataFrame, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return dataframe.DataFrame{}, errors.IOError("failed to open CSV file", err)
	}
	defer file.Close()

	df := dataframe.ReadCSV(file, dataframe.DetectTypes(true), dataframe.HasHeader(true))
	if df.Error() != nil {
		return dataframe.DataFrame{}, errors.IOError("failed to parse CSV file", df.Error())
	}
	return df, nil
}

func (r *DataReader) readExcel() (dataframe.DataFrame, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return dataframe.DataFrame{}, errors.IOError("failed to open Excel file", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return dataframe.DataFrame{}, errors.IOError(fmt.Sprintf("failed to read sheet %s", r.sheet), err)
	}
	if len(rows) < 2 {
		return dataframe.DataFrame{}, errors.InvalidInput("Excel sheet must have at least a header row and one data row")
	}

	return RecordsFrame(rows)
}

// RecordsFrame converts header-plus-data string records into a dataframe
// with detected column types. Ragged rows are padded with empty cells,
// which load as missing values.
func RecordsFrame(records [][]string) (dataframe.DataFrame, error) {
	if len(records) == 0 {
		return dataframe.DataFrame{}, errors.InvalidInput("no records to load")
	}
	width := len(records[0])
	normalized := make([][]string, len(records))
	for i, row := range records {
		out := make([]string, width)
		for j := 0; j < width && j < len(row); j++ {
			out[j] = strings.TrimSpace(row[j])
		}
		normalized[i] = out
	}

	df := dataframe.LoadRecords(normalized, dataframe.DetectTypes(true), dataframe.HasHeader(true))
	if df.Error() != nil {
		return dataframe.DataFrame{}, errors.InvalidInput(fmt.Sprintf("failed to build dataframe: %v", df.Error()))
	}
	return df, nil
}

// Package loader turns CSV and XLSX files into dataset views. The
// statistical core never touches files; everything file-shaped stops here.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"statlab/domain/core"
	"statlab/domain/dataset"
)

// Reader loads one tabular file into a View
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	logger   *zap.Logger
}

// NewReader creates a reader for the given path. The file type is picked by
// extension; anything that is not .csv is treated as a workbook. A nil
// logger disables logging.
func NewReader(filePath string, logger *zap.Logger) *Reader {
	fileType := "xlsx"
	if strings.EqualFold(filepath.Ext(filePath), ".csv") {
		fileType = "csv"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{filePath: filePath, fileType: fileType, logger: logger}
}

// Read loads the file and coerces it into a View. The first row is the
// header; every cell below it becomes a number, bool, or text value.
func (r *Reader) Read() (*dataset.View, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readWorkbookRows()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, core.NewInsufficientDataError("file rows", len(rows), 2)
	}

	v, err := buildView(rows)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("file loaded",
		zap.String("path", r.filePath),
		zap.String("type", r.fileType),
		zap.Int("columns", len(v.Columns())),
		zap.Int("rows", v.Len()))
	return v, nil
}

func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func (r *Reader) readWorkbookRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets: %s", r.filePath)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// buildView converts raw string rows into a View. Short rows are padded
// with empty text cells so ragged files load instead of failing.
func buildView(raw [][]string) (*dataset.View, error) {
	headerRow := raw[0]
	columns := make([]string, len(headerRow))
	for i, header := range headerRow {
		columns[i] = strings.TrimSpace(header)
	}

	rows := make([][]core.Value, 0, len(raw)-1)
	for _, line := range raw[1:] {
		row := make([]core.Value, len(columns))
		for j := range columns {
			cell := ""
			if j < len(line) {
				cell = strings.TrimSpace(line[j])
			}
			row[j] = coerceCell(cell)
		}
		rows = append(rows, row)
	}
	return dataset.NewView(columns, rows)
}

// coerceCell maps a raw cell to the narrowest value kind: number first,
// then bool, then text. Only literal true/false spellings become bools so
// that "1"/"0" columns stay numeric.
func coerceCell(cell string) core.Value {
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return core.Number(f)
	}
	switch strings.ToLower(cell) {
	case "true":
		return core.Bool(true)
	case "false":
		return core.Bool(false)
	}
	return core.Text(cell)
}

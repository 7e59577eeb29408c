package tabular

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cardiodash/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Reader reads CSV and Excel files into a RawTable
type Reader struct {
	config   Config
	fileType string // "xlsx" or "csv"
}

// NewReader picks the file type from the extension; anything other than .xlsx is read as delimited text
func NewReader(config Config) *Reader {
	if config.Sheet == "" {
		config.Sheet = DefaultConfig().Sheet
	}
	if config.Delimiter == 0 {
		config.Delimiter = DefaultConfig().Delimiter
	}
	fileType := "csv"
	if strings.EqualFold(filepath.Ext(config.FilePath), ".xlsx") {
		fileType = "xlsx"
	}
	return &Reader{config: config, fileType: fileType}
}

// FileType returns "csv" or "xlsx"
func (r *Reader) FileType() string {
	return r.fileType
}

// Read loads the whole file. Missing or unreadable files yield DATA_UNAVAILABLE,
// structurally broken content yields DATA_FORMAT.
func (r *Reader) Read(ctx context.Context) (*RawTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.config.FilePath)

	if _, err := os.Stat(r.config.FilePath); err != nil {
		return nil, errors.DataUnavailable(r.config.FilePath, err)
	}

	var rows [][]string
	var err error
	readStart := time.Now()
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}
	log.Printf("[DataReader] %s file read in %.2fms (%d rows)",
		strings.ToUpper(r.fileType), float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return r.processRows(ctx, rows)
}

func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, errors.DataUnavailable(r.config.FilePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = r.config.Delimiter
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if stderrors.As(err, &parseErr) {
			return nil, errors.DataFormat("malformed CSV at line %d: %v", parseErr.Line, parseErr.Err)
		}
		if stderrors.Is(err, io.ErrUnexpectedEOF) {
			return nil, errors.DataFormat("truncated CSV file %s", r.config.FilePath)
		}
		return nil, errors.DataUnavailable(r.config.FilePath, err)
	}
	return rows, nil
}

func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		if os.IsPermission(err) {
			return nil, errors.DataUnavailable(r.config.FilePath, err)
		}
		return nil, errors.WithCode(errors.CodeDataFormat, errors.Wrapf(err, "failed to open workbook %s", r.config.FilePath))
	}
	defer f.Close()

	rows, err := f.GetRows(r.config.Sheet)
	if err != nil {
		return nil, errors.DataFormat("failed to read sheet %q: %v", r.config.Sheet, err)
	}
	return rows, nil
}

// processRows trims cells and pads short rows. Excel omits trailing empty cells.
func (r *Reader) processRows(ctx context.Context, rows [][]string) (*RawTable, error) {
	if len(rows) == 0 {
		return nil, errors.DataFormat("%s has no header row", r.config.FilePath)
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		header = strings.TrimSpace(header)
		if i == 0 {
			header = strings.TrimPrefix(header, "\ufeff")
		}
		headers[i] = header
	}

	dataRows := make([][]string, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		if i%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		if len(row) > len(headers) {
			return nil, errors.DataFormat("row %d has %d cells but the header has %d", i+1, len(row), len(headers))
		}
		cells := make([]string, len(headers))
		for j, cell := range row {
			cells[j] = strings.TrimSpace(cell)
		}
		dataRows = append(dataRows, cells)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &RawTable{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

package dataset

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "salespulse/internal/errors"
)

// dateFormats lists the date layouts accepted in the date column, tried in
// order. Excel cell formatting decides which one an export actually uses.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
	"01-02-06",
	"1/2/06 15:04",
	"Jan 2, 2006",
}

// ParseWorkbook reads a sales export workbook and extracts a typed Dataset
// from its first sheet. The header row is matched against the required
// column contract before any row is parsed; every cell is then parsed into
// its declared type with no silent coercion.
func ParseWorkbook(r io.Reader) (Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, apperrors.NewSchemaError(RequiredColumns)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewSchemaError(RequiredColumns)
	}

	header := rows[0]
	if err := ValidateColumns(header); err != nil {
		return nil, err
	}

	columnMap := make(map[string]int, len(header))
	for i, h := range header {
		columnMap[normalizeHeader(h)] = i
	}

	ds := make(Dataset, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		// Spreadsheet row numbers are 1-based and include the header.
		rec, err := parseRow(row, columnMap, i+1)
		if err != nil {
			return nil, err
		}
		ds = append(ds, rec)
	}

	return ds, nil
}

// parseRow converts one spreadsheet row into a typed Record.
func parseRow(row []string, columnMap map[string]int, rowNum int) (Record, error) {
	cell := func(column string) string {
		idx := columnMap[column]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	date, err := parseDateCell(cell("date"), rowNum)
	if err != nil {
		return Record{}, err
	}

	saleCount, err := parseCountCell(cell("sale_count"), rowNum)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		Date:      date,
		Month:     cell("month"),
		Area:      cell("area"),
		Product:   cell("product"),
		SaleCount: saleCount,
	}

	for _, col := range []struct {
		name string
		dst  *float64
	}{
		{"sale_amount", &rec.SaleAmount},
		{"gst", &rec.GST},
		{"net_value", &rec.NetValue},
		{"profit", &rec.Profit},
	} {
		v, err := parseAmountCell(cell(col.name), col.name, rowNum)
		if err != nil {
			return Record{}, err
		}
		*col.dst = v
	}

	return rec, nil
}

// parseDateCell parses the date column, trying each accepted layout.
func parseDateCell(value string, rowNum int) (time.Time, error) {
	if value == "" {
		return time.Time{}, apperrors.NewParseError(rowNum, "date", value, fmt.Errorf("empty cell"))
	}

	for _, layout := range dateFormats {
		if d, err := time.Parse(layout, value); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, apperrors.NewParseError(rowNum, "date", value, fmt.Errorf("unrecognized date format"))
}

// parseAmountCell parses a currency column. Thousands separators are
// stripped; anything else non-numeric is a ParseError.
func parseAmountCell(value, column string, rowNum int) (float64, error) {
	if value == "" {
		return 0, apperrors.NewParseError(rowNum, column, value, fmt.Errorf("empty cell"))
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return 0, apperrors.NewParseError(rowNum, column, value, err)
	}
	return v, nil
}

// parseCountCell parses the sale_count column as a non-negative integer.
func parseCountCell(value string, rowNum int) (int64, error) {
	if value == "" {
		return 0, apperrors.NewParseError(rowNum, "sale_count", value, fmt.Errorf("empty cell"))
	}

	v, err := strconv.ParseInt(strings.ReplaceAll(value, ",", ""), 10, 64)
	if err != nil {
		return 0, apperrors.NewParseError(rowNum, "sale_count", value, err)
	}
	if v < 0 {
		return 0, apperrors.NewParseError(rowNum, "sale_count", value, fmt.Errorf("must be non-negative"))
	}
	return v, nil
}

// isEmptyRow reports whether every cell in the row is blank.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

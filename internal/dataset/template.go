package dataset

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// templateSheet is the sheet name of the generated sample workbook.
const templateSheet = "sales"

// BuildTemplate generates a sample upload workbook with the required header
// row and a few example rows, so users can see the expected layout before
// exporting their own data.
func BuildTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), templateSheet); err != nil {
		return nil, fmt.Errorf("name template sheet: %w", err)
	}

	rows := [][]interface{}{
		{"date", "month", "area", "product", "sale_count", "sale_amount", "gst", "net_value", "profit"},
		{"2024-01-01", "January", "North", "Widget A", 12, 2400.00, 432.00, 1968.00, 540.00},
		{"2024-01-02", "January", "South", "Widget B", 8, 1760.00, 316.80, 1443.20, 310.00},
		{"2024-01-03", "January", "North", "Widget A", 15, 3000.00, 540.00, 2460.00, 675.00},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("template cell name: %w", err)
		}
		if err := f.SetSheetRow(templateSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write template row %d: %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serialize template workbook: %w", err)
	}
	return buf.Bytes(), nil
}

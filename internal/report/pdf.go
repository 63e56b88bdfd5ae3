package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"salespulse/internal/analytics"
)

// DocumentBuilder assembles the paginated forecast report.
type DocumentBuilder struct {
	currencyPrefix string
}

// NewDocumentBuilder creates a builder using the given currency prefix for
// amount formatting.
func NewDocumentBuilder(currencyPrefix string) *DocumentBuilder {
	return &DocumentBuilder{currencyPrefix: currencyPrefix}
}

// Build composes the report document with its fixed section order: title,
// business summary table, area-wise sales table, 30-day forecast table, and
// the embedded trend chart.
func (b *DocumentBuilder) Build(summary analytics.Summary, areaSales analytics.GroupedSeries, forecast []analytics.ForecastPoint, chartPNG []byte) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Sales Analytics & Forecast Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Sales Analytics & Forecast Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	b.heading(pdf, "Business Summary")
	b.tableRow(pdf, "Total Sales", b.currency(summary.TotalSales), false)
	b.tableRow(pdf, "Total Profit", b.currency(summary.TotalProfit), false)
	b.tableRow(pdf, "Total Units Sold", strconv.FormatInt(summary.TotalUnits, 10), false)
	b.tableRow(pdf, "Total GST", b.currency(summary.TotalGST), false)
	pdf.Ln(6)

	b.heading(pdf, "Area Wise Sales")
	b.tableRow(pdf, "Area", "Sales", true)
	for _, area := range areaSales {
		b.tableRow(pdf, area.Key, b.currency(area.SaleAmount), false)
	}
	pdf.Ln(6)

	b.heading(pdf, "30-Day Sales Forecast")
	b.tableRow(pdf, "Date", "Forecast Sales", true)
	for _, point := range forecast {
		b.tableRow(pdf, point.Date.Format("2006-01-02"), b.currency(point.Amount), false)
	}
	pdf.Ln(6)

	b.heading(pdf, "Forecast Trend")
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("forecast_chart", opts, bytes.NewReader(chartPNG))
	pdf.ImageOptions("forecast_chart", 25, 0, 160, 80, true, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("assemble report document: %w", err)
	}
	return buf.Bytes(), nil
}

// heading writes a section heading.
func (b *DocumentBuilder) heading(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

// tableRow writes one two-column bordered row. Header rows get a light
// grey background.
func (b *DocumentBuilder) tableRow(pdf *fpdf.Fpdf, left, right string, header bool) {
	if header {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 230, 230)
	} else {
		pdf.SetFont("Helvetica", "", 10)
	}
	pdf.CellFormat(60, 7, left, "1", 0, "L", header, 0, "")
	pdf.CellFormat(60, 7, right, "1", 1, "R", header, 0, "")
}

// currency formats an amount with two decimals and the configured prefix.
func (b *DocumentBuilder) currency(v float64) string {
	return fmt.Sprintf("%s %.2f", b.currencyPrefix, v)
}

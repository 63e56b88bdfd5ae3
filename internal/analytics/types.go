package analytics

import (
	"time"
)

// Summary holds the scalar aggregates of a whole dataset.
type Summary struct {
	TotalSales  float64 `json:"total_sales"`
	TotalProfit float64 `json:"total_profit"`
	TotalUnits  int64   `json:"total_units"`
	TotalGST    float64 `json:"total_gst"`
}

// GroupKey selects the grouping dimension for GroupSum.
type GroupKey string

const (
	GroupByArea    GroupKey = "area"
	GroupByMonth   GroupKey = "month"
	GroupByProduct GroupKey = "product"
)

// GroupTotal is the summed sale amount for one category value.
type GroupTotal struct {
	Key        string  `json:"key"`
	SaleAmount float64 `json:"sale_amount"`
}

// GroupedSeries maps category values to summed sales, ordered by key
// ascending so reports are reproducible across runs.
type GroupedSeries []GroupTotal

// DailyPoint is one entry of the daily sales series: all sales on one
// distinct date, with that date's zero-based rank in chronological order.
type DailyPoint struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
	Index  int       `json:"day_index"`
}

// DailySeries is the chronologically ordered per-date sales series. Index
// values are contiguous from zero regardless of calendar gaps.
type DailySeries []DailyPoint

// ForecastPoint pairs a future calendar date with its predicted sale amount.
type ForecastPoint struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// Model is a fitted linear trend: predicted = Slope*day_index + Intercept.
// It lives only for the duration of one forecast request.
type Model struct {
	Intercept float64
	Slope     float64
}

// Predict evaluates the fitted line at the given day index.
func (m Model) Predict(dayIndex float64) float64 {
	return m.Slope*dayIndex + m.Intercept
}

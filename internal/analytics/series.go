package analytics

import (
	"fmt"
	"sort"
	"time"

	"salespulse/internal/dataset"
	apperrors "salespulse/internal/errors"
)

// BuildDailySeries collapses the dataset to one point per distinct date at
// day granularity, summing same-day rows, sorted ascending by date, with
// day_index assigned as the zero-based position in that order.
//
// The series is non-empty whenever the dataset is non-empty, and day_index
// is strictly increasing and contiguous regardless of calendar gaps.
func BuildDailySeries(ds dataset.Dataset) (DailySeries, error) {
	daily := make(map[time.Time]float64, len(ds))
	for i, rec := range ds {
		if rec.Date.IsZero() {
			return nil, apperrors.NewParseError(i+1, "date", "", fmt.Errorf("missing date"))
		}
		daily[rec.Day()] += rec.SaleAmount
	}

	series := make(DailySeries, 0, len(daily))
	for day, amount := range daily {
		series = append(series, DailyPoint{Date: day, Amount: amount})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	for i := range series {
		series[i].Index = i
	}

	return series, nil
}

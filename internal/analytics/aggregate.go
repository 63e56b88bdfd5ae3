package analytics

import (
	"fmt"
	"sort"

	"salespulse/internal/dataset"
	apperrors "salespulse/internal/errors"
)

// Summarize computes the scalar aggregates of the dataset. It is additive:
// summarizing the concatenation of two disjoint datasets equals the
// field-wise sum of their individual summaries.
func Summarize(ds dataset.Dataset) Summary {
	var s Summary
	for _, rec := range ds {
		s.TotalSales += rec.SaleAmount
		s.TotalProfit += rec.Profit
		s.TotalUnits += rec.SaleCount
		s.TotalGST += rec.GST
	}
	return s
}

// GroupSum sums sale amounts per distinct value of the chosen category.
// Categories with zero rows are omitted; output is ordered by key ascending.
func GroupSum(ds dataset.Dataset, key GroupKey) (GroupedSeries, error) {
	extract, err := keyExtractor(key)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, rec := range ds {
		totals[extract(rec)] += rec.SaleAmount
	}

	series := make(GroupedSeries, 0, len(totals))
	for k, amount := range totals {
		series = append(series, GroupTotal{Key: k, SaleAmount: amount})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Key < series[j].Key
	})

	return series, nil
}

// keyExtractor maps a GroupKey to the record field it groups on.
func keyExtractor(key GroupKey) (func(dataset.Record) string, error) {
	switch key {
	case GroupByArea:
		return func(r dataset.Record) string { return r.Area }, nil
	case GroupByMonth:
		return func(r dataset.Record) string { return r.Month }, nil
	case GroupByProduct:
		return func(r dataset.Record) string { return r.Product }, nil
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown grouping key %q", key))
	}
}

package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salespulse/internal/dataset"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleDataset() dataset.Dataset {
	return dataset.Dataset{
		{Date: day(2024, 1, 1), Month: "January", Area: "North", Product: "Widget A", SaleCount: 12, SaleAmount: 2400, GST: 432, NetValue: 1968, Profit: 540},
		{Date: day(2024, 1, 1), Month: "January", Area: "South", Product: "Widget B", SaleCount: 8, SaleAmount: 1760, GST: 316.8, NetValue: 1443.2, Profit: 310},
		{Date: day(2024, 1, 3), Month: "January", Area: "North", Product: "Widget B", SaleCount: 5, SaleAmount: 1100, GST: 198, NetValue: 902, Profit: 200},
		{Date: day(2024, 2, 1), Month: "February", Area: "East", Product: "Widget A", SaleCount: 20, SaleAmount: 4000, GST: 720, NetValue: 3280, Profit: 900},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleDataset())

	assert.Equal(t, 9260.0, s.TotalSales)
	assert.Equal(t, 1950.0, s.TotalProfit)
	assert.Equal(t, int64(45), s.TotalUnits)
	assert.InDelta(t, 1666.8, s.TotalGST, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

// Summarizing the concatenation of two disjoint datasets must equal the
// field-wise sum of their individual summaries.
func TestSummarize_Additive(t *testing.T) {
	ds := sampleDataset()
	left, right := ds[:2], ds[2:]

	whole := Summarize(ds)
	a, b := Summarize(left), Summarize(right)

	assert.Equal(t, whole.TotalSales, a.TotalSales+b.TotalSales)
	assert.Equal(t, whole.TotalProfit, a.TotalProfit+b.TotalProfit)
	assert.Equal(t, whole.TotalUnits, a.TotalUnits+b.TotalUnits)
	assert.Equal(t, whole.TotalGST, a.TotalGST+b.TotalGST)
}

func TestGroupSum(t *testing.T) {
	tests := []struct {
		name string
		key  GroupKey
		want GroupedSeries
	}{
		{
			name: "by area",
			key:  GroupByArea,
			want: GroupedSeries{
				{Key: "East", SaleAmount: 4000},
				{Key: "North", SaleAmount: 3500},
				{Key: "South", SaleAmount: 1760},
			},
		},
		{
			name: "by month",
			key:  GroupByMonth,
			want: GroupedSeries{
				{Key: "February", SaleAmount: 4000},
				{Key: "January", SaleAmount: 5260},
			},
		},
		{
			name: "by product",
			key:  GroupByProduct,
			want: GroupedSeries{
				{Key: "Widget A", SaleAmount: 6400},
				{Key: "Widget B", SaleAmount: 2860},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GroupSum(sampleDataset(), tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every grouped view partitions the dataset, so its totals must add up to
// the summary's total sales.
func TestGroupSum_TotalsMatchSummary(t *testing.T) {
	ds := sampleDataset()
	total := Summarize(ds).TotalSales

	for _, key := range []GroupKey{GroupByArea, GroupByMonth, GroupByProduct} {
		series, err := GroupSum(ds, key)
		require.NoError(t, err)

		var sum float64
		for _, g := range series {
			sum += g.SaleAmount
		}
		assert.InDelta(t, total, sum, 1e-9, "grouping key %s", key)
	}
}

func TestGroupSum_UnknownKey(t *testing.T) {
	_, err := GroupSum(sampleDataset(), GroupKey("region"))
	assert.Error(t, err)
}

func TestGroupSum_Empty(t *testing.T) {
	series, err := GroupSum(nil, GroupByArea)
	require.NoError(t, err)
	assert.Empty(t, series)
}

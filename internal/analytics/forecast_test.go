package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "salespulse/internal/errors"
)

// linearSeries builds n points on the line amount = slope*index + intercept
// with consecutive calendar dates.
func linearSeries(n int, slope, intercept float64) DailySeries {
	series := make(DailySeries, n)
	for i := 0; i < n; i++ {
		series[i] = DailyPoint{
			Date:   day(2024, 1, 1).AddDate(0, 0, i),
			Amount: slope*float64(i) + intercept,
			Index:  i,
		}
	}
	return series
}

func TestFit_RecoversExactLine(t *testing.T) {
	model, err := Fit(linearSeries(5, 100, 100))
	require.NoError(t, err)

	assert.InDelta(t, 100, model.Slope, 1e-9)
	assert.InDelta(t, 100, model.Intercept, 1e-9)
	assert.InDelta(t, 300, model.Predict(2), 1e-9)
}

func TestFit_ConstantSeriesHasZeroSlope(t *testing.T) {
	model, err := Fit(linearSeries(10, 0, 500))
	require.NoError(t, err)

	assert.InDelta(t, 0, model.Slope, 1e-9)
	assert.InDelta(t, 500, model.Intercept, 1e-9)
}

// A single observation cannot determine a slope; the model degenerates to
// a constant at the observed value.
func TestFit_SinglePoint(t *testing.T) {
	model, err := Fit(DailySeries{{Date: day(2024, 1, 1), Amount: 123.45, Index: 0}})
	require.NoError(t, err)

	assert.Equal(t, 0.0, model.Slope)
	assert.Equal(t, 123.45, model.Intercept)
	assert.Equal(t, 123.45, model.Predict(30))
}

func TestFit_EmptySeries(t *testing.T) {
	_, err := Fit(nil)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientData)
}

func TestForecast(t *testing.T) {
	series := linearSeries(5, 100, 100)

	points, err := Forecast(series, DefaultHorizon)
	require.NoError(t, err)
	require.Len(t, points, DefaultHorizon)

	// Extrapolation continues the line at day_index 5, 6, ...
	assert.InDelta(t, 600, points[0].Amount, 1e-9)
	assert.InDelta(t, 700, points[1].Amount, 1e-9)
	assert.InDelta(t, 100*34+100, points[29].Amount, 1e-6)

	// Dates are consecutive calendar days starting right after the last
	// observation.
	last := series[len(series)-1].Date
	for i, p := range points {
		assert.Equal(t, last.AddDate(0, 0, i+1), p.Date)
	}
}

// With a calendar gap in the history, the fitted line is still evaluated at
// the day-index scale while dates continue from the last observation.
func TestForecast_GappedHistory(t *testing.T) {
	series := DailySeries{
		{Date: day(2024, 1, 1), Amount: 100, Index: 0},
		{Date: day(2024, 1, 10), Amount: 200, Index: 1},
		{Date: day(2024, 3, 1), Amount: 300, Index: 2},
	}

	points, err := Forecast(series, 3)
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.InDelta(t, 400, points[0].Amount, 1e-9)
	assert.Equal(t, day(2024, 3, 2), points[0].Date)
	assert.Equal(t, day(2024, 3, 4), points[2].Date)
}

func TestForecast_Empty(t *testing.T) {
	_, err := Forecast(nil, DefaultHorizon)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientData)
}

func TestForecast_Deterministic(t *testing.T) {
	series := linearSeries(30, 3.5, 42)

	a, err := Forecast(series, DefaultHorizon)
	require.NoError(t, err)
	b, err := Forecast(series, DefaultHorizon)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

package analytics

import (
	"gonum.org/v1/gonum/stat"

	apperrors "salespulse/internal/errors"
)

// DefaultHorizon is the number of future calendar days a forecast covers.
const DefaultHorizon = 30

// Fit estimates a linear trend of sale amount on day_index by ordinary
// least squares. With a single observation the model degenerates to a
// constant (zero slope) instead of an undefined fit.
func Fit(series DailySeries) (Model, error) {
	if len(series) == 0 {
		return Model{}, apperrors.ErrInsufficientData
	}

	if len(series) == 1 {
		return Model{Intercept: series[0].Amount, Slope: 0}, nil
	}

	xs := make([]float64, len(series))
	ys := make([]float64, len(series))
	for i, p := range series {
		xs[i] = float64(p.Index)
		ys[i] = p.Amount
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return Model{Intercept: intercept, Slope: slope}, nil
}

// Forecast fits the series and extrapolates the given number of future
// days. The fitted line is evaluated at day_index = N..N+horizon-1 where N
// is the series length; each prediction is paired with the calendar date 1,
// 2, ... horizon days after the last observed date. day_index counts
// distinct sale days, so the two scales intentionally diverge when the
// history has calendar gaps.
//
// The result is exactly horizon points in ascending date order, and is
// bit-identical across runs for the same input.
func Forecast(series DailySeries, horizon int) ([]ForecastPoint, error) {
	model, err := Fit(series)
	if err != nil {
		return nil, err
	}

	lastDate := series[len(series)-1].Date
	points := make([]ForecastPoint, horizon)
	for i := 0; i < horizon; i++ {
		points[i] = ForecastPoint{
			Date:   lastDate.AddDate(0, 0, i+1),
			Amount: model.Predict(float64(len(series) + i)),
		}
	}

	return points, nil
}

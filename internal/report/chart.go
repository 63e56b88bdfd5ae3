package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"salespulse/internal/analytics"
)

var (
	historicalColor = drawing.Color{R: 31, G: 119, B: 180, A: 255}
	upColor         = drawing.Color{R: 44, G: 160, B: 44, A: 255}
	downColor       = drawing.Color{R: 214, G: 39, B: 40, A: 255}
)

// ChartRenderer draws the historical and forecast series into a PNG.
type ChartRenderer struct {
	width  int
	height int
}

// NewChartRenderer creates a renderer with the given pixel dimensions.
func NewChartRenderer(width, height int) *ChartRenderer {
	return &ChartRenderer{width: width, height: height}
}

// Render produces the trend chart: one continuous line for the historical
// daily series, then the forecast drawn as connected segments colored by
// local trend with matching markers.
//
// trendColors(forecast)[i] colors marker i; the segment from point i to
// point i+1 takes the color of its ending point, so a segment is "up"
// exactly when its ending value is at least its starting value.
func (c *ChartRenderer) Render(history analytics.DailySeries, forecast []analytics.ForecastPoint) ([]byte, error) {
	series := make([]chart.Series, 0, len(forecast)+3)

	if len(history) > 0 {
		xs := make([]time.Time, len(history))
		ys := make([]float64, len(history))
		for i, p := range history {
			xs[i] = p.Date
			ys[i] = p.Amount
		}
		series = append(series, chart.TimeSeries{
			Name: "Historical",
			Style: chart.Style{
				StrokeColor: historicalColor,
				StrokeWidth: 2,
			},
			XValues: xs,
			YValues: ys,
		})
	}

	colors := trendColors(forecast)

	for i := 0; i+1 < len(forecast); i++ {
		series = append(series, chart.TimeSeries{
			Style: chart.Style{
				StrokeColor: colors[i+1],
				StrokeWidth: 2,
			},
			XValues: []time.Time{forecast[i].Date, forecast[i+1].Date},
			YValues: []float64{forecast[i].Amount, forecast[i+1].Amount},
		})
	}

	for _, color := range []drawing.Color{upColor, downColor} {
		var xs []time.Time
		var ys []float64
		for i, p := range forecast {
			if colors[i] == color {
				xs = append(xs, p.Date)
				ys = append(ys, p.Amount)
			}
		}
		if len(xs) == 0 {
			continue
		}
		series = append(series, chart.TimeSeries{
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotColor:    color,
				DotWidth:    4,
			},
			XValues: xs,
			YValues: ys,
		})
	}

	graph := chart.Chart{
		Title:  "30-Day Sales Forecast",
		Width:  c.width,
		Height: c.height,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Sales Amount",
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render trend chart: %w", err)
	}
	return buf.Bytes(), nil
}

// trendColors assigns the up/down color per forecast point. The first point
// is always "up" by convention; every later point compares against its
// predecessor.
func trendColors(forecast []analytics.ForecastPoint) []drawing.Color {
	colors := make([]drawing.Color, len(forecast))
	for i := range forecast {
		if i == 0 || forecast[i].Amount >= forecast[i-1].Amount {
			colors[i] = upColor
		} else {
			colors[i] = downColor
		}
	}
	return colors
}

package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"salespulse/internal/analytics"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func chartDay(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestChartRenderer_Render(t *testing.T) {
	history := analytics.DailySeries{
		{Date: chartDay(1), Amount: 100, Index: 0},
		{Date: chartDay(2), Amount: 150, Index: 1},
		{Date: chartDay(3), Amount: 130, Index: 2},
	}
	forecast := []analytics.ForecastPoint{
		{Date: chartDay(4), Amount: 140},
		{Date: chartDay(5), Amount: 160},
		{Date: chartDay(6), Amount: 155},
	}

	png, err := NewChartRenderer(800, 400).Render(history, forecast)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:8])
}

func TestChartRenderer_ForecastOnly(t *testing.T) {
	forecast := []analytics.ForecastPoint{
		{Date: chartDay(1), Amount: 100},
		{Date: chartDay(2), Amount: 110},
	}

	png, err := NewChartRenderer(800, 400).Render(nil, forecast)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:8])
}

func TestTrendColors(t *testing.T) {
	tests := []struct {
		name    string
		amounts []float64
		want    []drawing.Color
	}{
		{
			name:    "first point is always up",
			amounts: []float64{100},
			want:    []drawing.Color{upColor},
		},
		{
			name:    "rising and falling",
			amounts: []float64{100, 120, 110, 110, 90},
			want:    []drawing.Color{upColor, upColor, downColor, upColor, downColor},
		},
		{
			name:    "flat series is all up",
			amounts: []float64{50, 50, 50},
			want:    []drawing.Color{upColor, upColor, upColor},
		},
		{
			name:    "strictly falling after first",
			amounts: []float64{100, 90, 80},
			want:    []drawing.Color{upColor, downColor, downColor},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forecast := make([]analytics.ForecastPoint, len(tt.amounts))
			for i, a := range tt.amounts {
				forecast[i] = analytics.ForecastPoint{Date: chartDay(i + 1), Amount: a}
			}
			assert.Equal(t, tt.want, trendColors(forecast))
		})
	}
}

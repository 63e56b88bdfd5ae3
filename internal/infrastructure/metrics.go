package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the pipeline's Prometheus instruments.
type Metrics struct {
	UploadsTotal     prometheus.Counter
	UploadFailures   prometheus.Counter
	ForecastsTotal   prometheus.Counter
	ForecastFailures prometheus.Counter
	ForecastDuration prometheus.Histogram
}

// NewMetrics registers the pipeline metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		UploadsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "salespulse",
			Name:      "uploads_total",
			Help:      "Number of sales exports ingested.",
		}),
		UploadFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "salespulse",
			Name:      "upload_failures_total",
			Help:      "Number of uploads rejected by validation or parsing.",
		}),
		ForecastsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "salespulse",
			Name:      "forecasts_total",
			Help:      "Number of completed forecast runs.",
		}),
		ForecastFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "salespulse",
			Name:      "forecast_failures_total",
			Help:      "Number of failed forecast runs.",
		}),
		ForecastDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "salespulse",
			Name:      "forecast_duration_seconds",
			Help:      "Wall time of a full forecast run including artifact writes.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

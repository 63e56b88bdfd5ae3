package http

import (
	"context"
	"io"

	"salespulse/internal/dataset"
	"salespulse/internal/services"
)

// ReportServiceInterface defines the pipeline operations the handlers need.
type ReportServiceInterface interface {
	IngestUpload(ctx context.Context, r io.Reader) (*services.DashboardData, error)
	RunForecast(ctx context.Context, ds dataset.Dataset) (*services.ForecastResult, error)
	ReportDocument(ctx context.Context, runID string) ([]byte, error)
	ChartImage(ctx context.Context, runID string) ([]byte, error)
	Template(ctx context.Context) ([]byte, error)
}

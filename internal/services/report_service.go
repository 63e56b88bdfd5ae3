package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"salespulse/internal/analytics"
	"salespulse/internal/dataset"
	"salespulse/internal/infrastructure"
	"salespulse/internal/report"
)

// DashboardData is the payload returned after an upload: the scalar
// summary, the three grouped views, and the validated dataset itself. The
// dataset is round-tripped back on the forecast request, so it must survive
// serialization with dates intact.
type DashboardData struct {
	Summary      analytics.Summary       `json:"summary"`
	AreaSales    analytics.GroupedSeries `json:"area_sales"`
	MonthSales   analytics.GroupedSeries `json:"month_sales"`
	ProductSales analytics.GroupedSeries `json:"product_sales"`
	Dataset      dataset.Dataset         `json:"data"`
}

// ForecastResult is the outcome of one forecast run.
type ForecastResult struct {
	RunID       string                    `json:"run_id"`
	Summary     analytics.Summary         `json:"summary"`
	Forecast    []analytics.ForecastPoint `json:"forecast"`
	ReportReady bool                      `json:"report_ready"`

	// ChartPNG is handed to the transport layer for inline display; it is
	// not part of the JSON shape.
	ChartPNG []byte `json:"-"`
}

// ReportService runs the aggregation-and-forecast pipeline.
type ReportService struct {
	logger   *slog.Logger
	metrics  *infrastructure.Metrics
	chart    *report.ChartRenderer
	document *report.DocumentBuilder
	store    *report.ArtifactStore
	horizon  int

	// runMu serializes forecast runs end to end.
	runMu sync.Mutex
}

// NewReportService creates the pipeline service.
func NewReportService(
	chart *report.ChartRenderer,
	document *report.DocumentBuilder,
	store *report.ArtifactStore,
	horizon int,
	metrics *infrastructure.Metrics,
	logger *slog.Logger,
) *ReportService {
	if horizon <= 0 {
		horizon = analytics.DefaultHorizon
	}
	return &ReportService{
		logger:   logger.With(slog.String("component", "report_service")),
		metrics:  metrics,
		chart:    chart,
		document: document,
		store:    store,
		horizon:  horizon,
	}
}

// IngestUpload parses and validates an uploaded sales export and computes
// the dashboard aggregates. The reader must already be capped by the
// transport layer's size limit.
func (s *ReportService) IngestUpload(ctx context.Context, r io.Reader) (*DashboardData, error) {
	ds, err := dataset.ParseWorkbook(r)
	if err != nil {
		s.metrics.UploadFailures.Inc()
		return nil, fmt.Errorf("ingest upload: %w", err)
	}

	data, err := s.buildDashboard(ds)
	if err != nil {
		s.metrics.UploadFailures.Inc()
		return nil, err
	}

	s.metrics.UploadsTotal.Inc()
	s.logger.InfoContext(ctx, "upload ingested",
		slog.Int("rows", len(ds)),
		slog.Float64("total_sales", data.Summary.TotalSales),
	)

	return data, nil
}

// buildDashboard computes the aggregate views of a validated dataset.
func (s *ReportService) buildDashboard(ds dataset.Dataset) (*DashboardData, error) {
	data := &DashboardData{
		Summary: analytics.Summarize(ds),
		Dataset: ds,
	}

	groups := []struct {
		key analytics.GroupKey
		dst *analytics.GroupedSeries
	}{
		{analytics.GroupByArea, &data.AreaSales},
		{analytics.GroupByMonth, &data.MonthSales},
		{analytics.GroupByProduct, &data.ProductSales},
	}
	for _, g := range groups {
		series, err := analytics.GroupSum(ds, g.key)
		if err != nil {
			return nil, fmt.Errorf("group by %s: %w", g.key, err)
		}
		*g.dst = series
	}

	return data, nil
}

// RunForecast executes one full forecast run: daily series construction,
// the least-squares fit and extrapolation, chart rendering, and report
// assembly. The summary is recomputed here from the same dataset and is
// identical to the post-upload one because both derive purely from it.
func (s *ReportService) RunForecast(ctx context.Context, ds dataset.Dataset) (*ForecastResult, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	start := time.Now()

	result, err := s.runForecast(ctx, ds)
	if err != nil {
		s.metrics.ForecastFailures.Inc()
		return nil, err
	}

	s.metrics.ForecastsTotal.Inc()
	s.metrics.ForecastDuration.Observe(time.Since(start).Seconds())

	s.logger.InfoContext(ctx, "forecast run completed",
		slog.String("run_id", result.RunID),
		slog.Int("forecast_points", len(result.Forecast)),
		slog.String("duration", time.Since(start).String()),
	)

	return result, nil
}

func (s *ReportService) runForecast(ctx context.Context, ds dataset.Dataset) (*ForecastResult, error) {
	series, err := analytics.BuildDailySeries(ds)
	if err != nil {
		return nil, fmt.Errorf("build daily series: %w", err)
	}

	points, err := analytics.Forecast(series, s.horizon)
	if err != nil {
		return nil, fmt.Errorf("fit forecast: %w", err)
	}

	chartPNG, err := s.chart.Render(series, points)
	if err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	summary := analytics.Summarize(ds)
	areaSales, err := analytics.GroupSum(ds, analytics.GroupByArea)
	if err != nil {
		return nil, fmt.Errorf("group by area: %w", err)
	}

	document, err := s.document.Build(summary, areaSales, points, chartPNG)
	if err != nil {
		return nil, fmt.Errorf("build report document: %w", err)
	}

	runID := uuid.NewString()
	if err := s.store.SaveRun(ctx, runID, chartPNG, document); err != nil {
		return nil, fmt.Errorf("save artifacts: %w", err)
	}

	return &ForecastResult{
		RunID:       runID,
		Summary:     summary,
		Forecast:    points,
		ReportReady: true,
		ChartPNG:    chartPNG,
	}, nil
}

// ReportDocument fetches a generated report document by run ID.
// report.LatestRunID resolves to the most recent complete run.
func (s *ReportService) ReportDocument(ctx context.Context, runID string) ([]byte, error) {
	return s.store.Document(ctx, runID)
}

// ChartImage fetches a generated chart image by run ID.
func (s *ReportService) ChartImage(ctx context.Context, runID string) ([]byte, error) {
	return s.store.Chart(ctx, runID)
}

// Template returns the bundled sample upload workbook.
func (s *ReportService) Template(ctx context.Context) ([]byte, error) {
	data, err := dataset.BuildTemplate()
	if err != nil {
		return nil, fmt.Errorf("build template workbook: %w", err)
	}
	return data, nil
}

package report

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	apperrors "salespulse/internal/errors"
)

// Artifact file names within a run directory.
const (
	ChartFileName    = "forecast_chart.png"
	DocumentFileName = "sales_analysis_report.pdf"
)

// LatestRunID is the pseudo run ID that resolves to the newest complete run.
const LatestRunID = "latest"

// ArtifactStore owns the generated artifacts on disk. Every forecast run
// writes into its own directory named by run ID; the latest complete run is
// tracked so retrieval without an ID always sees a fully written pair, never
// a partially written one.
type ArtifactStore struct {
	baseDir string
	logger  *slog.Logger

	mu     sync.RWMutex
	latest string
}

// NewArtifactStore creates a store rooted at baseDir.
func NewArtifactStore(baseDir string, logger *slog.Logger) *ArtifactStore {
	return &ArtifactStore{
		baseDir: baseDir,
		logger:  logger.With(slog.String("component", "artifact_store")),
	}
}

// SaveRun persists both artifacts of a forecast run and marks the run as
// the latest once both writes completed. Write failures are not retried.
func (s *ArtifactStore) SaveRun(ctx context.Context, runID string, chartPNG, document []byte) error {
	dir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.NewStorageError("failed to create run directory", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ChartFileName), chartPNG, 0o644); err != nil {
		return apperrors.NewStorageError("failed to write chart image", err)
	}
	if err := os.WriteFile(filepath.Join(dir, DocumentFileName), document, 0o644); err != nil {
		return apperrors.NewStorageError("failed to write report document", err)
	}

	s.mu.Lock()
	s.latest = runID
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "artifacts saved",
		slog.String("run_id", runID),
		slog.Int("chart_bytes", len(chartPNG)),
		slog.Int("document_bytes", len(document)),
	)

	return nil
}

// Document returns the report document for the given run ID. LatestRunID
// (or an empty ID) resolves to the most recent complete run.
func (s *ArtifactStore) Document(ctx context.Context, runID string) ([]byte, error) {
	return s.read(ctx, runID, DocumentFileName, "report document")
}

// Chart returns the chart image for the given run ID.
func (s *ArtifactStore) Chart(ctx context.Context, runID string) ([]byte, error) {
	return s.read(ctx, runID, ChartFileName, "chart image")
}

// LatestRun returns the run ID of the most recent complete run, or "" when
// no run has completed yet.
func (s *ArtifactStore) LatestRun() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *ArtifactStore) read(ctx context.Context, runID, fileName, resource string) ([]byte, error) {
	id, err := s.resolve(runID, resource)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.baseDir, id, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError(resource)
		}
		return nil, apperrors.NewStorageError("failed to read "+resource, err)
	}
	return data, nil
}

// resolve maps a caller-supplied run ID to a run directory name. Run IDs
// are UUIDs minted by the pipeline; anything else cannot name a run
// directory, which also keeps path traversal out.
func (s *ArtifactStore) resolve(runID, resource string) (string, error) {
	if runID == "" || runID == LatestRunID {
		s.mu.RLock()
		latest := s.latest
		s.mu.RUnlock()
		if latest == "" {
			return "", apperrors.NewNotFoundError(resource)
		}
		return latest, nil
	}

	if _, err := uuid.Parse(runID); err != nil {
		return "", apperrors.NewNotFoundError(resource)
	}
	return runID, nil
}

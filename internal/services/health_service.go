package services

import (
	"context"
	"os"
	"time"
)

// HealthService reports process health for the health endpoints.
type HealthService struct {
	version    string
	reportsDir string
	started    time.Time
}

// NewHealthService creates a health service. reportsDir is probed on each
// readiness check since artifact writes depend on it.
func NewHealthService(version, reportsDir string) *HealthService {
	return &HealthService{
		version:    version,
		reportsDir: reportsDir,
		started:    time.Now(),
	}
}

// HealthCheck returns the liveness payload.
func (s *HealthService) HealthCheck(ctx context.Context) map[string]interface{} {
	return map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"uptime":  time.Since(s.started).String(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	}
}

// ReadinessCheck returns the readiness payload. The service is ready when
// the artifact directory exists and is writable.
func (s *HealthService) ReadinessCheck(ctx context.Context) map[string]interface{} {
	ready := true
	checks := map[string]string{}

	if info, err := os.Stat(s.reportsDir); err != nil || !info.IsDir() {
		ready = false
		checks["reports_dir"] = "missing"
	} else {
		checks["reports_dir"] = "ok"
	}

	status := "ready"
	if !ready {
		status = "not_ready"
	}
	return map[string]interface{}{
		"status": status,
		"checks": checks,
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxBytes)
	assert.Equal(t, 30, cfg.Forecast.HorizonDays)
	assert.Equal(t, "Rs", cfg.Report.CurrencyPrefix)
	assert.Equal(t, 1200, cfg.Report.ChartWidth)
	assert.Equal(t, "data/reports", cfg.Paths.ReportsDir)
	assert.True(t, cfg.Security.RateLimit.Enabled)
}

func TestLoadFrom_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9000
upload:
  max_bytes: 1048576
report:
  currency_prefix: EUR
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxBytes)
	assert.Equal(t, "EUR", cfg.Report.CurrencyPrefix)

	// Untouched keys keep their defaults.
	assert.Equal(t, 30, cfg.Forecast.HorizonDays)
}

func TestLoadFrom_ValidationRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "port out of range",
			content: "server:\n  port: 70000\n",
		},
		{
			name:    "non-positive upload cap",
			content: "upload:\n  max_bytes: 0\n",
		},
		{
			name:    "non-positive horizon",
			content: "forecast:\n  horizon_days: -5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadFrom(path)
			assert.Error(t, err)
		})
	}
}

func TestPathsConfig_EnsureDirectories(t *testing.T) {
	base := t.TempDir()
	paths := PathsConfig{
		DataDir:    filepath.Join(base, "data"),
		ReportsDir: filepath.Join(base, "data", "reports"),
		LogsDir:    filepath.Join(base, "logs"),
	}

	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.DataDir, paths.ReportsDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

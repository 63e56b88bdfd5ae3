package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Security SecurityConfig `yaml:"security" envconfig:"SECURITY"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Upload   UploadConfig   `yaml:"upload" envconfig:"UPLOAD"`
	Forecast ForecastConfig `yaml:"forecast" envconfig:"FORECAST"`
	Report   ReportConfig   `yaml:"report" envconfig:"REPORT"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	RateLimit RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"50"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"25"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/salespulse.log"`
}

// UploadConfig caps ingestion input size. Oversized uploads are rejected
// before parsing.
type UploadConfig struct {
	MaxBytes int64 `yaml:"max_bytes" envconfig:"MAX_BYTES" default:"10485760" validate:"gt=0"`
}

// ForecastConfig controls the extrapolation horizon.
type ForecastConfig struct {
	HorizonDays int `yaml:"horizon_days" envconfig:"HORIZON_DAYS" default:"30" validate:"gt=0"`
}

// ReportConfig controls rendered artifact appearance.
type ReportConfig struct {
	CurrencyPrefix string `yaml:"currency_prefix" envconfig:"CURRENCY_PREFIX" default:"Rs"`
	ChartWidth     int    `yaml:"chart_width" envconfig:"CHART_WIDTH" default:"1200" validate:"gt=0"`
	ChartHeight    int    `yaml:"chart_height" envconfig:"CHART_HEIGHT" default:"500" validate:"gt=0"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"data/reports"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// Load loads configuration from defaults, environment variables and an
// optional YAML config file. File values take precedence over environment.
func Load() (*Config, error) {
	return LoadFrom(getConfigFilePath())
}

// LoadFrom loads configuration using the given config file path.
func LoadFrom(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("SALESPULSE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" && FileExists(configFile) {
		if err := applyFile(configFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// applyFile overlays YAML file values onto the env-derived config. Keys
// absent from the file keep their env or default values.
func applyFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// validate checks configuration invariants
func (c *Config) validate() error {
	return validator.New().Struct(c)
}

// getConfigFilePath returns the default config file location
func getConfigFilePath() string {
	if path := os.Getenv("SALESPULSE_CONFIG"); path != "" {
		return path
	}
	return "config.yaml"
}

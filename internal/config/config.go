package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"crop-image-gate/pkg/quality"
)

// Config carries server settings, engine thresholds and optional blob
// storage credentials. Everything is overridable through the environment
// so deployments can tune thresholds without touching engine internals.
type Config struct {
	Host               string
	Port               string
	RequestTimeout     time.Duration
	FetchTimeout       time.Duration
	MaxRequestBodySize int64

	// Engine thresholds
	Quality quality.Config

	// Optional Azure Blob source
	AzureAccountName string
	AzureAccountKey  string
}

func (c *Config) ServerAddress() string {
	host := strings.TrimSpace(c.Host)
	port := strings.TrimSpace(c.Port)
	return net.JoinHostPort(host, port)
}

// AzureConfigured reports whether blob storage credentials are present.
func (c *Config) AzureConfigured() bool {
	return c.AzureAccountName != "" && c.AzureAccountKey != ""
}

func LoadFromEnv() (*Config, error) {
	qc := quality.DefaultConfig()
	qc.MinDimension = parseIntOrDefault("MIN_RESOLUTION", qc.MinDimension)
	qc.MaxDimension = parseIntOrDefault("MAX_RESOLUTION", qc.MaxDimension)
	qc.BlurThreshold = parseFloatOrDefault("BLUR_THRESHOLD", qc.BlurThreshold)
	qc.MinBrightness = parseFloatOrDefault("MIN_BRIGHTNESS", qc.MinBrightness)
	qc.MaxBrightness = parseFloatOrDefault("MAX_BRIGHTNESS", qc.MaxBrightness)
	qc.MinContrast = parseFloatOrDefault("MIN_CONTRAST", qc.MinContrast)
	qc.MaxInputBytes = parseInt64OrDefault("MAX_IMAGE_SIZE", qc.MaxInputBytes)

	cfg := &Config{
		Host:               getEnvOrDefault("HOST", "0.0.0.0"),
		Port:               getEnvOrDefault("PORT", "8080"),
		RequestTimeout:     parseDurationOrDefault("REQUEST_TIMEOUT", 30*time.Second),
		FetchTimeout:       parseDurationOrDefault("IMAGE_FETCH_TIMEOUT", 15*time.Second),
		MaxRequestBodySize: parseInt64OrDefault("MAX_REQUEST_BODY_SIZE", 10*1024*1024),
		Quality:            qc,
		AzureAccountName:   os.Getenv("AZURE_STORAGE_ACCOUNT"),
		AzureAccountKey:    os.Getenv("AZURE_STORAGE_KEY"),
	}

	p, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}
	if cfg.MaxRequestBodySize <= 0 {
		return nil, fmt.Errorf("MAX_REQUEST_BODY_SIZE must be > 0 (got %d)", cfg.MaxRequestBodySize)
	}
	if cfg.Quality.MaxInputBytes <= 0 {
		return nil, fmt.Errorf("MAX_IMAGE_SIZE must be > 0 (got %d)", cfg.Quality.MaxInputBytes)
	}
	if cfg.Quality.MinDimension <= 0 {
		return nil, fmt.Errorf("MIN_RESOLUTION must be > 0 (got %d)", cfg.Quality.MinDimension)
	}
	if cfg.Quality.MinBrightness >= cfg.Quality.MaxBrightness {
		return nil, fmt.Errorf("MIN_BRIGHTNESS (%g) must be below MAX_BRIGHTNESS (%g)",
			cfg.Quality.MinBrightness, cfg.Quality.MaxBrightness)
	}
	if cfg.RequestTimeout <= 0 || cfg.FetchTimeout <= 0 {
		return nil, fmt.Errorf("timeouts must be > 0 (got request=%s, fetch=%s)",
			cfg.RequestTimeout, cfg.FetchTimeout)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n
		}
	}
	return defaultValue
}

func parseInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func parseFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return f
		}
	}
	return defaultValue
}

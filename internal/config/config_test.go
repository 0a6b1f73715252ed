package config

import (
	"testing"
	"time"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}

	if cfg.ServerAddress() != "0.0.0.0:8080" {
		t.Errorf("Expected default address 0.0.0.0:8080, got %s", cfg.ServerAddress())
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("Expected 30s request timeout, got %s", cfg.RequestTimeout)
	}
	if cfg.Quality.MinDimension != 300 {
		t.Errorf("Expected min dimension 300, got %d", cfg.Quality.MinDimension)
	}
	if cfg.Quality.BlurThreshold != 100.0 {
		t.Errorf("Expected blur threshold 100, got %f", cfg.Quality.BlurThreshold)
	}
	if cfg.Quality.MaxInputBytes != 5*1024*1024 {
		t.Errorf("Expected 5MB input cap, got %d", cfg.Quality.MaxInputBytes)
	}
	if cfg.AzureConfigured() {
		t.Error("Expected Azure to be unconfigured by default")
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MIN_RESOLUTION", "512")
	t.Setenv("BLUR_THRESHOLD", "250.5")
	t.Setenv("MAX_IMAGE_SIZE", "1048576")
	t.Setenv("MIN_BRIGHTNESS", "40")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.Quality.MinDimension != 512 {
		t.Errorf("Expected min dimension 512, got %d", cfg.Quality.MinDimension)
	}
	if cfg.Quality.BlurThreshold != 250.5 {
		t.Errorf("Expected blur threshold 250.5, got %f", cfg.Quality.BlurThreshold)
	}
	if cfg.Quality.MaxInputBytes != 1048576 {
		t.Errorf("Expected 1MB input cap, got %d", cfg.Quality.MaxInputBytes)
	}
	if cfg.Quality.MinBrightness != 40 {
		t.Errorf("Expected min brightness 40, got %f", cfg.Quality.MinBrightness)
	}
}

func TestLoadFromEnv_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	if _, err := LoadFromEnv(); err == nil {
		t.Error("Expected error for invalid PORT")
	}
}

func TestLoadFromEnv_BrightnessBandInverted(t *testing.T) {
	t.Setenv("MIN_BRIGHTNESS", "230")
	t.Setenv("MAX_BRIGHTNESS", "220")
	if _, err := LoadFromEnv(); err == nil {
		t.Error("Expected error when MIN_BRIGHTNESS >= MAX_BRIGHTNESS")
	}
}

func TestAzureConfigured(t *testing.T) {
	t.Setenv("AZURE_STORAGE_ACCOUNT", "acct")
	t.Setenv("AZURE_STORAGE_KEY", "key")
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}
	if !cfg.AzureConfigured() {
		t.Error("Expected Azure to be configured")
	}
}

package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("BREADLENS_SERVER_PORT")
		os.Unsetenv("BREADLENS_SERVER_ENVIRONMENT")
		os.Unsetenv("BREADLENS_MATCHING_THRESHOLD")
		os.Unsetenv("BREADLENS_MATCHING_WEIGHT_BONUS")
		os.Unsetenv("BREADLENS_MATCHING_TOP_DEALS")
		os.Unsetenv("BREADLENS_MATCHING_ENABLE_DEBUG_LOGGING")
		os.Unsetenv("BREADLENS_RATELIMIT_PER_IP")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Matching.Threshold != 75 {
			t.Errorf("Matching.Threshold = %v, want 75", cfg.Matching.Threshold)
		}
		if cfg.Matching.WeightBonus != 20 {
			t.Errorf("Matching.WeightBonus = %v, want 20", cfg.Matching.WeightBonus)
		}
		if cfg.Matching.TopDeals != 10 {
			t.Errorf("Matching.TopDeals = %d, want 10", cfg.Matching.TopDeals)
		}
		if cfg.Matching.EnableDebugLogging {
			t.Error("Matching.EnableDebugLogging = true, want false")
		}
		if cfg.RateLimit.PerIP != 120 {
			t.Errorf("RateLimit.PerIP = %d, want 120", cfg.RateLimit.PerIP)
		}
		if len(cfg.Brands.Known) == 0 {
			t.Error("Brands.Known is empty, want default brand list")
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BREADLENS_SERVER_PORT", "9090")
		os.Setenv("BREADLENS_SERVER_ENVIRONMENT", "production")
		os.Setenv("BREADLENS_MATCHING_THRESHOLD", "85")
		os.Setenv("BREADLENS_MATCHING_WEIGHT_BONUS", "15")
		os.Setenv("BREADLENS_MATCHING_TOP_DEALS", "5")
		os.Setenv("BREADLENS_MATCHING_ENABLE_DEBUG_LOGGING", "true")
		os.Setenv("BREADLENS_RATELIMIT_PER_IP", "60")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Matching.Threshold != 85 {
			t.Errorf("Matching.Threshold = %v, want 85", cfg.Matching.Threshold)
		}
		if cfg.Matching.WeightBonus != 15 {
			t.Errorf("Matching.WeightBonus = %v, want 15", cfg.Matching.WeightBonus)
		}
		if cfg.Matching.TopDeals != 5 {
			t.Errorf("Matching.TopDeals = %d, want 5", cfg.Matching.TopDeals)
		}
		if !cfg.Matching.EnableDebugLogging {
			t.Error("Matching.EnableDebugLogging = false, want true")
		}
		if cfg.RateLimit.PerIP != 60 {
			t.Errorf("RateLimit.PerIP = %d, want 60", cfg.RateLimit.PerIP)
		}
	})

	t.Run("rejects threshold above 100", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BREADLENS_MATCHING_THRESHOLD", "150")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})

	t.Run("rejects non-positive threshold", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BREADLENS_MATCHING_THRESHOLD", "0")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})

	t.Run("rejects negative weight bonus", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BREADLENS_MATCHING_WEIGHT_BONUS", "-5")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})

	t.Run("rejects zero top deals", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BREADLENS_MATCHING_TOP_DEALS", "0")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})

	t.Run("rejects zero per-IP rate limit", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("BREADLENS_RATELIMIT_PER_IP", "0")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "8080", Environment: "development"},
			Matching: MatchingConfig{
				Threshold:   75,
				WeightBonus: 20,
				TopDeals:    10,
			},
			RateLimit: RateLimitConfig{PerIP: 120},
		}
	}

	t.Run("accepts a valid config", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("accepts boundary threshold of 100", func(t *testing.T) {
		cfg := valid()
		cfg.Matching.Threshold = 100
		if err := validate(cfg); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("accepts zero weight bonus", func(t *testing.T) {
		cfg := valid()
		cfg.Matching.WeightBonus = 0
		if err := validate(cfg); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})
}

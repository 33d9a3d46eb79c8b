package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Matching  MatchingConfig
	Brands    BrandsConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MatchingConfig holds matching and ranking configuration
type MatchingConfig struct {
	Threshold          float64 `mapstructure:"threshold"`
	WeightBonus        float64 `mapstructure:"weight_bonus"`
	TopDeals           int     `mapstructure:"top_deals"`
	EnableDebugLogging bool    `mapstructure:"enable_debug_logging"`
}

// BrandsConfig holds the known-brand lookup table used for brand extraction
type BrandsConfig struct {
	Known []string `mapstructure:"known"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute per client IP
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/breadlens/")

	// Environment variable settings
	v.SetEnvPrefix("BREADLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Matching defaults
	v.SetDefault("matching.threshold", 75.0)
	v.SetDefault("matching.weight_bonus", 20.0)
	v.SetDefault("matching.top_deals", 10)
	v.SetDefault("matching.enable_debug_logging", false)

	// Known bread brands checked by substring during brand extraction
	v.SetDefault("brands.known", []string{
		"Britannia", "Modern", "Harvest Gold", "Bread World",
		"English Oven", "Milk Bread", "Kitty", "Bonn",
		"Fresho", "BBPopular", "Monginis", "Wibs",
	})

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 120)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Matching.Threshold <= 0 || config.Matching.Threshold > 100 {
		return fmt.Errorf("matching threshold must be in (0, 100], got: %v", config.Matching.Threshold)
	}

	if config.Matching.WeightBonus < 0 {
		return fmt.Errorf("weight bonus must be non-negative, got: %v", config.Matching.WeightBonus)
	}

	if config.Matching.TopDeals < 1 {
		return fmt.Errorf("top deals count must be at least 1, got: %d", config.Matching.TopDeals)
	}

	if config.RateLimit.PerIP < 1 {
		return fmt.Errorf("per-IP rate limit must be at least 1, got: %d", config.RateLimit.PerIP)
	}

	return nil
}

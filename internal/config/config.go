// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Search provider settings
	NewsAPIKey     string
	NewsAPIBaseURL string
	PageSize       int
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration

	// Quota settings
	DailyRequestBudget int     // free tier: 100 requests/day (0 = unlimited)
	RequestsPerSecond  float64 // pacing for the provider

	// Cache settings
	CacheTTL time.Duration // how long a query's results are reused

	// Supplementary RSS source
	EnableRSS       bool
	FeedsConfigPath string

	// App settings
	DefaultLimit int // articles per feed when the caller gives none
	HTTPPort     string
	Debug        bool
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		NewsAPIBaseURL:     "https://newsapi.org/v2",
		PageSize:           100,
		RequestTimeout:     30 * time.Second,
		RetryAttempts:      3,
		RetryDelay:         2 * time.Second,
		DailyRequestBudget: 100,
		RequestsPerSecond:  1,
		CacheTTL:           5 * time.Minute,
		FeedsConfigPath:    "configs/feeds.yaml",
		DefaultLimit:       10,
		HTTPPort:           "8080",
	}

	// Load from environment
	cfg.NewsAPIKey = os.Getenv("NEWS_API_KEY")

	if base := os.Getenv("NEWS_API_BASE_URL"); base != "" {
		cfg.NewsAPIBaseURL = base
	}
	cfg.PageSize = getEnvIntOrDefault("NEWS_PAGE_SIZE", cfg.PageSize)
	cfg.RetryAttempts = getEnvIntOrDefault("RETRY_ATTEMPTS", cfg.RetryAttempts)
	cfg.DailyRequestBudget = getEnvIntOrDefault("DAILY_REQUEST_BUDGET", cfg.DailyRequestBudget)
	cfg.DefaultLimit = getEnvIntOrDefault("DEFAULT_NEWS_LIMIT", cfg.DefaultLimit)
	cfg.HTTPPort = getEnvOrDefault("HTTP_PORT", cfg.HTTPPort)
	cfg.FeedsConfigPath = getEnvOrDefault("FEEDS_CONFIG_PATH", cfg.FeedsConfigPath)

	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RequestTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("RETRY_DELAY_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RetryDelay = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("CACHE_TTL_MINUTES"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.CacheTTL = time.Duration(val) * time.Minute
		}
	}
	if v := os.Getenv("REQUESTS_PER_SECOND"); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil && val > 0 {
			cfg.RequestsPerSecond = val
		}
	}

	if os.Getenv("ENABLE_RSS") == "true" {
		cfg.EnableRSS = true
	}
	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.NewsAPIKey == "" {
		return fmt.Errorf("NEWS_API_KEY is required")
	}
	if c.PageSize <= 0 || c.PageSize > 100 {
		return fmt.Errorf("NEWS_PAGE_SIZE must be between 1 and 100")
	}
	if c.DefaultLimit <= 0 {
		return fmt.Errorf("DEFAULT_NEWS_LIMIT must be positive")
	}
	return nil
}

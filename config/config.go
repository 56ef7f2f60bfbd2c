package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	scrapeerrors "jwisniewski/listingscraper/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// HTTP configuration
	UserAgent    string
	FetchTimeout time.Duration

	// Batch configuration
	Throttle     time.Duration
	OutputSuffix string

	// Listing page selectors
	DescriptionSelector string
	PriceSelector       string
	MileageSelector     string
	DetailSelector      string
	MileageLabel        string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	fetchTimeout, _ := strconv.Atoi(getEnv("FETCH_TIMEOUT_SECONDS", "10"))
	throttle, _ := strconv.ParseFloat(getEnv("THROTTLE_SECONDS", "1"), 64)

	return &Config{
		UserAgent:           getEnv("SCRAPER_USER_AGENT", "Mozilla/5.0"),
		FetchTimeout:        time.Duration(fetchTimeout) * time.Second,
		Throttle:            time.Duration(throttle * float64(time.Second)),
		OutputSuffix:        getEnv("OUTPUT_SUFFIX", "_scraped"),
		DescriptionSelector: getEnv("DESCRIPTION_SELECTOR", "div.ooa-unlmzs.e11t9j224"),
		PriceSelector:       getEnv("PRICE_SELECTOR", "span.offer-price__number"),
		MileageSelector:     getEnv("MILEAGE_SELECTOR", "span[data-testid='vehicle-mileage']"),
		DetailSelector:      getEnv("DETAIL_SELECTOR", "div[data-testid='detail']"),
		MileageLabel:        getEnv("MILEAGE_LABEL", "Przebieg"),
		Environment:         getEnv("SCRAPER_ENVIRONMENT", "development"),
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.UserAgent == "" {
		return scrapeerrors.NewConfiguration("user agent must not be empty", nil)
	}
	if c.FetchTimeout <= 0 {
		return scrapeerrors.NewConfiguration(fmt.Sprintf("fetch timeout must be positive, got %v", c.FetchTimeout), nil)
	}
	if c.Throttle < 0 {
		return scrapeerrors.NewConfiguration(fmt.Sprintf("throttle must not be negative, got %v", c.Throttle), nil)
	}
	if c.MileageLabel == "" {
		return scrapeerrors.NewConfiguration("mileage label must not be empty", nil)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

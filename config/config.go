// Package config loads the calculator's display settings from the
// environment, an optional .env file and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"expensecalc/services"
)

type Config struct {
	// Currency
	CurrencySymbol string
	CurrencyCode   string
	Grouping       string

	// Report date
	DateLayout string
	Timezone   string
}

// Load reads the configuration from environment variables. A .env file in
// the working directory is loaded first when present; variables already set
// in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	return &Config{
		CurrencySymbol: getEnv("CALC_CURRENCY_SYMBOL", "₹"),
		CurrencyCode:   getEnv("CALC_CURRENCY_CODE", "INR"),
		Grouping:       getEnv("CALC_GROUPING", string(services.GroupingIndian)),
		DateLayout:     getEnv("CALC_DATE_LAYOUT", "02/01/2006"),
		Timezone:       getEnv("CALC_TIMEZONE", "Local"),
	}, nil
}

// BindFlags registers flags that override the loaded values. The flag
// defaults are the current values, so unset flags change nothing.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.CurrencySymbol, "currency-symbol", c.CurrencySymbol, "currency symbol shown next to amounts")
	fs.StringVar(&c.CurrencyCode, "currency-code", c.CurrencyCode, "currency code used when a PDF cannot draw the symbol")
	fs.StringVar(&c.Grouping, "grouping", c.Grouping, "digit grouping: indian, western or none")
	fs.StringVar(&c.DateLayout, "date-layout", c.DateLayout, "Go time layout for the report date")
	fs.StringVar(&c.Timezone, "timezone", c.Timezone, "IANA time zone for the report date")
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.CurrencySymbol) == "" {
		problems = append(problems, "currency symbol must not be empty")
	}
	if strings.TrimSpace(c.CurrencyCode) == "" {
		problems = append(problems, "currency code must not be empty")
	}
	if _, err := services.ParseGrouping(c.Grouping); err != nil {
		problems = append(problems, err.Error())
	}
	if strings.TrimSpace(c.DateLayout) == "" {
		problems = append(problems, "date layout must not be empty")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("invalid timezone %q: %v", c.Timezone, err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Currency returns the money format described by the configuration.
// Call Validate first; an unknown grouping falls back to indian.
func (c *Config) Currency() services.Currency {
	grouping, err := services.ParseGrouping(c.Grouping)
	if err != nil {
		grouping = services.GroupingIndian
	}
	return services.Currency{
		Symbol:   c.CurrencySymbol,
		Code:     strings.ToUpper(strings.TrimSpace(c.CurrencyCode)),
		Grouping: grouping,
	}
}

// Location returns the time zone for report dates, falling back to local time.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

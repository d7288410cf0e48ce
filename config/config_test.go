package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"expensecalc/services"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CALC_CURRENCY_SYMBOL",
		"CALC_CURRENCY_CODE",
		"CALC_GROUPING",
		"CALC_DATE_LAYOUT",
		"CALC_TIMEZONE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CurrencySymbol != "₹" {
		t.Errorf("CurrencySymbol = %q, want ₹", cfg.CurrencySymbol)
	}
	if cfg.CurrencyCode != "INR" {
		t.Errorf("CurrencyCode = %q, want INR", cfg.CurrencyCode)
	}
	if cfg.Grouping != "indian" {
		t.Errorf("Grouping = %q, want indian", cfg.Grouping)
	}
	if cfg.DateLayout != "02/01/2006" {
		t.Errorf("DateLayout = %q", cfg.DateLayout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if cfg.Currency() != services.DefaultCurrency {
		t.Errorf("Currency() = %+v, want %+v", cfg.Currency(), services.DefaultCurrency)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("CALC_CURRENCY_SYMBOL", "$")
	t.Setenv("CALC_CURRENCY_CODE", "usd")
	t.Setenv("CALC_GROUPING", "western")
	t.Setenv("CALC_TIMEZONE", "UTC")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := services.Currency{Symbol: "$", Code: "USD", Grouping: services.GroupingWestern}
	if got := cfg.Currency(); got != want {
		t.Errorf("Currency() = %+v, want %+v", got, want)
	}
	if cfg.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", cfg.Location())
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("CALC_GROUPING")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("CALC_GROUPING=none\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Grouping != "none" {
		t.Errorf("Grouping = %q, want none from .env", cfg.Grouping)
	}
}

func TestBindFlags_Override(t *testing.T) {
	cfg := &Config{
		CurrencySymbol: "₹",
		CurrencyCode:   "INR",
		Grouping:       "indian",
		DateLayout:     "02/01/2006",
		Timezone:       "Local",
	}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)

	if err := fs.Parse([]string{"--grouping=western", "--date-layout=2006-01-02"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Grouping != "western" {
		t.Errorf("Grouping = %q, want western", cfg.Grouping)
	}
	if cfg.DateLayout != "2006-01-02" {
		t.Errorf("DateLayout = %q", cfg.DateLayout)
	}
	if cfg.CurrencySymbol != "₹" {
		t.Errorf("unset flag changed CurrencySymbol to %q", cfg.CurrencySymbol)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			CurrencySymbol: "₹",
			CurrencyCode:   "INR",
			Grouping:       "indian",
			DateLayout:     "02/01/2006",
			Timezone:       "UTC",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty symbol", func(c *Config) { c.CurrencySymbol = " " }, "currency symbol"},
		{"empty code", func(c *Config) { c.CurrencyCode = "" }, "currency code"},
		{"bad grouping", func(c *Config) { c.Grouping = "metric" }, "unknown grouping"},
		{"empty layout", func(c *Config) { c.DateLayout = "" }, "date layout"},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, "invalid timezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	Port     uint16

	// TaxProvider selects the backend: "avatax" or "taxjar".
	TaxProvider string

	// TaxCodeMatchesPath points at a JSON file mapping platform tax class
	// IDs to provider tax codes. Optional; unmatched classes go out with
	// an empty tax code.
	TaxCodeMatchesPath string

	ShipFrom AddressConfig
	AvaTax   AvaTaxConfig
	TaxJar   TaxJarConfig
	Sentry   SentryConfig
}

// AddressConfig is the merchant ship-from address sent with every tax
// calculation.
type AddressConfig struct {
	Line1      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// AvaTaxConfig holds AvaTax credentials and merchant behavior flags.
type AvaTaxConfig struct {
	Username    string
	Password    string
	IsSandbox   bool
	CompanyCode string

	// IsAutocommit commits transactions at creation time. Refunds are
	// only possible for merchants running with autocommit on.
	IsAutocommit bool

	// IsDocumentRecordingEnabled controls whether confirmed orders are
	// recorded as invoices or stay estimate-only.
	IsDocumentRecordingEnabled bool

	// ShippingTaxCode is the provider tax code applied to shipping lines.
	ShippingTaxCode string
}

// TaxJarConfig holds TaxJar credentials.
type TaxJarConfig struct {
	APIToken  string
	IsSandbox bool
}

// SentryConfig holds configuration for Sentry error tracking
type SentryConfig struct {
	DSN              string
	Enabled          bool
	Environment      string
	Release          string
	SampleRate       float64
	TracesSampleRate float64
	Debug            bool
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		// Walk up directories to find .env (max 2 parent directories)
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:                getEnv("ENV", "dev"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Port:               getEnvInt("PORT", 3000),
		TaxProvider:        getEnv("TAX_PROVIDER", "avatax"),
		TaxCodeMatchesPath: getEnv("TAX_CODE_MATCHES_PATH", ""),
		ShipFrom: AddressConfig{
			Line1:      getEnv("SHIP_FROM_LINE1", ""),
			City:       getEnv("SHIP_FROM_CITY", ""),
			State:      getEnv("SHIP_FROM_STATE", ""),
			PostalCode: getEnv("SHIP_FROM_POSTAL_CODE", ""),
			Country:    getEnv("SHIP_FROM_COUNTRY", ""),
		},
		AvaTax: AvaTaxConfig{
			Username:                   getEnv("AVATAX_USERNAME", ""),
			Password:                   getEnv("AVATAX_PASSWORD", ""),
			IsSandbox:                  getEnvBool("AVATAX_SANDBOX", true),
			CompanyCode:                getEnv("AVATAX_COMPANY_CODE", ""),
			IsAutocommit:               getEnvBool("AVATAX_AUTOCOMMIT", false),
			IsDocumentRecordingEnabled: getEnvBool("AVATAX_DOCUMENT_RECORDING", true),
			ShippingTaxCode:            getEnv("AVATAX_SHIPPING_TAX_CODE", ""),
		},
		TaxJar: TaxJarConfig{
			APIToken:  getEnv("TAXJAR_API_TOKEN", ""),
			IsSandbox: getEnvBool("TAXJAR_SANDBOX", true),
		},
		Sentry: SentryConfig{
			DSN:              getEnv("SENTRY_DSN", ""),
			Enabled:          getEnvBool("SENTRY_ENABLED", false), // Disabled by default for development
			Environment:      getEnv("SENTRY_ENVIRONMENT", "development"),
			Release:          getEnv("SENTRY_RELEASE", ""),
			SampleRate:       getEnvFloat("SENTRY_SAMPLE_RATE", 1.0),
			TracesSampleRate: getEnvFloat("SENTRY_TRACES_SAMPLE_RATE", 0.0), // Disabled by default
			Debug:            getEnvBool("SENTRY_DEBUG", false),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	if cfg.TaxProvider != "avatax" && cfg.TaxProvider != "taxjar" {
		return nil, fmt.Errorf("TAX_PROVIDER must be avatax or taxjar, got %q", cfg.TaxProvider)
	}

	// The ship-from address is mandatory: both providers refuse to quote
	// without an origin.
	if cfg.ShipFrom.Country == "" {
		return nil, fmt.Errorf("SHIP_FROM_COUNTRY must be set")
	}
	if cfg.ShipFrom.PostalCode == "" {
		return nil, fmt.Errorf("SHIP_FROM_POSTAL_CODE must be set")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		var floatValue float64
		if _, err := fmt.Sscanf(value, "%f", &floatValue); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

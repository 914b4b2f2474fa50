package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"fincoach/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Env string

	// Database
	DBDriver   string `validate:"oneof=sqlite postgres"`
	DBPath     string // sqlite only
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Market data
	MarketTimeout time.Duration `validate:"gt=0"`
	BaseCurrency  string        `validate:"len=3"`
	QuoteCurrency string        `validate:"len=3"`

	// RiskTickers maps a declared risk tolerance to the tickers suggested
	// for it. This is policy data, not code: the selector never hard-codes
	// symbols. Each tier can be overridden via RISK_TICKERS_<TIER>.
	RiskTickers map[models.RiskTolerance][]string `validate:"required,min=1,dive,min=1,dive,required"`
}

// defaultRiskTickers is the built-in tier table: treasuries for no-risk
// profiles up through volatile assets for very-high ones.
var defaultRiskTickers = map[models.RiskTolerance][]string{
	models.RiskNone:     {"SGOV"},
	models.RiskLow:      {"BND", "VOO"},
	models.RiskMedium:   {"AAPL", "MSFT", "JNJ"},
	models.RiskHigh:     {"NVDA", "TSLA"},
	models.RiskVeryHigh: {"BTC-USD", "COIN"},
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env: getEnv("ENV", "development"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "fincoach.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "fincoach"),
		DBPassword: getEnv("DB_PASSWORD", "fincoach"),
		DBName:     getEnv("DB_NAME", "fincoach"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		BaseCurrency:  getEnv("BASE_CURRENCY", "USD"),
		QuoteCurrency: getEnv("QUOTE_CURRENCY", "INR"),

		RiskTickers: riskTickersFromEnv(),
	}

	// Parse market request timeout
	timeoutStr := getEnv("MARKET_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Printf("Warning: invalid MARKET_TIMEOUT value '%s', falling back to 10s\n", timeoutStr)
		timeout = 10 * time.Second
	}
	config.MarketTimeout = timeout

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// riskTickersFromEnv starts from the built-in tier table and applies any
// RISK_TICKERS_<TIER> overrides (comma-separated symbols).
func riskTickersFromEnv() map[models.RiskTolerance][]string {
	tickers := make(map[models.RiskTolerance][]string, len(defaultRiskTickers))
	for tier, symbols := range defaultRiskTickers {
		key := "RISK_TICKERS_" + strings.ToUpper(string(tier))
		if raw := os.Getenv(key); raw != "" {
			var parsed []string
			for _, s := range strings.Split(raw, ",") {
				if s = strings.TrimSpace(s); s != "" {
					parsed = append(parsed, s)
				}
			}
			if len(parsed) > 0 {
				tickers[tier] = parsed
				continue
			}
		}
		tickers[tier] = append([]string(nil), symbols...)
	}
	return tickers
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

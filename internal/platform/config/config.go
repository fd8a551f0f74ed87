package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string
	LogLevel      slog.Level

	// RequestTimeout bounds every API request, including its database work.
	RequestTimeout time.Duration
	// TxMaxRetries is how many times a conflicting transaction is re-run.
	TxMaxRetries int
	// TxLockTimeout bounds how long a statement waits for a row lock. Zero waits forever.
	TxLockTimeout time.Duration

	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string

	// LedgerAuditSchedule is a cron spec for the stock card audit. Empty disables it.
	LedgerAuditSchedule string
	LedgerAuditTimeout  time.Duration

	MigrationsPath string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REQUEST_TIMEOUT", "15s")
	viper.SetDefault("TX_MAX_RETRIES", 3)
	viper.SetDefault("TX_LOCK_TIMEOUT", "5s")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LEDGER_AUDIT_SCHEDULE", "0 2 * * *")
	viper.SetDefault("LEDGER_AUDIT_TIMEOUT", "10m")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")

	// Environment variables override .env values, which override the defaults above.
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:         viper.GetString("PGSQL_URL"),
		Port:                viper.GetString("PORT"),
		IsProduction:        viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:           viper.GetString("JWT_SECRET"),
		TxMaxRetries:        viper.GetInt("TX_MAX_RETRIES"),
		RateLimit:           viper.GetString("RATE_LIMIT"),
		LedgerAuditSchedule: strings.TrimSpace(viper.GetString("LEDGER_AUDIT_SCHEDULE")),
		MigrationsPath:      viper.GetString("MIGRATIONS_PATH"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set, using default", slog.String("port", cfg.Port))
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.TxMaxRetries < 0 {
		return nil, fmt.Errorf("TX_MAX_RETRIES must not be negative, got %d", cfg.TxMaxRetries)
	}

	level, err := parseLogLevel(viper.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.RequestTimeout, err = parsePositiveDuration("REQUEST_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.LedgerAuditTimeout, err = parsePositiveDuration("LEDGER_AUDIT_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.TxLockTimeout, err = time.ParseDuration(viper.GetString("TX_LOCK_TIMEOUT")); err != nil || cfg.TxLockTimeout < 0 {
		return nil, fmt.Errorf("invalid value for TX_LOCK_TIMEOUT (%q)", viper.GetString("TX_LOCK_TIMEOUT"))
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func parsePositiveDuration(key string) (time.Duration, error) {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid value for %s (%q): must be a positive duration", key, raw)
	}
	return d, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, fmt.Errorf("invalid value for LOG_LEVEL (%q): %w", raw, err)
	}
	return level, nil
}

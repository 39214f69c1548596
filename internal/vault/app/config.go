package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lockboxhq/lockbox/pkg/jwtx"
)

type Config struct {
	SigningSecret string        // Required: HMAC secret for session tokens (>= 32 bytes)
	Issuer        string        // Optional: issuer claim for session tokens (default: lockbox-vault)
	SessionTTL    time.Duration // Optional: session token lifetime (default: 1h)

	DatabaseFile string // Optional: path to SQLite database file (default: ./vault.db)

	PublicBaseURL      string // Optional: external base URL, used for OAuth redirect URIs (default: http://localhost:<port>)
	GoogleClientID     string // Optional: enables the google provider when set with the secret
	GoogleClientSecret string // Optional

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

// LoadConfig reads configuration from the environment. The signing secret
// has no default and no generated fallback: a process that cannot sign
// sessions deterministically across restarts must not come up at all.
func LoadConfig() (Config, error) {
	cfg := Config{
		SigningSecret: os.Getenv("VAULT_SIGNING_SECRET"),
		Issuer:        getEnvOrDefault("VAULT_ISSUER", "lockbox-vault"),
		SessionTTL:    getEnvDurationOrDefault("VAULT_SESSION_TTL", jwtx.DefaultSessionTTL),

		DatabaseFile: getEnvOrDefault("VAULT_DATABASE_FILE", "vault.db"),

		PublicBaseURL:      os.Getenv("VAULT_PUBLIC_BASE_URL"),
		GoogleClientID:     os.Getenv("VAULT_GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("VAULT_GOOGLE_CLIENT_SECRET"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if cfg.SigningSecret == "" {
		return Config{}, fmt.Errorf("VAULT_SIGNING_SECRET is required")
	}
	if len(cfg.SigningSecret) < jwtx.MinSecretLength {
		return Config{}, fmt.Errorf(
			"VAULT_SIGNING_SECRET must be at least %d bytes, got %d",
			jwtx.MinSecretLength, len(cfg.SigningSecret),
		)
	}

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}

package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	PrivateKeyPath string // Required: path to the RSA private key PEM
	PublicKeyPath  string // Required: path to the RSA public key PEM

	AccessTokenTTL  time.Duration // Optional: access token lifetime (default: 15m)
	RefreshTokenTTL time.Duration // Optional: refresh token lifetime (default: 7d)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./vinylkeeper.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		PrivateKeyPath:      getEnvOrDefault("VINYL_PRIVATE_KEY_PATH", "keys/private.pem"),
		PublicKeyPath:       getEnvOrDefault("VINYL_PUBLIC_KEY_PATH", "keys/public.pem"),
		AccessTokenTTL:      getEnvSecondsOrDefault("VINYL_ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL:     getEnvSecondsOrDefault("VINYL_REFRESH_TOKEN_TTL", 7*24*time.Hour),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "vinylkeeper.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
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

// getEnvSecondsOrDefault reads a token lifetime. Bare integers mean seconds;
// Go duration strings ("15m") are accepted too.
func getEnvSecondsOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
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

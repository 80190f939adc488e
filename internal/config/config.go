package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every runtime parameter of the application.
type Config struct {
	Database DatabaseConfig
	AmqpURL  string  // empty disables event publishing
	TaxRate  float64 // applied to order subtotals
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// Load reads .env when present, then the environment. Missing keys fall
// back to local-development defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Database: DatabaseConfig{
			Host:     getEnvString("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnvString("DB_USER", "postgres"),
			Password: getEnvString("DB_PASSWORD", "postgres"),
			Database: getEnvString("DB_NAME", "restaurant"),
			SSLMode:  getEnvString("DB_SSL_MODE", "disable"),
		},
		AmqpURL:  getEnvString("AMQP_URL", ""),
		TaxRate:  getEnvFloat("TAX_RATE", 0.08),
		LogLevel: getEnvString("LOG_LEVEL", "info"),
	}
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Storage
	StorageBackend string // "local" or "database"
	LocalStorePath string
	DatabaseURL    string

	// Kafka (optional; empty disables event publishing)
	KafkaBrokers string

	// API Configuration
	APIPort string
	APIHost string

	// Reddit defaults (credentials themselves live in the settings store)
	RedditUserAgent string

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		StorageBackend:  getEnv("STORAGE_BACKEND", "local"),
		LocalStorePath:  getEnv("LOCAL_STORE_PATH", "data/engagemate.db"),
		DatabaseURL:     getEnv("DATABASE_URL", "sqlite://data/engagemate.sqlite"),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		APIPort:         getEnv("API_PORT", "8080"),
		APIHost:         getEnv("API_HOST", "0.0.0.0"),
		RedditUserAgent: getEnv("REDDIT_USER_AGENT", "EngageMate:v1.0.0"),
		Env:             getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the full application configuration, populated from
// environment variables. Defaults cover local development; production
// deployments override via the environment.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// DatabaseConfig describes the MongoDB connection.
type DatabaseConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
	MaxPoolSize    uint64
	MinPoolSize    uint64
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Stories API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "5000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			URI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGO_DATABASE", "stories"),
			ConnectTimeout: getEnvDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
			MaxRetries:     getEnvInt("MONGO_MAX_RETRIES", 3),
			RetryDelay:     getEnvDuration("MONGO_RETRY_DELAY", 2*time.Second),
			MaxPoolSize:    uint64(getEnvInt("MONGO_MAX_POOL_SIZE", 25)),
			MinPoolSize:    uint64(getEnvInt("MONGO_MIN_POOL_SIZE", 2)),
		},
	}

	return cfg, nil
}

// IsProduction reports whether the app runs in production mode.
// Controls gin release mode and stack-trace exposure in error bodies.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

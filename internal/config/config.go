package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the storefront service configuration.
type Config struct {
	HTTPPort       string
	RedisAddr      string
	RedisPassword  string
	JaegerEndpoint string
	LogLevel       string
	IsDevelopment  bool
}

// Load reads configuration from the environment, honoring a local .env file
// when present.
func Load() *Config {
	// Best effort: absence of .env is the normal production case.
	_ = godotenv.Load()

	return &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		IsDevelopment:  getEnv("APP_ENV", "development") == "development",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

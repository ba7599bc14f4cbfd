// Package config handles configuration loading for the link-sharing backend.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the service.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// RedisAddr is optional; when empty the rate limiter keeps its
	// counters in process memory (single-instance deployments only).
	RedisAddr     string
	RedisPassword string

	JWTSecret string
	JWTExpiry time.Duration

	RateLimitMax    int
	RateLimitWindow time.Duration

	AllowedOrigins []string
	Port           string
	Environment    string
	SwaggerHost    string
}

// Load reads configuration from environment variables. Required values
// (database settings and the JWT signing secret) abort startup when absent.
func Load() *Config {
	return &Config{
		DBHost:          getEnvRequired("DB_HOST"),
		DBPort:          getEnvRequired("DB_PORT"),
		DBUser:          getEnvRequired("DB_USER"),
		DBPassword:      getEnvRequired("DB_PASSWORD"),
		DBName:          getEnvRequired("DB_NAME"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		JWTSecret:       getEnvRequired("JWT_SECRET"),
		JWTExpiry:       parseDuration(getEnv("JWT_EXPIRY", "24h"), 24*time.Hour),
		RateLimitMax:    parseInt(getEnv("RATE_LIMIT_MAX", "100"), 100),
		RateLimitWindow: parseDuration(getEnv("RATE_LIMIT_WINDOW", "1h"), time.Hour),
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		Port:            getEnv("PORT", "5001"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		SwaggerHost:     getEnv("SWAGGER_HOST", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func parseInt(value string, defaultValue int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

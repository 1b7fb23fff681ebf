package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultAcceptedOrigins are the browser origins allowed cross-origin access
// when ACCEPTED_ORIGINS is not set.
var DefaultAcceptedOrigins = []string{
	"http://localhost:8080",
	"http://localhost:1234",
	"http://movies.com",
}

// Config holds all configuration for the movies API.
type Config struct {
	Redis           RedisConfig
	Port            string
	AcceptedOrigins []string
	LogLevel        slog.Level
	SwaggerPath     string
}

// RedisConfig holds the optional response cache configuration.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_ENABLED: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	port := getEnv("PORT", "3000")
	if _, err := strconv.Atoi(port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
	}

	cfg := &Config{
		Redis: RedisConfig{
			Enabled:  cacheEnabled,
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Port:            port,
		AcceptedOrigins: getList("ACCEPTED_ORIGINS", DefaultAcceptedOrigins),
		LogLevel:        level,
		SwaggerPath:     getEnv("SWAGGER_PATH", "docs/swagger.yaml"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return append([]string(nil), fallback...)
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

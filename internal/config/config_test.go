package config

import (
	"log/slog"
	"slices"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, v := range []string{"PORT", "ACCEPTED_ORIGINS", "LOG_LEVEL", "CACHE_ENABLED",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "SWAGGER_PATH"} {
		t.Setenv(v, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %s", cfg.Port)
	}
	if !slices.Equal(cfg.AcceptedOrigins, DefaultAcceptedOrigins) {
		t.Errorf("expected default origins, got %v", cfg.AcceptedOrigins)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if cfg.Redis.Enabled {
		t.Error("cache should be disabled by default")
	}
	if cfg.Redis.Addr != "127.0.0.1:6379" || cfg.Redis.DB != 0 {
		t.Errorf("unexpected redis defaults: %+v", cfg.Redis)
	}
	if cfg.SwaggerPath != "docs/swagger.yaml" {
		t.Errorf("unexpected swagger path %s", cfg.SwaggerPath)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ACCEPTED_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8081" {
		t.Errorf("expected port 8081, got %s", cfg.Port)
	}
	if !slices.Equal(cfg.AcceptedOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Errorf("unexpected origins %v", cfg.AcceptedOrigins)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if !cfg.Redis.Enabled || cfg.Redis.DB != 2 {
		t.Errorf("unexpected redis config %+v", cfg.Redis)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"PORT":          "http",
		"REDIS_DB":      "zero",
		"CACHE_ENABLED": "maybe",
		"LOG_LEVEL":     "loud",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", key, value)
			}
		})
	}
}

package config

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ALLOWED_ORIGINS", "SESSION_TTL_HOURS", "COOKIE_SECURE", "RATE_LIMIT_AUTH",
		"RATE_LIMIT_WS", "LOG_LEVEL", "SIGNIN_TIMEOUT_SECONDS", "FIXTURES_PATH", "METRICS_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadFromEnv()
	def := DefaultConfig()

	if cfg.Port != def.Port {
		t.Errorf("Port = %s, expected %s", cfg.Port, def.Port)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, expected 24h", cfg.SessionTTL)
	}
	if !cfg.MetricsEnabled {
		t.Error("Metrics should be enabled by default")
	}
	if cfg.FixturesPath != "" {
		t.Errorf("FixturesPath should default to built-in fixtures, got %q", cfg.FixturesPath)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("RATE_LIMIT_AUTH", "7")
	t.Setenv("RATE_LIMIT_WS", "3")
	t.Setenv("LOG_LEVEL", " DEBUG ")
	t.Setenv("SIGNIN_TIMEOUT_SECONDS", "4")
	t.Setenv("FIXTURES_PATH", "/tmp/roster.yaml")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := LoadFromEnv()

	if cfg.Port != "9090" {
		t.Errorf("Port = %s", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if !cfg.CookieSecure {
		t.Error("CookieSecure should be true")
	}
	if cfg.RateLimitAuth != rate.Limit(7) || cfg.RateLimitWS != rate.Limit(3) {
		t.Errorf("rate limits = %v/%v", cfg.RateLimitAuth, cfg.RateLimitWS)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.SignInTimeout != 4*time.Second {
		t.Errorf("SignInTimeout = %v", cfg.SignInTimeout)
	}
	if cfg.FixturesPath != "/tmp/roster.yaml" {
		t.Errorf("FixturesPath = %q", cfg.FixturesPath)
	}
	if cfg.MetricsEnabled {
		t.Error("MetricsEnabled should be false")
	}
}

func TestLoadFromEnv_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "-3")
	t.Setenv("RATE_LIMIT_AUTH", "lots")
	t.Setenv("COOKIE_SECURE", "maybe")

	cfg := LoadFromEnv()

	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, expected default", cfg.SessionTTL)
	}
	if cfg.RateLimitAuth != DefaultConfig().RateLimitAuth {
		t.Errorf("RateLimitAuth = %v, expected default", cfg.RateLimitAuth)
	}
	if cfg.CookieSecure {
		t.Error("CookieSecure should stay false")
	}
}

func TestIsOriginAllowed(t *testing.T) {
	cfg := &Config{AllowedOrigins: []string{"http://localhost:8080"}}

	tests := []struct {
		origin   string
		expected bool
	}{
		{"", true},
		{"http://localhost:8080", true},
		{"http://evil.example", false},
	}
	for _, tc := range tests {
		if got := cfg.IsOriginAllowed(tc.origin); got != tc.expected {
			t.Errorf("IsOriginAllowed(%q) = %v, expected %v", tc.origin, got, tc.expected)
		}
	}

	wildcard := &Config{AllowedOrigins: []string{"*"}}
	if !wildcard.IsOriginAllowed("http://anything.example") {
		t.Error("Wildcard should allow any origin")
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level   string
		debugOn bool
		infoOn  bool
		errorOn bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"", false, true, true},
		{"error", false, false, true},
		{"silent", false, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := (&Config{LogLevel: tc.level}).NewLogger(&buf)
			ctx := context.Background()

			if got := logger.Enabled(ctx, slog.LevelDebug); got != tc.debugOn {
				t.Errorf("debug enabled = %v", got)
			}
			if got := logger.Enabled(ctx, slog.LevelInfo); got != tc.infoOn {
				t.Errorf("info enabled = %v", got)
			}
			if tc.errorOn {
				logger.Error("boom")
				if buf.Len() == 0 {
					t.Error("Expected error to be written")
				}
			}
		})
	}
}

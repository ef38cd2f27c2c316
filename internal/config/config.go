package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mmuslimabdulj/modex/internal/domain"
	"golang.org/x/time/rate"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port string

	// Security
	AllowedOrigins []string
	SessionTTL     time.Duration
	CookieSecure   bool

	// Rate Limiting
	RateLimitAuth rate.Limit
	RateLimitWS   rate.Limit

	// Logging
	LogLevel string

	// Identity provider
	SignInTimeout time.Duration

	// Data
	FixturesPath string

	// Observability
	MetricsEnabled bool
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Port:           "8080",
		AllowedOrigins: []string{"http://localhost:8080", "http://localhost:3000"},
		SessionTTL:     domain.SessionTTL,
		RateLimitAuth:  domain.DefaultRateLimitAuth,
		RateLimitWS:    domain.DefaultRateLimitWS,
		LogLevel:       "info", // Options: debug, info, warn, error, silent
		SignInTimeout:  domain.SignInTimeout,
		MetricsEnabled: true,
	}
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	cfg := DefaultConfig()

	// Server
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	// Security
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = parseOrigins(origins)
	}

	if ttl := os.Getenv("SESSION_TTL_HOURS"); ttl != "" {
		if hours, err := strconv.Atoi(ttl); err == nil && hours > 0 {
			cfg.SessionTTL = time.Duration(hours) * time.Hour
		}
	}

	if secure := os.Getenv("COOKIE_SECURE"); secure != "" {
		if val, err := strconv.ParseBool(secure); err == nil {
			cfg.CookieSecure = val
		}
	}

	// Rate Limiting
	if rl := os.Getenv("RATE_LIMIT_AUTH"); rl != "" {
		if val, err := strconv.Atoi(rl); err == nil && val > 0 {
			cfg.RateLimitAuth = rate.Limit(val)
		}
	}

	if rl := os.Getenv("RATE_LIMIT_WS"); rl != "" {
		if val, err := strconv.Atoi(rl); err == nil && val > 0 {
			cfg.RateLimitWS = rate.Limit(val)
		}
	}

	// Logging
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(level))
	}

	// Identity provider
	if secs := os.Getenv("SIGNIN_TIMEOUT_SECONDS"); secs != "" {
		if val, err := strconv.Atoi(secs); err == nil && val > 0 {
			cfg.SignInTimeout = time.Duration(val) * time.Second
		}
	}

	// Data
	if path := os.Getenv("FIXTURES_PATH"); path != "" {
		cfg.FixturesPath = path
	}

	// Observability
	if m := os.Getenv("METRICS_ENABLED"); m != "" {
		if val, err := strconv.ParseBool(m); err == nil {
			cfg.MetricsEnabled = val
		}
	}

	return cfg
}

// NewLogger builds the process logger for the configured level.
// "silent" and "off" discard everything.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch c.LogLevel {
	case "silent", "off":
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// IsOriginAllowed checks if the origin is in the allowed list.
// Empty origin is allowed (same-origin requests).
func (c *Config) IsOriginAllowed(origin string) bool {
	if origin == "" {
		return true
	}
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || origin == allowed {
			return true
		}
	}
	return false
}

// parseOrigins parses comma-separated origins
func parseOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// Package config loads service configuration from the environment,
// with optional .env file support for local development.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the contact relay needs.
type Config struct {
	Port        string
	Environment string

	// CORS: comma-separated origins, "*" by default.
	AllowedOrigins []string

	// Resend provider. An empty API key enables simulation mode.
	ResendAPIKey string
	FromName     string
	FromEmail    string
	// ContactEmailTo receives every contact-form message.
	ContactEmailTo string
	SendTimeout    time.Duration

	SentryDSN string
}

// Load reads configuration from the process environment. A .env file
// is honored when present and ignored otherwise.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "production"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		ResendAPIKey:   os.Getenv("RESEND_API_KEY"),
		FromName:       getEnv("RESEND_FROM_NAME", "Cardinal Conseils"),
		FromEmail:      getEnv("RESEND_FROM_EMAIL", "contact@cardinalconseils.com"),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "info@cardinalconseils.com"),
		SendTimeout:    getDuration("SEND_TIMEOUT", 15*time.Second),
		SentryDSN:      os.Getenv("SENTRY_DSN"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/moderation"
	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/jwtx"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseFile string // Optional: path to SQLite database file (default: campus.db)

	JWTSecret    string        // Required outside dev: HMAC secret for session tokens (min 32 bytes)
	JWTIssuer    string        // Optional: issuer claim for session tokens (default: campus-qa)
	SessionTTL   time.Duration // Optional: session token lifetime (default: 7 days)
	EmailDomains []string      // Optional: accepted institutional email suffixes (default: edu, ac.in)
	CronSecret   string        // Optional: bearer secret required by POST /cleanup

	PerspectiveAPIKey   string  // Optional: enables toxicity screening when set
	PerspectiveEndpoint string  // Optional: override for the Perspective analyze URL
	ToxicityThreshold   float64 // Optional: score at which comments are rejected (default: 0.7)
	PerspectiveQPS      float64 // Optional: outbound Perspective request budget (default: 1)

	RetentionWindow       time.Duration // Optional: query lifetime (default: 168h)
	RetentionInterval     time.Duration // Optional: background sweep interval (default: 1h)
	RetentionSweepEnabled bool          // Optional: run the in-process sweep (default: true)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment. Values from .env.local
// and .env are loaded first when those files exist; real environment
// variables always win.
func LoadConfig() Config {
	for _, f := range []string{".env.local", ".env"} {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}

	return Config{
		DatabaseFile: getEnvOrDefault("CAMPUS_DATABASE_FILE", "campus.db"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTIssuer:    getEnvOrDefault("JWT_ISSUER", "campus-qa"),
		SessionTTL:   getEnvDurationOrDefault("SESSION_TTL", jwtx.DefaultSessionTTL),
		EmailDomains: getEnvListOrDefault("CAMPUS_EMAIL_DOMAINS", service.DefaultEmailSuffixes),
		CronSecret:   os.Getenv("CRON_SECRET"),

		PerspectiveAPIKey:   os.Getenv("GOOGLE_PERSPECTIVE_API_KEY"),
		PerspectiveEndpoint: getEnvOrDefault("PERSPECTIVE_ENDPOINT", moderation.DefaultEndpoint),
		ToxicityThreshold:   getEnvFloatOrDefault("TOXICITY_THRESHOLD", moderation.DefaultThreshold),
		PerspectiveQPS:      getEnvFloatOrDefault("PERSPECTIVE_QPS", 1),

		RetentionWindow:       getEnvDurationOrDefault("RETENTION_WINDOW", service.DefaultRetentionWindow),
		RetentionInterval:     getEnvDurationOrDefault("RETENTION_INTERVAL", time.Hour),
		RetentionSweepEnabled: getEnvBoolOrDefault("RETENTION_SWEEP_ENABLED", true),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

var errMissingSecret = errors.New("JWT_SECRET is required outside ENV=dev; set it to a random string of at least 32 bytes")

// Validate reports misconfiguration with a hint for the operator. Secret
// values are never included in the error.
func (c Config) Validate() error {
	if c.JWTSecret == "" && c.Env != "dev" {
		return errMissingSecret
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < jwtx.MinSecretBytes {
		return fmt.Errorf("JWT_SECRET is too short: need at least %d bytes, got %d", jwtx.MinSecretBytes, len(c.JWTSecret))
	}
	if c.ToxicityThreshold <= 0 || c.ToxicityThreshold > 1 {
		return fmt.Errorf("TOXICITY_THRESHOLD must be in (0, 1], got %v", c.ToxicityThreshold)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

// getEnvListOrDefault splits a comma separated value, dropping empty items.
func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Go duration syntax only ("1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}

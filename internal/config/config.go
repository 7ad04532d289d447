// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig holds all process-wide settings. It is built once at startup and
// passed by reference; nothing reads the environment after Load returns.
type AppConfig struct {
	// Twilio
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioNumber     string

	// Spoken script identity
	CompanyName   string
	OfficerName   string
	OfficerNumber string

	// Behavior
	DryRun      bool
	DialTimeout time.Duration

	// Server
	HTTPAddr  string
	LogLevel  string
	LogFormat string
}

// Load reads environment variables into AppConfig with defaults.
func Load() AppConfig {
	return AppConfig{
		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioNumber:     getEnv("TWILIO_NUMBER", ""),

		CompanyName:   getEnv("COMPANY_NAME", "SBFC Finance Ltd"),
		OfficerName:   getEnv("OFFICER_NAME", "Collection Officer"),
		OfficerNumber: getEnv("OFFICER_NUMBER", "+910000000000"),

		DryRun:      getEnvBool("DRY_RUN", true),
		DialTimeout: time.Duration(getEnvInt("CALL_TIMEOUT_SECONDS", 15)) * time.Second,

		HTTPAddr:  ":" + getEnv("PORT", "5000"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}
}

// TwilioConfigured reports whether live call placement is possible.
func (c AppConfig) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != ""
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return strings.ToLower(v) == "true"
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

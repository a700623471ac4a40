package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	REQUEST_TIMEOUT=15s
//	CORS_ALLOWED_ORIGINS=*
//	PROVIDER_BASE_URL=https://query2.finance.yahoo.com
//	PROVIDER_COOKIE_URL=https://fc.yahoo.com
//	PROVIDER_TIMEOUT=10s
//	PROVIDER_MAX_RETRIES=3
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Provider ProviderConfig // Market data provider settings
}

// ServerConfig holds HTTP server settings.
//
// Fields:
//   - Port: TCP port the HTTP server listens on (e.g., "8080").
//   - RequestTimeout: deadline applied to every request context.
//   - AllowedOrigins: CORS origins; a single "*" allows any origin.
type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowedOrigins []string
}

// ProviderConfig defines how the Yahoo Finance adapter reaches the API.
type ProviderConfig struct {
	BaseURL    string
	CookieURL  string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// envFile is loaded into the process environment before viper reads it.
var envFile = ".env"

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present; never overrides real env vars).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates
//     the app with a descriptive log message.
func LoadConfig() {
	// Optionally load .env into the environment (common in local dev)
	_ = godotenv.Load(envFile)

	v := viper.New()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("REQUEST_TIMEOUT", "15s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("PROVIDER_BASE_URL", "https://query2.finance.yahoo.com")
	v.SetDefault("PROVIDER_COOKIE_URL", "https://fc.yahoo.com")
	v.SetDefault("PROVIDER_USER_AGENT", defaultUserAgent)
	v.SetDefault("PROVIDER_TIMEOUT", "10s")
	v.SetDefault("PROVIDER_MAX_RETRIES", 3)

	v.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Provider: ProviderConfig{
			BaseURL:    v.GetString("PROVIDER_BASE_URL"),
			CookieURL:  v.GetString("PROVIDER_COOKIE_URL"),
			UserAgent:  v.GetString("PROVIDER_USER_AGENT"),
			Timeout:    v.GetDuration("PROVIDER_TIMEOUT"),
			MaxRetries: v.GetInt("PROVIDER_MAX_RETRIES"),
		},
	}

	validateConfig()
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// missingKeys lists the variables that are absent or invalid in AppConfig.
func missingKeys() []string {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Server.RequestTimeout <= 0 {
		missing = append(missing, "REQUEST_TIMEOUT")
	}
	if AppConfig.Provider.BaseURL == "" {
		missing = append(missing, "PROVIDER_BASE_URL")
	}
	if AppConfig.Provider.UserAgent == "" {
		missing = append(missing, "PROVIDER_USER_AGENT")
	}
	if AppConfig.Provider.Timeout <= 0 {
		missing = append(missing, "PROVIDER_TIMEOUT")
	}
	if AppConfig.Provider.MaxRetries < 0 {
		missing = append(missing, "PROVIDER_MAX_RETRIES")
	}
	return missing
}

// validateConfig terminates the application when required variables are
// missing, avoiding failures deep inside a request.
func validateConfig() {
	if missing := missingKeys(); len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}

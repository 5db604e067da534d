package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	NodeEnv       string
	Port          string
	JWTSecret     string
	PublicBaseURL string
	FrontendDir   string
	Database      DatabaseConfig
	Notify        NotifyConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

// NotifyConfig holds notification dispatch and email delivery configuration
type NotifyConfig struct {
	// FunctionURL is the endpoint the intake flow posts notification
	// payloads to. Defaults to the in-process /api/notify handler.
	FunctionURL string
	Recipients  []string
	FromEmail   string
	EmailAPIURL string
	EmailAPIKey string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	port := getEnv("PORT", "3001")

	return &Config{
		NodeEnv:       getEnv("NODE_ENV", "development"),
		Port:          port,
		JWTSecret:     jwtSecret,
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:"+port),
		FrontendDir:   os.Getenv("FRONTEND_DIR"),
		Database: DatabaseConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnv("PG_PORT", "5432"),
			Username: getEnv("PG_USERNAME", "postgres"),
			Password: os.Getenv("PG_PASSWORD"),
			Database: getEnv("PG_DATABASE", "leadsgo"),
		},
		Notify: NotifyConfig{
			FunctionURL: getEnv("NOTIFY_URL", "http://localhost:"+port+"/api/notify"),
			Recipients:  recipientList(),
			FromEmail:   getEnv("FROM_EMAIL", "noreply@localhost"),
			EmailAPIURL: os.Getenv("EMAIL_API_URL"),
			EmailAPIKey: os.Getenv("EMAIL_API_KEY"),
		},
	}, nil
}

// recipientList resolves the operator notification addresses.
// NOTIFICATION_EMAILS (comma-separated) wins over NOTIFICATION_EMAIL.
func recipientList() []string {
	raw := os.Getenv("NOTIFICATION_EMAILS")
	if raw == "" {
		raw = os.Getenv("NOTIFICATION_EMAIL")
	}
	if raw == "" {
		return nil
	}
	var out []string
	for _, addr := range strings.Split(raw, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Praashon/devtrackr/internal/domain"
)

// Config holds the application configuration
type Config struct {
	// User preferences
	Timezone     string
	WeekStartsOn domain.WeekStart
	UserID       string

	// Event source
	EventSource string // "mock" or "github"
	GitHubToken string
	GitHubUser  string

	// API Server
	APIPort string
	APIHost string

	// CLI
	APIEndpoint string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Timezone:     getEnv("TIMEZONE", "America/New_York"),
		WeekStartsOn: domain.WeekStart(getEnv("WEEK_STARTS_ON", "monday")),
		UserID:       getEnv("USER_ID", "dev-user-1"),
		EventSource:  getEnv("EVENT_SOURCE", "mock"),
		GitHubToken:  getEnv("GITHUB_TOKEN", ""),
		GitHubUser:   getEnv("GITHUB_USER", ""),
		APIPort:      getEnv("API_PORT", "8080"),
		APIHost:      getEnv("API_HOST", "localhost"),
		APIEndpoint:  getEnv("API_ENDPOINT", "http://localhost:8080"),
	}, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return &ConfigError{Field: "TIMEZONE", Message: "must be a valid IANA timezone identifier"}
	}
	if !c.WeekStartsOn.Valid() {
		return &ConfigError{Field: "WEEK_STARTS_ON", Message: "must be 'sunday' or 'monday'"}
	}
	if c.EventSource != "mock" && c.EventSource != "github" {
		return &ConfigError{Field: "EVENT_SOURCE", Message: "must be 'mock' or 'github'"}
	}
	if c.EventSource == "github" && c.GitHubToken == "" {
		return &ConfigError{Field: "GITHUB_TOKEN", Message: "GitHub token is required when EVENT_SOURCE is 'github'"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

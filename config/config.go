// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Storage StorageConfig
	Sync    SyncConfig
	AI      AIConfig
	Email   EmailConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// RedisConfig holds Redis configuration for the snapshot store.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// StorageConfig holds the key names used by the snapshot store.
// The two keys are independently readable and writable; there is no
// schema version field, so loading must parse defensively.
type StorageConfig struct {
	ItemsKey  string
	BudgetKey string
}

// SyncConfig holds configuration for the optional SQL sync mirror.
type SyncConfig struct {
	Enabled      bool
	Driver       string // "sqlite" or "postgres"
	DSN          string
	PollInterval time.Duration
}

// AIConfig holds configuration for the optional Gemini category suggester.
type AIConfig struct {
	APIKey string
	Model  string
}

// EmailConfig holds configuration for the optional budget alert email.
type EmailConfig struct {
	ResendAPIKey string
	FromName     string
	FromEmail    string
	AlertEmail   string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			ItemsKey:  getEnv("STORAGE_ITEMS_KEY", "shoppingItems"),
			BudgetKey: getEnv("STORAGE_BUDGET_KEY", "dailyBudget"),
		},
		Sync: SyncConfig{
			Enabled:      getEnvAsBool("SYNC_ENABLED", false),
			Driver:       getEnv("SYNC_DRIVER", "sqlite"),
			DSN:          getEnv("SYNC_DSN", "krigzlist-sync.db"),
			PollInterval: getEnvAsDuration("SYNC_POLL_INTERVAL", 30*time.Second),
		},
		AI: AIConfig{
			APIKey: getEnv("AI_API_KEY", ""),
			Model:  getEnv("AI_MODEL", "gemini-2.5-flash-lite"),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromName:     getEnv("RESEND_FROM_NAME", "Krigzlist"),
			FromEmail:    getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
			AlertEmail:   getEnv("BUDGET_ALERT_EMAIL", ""),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

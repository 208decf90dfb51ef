package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// AppConfig holds all runtime settings, read from the environment.
type AppConfig struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBDatabase string

	RedisHost string
	RedisPort string

	FolderPath        string
	SessionTTL        time.Duration
	WorkerConcurrency int

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPSender   string

	LogLevel string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() *AppConfig {
	return &AppConfig{
		ServerPort: getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "5000")),

		DBHost:     getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:     getEnvOrDefault("DB_PORT", "27017"),
		DBDatabase: getEnvOrDefault("DB_DATABASE", "files_manager"),

		RedisHost: getEnvOrDefault("REDIS_HOST", "localhost"),
		RedisPort: getEnvOrDefault("REDIS_PORT", "6379"),

		FolderPath:        getEnvOrDefault("FOLDER_PATH", "/tmp/files_manager"),
		SessionTTL:        time.Duration(getEnvIntOrDefault("SESSION_TTL_HOURS", 24)) * time.Hour,
		WorkerConcurrency: getEnvIntOrDefault("WORKER_CONCURRENCY", 2),

		SMTPHost:     getEnvOrDefault("SMTP_HOST", "localhost"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUser:     getEnvOrDefault("SMTP_USER", ""),
		SMTPPassword: getEnvOrDefault("SMTP_PASSWORD", ""),
		SMTPSender:   getEnvOrDefault("SMTP_SENDER", "no-reply@files-manager.local"),

		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetFolderPath returns the root storage directory for file content
func (c *AppConfig) GetFolderPath() string {
	return c.FolderPath
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// MongoURI returns the document store connection string.
func (c *AppConfig) MongoURI() string {
	return fmt.Sprintf("mongodb://%s:%s", c.DBHost, c.DBPort)
}

// RedisAddr returns the key-value store address.
func (c *AppConfig) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

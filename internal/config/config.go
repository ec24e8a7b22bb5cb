package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port        string
	SiteBaseURL string

	// Database configuration
	DBType     string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost     string
	DBPort     string
	DBDatabase string

	// Public tier credentials (read paths)
	DBPublicUser            string
	DBPublicPassword        string
	DBPublicConnectionLimit int

	// Service tier credentials (admin mutations)
	DBServiceUser            string
	DBServicePassword        string
	DBServiceConnectionLimit int

	// Authorizer configuration
	AuthzURL      string
	AuthzClientID string

	// Auth provider webhook
	AuthWebhookSecret string

	// Object storage
	StorageRoot string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:                     getEnv("PORT", "3000"),
		SiteBaseURL:              getEnv("SITE_BASE_URL", "http://localhost:3000"),
		DBType:                   getEnv("DB_TYPE", "mysql"),
		DBHost:                   getEnv("DB_HOST", "localhost"),
		DBPort:                   getEnv("DB_PORT", "3306"),
		DBDatabase:               getEnv("DB_DATABASE", ""),
		DBPublicUser:             getEnv("DB_PUBLIC_USER", ""),
		DBPublicPassword:         getEnv("DB_PUBLIC_PASSWORD", ""),
		DBPublicConnectionLimit:  getEnvAsInt("DB_PUBLIC_CONNECTION_LIMIT", 5),
		DBServiceUser:            getEnv("DB_SERVICE_USER", ""),
		DBServicePassword:        getEnv("DB_SERVICE_PASSWORD", ""),
		DBServiceConnectionLimit: getEnvAsInt("DB_SERVICE_CONNECTION_LIMIT", 5),
		AuthzURL:                 getEnv("AUTHZ_URL", ""),
		AuthzClientID:            getEnv("AUTHZ_CLIENT_ID", ""),
		AuthWebhookSecret:        getEnv("AUTH_WEBHOOK_SECRET", ""),
		StorageRoot:              getEnv("STORAGE_ROOT", "storage"),
	}

	// Validate required fields
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBPublicUser == "" {
		return nil, fmt.Errorf("DB_PUBLIC_USER is required")
	}
	if cfg.DBServiceUser == "" {
		return nil, fmt.Errorf("DB_SERVICE_USER is required")
	}
	if cfg.AuthzURL == "" {
		return nil, fmt.Errorf("AUTHZ_URL is required")
	}
	if cfg.AuthzClientID == "" {
		return nil, fmt.Errorf("AUTHZ_CLIENT_ID is required")
	}
	if cfg.AuthWebhookSecret == "" {
		return nil, fmt.Errorf("AUTH_WEBHOOK_SECRET is required")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

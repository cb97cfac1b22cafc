package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	DatabaseType    string // sqlite (default), postgres, mysql
	DatabasePath    string // for sqlite
	DatabaseURL     string // for postgres/mysql
	MigrationsPath  string
	SessionDuration time.Duration

	// Auth
	JWTSecret          string
	JWTTokenDuration   time.Duration
	GoogleClientID     string
	GoogleClientSecret string
	OAuthRedirectBase  string

	// Email (Amazon SES)
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	AppBaseURL   string

	// Hour of day (UTC) for the streak reminder job
	ReminderHour int
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		DatabaseType:    getEnv("DB_TYPE", "sqlite"),
		DatabasePath:    getEnv("DB_PATH", "./mastery.db"),
		DatabaseURL:     getEnv("DB_URL", ""),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		SessionDuration: 24 * time.Hour,

		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTTokenDuration:   12 * time.Hour,
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		OAuthRedirectBase:  getEnv("OAUTH_REDIRECT_BASE_URL", ""),

		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail: getEnv("SES_FROM_EMAIL", ""),
		SESFromName:  getEnv("SES_FROM_NAME", "English Mastery"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:8080"),

		ReminderHour: getEnvInt("REMINDER_HOUR", 18),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

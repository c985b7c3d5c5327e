package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	environment := os.Getenv("ENVIRONMENT")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	baseURL := os.Getenv("BASE_URL")

	if geminiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	if adminPassword == "" {
		// default restored on every boot, same as the seeded admin account
		adminPassword = "admin123"
	}

	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &Config{
		GeminiKey:          geminiKey,
		DatabaseURL:        databaseURL,
		JWTSecret:          jwtSecret,
		Environment:        environment,
		AdminPassword:      adminPassword,
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		BaseURL:            baseURL,
	}, nil
}

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database Configuration
	MongoURI string
	DBName   string

	// Security Configuration
	JWTSecret string

	// Admin bootstrap account
	AdminEmail    string
	AdminPassword string

	// Seed data (optional CSV of movies)
	SeedFile string

	// Server Configuration
	Port string
	Env  string
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load environment file based on GO_ENV
	env := getEnvOrDefault("GO_ENV", "development")
	envFile := filepath.Join("environments", fmt.Sprintf(".env.%s", env))

	if err := godotenv.Load(envFile); err != nil {
		log.Printf("env file %s not found, using process environment", envFile)
	}

	cfg := &Config{
		// Database Configuration
		MongoURI: getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnvOrDefault("DB_NAME", "geek_movies"),

		// Security Configuration
		JWTSecret: getEnvOrDefault("JWT_SECRET", ""),

		// Admin bootstrap
		AdminEmail:    getEnvOrDefault("ADMIN_EMAIL", ""),
		AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", ""),

		// Seed data
		SeedFile: getEnvOrDefault("SEED_FILE", ""),

		// Server Configuration
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  env,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

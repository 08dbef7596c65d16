package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	JWTSecret     string
	JWTExpiration time.Duration
	ServerPort    string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:   getEnv("DATABASE_URL", "postgresql://postgres@localhost:5432/tracker"),
		JWTSecret:     getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
		JWTExpiration: 24 * time.Hour,
		ServerPort:    getEnv("SERVER_PORT", "8080"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

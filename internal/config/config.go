package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	ServerPort           string
	ValidateCategoryRefs bool
}

func Load() *Config {
	// A missing .env is fine, values may come from the environment itself.
	_ = godotenv.Load()

	return &Config{
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnv("DB_PORT", "5432"),
		DBUser:               getEnv("DB_USER", "postgres"),
		DBPassword:           getEnv("DB_PASSWORD", "postgres"),
		DBName:               getEnv("DB_NAME", "trivia"),
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		ValidateCategoryRefs: getEnv("VALIDATE_CATEGORY_REFS", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBPath   string
	LogLevel string
	Locale   string
	Aweber   AweberConfig
}

type AweberConfig struct {
	BaseURL string
	Timeout time.Duration
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		DBPath:   getEnv("DB_PATH", "./integrations.db"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Locale:   getEnv("LOCALE", "en"),
		Aweber: AweberConfig{
			BaseURL: getEnv("AWEBER_API_URL", "https://api.aweber.com/1.0"),
			Timeout: time.Duration(getEnvInt("AWEBER_HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

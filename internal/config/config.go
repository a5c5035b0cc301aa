package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Gemini    GeminiConfig
	Scorecard ScorecardConfig
	Upload    UploadConfig
	Session   SessionConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type ScorecardConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	PerPage int
}

type UploadConfig struct {
	MaxFileSize int64
}

type SessionConfig struct {
	TTL        time.Duration
	MaxEntries int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Scorecard: ScorecardConfig{
			APIKey:  getEnv("SCORECARD_API_KEY", ""),
			BaseURL: getEnv("SCORECARD_BASE_URL", "https://api.data.gov/ed/collegescorecard/v1"),
			Timeout: getEnvAsDuration("SCORECARD_TIMEOUT", "10s"),
			PerPage: getEnvAsInt("SCORECARD_PER_PAGE", 20),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Session: SessionConfig{
			TTL:        getEnvAsDuration("SESSION_TTL", "30m"),
			MaxEntries: getEnvAsInt("SESSION_MAX_ENTRIES", 1024),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

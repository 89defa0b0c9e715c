// Package config provides configuration for the concierge.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the concierge configuration.
type Config struct {
	// Server settings
	HTTPPort  int
	StaticDir string

	// Session store
	DatabaseURL string

	// Traveler dataset
	ProfileCSVPath string

	// LLM settings
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration
}

// Load loads configuration from the environment. A .env file in the working
// directory is applied first if present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:       getEnvInt("HTTP_PORT", 8080),
		StaticDir:      getEnv("STATIC_DIR", "web/static"),
		DatabaseURL:    getEnv("DATABASE_URL", "file:concierge.db?cache=shared&mode=rwc"),
		ProfileCSVPath: getEnv("PROFILE_CSV_PATH", "TravelPreference.csv"),
		LLMBaseURL:     getEnv("LLM_BASE_URL", "https://api.groq.com/openai"),
		LLMAPIKey:      getEnv("GROQ_API_KEY", ""),
		LLMModel:       getEnv("LLM_MODEL", "groq/compound"),
		LLMTimeout:     time.Duration(getEnvInt("LLM_TIMEOUT_MS", 60000)) * time.Millisecond,
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// AI provider settings. An empty OpenAIAPIKey is a normal, handled
	// condition: the service starts and serves static-fallback answers.
	OpenAIAPIKey  string
	OpenAIBaseURL string
	ChatModel     string
	VisionModel   string

	// RequestTimeoutSeconds bounds each external completion call.
	RequestTimeoutSeconds int

	// History storage: "memory" (default) or "sqlite".
	HistoryBackend       string
	HistoryDBPath        string
	HistoryMaxPerSession int

	Environment string
}

// Load reads configuration from environment variables or .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		OpenAIAPIKey:          getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:         getEnv("OPENAI_BASE_URL", ""),
		ChatModel:             getEnv("CHAT_MODEL", "gpt-4o-mini"),
		VisionModel:           getEnv("VISION_MODEL", "gpt-4o"),
		RequestTimeoutSeconds: getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 30),
		HistoryBackend:        getEnv("HISTORY_BACKEND", "memory"),
		HistoryDBPath:         getEnv("HISTORY_DB_PATH", "medassist.db"),
		HistoryMaxPerSession:  getEnvAsInt("HISTORY_MAX_PER_SESSION", 100),
		Environment:           env,
	}

	if cfg.HistoryBackend != "memory" && cfg.HistoryBackend != "sqlite" {
		log.Printf("Warning: unknown HISTORY_BACKEND %q, using in-memory store", cfg.HistoryBackend)
		cfg.HistoryBackend = "memory"
	}

	if cfg.OpenAIAPIKey == "" {
		log.Println("OPENAI_API_KEY not set; serving static-fallback analyses only")
	}

	return cfg
}

// HasAPIKey reports whether an AI credential is configured.
func (c *Config) HasAPIKey() bool {
	return c.OpenAIAPIKey != ""
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}

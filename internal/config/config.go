package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port             int
	LogLevel         string
	DevMode          bool
	WebDir           string
	OpenRouterAPIKey string
	OpenRouterURL    string
	NarrativeModel   string
	NarrativeTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnvAsInt("PORT", 8080),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DevMode:          getEnvAsBool("DEV_MODE", false),
		WebDir:           getEnv("WEB_DIR", "./web"),
		OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterURL:    getEnv("OPENROUTER_URL", "https://openrouter.ai/api/v1/chat/completions"),
		NarrativeModel:   getEnv("NARRATIVE_MODEL", "google/gemini-flash-1.5"),
		NarrativeTimeout: time.Duration(getEnvAsInt("NARRATIVE_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present.
// The OpenRouter credential is intentionally not required: its absence
// degrades the narrative to the fallback note instead of failing startup.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be a valid port number, got %d", c.Port)
	}
	if c.OpenRouterURL == "" {
		return fmt.Errorf("OPENROUTER_URL is required")
	}
	if c.NarrativeModel == "" {
		return fmt.Errorf("NARRATIVE_MODEL is required")
	}
	if c.NarrativeTimeout <= 0 {
		return fmt.Errorf("NARRATIVE_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// NarrativeEnabled reports whether the external narrative call can be made
func (c *Config) NarrativeEnabled() bool {
	return c.OpenRouterAPIKey != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port  string
	Debug bool

	// Language model configuration
	LLMProvider    string // "ollama" or "gemini"
	LLMTemperature float64
	OllamaHost     string
	OllamaModel    string
	GeminiAPIKey   string
	GeminiModel    string

	// Google Custom Search configuration
	GoogleAPIKey string
	GoogleCSEID  string

	// SightEngine image analysis configuration
	SightEngineUser   string
	SightEngineSecret string

	// Contact form configuration
	ContactRecipient string
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string

	// Analysis archive configuration
	ArchiveBackend   string // "azure", "local" or "disabled"
	StorageAccount   string
	StorageContainer string
	ArchiveDir       string
	RetentionDays    int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		Debug: getBoolEnv("DEBUG", false),

		LLMProvider:    getEnv("LLM_PROVIDER", "ollama"),
		LLMTemperature: getFloatEnv("LLM_TEMPERATURE", 0.2),
		OllamaHost:     getEnv("OLLAMA_HOST", "http://localhost:11434"),
		OllamaModel:    getEnv("OLLAMA_MODEL", "llama3.2"),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		GoogleAPIKey: getEnv("GOOGLE_API_KEY", ""),
		GoogleCSEID:  getEnv("GOOGLE_CSE_ID", ""),

		SightEngineUser:   getEnv("SIGHTENGINE_API_USER", ""),
		SightEngineSecret: getEnv("SIGHTENGINE_API_SECRET", ""),

		ContactRecipient: getEnv("CONTACT_RECIPIENT", ""),
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         getIntEnv("SMTP_PORT", 587),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),

		ArchiveBackend:   getEnv("ARCHIVE_BACKEND", "disabled"),
		StorageAccount:   getEnv("AZURE_STORAGE_ACCOUNT", ""),
		StorageContainer: getEnv("AZURE_STORAGE_CONTAINER", "analyses"),
		ArchiveDir:       getEnv("ARCHIVE_DIR", "archive"),
		RetentionDays:    getIntEnv("ARCHIVE_RETENTION_DAYS", 90),
	}

	// Validate required configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.LLMProvider != "ollama" && c.LLMProvider != "gemini" {
		return fmt.Errorf("LLM_PROVIDER must be 'ollama' or 'gemini'")
	}

	if c.LLMProvider == "gemini" && c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER is 'gemini'")
	}

	if c.ContactRecipient != "" {
		if c.SMTPHost == "" || c.SMTPUsername == "" || c.SMTPPassword == "" {
			return fmt.Errorf("SMTP configuration is required when CONTACT_RECIPIENT is set")
		}
	}

	switch c.ArchiveBackend {
	case "azure":
		if c.StorageAccount == "" {
			return fmt.Errorf("AZURE_STORAGE_ACCOUNT is required when ARCHIVE_BACKEND is 'azure'")
		}
	case "local", "disabled":
	default:
		return fmt.Errorf("ARCHIVE_BACKEND must be 'azure', 'local' or 'disabled'")
	}

	if c.RetentionDays < 1 {
		return fmt.Errorf("ARCHIVE_RETENTION_DAYS must be at least 1")
	}

	return nil
}

// SearchEnabled reports whether Google Custom Search credentials are configured
func (c *Config) SearchEnabled() bool {
	return c.GoogleAPIKey != "" && c.GoogleCSEID != ""
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

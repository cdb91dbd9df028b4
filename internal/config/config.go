// Package config provides environment-driven configuration for the content
// engine.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds every runtime setting. Provider keys are required; the rest
// default to a local development setup.
type Config struct {
	// Providers
	GeminiAPIKey string
	GeminiModel  string
	GroqAPIKey   string
	GroqModel    string

	// Persistence
	DatabaseURL string

	// Workflow engine
	N8NWebhookURL string
	N8NAPIURL     string
	N8NAPIKey     string

	// HTTP
	Port       string
	CORSOrigin string
}

// Load reads configuration from the environment. The process must not start
// without provider credentials, so missing keys are an error here rather
// than a failure on first use.
func Load() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   os.Getenv("GEMINI_MODEL"),
		GroqAPIKey:    os.Getenv("GROQ_API_KEY"),
		GroqModel:     os.Getenv("GROQ_MODEL"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		N8NWebhookURL: os.Getenv("N8N_WEBHOOK_URL"),
		N8NAPIURL:     os.Getenv("N8N_API_URL"),
		N8NAPIKey:     os.Getenv("N8N_API_KEY"),
		Port:          getenvDefault("PORT", "5000"),
		CORSOrigin:    getenvDefault("CORS_ORIGIN", "*"),
	}

	var missing []string
	for _, v := range []string{"GEMINI_API_KEY", "GROQ_API_KEY"} {
		if os.Getenv(v) == "" {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// RequireDatabase checks the settings the serve command additionally needs.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("missing required environment variable: DATABASE_URL")
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

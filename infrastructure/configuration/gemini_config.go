package configuration

import (
	"errors"
	"os"
	"strings"
)

// DefaultGeminiModel is used when neither config nor environment names one
const DefaultGeminiModel = "gemini-2.5-pro"

// GeminiConfig represents generative model configuration
type GeminiConfig struct {
	APIKey     string `mapstructure:"api_key"`
	Model      string `mapstructure:"model"`
	ListModels bool   `mapstructure:"list_models"`
}

// GetGeminiConfig returns Gemini configuration from JSON config with
// environment variable fallback. The API key is mandatory; the caller is
// expected to abort startup on error.
func GetGeminiConfig() (*GeminiConfig, error) {
	config := &GeminiConfig{
		APIKey:     getConfigValue(C.Gemini.APIKey, "GOOGLE_API_KEY", ""),
		Model:      getConfigValue(C.Gemini.Model, "GEMINI_MODEL", DefaultGeminiModel),
		ListModels: C.Gemini.ListModels || getEnv("GEMINI_LIST_MODELS", "") == "true",
	}

	if config.APIKey == "" {
		return nil, errors.New("GOOGLE_API_KEY not found in environment or config")
	}
	return config, nil
}

// getConfigValue gets value from environment first, then config, then default
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	// Skip config placeholders such as YOUR_API_KEY
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

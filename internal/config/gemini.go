package config

import "os"

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

func NewGeminiConfig() *GeminiConfig {
	return &GeminiConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Model:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
	}
}

package config

import "os"

type AppConfig struct {
	DebugMode     bool
	ServerConfig  *ServerConfig
	StoreConfig   *StoreConfig
	SandboxConfig *SandboxConfig
	RedisConfig   *RedisConfig
	JwtConfig     *JwtConfig
	GGAuthConfig  *GGAuthConfig
	GeminiConfig  *GeminiConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:     os.Getenv("DEBUG_MODE") == "true",
		ServerConfig:  NewServerConfig(),
		StoreConfig:   NewStoreConfig(),
		SandboxConfig: NewSandboxConfig(),
		RedisConfig:   NewRedisConfig(),
		JwtConfig:     NewJwtConfig(),
		GGAuthConfig:  NewGGAuthConfig(),
		GeminiConfig:  NewGeminiConfig(),
	}
}

// getEnv gets an environment variable with a fallback.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

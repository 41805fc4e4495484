package config

import "os"

type RedisConfig struct {
	DB       int
	Url      string
	Password string
}

// NewRedisConfig reads the Redis connection settings. An empty REDIS_ADDR
// disables Redis-backed features (submission rate limiting).
func NewRedisConfig() *RedisConfig {
	return &RedisConfig{
		DB:       0,
		Url:      os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
}

package config

import (
	"strconv"
	"time"
)

type SandboxConfig struct {
	// Timeout bounds top-level evaluation and each fixture invocation
	// independently.
	Timeout time.Duration
	// SubmitRateLimit is submissions per user per minute; 0 disables the
	// limiter.
	SubmitRateLimit int
}

func NewSandboxConfig() *SandboxConfig {
	ms, err := strconv.Atoi(getEnv("SANDBOX_TIMEOUT_MS", "1000"))
	if err != nil || ms <= 0 {
		ms = 1000
	}
	limit, err := strconv.Atoi(getEnv("SUBMIT_RATE_LIMIT", "30"))
	if err != nil || limit < 0 {
		limit = 30
	}
	return &SandboxConfig{
		Timeout:         time.Duration(ms) * time.Millisecond,
		SubmitRateLimit: limit,
	}
}

package config

import (
	"os"
	"time"
)

type ProblemCacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

func NewProblemCacheConfig() *ProblemCacheConfig {
	return &ProblemCacheConfig{
		Enabled: os.Getenv("PROBLEM_CACHE_DISABLED") != "true",
		TTL:     getSecondsEnv("PROBLEM_CACHE_TTL_SEC", 300),
	}
}

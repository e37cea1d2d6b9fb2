package config

import (
	"os"
	"time"
)

type ExecutorConfig struct {
	Url         string
	AccessToken string
	// Timeout bounds a single run, compilation included
	Timeout time.Duration
}

func NewExecutorConfig() *ExecutorConfig {
	return &ExecutorConfig{
		Url:         getEnv("COMPILER_URL", "http://localhost:8000"),
		AccessToken: os.Getenv("COMPILER_ACCESS_TOKEN"),
		Timeout:     getSecondsEnv("COMPILER_TIMEOUT_SEC", 10),
	}
}

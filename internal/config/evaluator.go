package config

import (
	"os"
	"time"
)

type EvaluatorConfig struct {
	PersistTimeout time.Duration
	Dedupe         bool
	RunLockTTL     time.Duration
}

func NewEvaluatorConfig() *EvaluatorConfig {
	return &EvaluatorConfig{
		PersistTimeout: getSecondsEnv("PERSIST_TIMEOUT_SEC", 5),
		Dedupe:         os.Getenv("EVALUATION_DEDUPE") == "true",
		RunLockTTL:     getSecondsEnv("EVALUATION_LOCK_TTL_SEC", 120),
	}
}

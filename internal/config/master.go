package config

import "os"

type AppConfig struct {
	DebugMode          bool
	HttpConfig         *HttpConfig
	LogConfig          *LogConfig
	RedisConfig        *RedisConfig
	PostgresConfig     *PostgresConfig
	JwtConfig          *JwtConfig
	GGAuthConfig       *GGAuthConfig
	ExecutorConfig     *ExecutorConfig
	EvaluatorConfig    *EvaluatorConfig
	ProblemCacheConfig *ProblemCacheConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:          os.Getenv("DEBUG_MODE") == "true",
		HttpConfig:         NewHttpConfig(),
		LogConfig:          NewLogConfig(),
		RedisConfig:        NewRedisConfig(),
		PostgresConfig:     NewPostgresConfig(),
		JwtConfig:          NewJwtConfig(),
		GGAuthConfig:       NewGGAuthConfig(),
		ExecutorConfig:     NewExecutorConfig(),
		EvaluatorConfig:    NewEvaluatorConfig(),
		ProblemCacheConfig: NewProblemCacheConfig(),
	}
}

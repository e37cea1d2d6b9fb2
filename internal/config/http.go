package config

import "time"

type HttpConfig struct {
	Port            int
	ServiceName     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func NewHttpConfig() *HttpConfig {
	return &HttpConfig{
		Port:        getIntEnv("HTTP_PORT", 8082),
		ServiceName: getEnv("SERVICE_NAME", "codearena"),
		ReadTimeout: getSecondsEnv("HTTP_READ_TIMEOUT_SEC", 15),
		// a whole evaluation runs inside one request
		WriteTimeout:    getSecondsEnv("HTTP_WRITE_TIMEOUT_SEC", 120),
		ShutdownTimeout: getSecondsEnv("HTTP_SHUTDOWN_TIMEOUT_SEC", 5),
	}
}

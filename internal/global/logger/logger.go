package logger

import "gitlab.com/codearena.net/internal/adapter/logging"

var Logger = logging.NewZapLogger("info")

// SetLogger replaces the package logger, typically once from main
func SetLogger(l *logging.ZapLogger) {
	if l != nil {
		Logger = l
	}
}

func Info(msg string, args ...interface{}) {
	Logger.Info(msg, args...)
}

func Error(msg string, args ...interface{}) {
	Logger.Error(msg, args...)
}

func Debug(msg string, args ...interface{}) {
	Logger.Debug(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	Logger.Warn(msg, args...)
}

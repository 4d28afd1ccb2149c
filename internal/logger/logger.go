package logger

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	logEnvKey     = "LOG_ENV"
	defaultLogEnv = "none"
)

var (
	logger = zap.NewNop()
	quiet  = true
)

func init() {
	if err := FromEnv(); err != nil {
		log.Fatal("logger init", err)
	}
}

// FromEnv configures the logger from the LOG_ENV variable.
// The console UI owns stdout, so logging is off unless asked for.
func FromEnv() error {
	env := os.Getenv(logEnvKey)
	if env == "" {
		env = defaultLogEnv
	}
	return Setup(env)
}

func Setup(env string) error {
	var (
		l   *zap.Logger
		err error
	)
	switch env {
	case "dev":
		l, err = zap.NewDevelopment()
	case "prod":
		l, err = zap.NewProduction()
	case "none":
		l = zap.NewNop()
	default:
		return errors.Errorf("unknown log env %q", env)
	}
	if err != nil {
		return errors.Wrap(err, "build logger")
	}

	logger = l
	quiet = env == "none"
	return nil
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	fatalLogger().Fatal(msg, fields...)
}

// fatalLogger writes to stderr even when logging is off, so the process never exits silently.
func fatalLogger() *zap.Logger {
	if !quiet {
		return logger
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return logger
	}
	return l
}

func Sync() {
	_ = logger.Sync()
}

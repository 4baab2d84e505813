package logger

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// Init builds the global logger. level is one of debug, info, warn, error;
// asJSON switches between the production JSON encoder and the console one.
func Init(level string, asJSON bool) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if !asJSON {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("logger.Init: %w", err)
	}

	mu.Lock()
	global = l
	mu.Unlock()

	return nil
}

// L returns the current global logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// SetNopLogger silences the global logger. Used by tests.
func SetNopLogger() {
	mu.Lock()
	global = zap.NewNop()
	mu.Unlock()
}

func Debug(_ context.Context, msg string, fields ...Field) { L().Debug(msg, fields...) }
func Info(_ context.Context, msg string, fields ...Field)  { L().Info(msg, fields...) }
func Warn(_ context.Context, msg string, fields ...Field)  { L().Warn(msg, fields...) }
func Error(_ context.Context, msg string, fields ...Field) { L().Error(msg, fields...) }

// Logger is a child logger carrying preset fields.
type Logger struct {
	l *zap.Logger
}

// With returns a child logger with the given fields attached to every entry.
func With(fields ...Field) *Logger {
	return &Logger{l: L().With(fields...)}
}

func (lg *Logger) Debug(_ context.Context, msg string, fields ...Field) { lg.l.Debug(msg, fields...) }
func (lg *Logger) Info(_ context.Context, msg string, fields ...Field)  { lg.l.Info(msg, fields...) }
func (lg *Logger) Warn(_ context.Context, msg string, fields ...Field)  { lg.l.Warn(msg, fields...) }
func (lg *Logger) Error(_ context.Context, msg string, fields ...Field) { lg.l.Error(msg, fields...) }

// NoopLogger satisfies container/test logger interfaces without output.
type NoopLogger struct{}

func (NoopLogger) Info(context.Context, string, ...zap.Field)  {}
func (NoopLogger) Error(context.Context, string, ...zap.Field) {}

func parseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

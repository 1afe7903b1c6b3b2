// Package logger wires zap behind a logr.Logger for the mdtable CLI.
package logger

import (
	"context"
	"errors"
	"io"
	"sync"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerContextKey struct{}

const (
	MessageKey = "msg"
	LevelKey   = "level"
)

var (
	mu sync.Mutex

	// globalZap backs Sync; globalLogr is what callers get without a context.
	globalZap  *zap.Logger
	globalLogr *logr.Logger

	discard = logr.Discard()
)

// ParseLevel converts a level name ("debug", "info", "warn", "error") into a
// zap level. The empty string means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(s)
}

// New builds a logger writing human-readable lines to w at the given
// minimum level. The returned *zap.Logger must be synced by the caller.
func New(w io.Writer, level zapcore.Level) (logr.Logger, *zap.Logger) {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""
	encoderCfg.MessageKey = MessageKey
	encoderCfg.LevelKey = LevelKey
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
	zl := zap.New(core, zap.AddStacktrace(zap.DPanicLevel))
	return zapr.NewLogger(zl), zl
}

// Setup replaces the global logger with one writing to w.
func Setup(w io.Writer, level zapcore.Level) *logr.Logger {
	mu.Lock()
	defer mu.Unlock()
	if globalZap != nil {
		_ = globalZap.Sync()
	}
	l, zl := New(w, level)
	globalZap = zl
	globalLogr = &l
	return globalLogr
}

// WithLogger returns a context carrying log.
func WithLogger(ctx context.Context, log *logr.Logger) context.Context {
	if lp, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok && lp == log {
		return ctx
	}
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext returns the logger stored in ctx, falling back to the global
// logger and then to a no-op logger.
func FromContext(ctx context.Context) *logr.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		return log
	}
	return Global()
}

// Global returns the global logger, or a no-op logger before Setup.
func Global() *logr.Logger {
	mu.Lock()
	defer mu.Unlock()
	if globalLogr != nil {
		return globalLogr
	}
	return &discard
}

// Sync flushes buffered log entries. Errors from syncing terminals and pipes
// are ignored.
func Sync() error {
	mu.Lock()
	zl := globalZap
	mu.Unlock()
	if zl == nil {
		return nil
	}
	if err := zl.Sync(); err != nil && !isIgnorableSyncError(err) {
		return err
	}
	return nil
}

func isIgnorableSyncError(err error) bool {
	return errors.Is(err, syscall.ENOTTY) ||
		errors.Is(err, syscall.EINVAL) ||
		errors.Is(err, syscall.EIO) ||
		errors.Is(err, syscall.EBADF)
}

package calculation

import (
	"fmt"
	"log/slog"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op so the engines stay
// pure and dependency-free.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// SlogLogger adapts a *slog.Logger to the engine Logger interface.
type SlogLogger struct {
	L *slog.Logger
}

func (s SlogLogger) logf(level slog.Level, format string, args ...any) {
	if s.L == nil {
		return
	}
	switch level {
	case slog.LevelDebug:
		s.L.Debug(fmt.Sprintf(format, args...))
	case slog.LevelWarn:
		s.L.Warn(fmt.Sprintf(format, args...))
	case slog.LevelError:
		s.L.Error(fmt.Sprintf(format, args...))
	default:
		s.L.Info(fmt.Sprintf(format, args...))
	}
}

func (s SlogLogger) Debugf(format string, args ...any) { s.logf(slog.LevelDebug, format, args...) }
func (s SlogLogger) Infof(format string, args ...any)  { s.logf(slog.LevelInfo, format, args...) }
func (s SlogLogger) Warnf(format string, args ...any)  { s.logf(slog.LevelWarn, format, args...) }
func (s SlogLogger) Errorf(format string, args ...any) { s.logf(slog.LevelError, format, args...) }

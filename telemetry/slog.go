package telemetry

import (
	"fmt"
	"log/slog"
)

// SlogLogger implements Logger using a [log/slog](https://pkg.go.dev/log/slog) logger.
type SlogLogger struct {
	log *slog.Logger
}

// NewSlogLogger creates a new SlogLogger using a given [slog.Logger]
func NewSlogLogger(log *slog.Logger) SlogLogger {
	return SlogLogger{log: log}
}

func (t SlogLogger) Debug(component, msg string, args ...any) {
	t.log.Debug(fmt.Sprintf("[%s] %s", component, msg), args...)
}

func (t SlogLogger) Info(component, msg string, args ...any) {
	t.log.Info(fmt.Sprintf("[%s] %s", component, msg), args...)
}

func (t SlogLogger) Warn(component, msg string, args ...any) {
	t.log.Warn(fmt.Sprintf("[%s] %s", component, msg), args...)
}

func (t SlogLogger) Error(component, msg string, args ...any) {
	t.log.Error(fmt.Sprintf("[%s] %s", component, msg), args...)
}

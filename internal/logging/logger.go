// Package logging writes key=value log lines tagged with the request id.
package logging

import (
	"context"
	"log"
	"strings"
	"sync/atomic"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var threshold atomic.Int32

func init() {
	threshold.Store(int32(LevelInfo))
}

// SetLevel sets the global threshold from a LOG_LEVEL value; unknown values mean info.
func SetLevel(s string) {
	threshold.Store(int32(ParseLevel(s)))
}

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func enabled(l Level) bool {
	return int32(l) >= threshold.Load()
}

type requestIDKey struct{}

// WithRequestID stores the request id in ctx.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request id from ctx.
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides structured logging for services
type Logger struct {
	requestID string
}

// NewLogger creates a logger with request context
func NewLogger(ctx context.Context) *Logger {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "-"
	}
	return &Logger{requestID: requestID}
}

func (l *Logger) Debugf(operation string, format string, args ...interface{}) {
	l.logf(LevelDebug, "debug", operation, format, args...)
}

func (l *Logger) Infof(operation string, format string, args ...interface{}) {
	l.logf(LevelInfo, "info", operation, format, args...)
}

func (l *Logger) Warnf(operation string, format string, args ...interface{}) {
	l.logf(LevelWarn, "warn", operation, format, args...)
}

// Error logs an error with context
func (l *Logger) Error(operation string, err error) {
	l.logf(LevelError, "error", operation, "error=%v", err)
}

func (l *Logger) logf(level Level, tag, operation, format string, args ...interface{}) {
	if !enabled(level) {
		return
	}
	log.Printf("[%s] request_id=%s operation=%s "+format, append([]interface{}{tag, l.requestID, operation}, args...)...)
}

package parser

import (
	"context"
	"log/slog"
)

// Logger is the interface oasguard uses for structured logging.
//
// It is minimal yet compatible with popular logging libraries including
// log/slog, zap, and zerolog. Attrs are alternating key-value pairs,
// following the log/slog convention:
//
//	logger.Debug("compiled checker", "part", "query", "fields", 3)
//
// The guard logs only at construction time (operation lookup, reference
// resolution, schema compilation); per-request checking never logs.
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)
	With(attrs ...any) Logger
}

// NewSlogAdapter wraps a standard library slog.Logger in the Logger
// interface:
//
//	handler := slog.NewJSONHandler(os.Stderr, nil)
//	logger := parser.NewSlogAdapter(slog.New(handler))
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &slogAdapter{logger: logger}
}

type slogAdapter struct {
	logger *slog.Logger
}

func (a *slogAdapter) Debug(msg string, attrs ...any) {
	a.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, argsToAttrs(attrs)...)
}

func (a *slogAdapter) Info(msg string, attrs ...any) {
	a.logger.LogAttrs(context.Background(), slog.LevelInfo, msg, argsToAttrs(attrs)...)
}

func (a *slogAdapter) Warn(msg string, attrs ...any) {
	a.logger.LogAttrs(context.Background(), slog.LevelWarn, msg, argsToAttrs(attrs)...)
}

func (a *slogAdapter) Error(msg string, attrs ...any) {
	a.logger.LogAttrs(context.Background(), slog.LevelError, msg, argsToAttrs(attrs)...)
}

func (a *slogAdapter) With(attrs ...any) Logger {
	return &slogAdapter{logger: a.logger.With(attrs...)}
}

// argsToAttrs converts alternating key-value pairs to slog.Attr values.
// A trailing key without a value is paired with "(MISSING)".
func argsToAttrs(args []any) []slog.Attr {
	attrs := make([]slog.Attr, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = "!BADKEY"
		}
		if i+1 < len(args) {
			attrs = append(attrs, slog.Any(key, args[i+1]))
		} else {
			attrs = append(attrs, slog.String(key, "(MISSING)"))
		}
	}
	return attrs
}

// NopLogger returns a Logger that discards everything. It is the
// default for guards constructed without WithLogger.
func NopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) With(...any) Logger   { return nopLogger{} }

// Copyright (c) 2025 Mockauth
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	apperrors "mockauth/cli/internal/errors"
)

type ctxKey string

const sessionIDKey ctxKey = "session_id"

// Config selects level ("debug", "info", ...) and encoding ("console" or "json").
type Config struct {
	Level    string
	Encoding string
}

// New builds a zap.Logger writing to stderr so log lines never mix with shell output.
func New(cfg Config) (*zap.Logger, error) {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter builds a zap.Logger writing to w.
func NewWithWriter(cfg Config, w io.Writer) (*zap.Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.WarnLevel
	if cfg.Level != "" {
		if err := level.Set(cfg.Level); err != nil {
			return nil, apperrors.Wrap(apperrors.LoggerInit, "invalid log level "+cfg.Level, err)
		}
	}

	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	default:
		return nil, apperrors.New(apperrors.LoggerInit, "unknown log encoding "+cfg.Encoding)
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)

	return zap.New(core), nil
}

// ContextWithSessionID attaches a shell session ID to ctx.
func ContextWithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// WithSessionID enriches the logger with the session ID stored in the context.
func WithSessionID(ctx context.Context, base *zap.Logger) *zap.Logger {
	if ctx == nil || base == nil {
		return base
	}
	if id, ok := ctx.Value(sessionIDKey).(string); ok && id != "" {
		return base.With(zap.String(string(sessionIDKey), id))
	}
	return base
}

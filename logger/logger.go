// Package logger wraps zap with a process-wide default and context scoping.
//
// Initialise once in main:
//
//	logger.Init(logger.Config{Env: "prod", Level: "info"})
//	defer logger.L().Sync()
//
// Scope per attempt and read it back further down the call chain:
//
//	ctx = logger.ToContext(ctx, logger.L().With(logger.AttemptID(id)))
//	logger.From(ctx).Info("resolving identity")
package logger

import (
	"context"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the encoder and level.
type Config struct {
	// Env is "dev" (console, colours) or "prod" (JSON). Default "dev".
	Env string `yaml:"env"`
	// Level is debug, info, warn or error. Default info.
	Level string `yaml:"level"`
	// ServiceName is attached to every entry when set.
	ServiceName string `yaml:"service"`
}

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// Init builds a logger from cfg and installs it as the default.
func Init(cfg Config) *zap.Logger {
	l := New(cfg)
	global.Store(l)
	return l
}

// L returns the default logger. It is a no-op logger until Init is called.
func L() *zap.Logger {
	return global.Load()
}

// New builds a logger without touching the default.
func New(cfg Config) *zap.Logger {
	level := zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	var zcfg zap.Config
	if strings.EqualFold(cfg.Env, "prod") {
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zcfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zcfg.DisableStacktrace = true
	}
	zcfg.Level = level
	zcfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	l, err := zcfg.Build()
	if err != nil {
		l, _ = zap.NewProduction()
	}
	if cfg.ServiceName != "" {
		l = l.With(zap.String("service", cfg.ServiceName))
	}
	return l
}

func parseLevel(lvl string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

type ctxKey struct{}

// ToContext returns a copy of ctx carrying l.
func ToContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, if any.
func FromContext(ctx context.Context) (*zap.Logger, bool) {
	if ctx == nil {
		return nil, false
	}
	l, ok := ctx.Value(ctxKey{}).(*zap.Logger)
	return l, ok && l != nil
}

// From returns the logger stored in ctx, or the default.
func From(ctx context.Context) *zap.Logger {
	if l, ok := FromContext(ctx); ok {
		return l
	}
	return L()
}

// With scopes the context logger with extra fields.
func With(ctx context.Context, fields ...zap.Field) context.Context {
	return ToContext(ctx, From(ctx).With(fields...))
}

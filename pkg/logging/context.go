package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

// loggerKey is the context key for the logger.
const loggerKey contextKey = iota

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}

	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}

	return Default()
}

// Ctx returns a logger from the context or the default logger.
// This is a shorter alias for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithField adds a single field to the logger in the context.
func WithField(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx)
	newLogger := logger.With().Str(key, value).Logger()
	return WithLogger(ctx, &newLogger)
}

// WithPlatform adds the grade-export platform to the logger context.
func WithPlatform(ctx context.Context, platform string) context.Context {
	return WithField(ctx, "platform", platform)
}

// WithFile adds the current input or output file to the logger context.
func WithFile(ctx context.Context, path string) context.Context {
	return WithField(ctx, "file", path)
}

// WithStage adds the pipeline stage to the logger context.
func WithStage(ctx context.Context, stage string) context.Context {
	return WithField(ctx, "stage", stage)
}

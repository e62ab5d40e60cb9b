package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/classkit/gradeport/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithPlatform(ctx, "codehs")
	ctx = logging.WithStage(ctx, "classify")
	ctx = logging.WithFile(ctx, "grades.csv")

	logging.FromContext(ctx).Info().Msg("selected columns")

	testLogger.AssertContains(t, "codehs")
	testLogger.AssertContains(t, "classify")
	testLogger.AssertContains(t, "grades.csv")
	testLogger.AssertContains(t, "selected columns")
}

func TestFromContextFallback(t *testing.T) {
	assert.NotNil(t, logging.FromContext(nil))
	assert.NotNil(t, logging.FromContext(context.Background()))
	assert.Equal(t, logging.FromContext(context.Background()), logging.Ctx(context.Background()))
}

func TestConfigLevels(t *testing.T) {
	t.Run("DefaultConfig returns sensible defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.Equal(t, "stderr", cfg.Output)
	})

	t.Run("error level suppresses info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "error", Format: "json"})
		logger = logger.Output(buf)

		logger.Info().Msg("info")
		logger.Error().Msg("error")

		assert.NotContains(t, buf.String(), `"level":"info"`)
		assert.Contains(t, buf.String(), `"level":"error"`)
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "shouting", Format: "json"})
		logger = logger.Output(buf)

		logger.Info().Msg("still here")
		assert.Contains(t, buf.String(), "still here")
	})
}

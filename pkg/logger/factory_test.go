package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/dmitrymomot/datevalidator/pkg/environment"
	"github.com/dmitrymomot/datevalidator/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("text format and static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatText),
			logger.WithAttr(logger.Component("datecheck")),
		)
		log.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "component=datecheck")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("context extractors", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, environment.LoggerExtractor()),
		)

		ctx := environment.WithContext(context.Background(), environment.Staging)
		log.With("batch", "a").WithGroup("g").InfoContext(ctx, "checked", slog.String("k", "v"))

		entry := decode(t, buf)
		assert.Equal(t, "a", entry["batch"])
		group, ok := entry["g"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "v", group["k"])
		assert.Equal(t, "staging", group["env"])
	})

	t.Run("extractor skipped when context has no value", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(environment.LoggerExtractor()))
		log.InfoContext(context.Background(), "checked")
		assert.NotContains(t, decode(t, buf), "env")
	})

	t.Run("environment defaults", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment(environment.Production, "datecheck"),
			logger.WithContextExtractors(environment.LoggerExtractor()),
			logger.WithOutput(buf),
		)
		ctx := environment.WithContext(context.Background(), environment.Production)
		log.DebugContext(ctx, "dropped")
		log.InfoContext(ctx, "kept")

		entry := decode(t, buf)
		assert.Equal(t, "datecheck", entry["service"])
		assert.Equal(t, "production", entry["env"])

		buf.Reset()
		log = logger.New(logger.WithEnvironment("", ""), logger.WithOutput(buf))
		log.Debug("kept")
		assert.Contains(t, buf.String(), "msg=kept")
		assert.NotContains(t, buf.String(), "env=")
		assert.NotContains(t, buf.String(), "service=")
	})

	t.Run("discard", func(t *testing.T) {
		assert.False(t, logger.Discard().Enabled(context.Background(), slog.LevelError+100))
	})
}

func TestParseFormat(t *testing.T) {
	f, err := logger.ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatJSON, f)

	f, err = logger.ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatText, f)

	_, err = logger.ParseFormat("xml")
	assert.ErrorIs(t, err, logger.ErrInvalidFormat)
}

func TestParseLevel(t *testing.T) {
	l, err := logger.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = logger.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = logger.ParseLevel("loud")
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)
}

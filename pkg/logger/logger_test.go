package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utaipei/fundraising/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestNew_JSONWithContextValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "fundraise")),
		logger.WithContextValue("request_id", ctxKey{}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.InfoContext(ctx, "validated", logger.ProjectID("library"), logger.Amount(5000), logger.Field("email"))

	m := decode(t, &buf)
	assert.Equal(t, "validated", m["msg"])
	assert.Equal(t, "fundraise", m["service"])
	assert.Equal(t, "req-1", m["request_id"])
	assert.Equal(t, "library", m["project_id"])
	assert.EqualValues(t, 5000, m["amount"])
	assert.Equal(t, "email", m["field"])
}

func TestNew_ContextWithoutValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithContextValue("request_id", ctxKey{}))
	log.InfoContext(context.Background(), "no id")

	_, ok := decode(t, &buf)["request_id"]
	assert.False(t, ok)
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevelName("warn"))
	log.Info("dropped")
	assert.Zero(t, buf.Len())
	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("development logs text at debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithEnvironment("development", "fundraise"), logger.WithOutput(&buf))
		log.Debug("hello")
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "env=development")
		assert.Contains(t, buf.String(), "service=fundraise")
	})

	t.Run("prod alias logs json at info", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithEnvironment("prod", "fundraise"), logger.WithOutput(&buf))
		log.Debug("dropped")
		assert.Zero(t, buf.Len())
		log.Info("hello")
		assert.Equal(t, "production", decode(t, &buf)["env"])
	})
}

func TestWithFormat_PanicsOnUnknown(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	assert.NotPanics(t, func() { logger.New(logger.WithFormat("TEXT")) })
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"", slog.LevelInfo, false},
		{"verbose", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := logger.ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.Equal(t, "component", logger.Component("api").Key)
	assert.Equal(t, "lang", logger.Lang("zh-TW").Key)
}

package app

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"INFO":  slog.LevelInfo,
	}
	for in, want := range cases {
		level, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, level, in)
	}

	_, err := ParseLogLevel("loud")
	assert.ErrorContains(t, err, "invalid log-level")
}

func TestParseLogFormat(t *testing.T) {
	for _, in := range []string{"text", "json", "JSON"} {
		format, err := ParseLogFormat(in)
		require.NoError(t, err, in)
		assert.NotEmpty(t, format)
	}

	_, err := ParseLogFormat("xml")
	assert.ErrorContains(t, err, "invalid log-format")
}

func TestNewLogger(t *testing.T) {
	t.Run("json handler emits json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := newLogger(slog.LevelInfo, "json", buf)
		logger.Info("hello")
		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})

	t.Run("text handler emits key=value", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := newLogger(slog.LevelInfo, "text", buf)
		logger.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters lower records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := newLogger(slog.LevelError, "text", buf)
		logger.Info("quiet")
		assert.Empty(t, buf.String())
	})
}

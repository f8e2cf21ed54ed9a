package cli

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gridlabelgo/internal/export"
	"github.com/vk/gridlabelgo/internal/qr"
)

func TestParseDefaults(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"parts.csv"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "parts.csv", cfg.PartsPath)
	assert.Equal(t, "labels", cfg.OutputDir)
	assert.Empty(t, cfg.TemplatePath)
	assert.Empty(t, cfg.ProfilePath)
	assert.Equal(t, export.FormatPNG, cfg.Format)
	assert.Equal(t, qr.ModeCompact, cfg.QRMode)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestParsePathSelection(t *testing.T) {
	t.Run("long flag wins over positional", func(t *testing.T) {
		cfg, _, err := Parse([]string{"--parts", "a.csv", "b.csv"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "a.csv", cfg.PartsPath)
	})

	t.Run("shorthand flag", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-p", "a.csv"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "a.csv", cfg.PartsPath)
	})

	t.Run("no path prints usage and exits cleanly", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, shouldExit, err := Parse(nil, out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})
}

func TestParseOptions(t *testing.T) {
	cfg, _, err := Parse([]string{
		"--format", "pdf",
		"--qr-type", "standard",
		"--template", "custom.svg",
		"--profile", "labels.hcl",
		"--output-dir", "out",
		"--log-format", "json",
		"--log-level", "debug",
		"parts.csv",
	}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, export.FormatPDF, cfg.Format)
	assert.Equal(t, qr.ModeStandard, cfg.QRMode)
	assert.Equal(t, "custom.svg", cfg.TemplatePath)
	assert.Equal(t, "labels.hcl", cfg.ProfilePath)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseQuietOverridesLevel(t *testing.T) {
	cfg, _, err := Parse([]string{"-q", "--log-level", "debug", "parts.csv"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, cfg.LogLevel)
}

func TestParseValidation(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"--nope"}, "flag provided but not defined"},
		{"bad format", []string{"--format", "gif", "parts.csv"}, "unsupported output format"},
		{"bad qr type", []string{"--qr-type", "micro", "parts.csv"}, "unsupported code mode"},
		{"bad log format", []string{"--log-format", "xml", "parts.csv"}, "invalid log-format"},
		{"bad log level", []string{"--log-level", "loud", "parts.csv"}, "invalid log-level"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.False(t, shouldExit)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "validation failures must be ExitErrors")
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}

func TestParseHelpFlag(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

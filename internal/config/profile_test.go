package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, 36.0, p.WidthMM)
	assert.Equal(t, 7.7, p.HeightMM)
	assert.Equal(t, 150.0, p.Density)
	assert.Equal(t, 5*time.Second, p.ShortenerTimeout)
}

func TestLoadBytes(t *testing.T) {
	t.Run("empty profile keeps defaults", func(t *testing.T) {
		p, err := LoadBytes(nil, "empty.hcl")
		require.NoError(t, err)
		assert.Equal(t, Default(), p)
	})

	t.Run("partial profile overrides only what it names", func(t *testing.T) {
		src := []byte(`
label {
  density = 300
}
`)
		p, err := LoadBytes(src, "partial.hcl")
		require.NoError(t, err)
		assert.Equal(t, 300.0, p.Density)
		assert.Equal(t, Default().WidthMM, p.WidthMM)
		assert.Equal(t, Default().HeightMM, p.HeightMM)
	})

	t.Run("profiles may derive values from defaults", func(t *testing.T) {
		src := []byte(`
label {
  height_mm = defaults.height_mm * 2
  width_mm  = defaults.width_mm
}
`)
		p, err := LoadBytes(src, "derived.hcl")
		require.NoError(t, err)
		assert.InDelta(t, 15.4, p.HeightMM, 1e-9)
		assert.Equal(t, 36.0, p.WidthMM)
	})

	t.Run("all blocks decode", func(t *testing.T) {
		src := []byte(`
label {
  width_mm  = 62
  height_mm = 12
  density   = 300
}

icons {
  split_scale       = 0.4
  split_side_offset = 0.6
}

shortener {
  endpoint   = "https://shortener.internal/create"
  timeout_ms = 1500
}
`)
		p, err := LoadBytes(src, "full.hcl")
		require.NoError(t, err)
		assert.Equal(t, 62.0, p.WidthMM)
		assert.Equal(t, 12.0, p.HeightMM)
		assert.Equal(t, 0.4, p.SplitScale)
		assert.Equal(t, 0.6, p.SplitSideOffset)
		assert.Equal(t, "https://shortener.internal/create", p.ShortenerEndpoint)
		assert.Equal(t, 1500*time.Millisecond, p.ShortenerTimeout)
	})

	t.Run("syntax errors are reported", func(t *testing.T) {
		_, err := LoadBytes([]byte(`label {`), "broken.hcl")
		assert.Error(t, err)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		_, err := LoadBytes([]byte("label {\n  width_mm = -1\n}\n"), "negative.hcl")
		assert.ErrorContains(t, err, "dimensions must be positive")

		_, err = LoadBytes([]byte("icons {\n  split_scale = 1.5\n}\n"), "split.hcl")
		assert.ErrorContains(t, err, "fractions of the design square")
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads a profile file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "labels.hcl")
		require.NoError(t, os.WriteFile(path, []byte("label {\n  density = 203\n}\n"), 0o644))

		p, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 203.0, p.Density)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
		assert.Error(t, err)
	})
}

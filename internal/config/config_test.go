package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/edu-luc-cs-leo/comp-271-su-2025-week-05-jknott1/array"
	"github.com/edu-luc-cs-leo/comp-271-su-2025-week-05-jknott1/internal/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, 4, cfg.Capacity)
	assert.Equal(t, 0, cfg.MaxCapacity)
	assert.Equal(t, config.EqualityValue, cfg.Equality)
	assert.Equal(t, "null", cfg.EmptyMarker)
	assert.NoError(t, cfg.Validate())

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)
}

func TestLoad(t *testing.T) {
	t.Run("values overlay defaults", func(t *testing.T) {
		path := writeFile(t, "capacity: 2\nequality: identity\nlog_level: debug\n")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Capacity)
		assert.Equal(t, config.EqualityIdentity, cfg.Equality)
		assert.Equal(t, "null", cfg.EmptyMarker)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("non positive capacity is accepted", func(t *testing.T) {
		cfg, err := config.Load(writeFile(t, "capacity: -3\n"))
		require.NoError(t, err)
		assert.Equal(t, -3, cfg.Capacity)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "capacity: [1, 2\n"))
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{name: "unknown equality", mutate: func(c *config.Config) { c.Equality = "fuzzy" }},
		{name: "negative max capacity", mutate: func(c *config.Config) { c.MaxCapacity = -1 }},
		{name: "unknown log level", mutate: func(c *config.Config) { c.LogLevel = "loud" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrInvalidConfig))
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxCapacity = 8
	cfg.EmptyMarker = "_"

	a := array.New[string](1, cfg.Options()...)
	assert.Equal(t, `["_"]`, a.String())

	for i := 0; i < 8; i++ {
		require.NoError(t, a.Append("x"))
	}
	assert.Equal(t, 8, a.Cap())

	err := a.Append("overflow")
	assert.True(t, errors.Is(err, array.ErrAllocationFailure))
}

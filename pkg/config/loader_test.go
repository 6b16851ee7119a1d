package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrymomot/qrstudio/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Addr    string        `env:"TEST_ADDR" envDefault:":8080"`
	Quiet   time.Duration `env:"TEST_QUIET" envDefault:"300ms"`
	Retries int           `env:"TEST_RETRIES" envDefault:"3"`
}

type requiredConfig struct {
	Token string `env:"TEST_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 300*time.Millisecond, cfg.Quiet)
		assert.Equal(t, 3, cfg.Retries)
	})

	t.Run("reads environment overrides", func(t *testing.T) {
		t.Setenv("TEST_ADDR", ":9090")
		t.Setenv("TEST_QUIET", "1s")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, time.Second, cfg.Quiet)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.True(t, errors.Is(err, config.ErrNilPointer))
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)

		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})

	t.Run("unparsable value fails", func(t *testing.T) {
		t.Setenv("TEST_RETRIES", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)

		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("passes on success", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}

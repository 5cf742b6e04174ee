package config_test

import (
	"os"
	"sync"
	"testing"

	"github.com/dmitrymomot/datevalidator/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkConfig struct {
	Format      string   `env:"CFGTEST_FORMAT" envDefault:"medium"`
	Locale      string   `env:"CFGTEST_LOCALE" envDefault:"en-US"`
	TimeZone    string   `env:"CFGTEST_TIME_ZONE" envDefault:"UTC"`
	Concurrency int      `env:"CFGTEST_CONCURRENCY" envDefault:"4"`
	Locales     []string `env:"CFGTEST_LOCALES" envSeparator:","`
}

type defaultsConfig struct {
	Format string `env:"CFGTEST_DEFAULT_FORMAT" envDefault:"medium"`
	Strict bool   `env:"CFGTEST_DEFAULT_STRICT" envDefault:"true"`
}

type requiredConfig struct {
	Min string `env:"CFGTEST_REQUIRED_MIN,required"`
}

type badTypeConfig struct {
	Concurrency int `env:"CFGTEST_BAD_CONCURRENCY"`
}

func unsetCheckEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CFGTEST_FORMAT", "CFGTEST_LOCALE", "CFGTEST_TIME_ZONE", "CFGTEST_CONCURRENCY", "CFGTEST_LOCALES"} {
		require.NoError(t, os.Unsetenv(key))
	}
	t.Cleanup(func() {
		for _, key := range []string{"CFGTEST_FORMAT", "CFGTEST_LOCALE", "CFGTEST_TIME_ZONE", "CFGTEST_CONCURRENCY", "CFGTEST_LOCALES"} {
			_ = os.Unsetenv(key)
		}
	})
	config.ResetCache()
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()
		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "medium", cfg.Format)
		assert.True(t, cfg.Strict)
	})

	t.Run("environment", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("CFGTEST_FORMAT", "yyyy-MM-dd")
		t.Setenv("CFGTEST_CONCURRENCY", "16")

		var cfg checkConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "yyyy-MM-dd", cfg.Format)
		assert.Equal(t, "en-US", cfg.Locale)
		assert.Equal(t, 16, cfg.Concurrency)
	})

	t.Run("cached per type", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("CFGTEST_FORMAT", "first")

		var first checkConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("CFGTEST_FORMAT", "second")
		var second checkConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Format)

		require.NoError(t, config.ForceReloadConfig(&second))
		assert.Equal(t, "second", second.Format)
	})

	t.Run("concurrent loads", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("CFGTEST_FORMAT", "php:Y-m-d")

		var wg sync.WaitGroup
		results := make([]checkConfig, 16)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, config.Load(&results[i]))
			}()
		}
		wg.Wait()

		for _, cfg := range results {
			assert.Equal(t, "php:Y-m-d", cfg.Format)
		}
	})

	t.Run("required missing", func(t *testing.T) {
		config.ResetCache()
		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("bad value", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("CFGTEST_BAD_CONCURRENCY", "many")
		var cfg badTypeConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[checkConfig](nil), config.ErrNilPointer)
		assert.ErrorIs(t, config.ForceReloadConfig[checkConfig](nil), config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		unsetCheckEnv(t)
		require.NoError(t, config.LoadEnv("testdata/.env.datecheck"))

		var cfg checkConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "php:Y-m-d", cfg.Format)
		assert.Equal(t, "en-GB", cfg.Locale)
		assert.Equal(t, "UTC", cfg.TimeZone)
		assert.Equal(t, 8, cfg.Concurrency)
		assert.Equal(t, []string{"en", "de", "ru"}, cfg.Locales)
	})

	t.Run("later files win", func(t *testing.T) {
		unsetCheckEnv(t)
		require.NoError(t, config.LoadEnv("testdata/.env.datecheck", "testdata/.env.override"))

		var cfg checkConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "short", cfg.Format)
		assert.Equal(t, "en-GB", cfg.Locale)
		assert.Equal(t, "Europe/Berlin", cfg.TimeZone)
	})

	t.Run("no files", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})

	t.Run("missing file", func(t *testing.T) {
		assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
		unsetCheckEnv(t)
	})
}

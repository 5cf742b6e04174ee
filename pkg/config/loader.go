package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into v based on its `env` field tags.
// The default .env file of the working directory is read once, if present.
// Each configuration type is parsed only once; later calls for the same type
// copy the cached value.
//
// Example:
//
//	type Config struct {
//		Format   string `env:"DATECHECK_FORMAT" envDefault:"medium"`
//		Locale   string `env:"DATECHECK_LOCALE" envDefault:"en-US"`
//		TimeZone string `env:"DATECHECK_TIME_ZONE" envDefault:"UTC"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// a missing .env file is fine
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()
	if globalCache.get(key, v) {
		return nil
	}

	var err error
	globalCache.once(key).Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			return
		}
		globalCache.set(key, *v)
	})
	if err != nil {
		return err
	}

	if globalCache.get(key, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// LoadEnv reads the given .env files into the process environment. Later
// files override earlier ones and both override variables already set. It
// does not touch cached configurations; call ResetCache to re-parse them.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

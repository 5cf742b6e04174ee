// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct tag parsing. Every configuration
// type is parsed once and cached by value, so repeated Load calls are cheap
// and safe from multiple goroutines.
//
// # Usage
//
//	type Config struct {
//	    Format      string `env:"DATECHECK_FORMAT" envDefault:"medium"`
//	    Concurrency int    `env:"DATECHECK_CONCURRENCY" envDefault:"4"`
//	}
//
//	// Optional extra files; later files win.
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    return err
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrConfigNotLoaded, ErrNilPointer and ErrLoadingEnvFile.
//
// # Testing Helpers
//
// ResetCache clears every cached type and ForceReloadConfig re-parses a single
// one after the environment changed.
package config

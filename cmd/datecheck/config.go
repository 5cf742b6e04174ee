package main

// Config is read from the environment (and optional .env files) before the
// command line flags are applied on top.
type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	Format      string `env:"DATECHECK_FORMAT" envDefault:"medium"`
	Locale      string `env:"DATECHECK_LOCALE" envDefault:"en-US"`
	TimeZone    string `env:"DATECHECK_TIME_ZONE" envDefault:"UTC"`
	Concurrency int    `env:"DATECHECK_CONCURRENCY" envDefault:"4"`
	LogLevel    string `env:"DATECHECK_LOG_LEVEL"`
	LogFormat   string `env:"DATECHECK_LOG_FORMAT"`
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/datevalidator/pkg/config"
	"github.com/dmitrymomot/datevalidator/pkg/environment"
	"github.com/dmitrymomot/datevalidator/pkg/logger"
	"github.com/dmitrymomot/datevalidator/pkg/validator"
)

const serviceName = "datecheck"

// app holds what the root Before hook resolves for the subcommands. The
// logger is nil until Before has built it.
type app struct {
	cfg    Config
	logger *slog.Logger
}

// run executes cmd and logs any failure other than rejected values.
func (a *app) run(ctx context.Context, cmd *cli.Command, args []string) error {
	err := cmd.Run(ctx, args)
	if err == nil || errors.Is(err, ErrInvalidValues) {
		return err
	}

	log := a.logger
	if log == nil {
		log = logger.New(logger.WithFormat(logger.FormatText), logger.WithOutput(cmd.ErrWriter))
	}
	log.ErrorContext(ctx, "command failed", logger.Error(err))
	return err
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:  serviceName,
		Usage: "validate, convert and format dates",
		Description: "Formats are either a locale style (short, medium, long, full), " +
			"a symbolic pattern such as \"dd.MM.yyyy\" or a native layout prefixed " +
			"with \"php:\" such as \"php:Y-m-d\".",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "load environment variables from `FILE` before reading the configuration",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "date format (overrides DATECHECK_FORMAT)",
			},
			&cli.StringFlag{
				Name:    "locale",
				Aliases: []string{"l"},
				Usage:   "locale used by styles and names (overrides DATECHECK_LOCALE)",
			},
			&cli.StringFlag{
				Name:    "time-zone",
				Aliases: []string{"tz"},
				Usage:   "IANA time zone (overrides DATECHECK_TIME_ZONE)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "text or json",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.validateCommand(),
			a.convertCommand(),
			a.formatCommand(),
			a.localesCommand(),
		},
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if files := cmd.StringSlice("env-file"); len(files) > 0 {
		if err := config.LoadEnv(files...); err != nil {
			return ctx, err
		}
		if err := config.ForceReloadConfig(&a.cfg); err != nil {
			return ctx, err
		}
	} else if err := config.Load(&a.cfg); err != nil {
		return ctx, err
	}

	if cmd.IsSet("format") {
		a.cfg.Format = cmd.String("format")
	}
	if cmd.IsSet("locale") {
		a.cfg.Locale = cmd.String("locale")
	}
	if cmd.IsSet("time-zone") {
		a.cfg.TimeZone = cmd.String("time-zone")
	}
	if cmd.IsSet("log-level") {
		a.cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		a.cfg.LogFormat = cmd.String("log-format")
	}

	env := environment.Parse(a.cfg.Env)
	ctx = environment.WithContext(ctx, env)
	opts := []logger.Option{
		logger.WithEnvironment(env, serviceName),
		logger.WithContextExtractors(environment.LoggerExtractor()),
		logger.WithOutput(cmd.Root().ErrWriter),
	}
	if a.cfg.LogLevel != "" {
		level, err := logger.ParseLevel(a.cfg.LogLevel)
		if err != nil {
			return ctx, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if a.cfg.LogFormat != "" {
		format, err := logger.ParseFormat(a.cfg.LogFormat)
		if err != nil {
			return ctx, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	a.logger = logger.New(opts...)

	a.logger.DebugContext(ctx, "configuration loaded",
		logger.DateFormat(a.cfg.Format),
		logger.Locale(a.cfg.Locale),
		slog.String("time_zone", a.cfg.TimeZone),
	)

	return ctx, nil
}

// newValidator builds a validator from the loaded configuration plus extra options.
func (a *app) newValidator(extra ...validator.Option) (*validator.DateValidator, error) {
	opts := append([]validator.Option{
		validator.WithFormat(a.cfg.Format),
		validator.WithLocale(a.cfg.Locale),
		validator.WithTimeZone(a.cfg.TimeZone),
		validator.WithLogger(a.logger),
	}, extra...)

	v, err := validator.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create validator: %w", err)
	}
	return v, nil
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/datevalidator/pkg/i18n"
	"github.com/dmitrymomot/datevalidator/pkg/logger"
	"github.com/dmitrymomot/datevalidator/pkg/validator"
)

// checkedField is the attribute name used in messages about CLI input.
const checkedField = "date"

type outcome struct {
	Line      int      `json:"line" yaml:"line"`
	Input     string   `json:"input" yaml:"input"`
	Result    string   `json:"result" yaml:"result"`
	Timestamp *int64   `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Errors    []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func (a *app) validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "check that values are dates in the configured format and range",
		ArgsUsage: "[value...]",
		Description: "Values are taken from the arguments, or one per line from stdin " +
			"when there are none. The exit status is non-zero when any value fails.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "min", Usage: "earliest accepted date, in the configured format"},
			&cli.StringFlag{Name: "max", Usage: "latest accepted date, in the configured format"},
			&cli.StringFlag{Name: "min-display", Usage: "how the lower bound is shown in messages"},
			&cli.StringFlag{Name: "max-display", Usage: "how the upper bound is shown in messages"},
			&cli.StringFlag{Name: "lang", Usage: "language of error messages (defaults to the locale)"},
			&cli.StringFlag{
				Name:  "messages",
				Usage: "load extra message catalogs from `FILE` (YAML or JSON), overriding the bundled ones",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   string(outputText),
				Usage:   "text, json or yaml",
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Aliases: []string{"c"},
				Usage:   "number of values checked in parallel (overrides DATECHECK_CONCURRENCY)",
			},
		},
		Action: a.validate,
	}
}

func (a *app) validate(ctx context.Context, cmd *cli.Command) error {
	out, err := parseOutput(cmd.String("output"))
	if err != nil {
		return err
	}

	concurrency := a.cfg.Concurrency
	if cmd.IsSet("concurrency") {
		concurrency = cmd.Int("concurrency")
	}
	if concurrency < 1 {
		return ErrInvalidConcurrency
	}

	var opts []validator.Option
	if cmd.IsSet("min") {
		opts = append(opts, validator.WithMin(cmd.String("min")))
	}
	if cmd.IsSet("max") {
		opts = append(opts, validator.WithMax(cmd.String("max")))
	}
	if cmd.IsSet("min-display") {
		opts = append(opts, validator.WithMinDisplay(cmd.String("min-display")))
	}
	if cmd.IsSet("max-display") {
		opts = append(opts, validator.WithMaxDisplay(cmd.String("max-display")))
	}
	v, err := a.newValidator(opts...)
	if err != nil {
		return err
	}

	log := a.logger.With(logger.Component("validate"))

	tr, err := newTranslator(ctx, cmd.String("messages"), log)
	if err != nil {
		return err
	}
	lang := a.cfg.Locale
	if cmd.IsSet("lang") {
		lang = cmd.String("lang")
	}

	values := cmd.Args().Slice()
	if len(values) == 0 {
		if values, err = readValues(cmd.Root().Reader); err != nil {
			return fmt.Errorf("failed to read values: %w", err)
		}
	}

	start := time.Now()
	outcomes := make([]outcome, len(values))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, value := range values {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = check(v, tr, lang, i+1, value)
			log.DebugContext(ctx, "value checked",
				logger.Line(i+1),
				logger.Input(value),
				logger.Result(outcomes[i].Result),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, o := range outcomes {
		if o.Timestamp == nil {
			failed++
		}
	}
	log.InfoContext(ctx, "validation finished",
		slog.Int("values", len(values)),
		slog.Int("failed", failed),
		logger.Duration(time.Since(start)),
	)

	w := cmd.Root().Writer
	err = out.write(w, outcomes, func(w io.Writer) error {
		for _, o := range outcomes {
			if err := writeOutcome(w, o); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	if failed > 0 {
		return ErrInvalidValues
	}
	return nil
}

// newTranslator loads the bundled catalogs, overridden by the file at path
// when it is set.
func newTranslator(ctx context.Context, path string, log *slog.Logger) (*i18n.Translator, error) {
	var extra i18n.TranslationAdapter
	if path != "" {
		parser := i18n.NewParserForFile(path)
		if parser == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCatalogFormat, path)
		}
		extra = i18n.NewFileAdapter(parser, path)
	}

	tr, err := validator.NewTranslator(ctx, extra, i18n.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to load message catalogs: %w", err)
	}
	return tr, nil
}

func check(v *validator.DateValidator, tr validator.MessageTranslator, lang string, line int, value string) outcome {
	o := outcome{Line: line, Input: value}

	ts, res := v.Check(value)
	o.Result = res.String()

	errs := validator.ExtractValidationErrors(validator.Apply(v.ResultRule(checkedField, res)))
	if len(errs) == 0 {
		o.Timestamp = &ts
		return o
	}
	for _, e := range errs {
		o.Errors = append(o.Errors, validator.Translate(tr, lang, e))
	}
	return o
}

func writeOutcome(w io.Writer, o outcome) error {
	if o.Timestamp != nil {
		_, err := fmt.Fprintf(w, "%s\t%s\t%d\n", o.Input, o.Result, *o.Timestamp)
		return err
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", o.Input, o.Result, strings.Join(o.Errors, " "))
	return err
}

// readValues returns the non-blank lines of r.
func readValues(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, nil
	}
	var values []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		values = append(values, line)
	}
	return values, sc.Err()
}

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/datevalidator/pkg/dateformat"
	"github.com/dmitrymomot/datevalidator/pkg/icudate"
)

func (a *app) convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "convert a symbolic pattern to a native layout",
		ArgsUsage: "<pattern>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: pattern", ErrMissingArgument)
			}
			native, err := dateformat.ICUToNative(cmd.Args().First())
			if err != nil {
				return fmt.Errorf("failed to convert pattern: %w", err)
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, dateformat.NativePrefix+native)
			return err
		},
	}
}

func (a *app) formatCommand() *cli.Command {
	return &cli.Command{
		Name:  "format",
		Usage: "render an instant in the configured format",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "at", Usage: "instant to render, as RFC 3339 (defaults to now)"},
			&cli.Int64Flag{Name: "unix", Usage: "instant to render, as a Unix timestamp"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			t := time.Now()
			switch {
			case cmd.IsSet("at"):
				parsed, err := time.Parse(time.RFC3339, cmd.String("at"))
				if err != nil {
					return fmt.Errorf("failed to parse --at: %w", err)
				}
				t = parsed
			case cmd.IsSet("unix"):
				t = time.Unix(cmd.Int64("unix"), 0)
			}

			v, err := a.newValidator()
			if err != nil {
				return err
			}
			s, err := v.Format(t)
			if err != nil {
				return fmt.Errorf("failed to format date: %w", err)
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, s)
			return err
		},
	}
}

type localeInfo struct {
	Tag    string `json:"tag" yaml:"tag"`
	Short  string `json:"short" yaml:"short"`
	Medium string `json:"medium" yaml:"medium"`
	Long   string `json:"long" yaml:"long"`
	Full   string `json:"full" yaml:"full"`
}

func (a *app) localesCommand() *cli.Command {
	return &cli.Command{
		Name:  "locales",
		Usage: "list the supported locales and their default patterns",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   string(outputText),
				Usage:   "text, json or yaml",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out, err := parseOutput(cmd.String("output"))
			if err != nil {
				return err
			}

			engine := icudate.Default()
			tags := engine.Locales()
			infos := make([]localeInfo, 0, len(tags))
			for _, tag := range tags {
				info := localeInfo{Tag: tag}
				for style, dst := range map[dateformat.Style]*string{
					dateformat.StyleShort:  &info.Short,
					dateformat.StyleMedium: &info.Medium,
					dateformat.StyleLong:   &info.Long,
					dateformat.StyleFull:   &info.Full,
				} {
					if *dst, err = engine.Pattern(tag, style); err != nil {
						return fmt.Errorf("failed to read patterns of %s: %w", tag, err)
					}
				}
				infos = append(infos, info)
			}

			return out.write(cmd.Root().Writer, infos, func(w io.Writer) error {
				for _, info := range infos {
					if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						info.Tag, info.Short, info.Medium, info.Long, info.Full); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

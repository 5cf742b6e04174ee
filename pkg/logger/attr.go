package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". It returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// DateFormat records a date format under "format".
func DateFormat(format string) slog.Attr {
	return slog.String("format", format)
}

// Locale records a locale under "locale".
func Locale(locale string) slog.Attr {
	return slog.String("locale", locale)
}

// Input records a raw input value under "input".
func Input(value string) slog.Attr {
	return slog.String("input", value)
}

// Line records an input line number under "line".
func Line(n int) slog.Attr {
	return slog.Int("line", n)
}

// Result records a validation verdict under "result".
func Result(verdict string) slog.Attr {
	return slog.String("result", verdict)
}

// Duration records d under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

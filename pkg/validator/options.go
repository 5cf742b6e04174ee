package validator

import (
	"log/slog"
	"time"
)

// Option configures a DateValidator.
type Option func(*DateValidator)

// WithFormat sets the format. A "php:" or "native:" prefix selects the native
// dialect, "short", "medium", "long" and "full" select a locale default
// pattern, and anything else is a symbolic pattern such as "yyyy-MM-dd".
func WithFormat(format string) Option {
	return func(v *DateValidator) {
		v.rawFormat = format
	}
}

// WithLocale sets the locale used for names and default patterns, e.g. "en-GB".
func WithLocale(locale string) Option {
	return func(v *DateValidator) {
		v.locale = locale
	}
}

// WithTimeZone sets the IANA zone values without zone information are read in.
func WithTimeZone(name string) Option {
	return func(v *DateValidator) {
		v.timeZone = name
	}
}

// WithTimestampTarget names the record field that receives the parsed
// timestamp after a successful ValidateField.
func WithTimestampTarget(field string) Option {
	return func(v *DateValidator) {
		v.target = field
	}
}

// WithMin sets the inclusive lower bound. It accepts a time.Time, an integer
// timestamp or a string in the configured format.
func WithMin(bound any) Option {
	return func(v *DateValidator) {
		v.min.raw = bound
	}
}

// WithMax sets the inclusive upper bound. See WithMin for accepted values.
func WithMax(bound any) Option {
	return func(v *DateValidator) {
		v.max.raw = bound
	}
}

// WithMinDisplay overrides how the lower bound is shown in messages.
func WithMinDisplay(display string) Option {
	return func(v *DateValidator) {
		v.min.display = display
	}
}

// WithMaxDisplay overrides how the upper bound is shown in messages.
func WithMaxDisplay(display string) Option {
	return func(v *DateValidator) {
		v.max.display = display
	}
}

// WithInvalidMessage replaces the message template for unparsable values.
// The template doubles as the translation key. It may refer to %{attribute};
// the short form {attribute} is accepted too.
func WithInvalidMessage(tmpl string) Option {
	return func(v *DateValidator) {
		v.messages.invalid = customMessage(tmpl)
	}
}

// WithTooSmallMessage replaces the message template for values below min.
// Placeholders are %{attribute} and %{min}, or {attribute} and {min}.
func WithTooSmallMessage(tmpl string) Option {
	return func(v *DateValidator) {
		v.messages.tooSmall = customMessage(tmpl)
	}
}

// WithTooBigMessage replaces the message template for values above max.
// Placeholders are %{attribute} and %{max}, or {attribute} and {max}.
func WithTooBigMessage(tmpl string) Option {
	return func(v *DateValidator) {
		v.messages.tooBig = customMessage(tmpl)
	}
}

// WithLocaleEngine replaces the bundled locale engine.
func WithLocaleEngine(engine LocaleDateEngine) Option {
	return func(v *DateValidator) {
		v.engine = engine
	}
}

// WithoutLocaleEngine disables locale aware parsing. Symbolic patterns are
// then converted to the native dialect and style aliases are rejected.
func WithoutLocaleEngine() Option {
	return func(v *DateValidator) {
		v.engine = nil
	}
}

// WithClock replaces time.Now as the source of fields a native layout does
// not set.
func WithClock(now func() time.Time) Option {
	return func(v *DateValidator) {
		if now != nil {
			v.now = now
		}
	}
}

// WithLogger sets a custom logger for the validator.
func WithLogger(logger *slog.Logger) Option {
	return func(v *DateValidator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

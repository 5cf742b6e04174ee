package validator

import (
	"time"

	"github.com/dmitrymomot/datevalidator/pkg/dateformat"
)

// LocaleDateEngine parses ICU-style symbolic patterns with locale data.
// icudate.Engine is the bundled implementation.
type LocaleDateEngine interface {
	// Pattern returns the locale default pattern for a style alias.
	Pattern(locale string, style dateformat.Style) (string, error)

	// Parse parses value and returns the instant together with the position,
	// in runes, where parsing stopped. Values without zone information are
	// read in loc.
	Parse(value, pattern, locale string, loc *time.Location) (time.Time, int, error)
}

// LocalePatternChecker is implemented by engines that can tell up front
// whether a pattern is usable in a locale. New rejects patterns that fail the
// check.
type LocalePatternChecker interface {
	Check(pattern, locale string) error
}

// LocaleDateFormatter is implemented by engines that can also render
// patterns. It is only needed by DateValidator.Format.
type LocaleDateFormatter interface {
	Format(t time.Time, pattern, locale string) (string, error)
}

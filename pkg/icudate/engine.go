package icudate

import (
	"fmt"
	"sync"
	"time"

	"github.com/dmitrymomot/datevalidator/pkg/dateformat"
)

// Engine parses and renders ICU-style date patterns using the bundled locale
// table. It is safe for concurrent use.
type Engine struct {
	now  func() time.Time
	data []byte

	once    sync.Once
	catalog *catalog
	loadErr error

	tokens sync.Map // pattern -> []dateformat.Token
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source used for the two-digit year window.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLocaleData replaces the bundled locale table with a YAML document of
// the same shape.
func WithLocaleData(data []byte) Option {
	return func(e *Engine) {
		if len(data) > 0 {
			e.data = data
		}
	}
}

// New creates an Engine. Locale data is loaded lazily on first use.
func New(opts ...Option) *Engine {
	e := &Engine{
		now:  time.Now,
		data: bundledLocales,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

// Default returns the shared engine backed by the bundled locale table.
func Default() *Engine {
	return defaultEngine
}

func (e *Engine) load() (*catalog, error) {
	e.once.Do(func() {
		e.catalog, e.loadErr = loadCatalog(e.data)
	})
	return e.catalog, e.loadErr
}

// Locale returns the closest supported locale for the given identifier.
// Underscores are accepted as subtag separators.
func (e *Engine) Locale(locale string) (*Locale, error) {
	c, err := e.load()
	if err != nil {
		return nil, err
	}
	return c.lookup(locale)
}

// Locales lists the tags of all supported locales.
func (e *Engine) Locales() []string {
	c, err := e.load()
	if err != nil {
		return nil
	}
	tags := make([]string, 0, len(c.locales))
	for _, l := range c.locales {
		tags = append(tags, l.Tag)
	}
	return tags
}

// Pattern returns the default date pattern of the locale for the given style.
func (e *Engine) Pattern(locale string, style dateformat.Style) (string, error) {
	l, err := e.Locale(locale)
	if err != nil {
		return "", err
	}
	return l.Pattern(style)
}

// Parse reads value according to pattern. It returns the parsed instant and
// the position, in runes, where parsing stopped. Input left after the last
// pattern element is not an error; callers that need the whole value consumed
// compare the position with the rune count of value.
//
// Fields the pattern does not contain default to 1970-01-01 00:00:00 in loc
// (UTC when nil). Values are never rolled over: a 13th month or February 30th
// fail with ErrOutOfRange.
func (e *Engine) Parse(value, pattern, locale string, loc *time.Location) (time.Time, int, error) {
	l, err := e.Locale(locale)
	if err != nil {
		return time.Time{}, 0, err
	}
	tokens, err := e.tokenize(pattern)
	if err != nil {
		return time.Time{}, 0, err
	}
	if loc == nil {
		loc = time.UTC
	}
	return newParser(value, l, e.now()).run(tokens, loc)
}

// Check reports whether pattern can be parsed in locale at all: the locale
// must be well-formed and every field of the pattern supported.
func (e *Engine) Check(pattern, locale string) error {
	if _, err := e.Locale(locale); err != nil {
		return err
	}
	tokens, err := e.tokenize(pattern)
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		if !tok.IsLiteral() && !supportedField(tok) {
			return fmt.Errorf("%w: %s", ErrUnsupportedField, tok)
		}
	}
	return nil
}

// Format renders t with pattern in the given locale.
func (e *Engine) Format(t time.Time, pattern, locale string) (string, error) {
	l, err := e.Locale(locale)
	if err != nil {
		return "", err
	}
	tokens, err := e.tokenize(pattern)
	if err != nil {
		return "", err
	}
	return format(t, tokens, l)
}

func (e *Engine) tokenize(pattern string) ([]dateformat.Token, error) {
	if cached, ok := e.tokens.Load(pattern); ok {
		return cached.([]dateformat.Token), nil
	}
	tokens, err := dateformat.Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	e.tokens.Store(pattern, tokens)
	return tokens, nil
}

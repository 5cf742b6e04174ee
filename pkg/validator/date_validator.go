package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/dmitrymomot/datevalidator/pkg/dateformat"
	"github.com/dmitrymomot/datevalidator/pkg/icudate"
	"github.com/dmitrymomot/datevalidator/pkg/logger"
	"github.com/dmitrymomot/datevalidator/pkg/nativedate"
)

// Defaults applied by New before options.
const (
	DefaultFormat   = "medium"
	DefaultLocale   = "en-US"
	DefaultTimeZone = "UTC"
)

// Result is the verdict of a range check.
type Result int

const (
	ResultValid Result = iota
	ResultInvalidFormat
	ResultTooSmall
	ResultTooBig
)

func (r Result) String() string {
	switch r {
	case ResultValid:
		return "valid"
	case ResultInvalidFormat:
		return "invalid_format"
	case ResultTooSmall:
		return "too_small"
	case ResultTooBig:
		return "too_big"
	default:
		return "unknown"
	}
}

type bound struct {
	raw     any
	display string
	set     bool
	ts      int64
}

// DateValidator checks that values are dates in a configured format and,
// optionally, within an inclusive range. It is immutable after New and safe
// for concurrent use.
type DateValidator struct {
	rawFormat string
	locale    string
	timeZone  string
	target    string
	min       bound
	max       bound
	messages  messageSet
	engine    LocaleDateEngine
	now       func() time.Time
	logger    *slog.Logger

	spec     dateformat.Spec
	pattern  string
	native   bool
	midnight bool
	loc      *time.Location
	parser   *nativedate.Parser
}

// New builds a validator. Every returned error wraps ErrInvalidConfig together
// with the specific cause.
func New(opts ...Option) (*DateValidator, error) {
	v := &DateValidator{
		rawFormat: DefaultFormat,
		locale:    DefaultLocale,
		timeZone:  DefaultTimeZone,
		messages:  defaultMessages,
		engine:    icudate.Default(),
		now:       time.Now,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}

	loc, err := time.LoadLocation(v.timeZone)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, ErrInvalidTimeZone, err)
	}
	v.loc = loc
	v.parser = nativedate.New(nativedate.WithClock(v.now))

	if err := v.resolveFormat(); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if err := v.resolveBound(&v.min); err != nil {
		return nil, errors.Join(ErrInvalidConfig, ErrInvalidMin, err)
	}
	if err := v.resolveBound(&v.max); err != nil {
		return nil, errors.Join(ErrInvalidConfig, ErrInvalidMax, err)
	}

	v.logger.Debug("date validator configured",
		slog.String("format", v.spec.String()),
		slog.String("pattern", v.pattern),
		slog.Bool("native", v.native),
		slog.String("locale", v.locale),
		slog.String("time_zone", v.loc.String()),
	)
	return v, nil
}

// MustNew is like New but panics on configuration errors.
func MustNew(opts ...Option) *DateValidator {
	v, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *DateValidator) resolveFormat() error {
	if v.rawFormat == "" {
		return fmt.Errorf("%w: empty format", ErrInvalidFormat)
	}
	v.spec = dateformat.Resolve(v.rawFormat)

	switch v.spec.Kind {
	case dateformat.KindNative:
		if v.spec.Pattern == "" {
			return fmt.Errorf("%w: empty native layout", ErrInvalidFormat)
		}
		if err := nativedate.CheckLayout(v.spec.Pattern); err != nil {
			return errors.Join(ErrInvalidFormat, err)
		}
		v.pattern = v.spec.Pattern
		v.native = true

	case dateformat.KindICUAlias:
		if v.engine == nil {
			return fmt.Errorf("%w: %s", ErrAliasNeedsEngine, v.spec.Style)
		}
		pattern, err := v.engine.Pattern(v.locale, v.spec.Style)
		if err != nil {
			return errors.Join(ErrInvalidFormat, err)
		}
		v.pattern = pattern

	default:
		if v.engine == nil {
			layout, err := dateformat.ICUToNative(v.spec.Pattern)
			if err != nil {
				return errors.Join(ErrInvalidFormat, err)
			}
			v.pattern = layout
			v.native = true
			break
		}
		if _, err := dateformat.Tokenize(v.spec.Pattern); err != nil {
			return errors.Join(ErrInvalidFormat, err)
		}
		v.pattern = v.spec.Pattern
	}

	if checker, ok := v.engine.(LocalePatternChecker); ok && !v.native {
		if err := checker.Check(v.pattern, v.locale); err != nil {
			return errors.Join(ErrInvalidFormat, err)
		}
	}

	v.midnight = v.native && !nativedate.HasTimeFields(v.pattern)
	return nil
}

func (v *DateValidator) resolveBound(b *bound) error {
	if b.raw == nil {
		return nil
	}

	switch raw := b.raw.(type) {
	case time.Time:
		b.ts = raw.Unix()
		if b.display == "" {
			b.display = v.displayTime(raw)
		}
	case string:
		t, err := v.parse(raw)
		if err != nil {
			return fmt.Errorf("%q: %w", raw, err)
		}
		b.ts = t.Unix()
		if b.display == "" {
			b.display = raw
		}
	default:
		ts, err := timestampOf(raw)
		if err != nil {
			return err
		}
		b.ts = ts
		if b.display == "" {
			b.display = strconv.FormatInt(ts, 10)
		}
	}
	b.set = true
	return nil
}

func (v *DateValidator) displayTime(t time.Time) string {
	if s, err := v.Format(t); err == nil {
		return s
	}
	return t.In(v.loc).Format(time.RFC3339)
}

func timestampOf(raw any) (int64, error) {
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > 1<<63-1 {
			return 0, fmt.Errorf("timestamp %d overflows int64", u)
		}
		return int64(u), nil
	default:
		return 0, fmt.Errorf("unsupported bound type %T", raw)
	}
}

// Parse converts a raw value to a Unix timestamp. Strings, numbers, booleans
// and pointers to them are accepted; everything else, the empty string and
// anything the format does not match completely yield false.
func (v *DateValidator) Parse(value any) (int64, bool) {
	text, ok := scalarText(value)
	if !ok {
		v.logger.Debug("date value rejected", slog.Any("error", errNotScalar), slog.String("type", fmt.Sprintf("%T", value)))
		return 0, false
	}

	t, err := v.parse(text)
	if err != nil {
		v.logger.Debug("date value rejected", slog.Any("error", err), slog.String("value", text))
		return 0, false
	}
	return t.Unix(), true
}

func (v *DateValidator) parse(text string) (t time.Time, err error) {
	if text == "" {
		return time.Time{}, errEmptyValue
	}

	defer func() {
		if r := recover(); r != nil {
			t, err = time.Time{}, fmt.Errorf("%w: %v", errParserPanic, r)
		}
	}()

	if v.native {
		t, err = v.parser.Parse(v.pattern, text, v.loc)
		if err != nil {
			return time.Time{}, err
		}
		if v.midnight {
			y, m, d := t.Date()
			t = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
		}
		return t, nil
	}

	parsed, pos, err := v.engine.Parse(text, v.pattern, v.locale, v.loc)
	if err != nil {
		return time.Time{}, err
	}
	if n := utf8.RuneCountInString(text); pos != n {
		return time.Time{}, fmt.Errorf("%w: stopped at %d of %d", errIncompleteParse, pos, n)
	}
	return parsed, nil
}

// CheckRange compares a timestamp with the configured inclusive bounds.
func (v *DateValidator) CheckRange(ts int64) Result {
	if v.min.set && ts < v.min.ts {
		return ResultTooSmall
	}
	if v.max.set && ts > v.max.ts {
		return ResultTooBig
	}
	return ResultValid
}

// Check parses value and checks its range in one step.
func (v *DateValidator) Check(value any) (int64, Result) {
	ts, ok := v.Parse(value)
	if !ok {
		return 0, ResultInvalidFormat
	}
	return ts, v.CheckRange(ts)
}

// Validate reports whether value is a date in range.
func (v *DateValidator) Validate(value any) bool {
	_, res := v.Check(value)
	return res == ResultValid
}

// ValidateValue validates a standalone value and returns the first failure,
// or nil. The lower bound is checked before the upper one.
func (v *DateValidator) ValidateValue(value any) *ValidationError {
	_, res := v.Check(value)
	if res == ResultValid {
		return nil
	}
	err := v.newError("", valueAttribute, res)
	return &err
}

// ValidateField validates the field of rec. Failures go to sink; both bounds
// are reported when both are violated. On success the timestamp is written to
// the configured target, which may be the validated field itself. The
// returned error is only set when that write fails.
func (v *DateValidator) ValidateField(rec Record, field string, sink ErrorSink) error {
	raw, _ := rec.Value(field)

	ts, ok := v.Parse(raw)
	if !ok {
		v.report(sink, rec, field, ResultInvalidFormat)
		return nil
	}

	failed := false
	if v.min.set && ts < v.min.ts {
		v.report(sink, rec, field, ResultTooSmall)
		failed = true
	}
	if v.max.set && ts > v.max.ts {
		v.report(sink, rec, field, ResultTooBig)
		failed = true
	}
	if failed || v.target == "" {
		return nil
	}

	if err := rec.SetValue(v.target, ts); err != nil {
		return errors.Join(ErrTargetWrite, err)
	}
	return nil
}

func (v *DateValidator) report(sink ErrorSink, rec Record, field string, res Result) {
	if sink == nil {
		return
	}
	sink.AddError(rec, field, v.newError(field, field, res))
}

// Format renders t in the configured format and time zone. It is meant for
// samples and round trips, not as a general formatting API.
func (v *DateValidator) Format(t time.Time) (string, error) {
	t = t.In(v.loc)
	if v.native {
		return nativedate.Format(t, v.pattern), nil
	}
	f, ok := v.engine.(LocaleDateFormatter)
	if !ok {
		return "", ErrNoFormatter
	}
	return f.Format(t, v.pattern, v.locale)
}

// Spec returns the resolved format.
func (v *DateValidator) Spec() dateformat.Spec { return v.spec }

// Pattern returns the pattern values are parsed with: the native layout when
// Native reports true, the symbolic pattern otherwise.
func (v *DateValidator) Pattern() string { return v.pattern }

// Native reports whether values are parsed with the native parser.
func (v *DateValidator) Native() bool { return v.native }

// Location returns the resolved time zone.
func (v *DateValidator) Location() *time.Location { return v.loc }

// Locale returns the configured locale.
func (v *DateValidator) Locale() string { return v.locale }

// Min returns the resolved lower bound.
func (v *DateValidator) Min() (int64, bool) { return v.min.ts, v.min.set }

// Max returns the resolved upper bound.
func (v *DateValidator) Max() (int64, bool) { return v.max.ts, v.max.set }

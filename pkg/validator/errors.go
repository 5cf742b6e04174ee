package validator

import "errors"

// Configuration errors returned by New. Every one of them is joined with
// ErrInvalidConfig.
var (
	// ErrInvalidConfig marks any error returned while building a validator.
	ErrInvalidConfig = errors.New("invalid date validator configuration")

	// ErrInvalidFormat is returned for an empty or malformed format.
	ErrInvalidFormat = errors.New("invalid date format")

	// ErrInvalidTimeZone is returned when the time zone is not a known IANA name.
	ErrInvalidTimeZone = errors.New("invalid time zone")

	// ErrInvalidMin is returned when the lower bound cannot be resolved.
	ErrInvalidMin = errors.New("invalid min boundary")

	// ErrInvalidMax is returned when the upper bound cannot be resolved.
	ErrInvalidMax = errors.New("invalid max boundary")

	// ErrAliasNeedsEngine is returned when a style alias (short, medium, long,
	// full) is configured without a locale engine.
	ErrAliasNeedsEngine = errors.New("format alias requires a locale engine")
)

// Record errors.
var (
	// ErrInvalidRecord is returned by Struct for anything but a non-nil pointer to a struct.
	ErrInvalidRecord = errors.New("record must be a non-nil pointer to struct")

	// ErrFieldNotFound is returned when writing a field the record does not have.
	ErrFieldNotFound = errors.New("field not found")

	// ErrUnsupportedTarget is returned when a value cannot be stored in a field.
	ErrUnsupportedTarget = errors.New("unsupported target field type")

	// ErrTargetWrite wraps failures of writing the timestamp target.
	ErrTargetWrite = errors.New("failed to write timestamp target")
)

// ErrNoFormatter is returned by Format when the locale engine cannot render patterns.
var ErrNoFormatter = errors.New("locale engine does not support formatting")

// Parse errors. They never leave the package as errors; a failed parse is
// reported as an invalid format.
var (
	errEmptyValue      = errors.New("empty value")
	errNotScalar       = errors.New("value is not a scalar")
	errIncompleteParse = errors.New("value not fully consumed")
	errParserPanic     = errors.New("parser panicked")
)

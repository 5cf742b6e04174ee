package icudate

import "errors"

var (
	ErrUnknownLocale    = errors.New("unknown locale")
	ErrUnknownStyle     = errors.New("unknown date style")
	ErrLocaleData       = errors.New("invalid locale data")
	ErrUnexpectedEnd    = errors.New("unexpected end of value")
	ErrLiteralMismatch  = errors.New("literal does not match")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrUnknownName      = errors.New("unknown textual value")
	ErrInvalidZone      = errors.New("invalid time zone")
	ErrOutOfRange       = errors.New("field value out of range")
	ErrUnsupportedField = errors.New("unsupported pattern field")
)

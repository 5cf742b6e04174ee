package nativedate

import "errors"

// Parse errors. All of them are reported wrapped with the position in the
// input where parsing stopped.
var (
	ErrUnexpectedEnd   = errors.New("unexpected end of data")
	ErrTrailingData    = errors.New("trailing data")
	ErrLiteralMismatch = errors.New("literal does not match")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrUnknownName     = errors.New("unknown textual value")
	ErrInvalidZone     = errors.New("invalid time zone")
	ErrMeridiem        = errors.New("meridian without 12-hour clock value")
	ErrOutOfRange      = errors.New("parsed date or time is invalid")
	ErrBadLayout       = errors.New("malformed layout")
)

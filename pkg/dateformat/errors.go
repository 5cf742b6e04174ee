package dateformat

import "errors"

var (
	// ErrUnsupportedToken is returned when an ICU field has no native equivalent.
	ErrUnsupportedToken = errors.New("unsupported pattern token")

	// ErrUnterminatedQuote is returned when a quoted literal is never closed.
	ErrUnterminatedQuote = errors.New("unterminated quoted literal")
)

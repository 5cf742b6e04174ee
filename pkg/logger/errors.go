package logger

import "errors"

var (
	// ErrInvalidFormat is returned for output formats other than json and text.
	ErrInvalidFormat = errors.New("invalid log format")

	// ErrInvalidLevel is returned for unknown level names.
	ErrInvalidLevel = errors.New("invalid log level")
)

package main

import "errors"

var (
	// ErrInvalidValues is returned by validate when at least one value failed.
	ErrInvalidValues = errors.New("some values are not valid dates")

	// ErrMissingArgument is returned when a command is called without its argument.
	ErrMissingArgument = errors.New("missing argument")

	// ErrInvalidConcurrency is returned for a concurrency below one.
	ErrInvalidConcurrency = errors.New("concurrency must be at least 1")

	// ErrUnknownOutput is returned for output formats other than text, json and yaml.
	ErrUnknownOutput = errors.New("unknown output format")

	// ErrUnknownCatalogFormat is returned for --messages files that are neither YAML nor JSON.
	ErrUnknownCatalogFormat = errors.New("unknown message catalog format")
)

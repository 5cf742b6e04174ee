package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes one rejected date value. Result is the verdict
// that caused it and is never ResultValid.
type ValidationError struct {
	Field             string
	Result            Result
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors collects rejected values in the order they were reported.
// A pointer to it is an ErrorSink.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AddError implements ErrorSink. The field argument takes precedence over
// err.Field.
func (ve *ValidationErrors) AddError(_ Record, field string, err ValidationError) {
	err.Field = field
	*ve = append(*ve, err)
}

// Rule is the verdict of one value, ready for Apply.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply returns the errors of the failing rules as ValidationErrors, or nil
// when every rule passes.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, if any.
func ExtractValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}

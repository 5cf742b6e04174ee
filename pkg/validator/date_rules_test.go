package validator_test

import (
	"testing"

	"github.com/dmitrymomot/datevalidator/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(errs validator.ValidationErrors) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestDateValidator_Rule(t *testing.T) {
	v := newValidator(t,
		validator.WithFormat("yyyy-MM-dd"),
		validator.WithMin("1900-01-01"),
		validator.WithMax("2000-01-01"),
	)

	t.Run("valid", func(t *testing.T) {
		rule := v.Rule("birthday", "1958-01-12")
		assert.True(t, rule.Check())
		assert.NoError(t, validator.Apply(rule))
	})

	t.Run("composes with apply", func(t *testing.T) {
		err := validator.Apply(
			v.Rule("birthday", "1899-12-31"),
			v.Rule("hired", "2000-01-02"),
			v.Rule("married", "31/12/1999"),
			v.Rule("graduated", "1999-12-31"),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 3)
		assert.Equal(t, []string{"birthday", "hired", "married"}, fieldsOf(errs))

		assert.Equal(t, validator.ResultTooSmall, errs[0].Result)
		assert.Equal(t, validator.KeyDateTooSmall, errs[0].TranslationKey)
		assert.Equal(t, validator.ResultTooBig, errs[1].Result)
		assert.Equal(t, validator.KeyDateTooBig, errs[1].TranslationKey)
		assert.Equal(t, validator.ResultInvalidFormat, errs[2].Result)
		assert.Equal(t, "The format of married is invalid.", errs[2].Message)
	})

	t.Run("rules", func(t *testing.T) {
		values := map[string]any{"start": "1950-01-01", "end": "2050-01-01"}
		rules := v.Rules([]string{"start", "end", "missing"}, values)
		require.Len(t, rules, 3)

		errs := validator.ExtractValidationErrors(validator.Apply(rules...))
		assert.Equal(t, []string{"end", "missing"}, fieldsOf(errs))
	})
}

func TestDateValidator_ResultRule(t *testing.T) {
	v := newValidator(t,
		validator.WithFormat("yyyy-MM-dd"),
		validator.WithMax("2000-01-01"),
	)

	t.Run("valid verdict passes", func(t *testing.T) {
		assert.NoError(t, validator.Apply(v.ResultRule("date", validator.ResultValid)))
	})

	t.Run("matches the rule of the same value", func(t *testing.T) {
		_, res := v.Check("2000-01-02")
		require.Equal(t, validator.ResultTooBig, res)

		fromResult := validator.ExtractValidationErrors(validator.Apply(v.ResultRule("date", res)))
		fromValue := validator.ExtractValidationErrors(validator.Apply(v.Rule("date", "2000-01-02")))
		assert.Equal(t, fromValue, fromResult)
		require.Len(t, fromResult, 1)
		assert.Equal(t, "date must be no greater than 2000-01-01.", fromResult[0].Message)
	})
}

package validator_test

import (
	"math"
	"testing"
	"time"

	"github.com/dmitrymomot/datevalidator/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Birthday  string     `json:"birthday"`
	Timestamp *int64     `json:"timestamp,omitempty"`
	At        time.Time  `json:"at"`
	Small     uint8      `json:"small"`
	Float     float64    `json:"float"`
	Any       any        `json:"any"`
	AtPtr     *time.Time `json:"at_ptr"`
	Untagged  int64
	Hidden    int64 `json:"-"`
	private   int64
}

// recordingSink keeps every reported error together with its record.
type recordingSink struct {
	records []validator.Record
	fields  []string
	errors  []validator.ValidationError
}

func (s *recordingSink) AddError(rec validator.Record, field string, err validator.ValidationError) {
	s.records = append(s.records, rec)
	s.fields = append(s.fields, field)
	s.errors = append(s.errors, err)
}

func TestDateValidator_ValidateField(t *testing.T) {
	ts := midnight(2013, time.September, 13)

	t.Run("writes timestamp target", func(t *testing.T) {
		v := newValidator(t, validator.WithFormat("php:Y-m-d"), validator.WithTimestampTarget("ts"))
		rec := validator.Map{"date": "2013-09-13", "ts": true}
		var errs validator.ValidationErrors

		require.NoError(t, v.ValidateField(rec, "date", &errs))
		assert.Empty(t, errs)
		assert.Equal(t, ts, rec["ts"])
		assert.Equal(t, "2013-09-13", rec["date"])
	})

	t.Run("same pattern through the locale engine", func(t *testing.T) {
		v := newValidator(t, validator.WithFormat("yyyy-MM-dd"), validator.WithTimestampTarget("ts"))
		rec := validator.Map{"date": "2013-09-13", "ts": true}
		var errs validator.ValidationErrors

		require.NoError(t, v.ValidateField(rec, "date", &errs))
		assert.Empty(t, errs)
		assert.Equal(t, ts, rec["ts"])
	})

	t.Run("overwrites the validated field", func(t *testing.T) {
		v := newValidator(t, validator.WithFormat("php:Y-m-d"), validator.WithTimestampTarget("date"))
		rec := validator.Map{"date": "2013-09-13"}
		var errs validator.ValidationErrors

		require.NoError(t, v.ValidateField(rec, "date", &errs))
		assert.Equal(t, ts, rec["date"])
	})

	t.Run("invalid value leaves target untouched", func(t *testing.T) {
		v := newValidator(t, validator.WithFormat("php:Y-m-d"), validator.WithTimestampTarget("ts"))
		for _, value := range []any{"1375293913", []string{}, "2012-12-12foo", nil} {
			rec := validator.Map{"date": value, "ts": true}
			var errs validator.ValidationErrors

			require.NoError(t, v.ValidateField(rec, "date", &errs))
			require.Len(t, errs, 1, "%v", value)
			assert.Equal(t, true, rec["ts"])
			assert.Equal(t, "date", errs[0].Field)
			assert.Equal(t, validator.ResultInvalidFormat, errs[0].Result)
			assert.Equal(t, "The format of date is invalid.", errs[0].Message)
		}
	})

	t.Run("missing field is invalid", func(t *testing.T) {
		v := newValidator(t, validator.WithFormat("php:Y-m-d"))
		var errs validator.ValidationErrors

		require.NoError(t, v.ValidateField(validator.Map{}, "date", &errs))
		require.Len(t, errs, 1)
		assert.Equal(t, validator.ResultInvalidFormat, errs[0].Result)
	})

	t.Run("out of range leaves target untouched", func(t *testing.T) {
		v := newValidator(t,
			validator.WithFormat("yyyy-MM-dd"),
			validator.WithMin("1900-01-01"),
			validator.WithMax("2000-01-01"),
			validator.WithTimestampTarget("ts"),
		)

		rec := validator.Map{"date": "1899-12-31"}
		var errs validator.ValidationErrors
		require.NoError(t, v.ValidateField(rec, "date", &errs))
		require.Len(t, errs, 1)
		assert.Equal(t, validator.ResultTooSmall, errs[0].Result)
		assert.Equal(t, "date must be no less than 1900-01-01.", errs[0].Message)
		assert.NotContains(t, rec, "ts")

		rec = validator.Map{"date": "2000-01-02"}
		errs = nil
		require.NoError(t, v.ValidateField(rec, "date", &errs))
		require.Len(t, errs, 1)
		assert.Equal(t, "date", errs[0].Field)
		assert.Equal(t, "date must be no greater than 2000-01-01.", errs[0].Message)
		assert.NotContains(t, rec, "ts")
	})

	t.Run("both bounds reported", func(t *testing.T) {
		v := newValidator(t,
			validator.WithFormat("php:Y-m-d"),
			validator.WithMin("2000-01-01"),
			validator.WithMax("1900-01-01"),
			validator.WithTimestampTarget("ts"),
		)
		rec := validator.Map{"date": "1950-01-01"}
		var errs validator.ValidationErrors

		require.NoError(t, v.ValidateField(rec, "date", &errs))
		require.Len(t, errs, 2)
		assert.Equal(t, validator.ResultTooSmall, errs[0].Result)
		assert.Equal(t, validator.KeyDateTooSmall, errs[0].TranslationKey)
		assert.Equal(t, validator.ResultTooBig, errs[1].Result)
		assert.Equal(t, validator.KeyDateTooBig, errs[1].TranslationKey)
		assert.NotContains(t, rec, "ts")
	})

	t.Run("custom sink", func(t *testing.T) {
		v := newValidator(t, validator.WithFormat("php:Y-m-d"), validator.WithMin("2000-01-01"))
		rec := validator.Map{"date": "1999-01-01"}
		sink := &recordingSink{}

		require.NoError(t, v.ValidateField(rec, "date", sink))
		require.Len(t, sink.errors, 1)
		assert.Equal(t, "date", sink.fields[0])
		assert.Equal(t, "date", sink.errors[0].Field)
		assert.Equal(t, map[string]any{"attribute": "date", "min": "2000-01-01"}, sink.errors[0].TranslationValues)
		assert.Equal(t, rec, sink.records[0])
	})

	t.Run("nil sink", func(t *testing.T) {
		v := newValidator(t, validator.WithFormat("php:Y-m-d"))
		assert.NotPanics(t, func() {
			assert.NoError(t, v.ValidateField(validator.Map{"date": "nope"}, "date", nil))
		})
	})

	t.Run("struct record", func(t *testing.T) {
		form := &signupForm{Birthday: "2013-09-13"}
		rec, err := validator.Struct(form)
		require.NoError(t, err)

		for _, target := range []string{"timestamp", "at", "at_ptr", "float", "any", "Untagged"} {
			v := newValidator(t, validator.WithFormat("php:Y-m-d"), validator.WithTimestampTarget(target))
			var errs validator.ValidationErrors
			require.NoError(t, v.ValidateField(rec, "birthday", &errs), target)
			assert.Empty(t, errs)
		}

		require.NotNil(t, form.Timestamp)
		assert.Equal(t, ts, *form.Timestamp)
		assert.Equal(t, time.Unix(ts, 0).UTC(), form.At)
		require.NotNil(t, form.AtPtr)
		assert.Equal(t, time.Unix(ts, 0).UTC(), *form.AtPtr)
		assert.Equal(t, float64(ts), form.Float)
		assert.Equal(t, ts, form.Any)
		assert.Equal(t, ts, form.Untagged)
	})

	t.Run("struct record overwrite", func(t *testing.T) {
		form := &signupForm{Birthday: "2013-09-13"}
		rec, err := validator.Struct(form)
		require.NoError(t, err)

		v := newValidator(t, validator.WithFormat("php:Y-m-d"), validator.WithTimestampTarget("birthday"))
		var errs validator.ValidationErrors
		require.NoError(t, v.ValidateField(rec, "birthday", &errs))
		assert.Equal(t, "1379030400", form.Birthday)
	})

	t.Run("target write failures", func(t *testing.T) {
		form := &signupForm{Birthday: "2013-09-13"}
		rec, err := validator.Struct(form)
		require.NoError(t, err)

		v := newValidator(t, validator.WithFormat("php:Y-m-d"), validator.WithTimestampTarget("Hidden"))
		err = v.ValidateField(rec, "birthday", &validator.ValidationErrors{})
		assert.ErrorIs(t, err, validator.ErrTargetWrite)
		assert.ErrorIs(t, err, validator.ErrFieldNotFound)

		v = newValidator(t, validator.WithFormat("php:Y-m-d"), validator.WithTimestampTarget("small"))
		err = v.ValidateField(rec, "birthday", &validator.ValidationErrors{})
		assert.ErrorIs(t, err, validator.ErrTargetWrite)
		assert.ErrorIs(t, err, validator.ErrUnsupportedTarget)
		assert.Zero(t, form.Small)
	})
}

func TestStruct(t *testing.T) {
	t.Run("rejects non struct pointers", func(t *testing.T) {
		var nilForm *signupForm
		for _, v := range []any{nil, signupForm{}, nilForm, new(int), validator.Map{}} {
			rec, err := validator.Struct(v)
			assert.ErrorIs(t, err, validator.ErrInvalidRecord, "%T", v)
			assert.Nil(t, rec)
		}
	})

	t.Run("field names", func(t *testing.T) {
		form := &signupForm{Birthday: "b", Untagged: 7, Hidden: 9, private: 1}
		rec, err := validator.Struct(form)
		require.NoError(t, err)

		value, ok := rec.Value("birthday")
		assert.True(t, ok)
		assert.Equal(t, "b", value)

		value, ok = rec.Value("Untagged")
		assert.True(t, ok)
		assert.Equal(t, int64(7), value)

		for _, name := range []string{"Birthday", "Hidden", "-", "private", "missing"} {
			_, ok = rec.Value(name)
			assert.False(t, ok, name)
		}
	})

	t.Run("set value", func(t *testing.T) {
		form := &signupForm{}
		rec, err := validator.Struct(form)
		require.NoError(t, err)

		require.NoError(t, rec.SetValue("birthday", "1990-01-01"))
		assert.Equal(t, "1990-01-01", form.Birthday)

		require.NoError(t, rec.SetValue("small", int64(200)))
		assert.Equal(t, uint8(200), form.Small)

		require.NoError(t, rec.SetValue("any", nil))
		assert.Nil(t, form.Any)

		assert.ErrorIs(t, rec.SetValue("small", int64(-1)), validator.ErrUnsupportedTarget)
		assert.ErrorIs(t, rec.SetValue("small", int64(math.MaxUint8+1)), validator.ErrUnsupportedTarget)
		assert.ErrorIs(t, rec.SetValue("birthday", 3.5), validator.ErrUnsupportedTarget)
		assert.ErrorIs(t, rec.SetValue("nope", int64(1)), validator.ErrFieldNotFound)
	})
}

func TestMap(t *testing.T) {
	rec := validator.Map{"a": 1}

	value, ok := rec.Value("a")
	assert.True(t, ok)
	assert.Equal(t, 1, value)

	_, ok = rec.Value("b")
	assert.False(t, ok)

	require.NoError(t, rec.SetValue("b", "x"))
	assert.Equal(t, "x", rec["b"])
}

// Package validator checks that raw input values are dates in a configured
// format and, optionally, within an inclusive range.
//
// A DateValidator is built once with New and functional options and is then
// safe to share between goroutines. The format decides which parser is used:
//
//   - "php:Y-m-d" (or "native:Y-m-d") is a strict native layout parsed by
//     package nativedate. Layouts without time-of-day fields always yield
//     midnight in the configured time zone.
//   - "short", "medium", "long" and "full" select the default pattern of the
//     configured locale from the locale engine.
//   - anything else is a symbolic pattern such as "dd.MM.yyyy". It is parsed
//     by the locale engine, or converted to a native layout when the
//     validator was built WithoutLocaleEngine.
//
// Configuration problems, including bounds given as strings that do not
// parse, are returned by New. Bad input never produces an error: it is
// reported as a ValidationError carrying a translation key and values.
//
// # Usage
//
//	v, err := validator.New(
//	    validator.WithFormat("yyyy-MM-dd"),
//	    validator.WithMin("1900-01-01"),
//	    validator.WithTimestampTarget("birthday_ts"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	var errs validator.ValidationErrors
//	rec := validator.Map{"birthday": "1958-01-12"}
//	if err := v.ValidateField(rec, "birthday", &errs); err != nil {
//	    return err
//	}
//	// rec["birthday_ts"] now holds the Unix timestamp.
//
// Validators also produce Rule values, so they compose with Apply:
//
//	err := validator.Apply(
//	    v.Rule("birthday", form.Birthday),
//	    v.Rule("hired", form.Hired),
//	)
//
// Messages can be rendered in other languages with the bundled catalogs:
//
//	tr, _ := validator.NewTranslator(ctx, nil)
//	msg := validator.Translate(tr, "de-DE", verr)
package validator

// Package dateformat resolves raw date format strings into one of the two
// pattern dialects understood by the date validator and converts between them.
//
// Three kinds of format strings are recognised:
//
//   - Native patterns, prefixed with "php:" (or the "native:" alias), use the
//     single-letter dialect of createFromFormat (Y, m, d, H, i, s, ...). The
//     prefix is stripped and the remainder is passed to the native parser
//     verbatim.
//   - Style aliases ("full", "long", "medium", "short") ask the locale-aware
//     engine for the locale's default date pattern of that verbosity.
//   - Everything else is an ICU-style symbolic pattern (yyyy-MM-dd, d MMM y,
//     HH:mm:ss, ...) where the repetition count of a letter selects the width.
//
// # Usage
//
//	spec := dateformat.Resolve("dd.MM.yyyy")
//	if spec.Kind == dateformat.KindICUPattern {
//	    native, err := dateformat.ICUToNative(spec.Pattern)
//	    // native == "d.m.Y"
//	}
//
// Tokenize exposes the ICU tokenizer so that engines share a single reading of
// quoting rules.
//
// # Error Handling
//
// Conversion fails with ErrUnsupportedToken when a symbolic field has no
// native counterpart and with ErrUnterminatedQuote for unbalanced quotes.
package dateformat

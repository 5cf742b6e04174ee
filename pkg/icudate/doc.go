// Package icudate is a pure-Go locale date engine for ICU-style symbolic
// patterns (yyyy-MM-dd, d MMMM y, dd.MM.yy, ...).
//
// Locale data is a small CLDR subset embedded from locales.yaml: month and
// weekday names, day periods, eras and the four default date patterns (full,
// long, medium, short) for en, en-GB, de, fr, ru and es. Locale identifiers
// are matched with golang.org/x/text/language, so en-US resolves to en and
// de_AT to de.
//
// # Parsing
//
//	e := icudate.Default()
//	t, pos, err := e.Parse("12 Mai 2014", "dd MMM yyyy", "de", time.UTC)
//	// pos == 11, the whole value was consumed
//
// Parsing is strict: values are range checked and never rolled over. Numeric
// fields accept any number of digits unless they abut another numeric field
// (yyyyMMdd), in which case the pattern width is the field width. A two-digit
// year under y or yy is placed in the century starting 80 years before now.
// Month, weekday, era and day period names are matched case-insensitively.
// Parse stops at the end of the pattern and reports the rune position reached;
// deciding whether leftover input is acceptable is up to the caller.
//
// Format exists for the inverse direction with the same locale data.
package icudate

// Package nativedate implements a strict parser for the single-letter
// createFromFormat date dialect (Y-m-d H:i:s and friends).
//
// Unlike a lenient implementation it never normalises impossible values: a
// month of 13, a 32nd day, February 30th, hour 24 or trailing characters after
// the last pattern element all make Parse fail.
//
// # Supported layout characters
//
//	d, j      day of month, 1 or 2 digits
//	D, l      day name (Mon / Monday), checked but otherwise ignored
//	S         English ordinal suffix (st, nd, rd, th)
//	z         zero-based day of the year
//	m, n      month, 1 or 2 digits
//	M, F      month name (Jan / January)
//	Y         year, up to 4 digits
//	y         two-digit year (70-99 -> 19xx, 00-69 -> 20xx)
//	a, A      am / pm
//	g, h      12-hour clock hour, 1 or 2 digits
//	G, H      24-hour clock hour, 1 or 2 digits
//	i, s      minutes and seconds, exactly 2 digits
//	v, u      milliseconds (3 digits) and microseconds (up to 6 digits)
//	e, T, O, P, p
//	          time zone: identifier, abbreviation or offset
//	U         seconds since the Unix epoch
//	space     zero or more blanks
//	#         one of ;:/.,-()
//	?         any single character
//	*         any run of characters up to the next separator or digit
//	!         reset every field to the Unix epoch
//	|         reset fields not parsed yet to the Unix epoch
//	+         tolerated, but trailing data is still an error
//	\         escape the next character
//
// Fields that the layout never sets take their value from the current time
// (see WithClock), unless ! or | is used.
package nativedate

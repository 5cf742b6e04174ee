package nativedate

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	monthNames = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	dayNames = []string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}
	ordinalSuffixes = []string{"st", "nd", "rd", "th"}
)

// zoneAbbreviations covers the abbreviations most often seen in input data.
// Anything else must be an IANA identifier or a numeric offset.
var zoneAbbreviations = map[string]int{
	"UTC":  0,
	"GMT":  0,
	"Z":    0,
	"WET":  0,
	"BST":  1 * 3600,
	"CET":  1 * 3600,
	"WEST": 1 * 3600,
	"CEST": 2 * 3600,
	"EET":  2 * 3600,
	"EEST": 3 * 3600,
	"MSK":  3 * 3600,
	"EST":  -5 * 3600,
	"EDT":  -4 * 3600,
	"CST":  -6 * 3600,
	"CDT":  -5 * 3600,
	"MST":  -7 * 3600,
	"MDT":  -6 * 3600,
	"PST":  -8 * 3600,
	"PDT":  -7 * 3600,
}

type fieldSet uint16

const (
	setYear fieldSet = 1 << iota
	setMonth
	setDay
	setHour
	setMinute
	setSecond
	setFraction
	setZone

	setTime = setHour | setMinute | setSecond | setFraction
	setAll  = setYear | setMonth | setDay | setTime | setZone
)

const (
	meridiemNone = iota
	meridiemAM
	meridiemPM
)

// Parser parses values against native layouts. The zero value is not usable,
// create one with New.
type Parser struct {
	now func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock replaces time.Now as the source of fields the layout does not set.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse parses value with the package default parser.
func Parse(layout, value string, loc *time.Location) (time.Time, error) {
	return defaultParser.Parse(layout, value, loc)
}

// Parse parses value according to layout. Values without zone information are
// interpreted in loc (UTC when nil).
func (p *Parser) Parse(layout, value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	now := p.now().In(loc)

	st := &state{
		in:     value,
		year:   now.Year(),
		month:  int(now.Month()),
		day:    now.Day(),
		hour:   now.Hour(),
		minute: now.Minute(),
		second: now.Second(),
	}

	lr := []rune(layout)
	for i := 0; i < len(lr); i++ {
		var err error
		switch c := lr[i]; c {
		case 'd', 'j':
			st.day, err = st.number(1, 2)
			st.set |= setDay
		case 'D', 'l':
			_, err = st.name(dayNames)
		case 'S':
			_, err = st.name(ordinalSuffixes)
		case 'z':
			st.doy, err = st.number(1, 3)
			st.doySet = true
		case 'm', 'n':
			st.month, err = st.number(1, 2)
			st.set |= setMonth
		case 'M', 'F':
			var idx int
			idx, err = st.name(monthNames)
			st.month = idx + 1
			st.set |= setMonth
		case 'Y':
			st.year, err = st.number(1, 4)
			st.set |= setYear
		case 'y':
			var yy int
			yy, err = st.number(2, 2)
			if yy < 70 {
				st.year = 2000 + yy
			} else {
				st.year = 1900 + yy
			}
			st.set |= setYear
		case 'a', 'A':
			err = st.meridian()
		case 'g', 'h':
			st.hour, err = st.number(1, 2)
			st.hour12 = true
			st.set |= setHour
		case 'G', 'H':
			st.hour, err = st.number(1, 2)
			st.set |= setHour
		case 'i':
			st.minute, err = st.number(2, 2)
			st.set |= setMinute
		case 's':
			st.second, err = st.number(2, 2)
			st.set |= setSecond
		case 'v':
			var ms int
			ms, err = st.number(3, 3)
			st.nsec = ms * int(time.Millisecond)
			st.set |= setFraction
		case 'u':
			err = st.micros()
			st.set |= setFraction
		case 'e', 'T', 'O', 'P', 'p':
			err = st.zoneValue()
		case 'U':
			err = st.unixValue()
		case '!':
			st.reset(setAll)
		case '|':
			st.reset(setAll &^ st.set)
		case '+':
			// trailing data is reported after the loop either way
		case '?':
			err = st.anyRune()
		case '*':
			st.skipUntilSeparator()
		case '#':
			err = st.separator()
		case ' ':
			st.skipBlanks()
		case '\\':
			i++
			if i >= len(lr) {
				return time.Time{}, ErrBadLayout
			}
			err = st.literal(lr[i])
		default:
			err = st.literal(c)
		}
		if err != nil {
			return time.Time{}, fmt.Errorf("%w at position %d", err, st.pos)
		}
	}

	if st.pos < len(st.in) {
		return time.Time{}, fmt.Errorf("%w at position %d", ErrTrailingData, st.pos)
	}

	return st.build(loc)
}

type state struct {
	in  string
	pos int

	year, month, day           int
	hour, minute, second, nsec int
	doy                        int
	doySet, hour12             bool
	meridiem                   int
	zone                       *time.Location
	set                        fieldSet
}

func (st *state) rest() string {
	return st.in[st.pos:]
}

func (st *state) number(minDigits, maxDigits int) (int, error) {
	n, v := 0, 0
	for n < maxDigits && st.pos+n < len(st.in) {
		c := st.in[st.pos+n]
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int(c-'0')
		n++
	}
	if n < minDigits {
		if st.pos+n >= len(st.in) {
			return 0, ErrUnexpectedEnd
		}
		return 0, ErrInvalidNumber
	}
	st.pos += n
	return v, nil
}

// name matches one of names (or its three-letter abbreviation) case-insensitively
// and returns the index of the match.
func (st *state) name(names []string) (int, error) {
	rest := st.rest()
	if rest == "" {
		return 0, ErrUnexpectedEnd
	}
	for i, n := range names {
		if len(rest) >= len(n) && strings.EqualFold(rest[:len(n)], n) {
			st.pos += len(n)
			return i, nil
		}
	}
	for i, n := range names {
		if len(n) <= 3 {
			continue
		}
		abbr := n[:3]
		if len(rest) >= 3 && strings.EqualFold(rest[:3], abbr) {
			st.pos += 3
			return i, nil
		}
	}
	return 0, ErrUnknownName
}

func (st *state) meridian() error {
	rest := st.rest()
	if rest == "" {
		return ErrUnexpectedEnd
	}
	for _, m := range []struct {
		text  string
		value int
	}{
		{"a.m.", meridiemAM}, {"p.m.", meridiemPM}, {"am", meridiemAM}, {"pm", meridiemPM},
	} {
		if len(rest) >= len(m.text) && strings.EqualFold(rest[:len(m.text)], m.text) {
			st.pos += len(m.text)
			st.meridiem = m.value
			return nil
		}
	}
	return ErrUnknownName
}

func (st *state) micros() error {
	start := st.pos
	v, err := st.number(1, 6)
	if err != nil {
		return err
	}
	for range 6 - (st.pos - start) {
		v *= 10
	}
	st.nsec = v * int(time.Microsecond)
	return nil
}

func (st *state) zoneValue() error {
	rest := st.rest()
	if rest == "" {
		return ErrUnexpectedEnd
	}

	if rest[0] == '+' || rest[0] == '-' {
		return st.offset()
	}

	n := 0
	for n < len(rest) && isZoneNameByte(rest[n]) {
		n++
	}
	if n == 0 {
		return ErrInvalidZone
	}
	upper := strings.ToUpper(rest[:n])

	if (upper == "GMT" || upper == "UTC") && n < len(rest) && (rest[n] == '+' || rest[n] == '-') {
		st.pos += n
		return st.offset()
	}

	if off, ok := zoneAbbreviations[upper]; ok {
		st.pos += n
		if off == 0 {
			st.zone = time.UTC
		} else {
			st.zone = time.FixedZone(upper, off)
		}
		st.set |= setZone
		return nil
	}

	// IANA names may carry '-' and '+' (America/Port-au-Prince, Etc/GMT+5).
	// The longest loadable name wins.
	long := n
	for long < len(rest) && (isZoneNameByte(rest[long]) || rest[long] == '-' || rest[long] == '+') {
		long++
	}
	for _, size := range []int{long, n} {
		loc, err := time.LoadLocation(rest[:size])
		if err != nil {
			continue
		}
		st.pos += size
		st.zone = loc
		st.set |= setZone
		return nil
	}
	return ErrInvalidZone
}

func isZoneNameByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '/'
}

// offset parses +H, +HH, +HHMM and +HH:MM.
func (st *state) offset() error {
	sign := 1
	if st.in[st.pos] == '-' {
		sign = -1
	}
	st.pos++

	hours, err := st.number(1, 2)
	if err != nil {
		return err
	}
	minutes := 0
	if st.pos < len(st.in) && st.in[st.pos] == ':' {
		st.pos++
		if minutes, err = st.number(2, 2); err != nil {
			return err
		}
	} else if st.pos+1 < len(st.in) && isDigit(st.in[st.pos]) && isDigit(st.in[st.pos+1]) {
		minutes, _ = st.number(2, 2)
	}
	if hours > 14 || minutes > 59 {
		return ErrInvalidZone
	}

	st.zone = time.FixedZone("", sign*(hours*3600+minutes*60))
	st.set |= setZone
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (st *state) unixValue() error {
	neg := false
	if st.pos < len(st.in) && (st.in[st.pos] == '-' || st.in[st.pos] == '+') {
		neg = st.in[st.pos] == '-'
		st.pos++
	}
	start := st.pos
	var v int64
	for st.pos < len(st.in) && isDigit(st.in[st.pos]) && st.pos-start < 18 {
		v = v*10 + int64(st.in[st.pos]-'0')
		st.pos++
	}
	if st.pos == start {
		if st.pos >= len(st.in) {
			return ErrUnexpectedEnd
		}
		return ErrInvalidNumber
	}
	if neg {
		v = -v
	}

	t := time.Unix(v, 0).UTC()
	st.year, st.month, st.day = t.Year(), int(t.Month()), t.Day()
	st.hour, st.minute, st.second, st.nsec = t.Hour(), t.Minute(), t.Second(), 0
	st.zone = time.UTC
	st.doySet = false
	st.set = setAll
	return nil
}

func (st *state) anyRune() error {
	if st.pos >= len(st.in) {
		return ErrUnexpectedEnd
	}
	_, size := utf8.DecodeRuneInString(st.rest())
	st.pos += size
	return nil
}

const separators = ";:/.,-()"

func (st *state) skipUntilSeparator() {
	for st.pos < len(st.in) {
		c := st.in[st.pos]
		if c == ' ' || isDigit(c) || strings.IndexByte(separators, c) >= 0 {
			return
		}
		st.pos++
	}
}

func (st *state) separator() error {
	if st.pos >= len(st.in) {
		return ErrUnexpectedEnd
	}
	if strings.IndexByte(separators, st.in[st.pos]) < 0 {
		return ErrLiteralMismatch
	}
	st.pos++
	return nil
}

func (st *state) skipBlanks() {
	for st.pos < len(st.in) && (st.in[st.pos] == ' ' || st.in[st.pos] == '\t') {
		st.pos++
	}
}

func (st *state) literal(r rune) error {
	if st.pos >= len(st.in) {
		return ErrUnexpectedEnd
	}
	got, size := utf8.DecodeRuneInString(st.rest())
	if got != r {
		return ErrLiteralMismatch
	}
	st.pos += size
	return nil
}

// reset sets the given fields to their Unix epoch values and marks them parsed.
func (st *state) reset(fields fieldSet) {
	if fields&setYear != 0 {
		st.year = 1970
		st.doySet = false
	}
	if fields&setMonth != 0 {
		st.month = 1
	}
	if fields&setDay != 0 {
		st.day = 1
	}
	if fields&setHour != 0 {
		st.hour = 0
		st.hour12 = false
		st.meridiem = meridiemNone
	}
	if fields&setMinute != 0 {
		st.minute = 0
	}
	if fields&setSecond != 0 {
		st.second = 0
	}
	if fields&setFraction != 0 {
		st.nsec = 0
	}
	if fields&setZone != 0 {
		st.zone = nil
	}
	st.set |= fields
}

func (st *state) build(loc *time.Location) (time.Time, error) {
	// once any time-of-day field is parsed the others default to zero
	if st.set&setTime != 0 {
		if st.set&setHour == 0 {
			st.hour = 0
		}
		if st.set&setMinute == 0 {
			st.minute = 0
		}
		if st.set&setSecond == 0 {
			st.second = 0
		}
	}

	if st.meridiem != meridiemNone {
		if st.set&setHour == 0 {
			return time.Time{}, ErrMeridiem
		}
		if st.hour < 1 || st.hour > 12 {
			return time.Time{}, ErrOutOfRange
		}
		switch {
		case st.meridiem == meridiemAM && st.hour == 12:
			st.hour = 0
		case st.meridiem == meridiemPM && st.hour < 12:
			st.hour += 12
		}
	} else if st.hour12 && (st.hour < 1 || st.hour > 12) {
		return time.Time{}, ErrOutOfRange
	}

	if st.doySet {
		if st.doy >= daysInYear(st.year) {
			return time.Time{}, ErrOutOfRange
		}
		d := time.Date(st.year, time.January, 1+st.doy, 0, 0, 0, 0, time.UTC)
		st.month, st.day = int(d.Month()), d.Day()
	}

	if st.month < 1 || st.month > 12 ||
		st.day < 1 || st.day > daysIn(st.year, time.Month(st.month)) ||
		st.hour < 0 || st.hour > 23 ||
		st.minute < 0 || st.minute > 59 ||
		st.second < 0 || st.second > 59 {
		return time.Time{}, ErrOutOfRange
	}

	zone := loc
	if st.zone != nil {
		zone = st.zone
	}
	return time.Date(st.year, time.Month(st.month), st.day, st.hour, st.minute, st.second, st.nsec, zone), nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysInYear(year int) int {
	if daysIn(year, time.February) == 29 {
		return 366
	}
	return 365
}

package icudate

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/datevalidator/pkg/dateformat"
)

// maxDigits bounds numeric fields that are not followed by another numeric
// field.
const maxDigits = 9

var zoneAbbreviations = map[string]int{
	"UTC":  0,
	"GMT":  0,
	"UT":   0,
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

type hourKind int

const (
	hour0to23 hourKind = iota // H
	hour1to12                 // h
	hour1to24                 // k
	hour0to11                 // K
)

type parser struct {
	in     []rune
	pos    int
	locale *Locale
	fold   cases.Caser
	now    time.Time

	year, month, day     int
	doy                  int
	hour, minute, second int
	nsec                 int
	hourKind             hourKind
	zone                 *time.Location

	period int // -1 unset, 0 am, 1 pm
	era    int // -1 unset, 0 before, 1 after

	monthSet, daySet, doySet bool
}

func newParser(value string, l *Locale, now time.Time) *parser {
	return &parser{
		in:     []rune(value),
		locale: l,
		fold:   cases.Fold(),
		now:    now,
		year:   1970,
		month:  1,
		day:    1,
		period: -1,
		era:    -1,
	}
}

func (p *parser) run(tokens []dateformat.Token, loc *time.Location) (time.Time, int, error) {
	for i, tok := range tokens {
		var err error
		if tok.IsLiteral() {
			err = p.literal(tok.Literal)
		} else {
			width := 0
			if i+1 < len(tokens) && isNumeric(tokens[i+1]) {
				width = tok.Count
			}
			err = p.field(tok, width)
		}
		if err != nil {
			return time.Time{}, p.pos, err
		}
	}

	t, err := p.build(loc)
	return t, p.pos, err
}

func isNumeric(tok dateformat.Token) bool {
	switch tok.Field {
	case 'y', 'u', 'd', 'D', 'H', 'h', 'k', 'K', 'm', 's', 'S':
		return true
	case 'M', 'L':
		return tok.Count <= 2
	}
	return false
}

// field parses one pattern field. A non-zero width means the field abuts the
// next numeric field and must be exactly that many digits long.
func (p *parser) field(tok dateformat.Token, width int) error {
	if !supportedField(tok) {
		return fmt.Errorf("%w: %s", ErrUnsupportedField, tok)
	}

	var err error
	switch tok.Field {
	case 'G':
		p.era, err = p.name(p.locale.Eras)
	case 'y', 'u':
		start := p.pos
		p.year, err = p.number(width)
		if err == nil && tok.Count <= 2 && p.pos-start == 2 {
			p.year = p.twoDigitYear(p.year)
		}
	case 'M', 'L':
		if tok.Count <= 2 {
			p.month, err = p.number(width)
		} else {
			var idx int
			months, standalone := p.locale.Months, p.locale.standaloneMonths()
			idx, err = p.name(months.Wide, months.Abbreviated, standalone.Wide, standalone.Abbreviated)
			p.month = idx + 1
		}
		p.monthSet = true
	case 'd':
		p.day, err = p.number(width)
		p.daySet = true
	case 'D':
		p.doy, err = p.number(width)
		p.doySet = true
	case 'E':
		_, err = p.name(p.locale.Weekdays.Wide, p.locale.Weekdays.Abbreviated)
	case 'a':
		p.period, err = p.name(p.locale.DayPeriods, []string{"AM", "PM"})
	case 'H':
		p.hour, err = p.number(width)
		p.hourKind = hour0to23
	case 'h':
		p.hour, err = p.number(width)
		p.hourKind = hour1to12
	case 'k':
		p.hour, err = p.number(width)
		p.hourKind = hour1to24
	case 'K':
		p.hour, err = p.number(width)
		p.hourKind = hour0to11
	case 'm':
		p.minute, err = p.number(width)
	case 's':
		p.second, err = p.number(width)
	case 'S':
		err = p.fraction(width)
	case 'Z', 'X', 'x', 'O', 'z', 'V':
		p.zone, err = p.timeZone()
	}
	return err
}

// supportedField reports whether the parser understands the field of tok.
func supportedField(tok dateformat.Token) bool {
	switch tok.Field {
	case 'G', 'y', 'u', 'd', 'D', 'a', 'H', 'h', 'k', 'K', 'm', 's', 'S',
		'Z', 'X', 'x', 'O', 'z', 'V':
		return true
	case 'M', 'L', 'E':
		return tok.Count <= 4
	}
	return false
}

// twoDigitYear maps yy into the century starting 80 years before now.
func (p *parser) twoDigitYear(yy int) int {
	start := p.now.Year() - 80
	year := start - start%100 + yy
	if year < start {
		year += 100
	}
	return year
}

func (p *parser) number(width int) (int, error) {
	limit := maxDigits
	if width > 0 {
		limit = width
	}
	n, v := 0, 0
	for n < limit && p.pos+n < len(p.in) {
		r := p.in[p.pos+n]
		if r < '0' || r > '9' {
			break
		}
		v = v*10 + int(r-'0')
		n++
	}
	if n == 0 || (width > 0 && n != width) {
		if p.pos+n >= len(p.in) {
			return 0, ErrUnexpectedEnd
		}
		return 0, ErrInvalidNumber
	}
	p.pos += n
	return v, nil
}

func (p *parser) fraction(width int) error {
	start := p.pos
	v, err := p.number(width)
	if err != nil {
		return err
	}
	for range 9 - (p.pos - start) {
		v *= 10
	}
	p.nsec = v
	return nil
}

// name matches the longest name of the given sets, case-insensitively, and
// returns its index. A trailing dot of an abbreviation is optional.
func (p *parser) name(sets ...[]string) (int, error) {
	if p.pos >= len(p.in) {
		return 0, ErrUnexpectedEnd
	}
	best, bestLen := -1, 0
	for _, set := range sets {
		for i, name := range set {
			for _, candidate := range []string{name, strings.TrimSuffix(name, ".")} {
				n := utf8.RuneCountInString(candidate)
				if n == 0 || n <= bestLen || p.pos+n > len(p.in) {
					continue
				}
				if p.fold.String(string(p.in[p.pos:p.pos+n])) == p.fold.String(candidate) {
					best, bestLen = i, n
				}
			}
		}
	}
	if best < 0 {
		return 0, ErrUnknownName
	}
	p.pos += bestLen
	return best, nil
}

// literal matches pattern text. Whitespace in the pattern matches one or more
// whitespace characters of the value.
func (p *parser) literal(text string) error {
	for _, r := range text {
		if p.pos >= len(p.in) {
			return ErrUnexpectedEnd
		}
		if unicode.IsSpace(r) {
			if !unicode.IsSpace(p.in[p.pos]) {
				return ErrLiteralMismatch
			}
			for p.pos < len(p.in) && unicode.IsSpace(p.in[p.pos]) {
				p.pos++
			}
			continue
		}
		if p.in[p.pos] != r {
			return ErrLiteralMismatch
		}
		p.pos++
	}
	return nil
}

func (p *parser) timeZone() (*time.Location, error) {
	if p.pos >= len(p.in) {
		return nil, ErrUnexpectedEnd
	}
	switch r := p.in[p.pos]; {
	case r == 'Z':
		if p.pos+1 >= len(p.in) || !isZoneNameRune(p.in[p.pos+1]) {
			p.pos++
			return time.UTC, nil
		}
	case r == '+' || r == '-':
		return p.offset()
	}

	n := 0
	for p.pos+n < len(p.in) && isZoneNameRune(p.in[p.pos+n]) {
		n++
	}
	if n == 0 {
		return nil, ErrInvalidZone
	}
	name := string(p.in[p.pos : p.pos+n])
	upper := strings.ToUpper(name)

	if upper == "GMT" || upper == "UTC" || upper == "UT" {
		p.pos += n
		if p.pos < len(p.in) && (p.in[p.pos] == '+' || p.in[p.pos] == '-') {
			return p.offset()
		}
		return time.UTC, nil
	}
	if off, ok := zoneAbbreviations[upper]; ok {
		p.pos += n
		return time.FixedZone(upper, off), nil
	}
	// IANA names may carry '-' and '+' (America/Port-au-Prince, Etc/GMT+5).
	long := n
	for p.pos+long < len(p.in) && (isZoneNameRune(p.in[p.pos+long]) || p.in[p.pos+long] == '-' || p.in[p.pos+long] == '+') {
		long++
	}
	for _, size := range []int{long, n} {
		loc, err := time.LoadLocation(string(p.in[p.pos : p.pos+size]))
		if err != nil {
			continue
		}
		p.pos += size
		return loc, nil
	}
	return nil, ErrInvalidZone
}

func isZoneNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '/'
}

// offset reads +H, +HH, +HHMM, +H:MM and +HH:MM.
func (p *parser) offset() (*time.Location, error) {
	sign := 1
	if p.in[p.pos] == '-' {
		sign = -1
	}
	p.pos++

	start := p.pos
	digits := 0
	for p.pos+digits < len(p.in) && digits < 4 && p.in[p.pos+digits] >= '0' && p.in[p.pos+digits] <= '9' {
		digits++
	}

	var hours, minutes int
	var err error
	switch digits {
	case 0:
		if p.pos >= len(p.in) {
			return nil, ErrUnexpectedEnd
		}
		return nil, ErrInvalidZone
	case 1, 2:
		if hours, err = p.number(digits); err != nil {
			return nil, err
		}
		if p.pos < len(p.in) && p.in[p.pos] == ':' {
			p.pos++
			if minutes, err = p.number(2); err != nil {
				return nil, err
			}
		}
	case 4:
		hours, _ = p.number(2)
		minutes, _ = p.number(2)
	default:
		p.pos = start
		return nil, ErrInvalidZone
	}
	if hours > 14 || minutes > 59 {
		return nil, ErrInvalidZone
	}
	return time.FixedZone("", sign*(hours*3600+minutes*60)), nil
}

func (p *parser) build(loc *time.Location) (time.Time, error) {
	if p.era == 0 {
		if p.year < 1 {
			return time.Time{}, ErrOutOfRange
		}
		p.year = 1 - p.year
	}

	switch p.hourKind {
	case hour1to12:
		if p.hour < 1 || p.hour > 12 {
			return time.Time{}, ErrOutOfRange
		}
		p.hour %= 12
		if p.period == 1 {
			p.hour += 12
		}
	case hour0to11:
		if p.hour > 11 {
			return time.Time{}, ErrOutOfRange
		}
		if p.period == 1 {
			p.hour += 12
		}
	case hour1to24:
		if p.hour < 1 || p.hour > 24 {
			return time.Time{}, ErrOutOfRange
		}
		p.hour %= 24
	}

	if p.doySet && !p.monthSet && !p.daySet {
		if p.doy < 1 || p.doy > daysInYear(p.year) {
			return time.Time{}, ErrOutOfRange
		}
		d := time.Date(p.year, time.January, p.doy, 0, 0, 0, 0, time.UTC)
		p.month, p.day = int(d.Month()), d.Day()
	}

	if p.month < 1 || p.month > 12 ||
		p.day < 1 || p.day > daysIn(p.year, time.Month(p.month)) ||
		p.hour < 0 || p.hour > 23 ||
		p.minute > 59 || p.second > 59 {
		return time.Time{}, ErrOutOfRange
	}

	zone := loc
	if p.zone != nil {
		zone = p.zone
	}
	return time.Date(p.year, time.Month(p.month), p.day, p.hour, p.minute, p.second, p.nsec, zone), nil
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

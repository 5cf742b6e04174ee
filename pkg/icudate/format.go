package icudate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/datevalidator/pkg/dateformat"
)

func format(t time.Time, tokens []dateformat.Token, l *Locale) (string, error) {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.IsLiteral() {
			b.WriteString(tok.Literal)
			continue
		}
		s, err := formatField(t, tok, l)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

func formatField(t time.Time, tok dateformat.Token, l *Locale) (string, error) {
	n := tok.Count
	switch tok.Field {
	case 'G':
		if t.Year() < 1 {
			return l.Eras[0], nil
		}
		return l.Eras[1], nil
	case 'y':
		year := t.Year()
		if year < 1 {
			year = 1 - year
		}
		if n == 2 {
			return pad(year%100, 2), nil
		}
		return pad(year, n), nil
	case 'u':
		return pad(t.Year(), n), nil
	case 'M', 'L':
		months := l.Months
		if tok.Field == 'L' {
			months = l.standaloneMonths()
		}
		switch n {
		case 1, 2:
			return pad(int(t.Month()), n), nil
		case 3:
			return months.Abbreviated[t.Month()-1], nil
		case 4:
			return months.Wide[t.Month()-1], nil
		}
	case 'd':
		return pad(t.Day(), n), nil
	case 'D':
		return pad(t.YearDay(), n), nil
	case 'E':
		switch {
		case n <= 3:
			return l.Weekdays.Abbreviated[t.Weekday()], nil
		case n == 4:
			return l.Weekdays.Wide[t.Weekday()], nil
		}
	case 'a':
		if t.Hour() < 12 {
			return l.DayPeriods[0], nil
		}
		return l.DayPeriods[1], nil
	case 'H':
		return pad(t.Hour(), n), nil
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return pad(h, n), nil
	case 'k':
		h := t.Hour()
		if h == 0 {
			h = 24
		}
		return pad(h, n), nil
	case 'K':
		return pad(t.Hour()%12, n), nil
	case 'm':
		return pad(t.Minute(), n), nil
	case 's':
		return pad(t.Second(), n), nil
	case 'S':
		frac := pad(t.Nanosecond(), 9)
		if n <= 9 {
			return frac[:n], nil
		}
		return frac + strings.Repeat("0", n-9), nil
	case 'Z':
		switch {
		case n <= 3:
			return t.Format("-0700"), nil
		case n == 4:
			return "GMT" + t.Format("-07:00"), nil
		case n == 5:
			return zuluOr(t, "-07:00"), nil
		}
	case 'X':
		switch n {
		case 1:
			return zuluOr(t, "-07"), nil
		case 2, 4:
			return zuluOr(t, "-0700"), nil
		case 3, 5:
			return zuluOr(t, "-07:00"), nil
		}
	case 'x':
		switch n {
		case 1:
			return t.Format("-07"), nil
		case 2, 4:
			return t.Format("-0700"), nil
		case 3, 5:
			return t.Format("-07:00"), nil
		}
	case 'O':
		if _, off := t.Zone(); off == 0 {
			return "GMT", nil
		}
		if n == 4 {
			return "GMT" + t.Format("-07:00"), nil
		}
		return "GMT" + shortOffset(t), nil
	case 'z':
		name, _ := t.Zone()
		return name, nil
	case 'V':
		if n == 2 {
			return t.Location().String(), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedField, tok)
}

func zuluOr(t time.Time, layout string) string {
	if _, off := t.Zone(); off == 0 {
		return "Z"
	}
	return t.Format(layout)
}

// shortOffset renders the offset as +H or +H:MM.
func shortOffset(t time.Time) string {
	_, off := t.Zone()
	sign := "+"
	if off < 0 {
		sign, off = "-", -off
	}
	s := sign + strconv.Itoa(off/3600)
	if m := off % 3600 / 60; m != 0 {
		s += ":" + pad(m, 2)
	}
	return s
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

package nativedate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timeOfDayFields are the layout characters that carry wall-clock time.
// U is not one of them: a date-only check of "U" still yields midnight.
const timeOfDayFields = "HhGgis"

// HasTimeFields reports whether layout contains a time-of-day field.
// Escaped characters are ignored.
func HasTimeFields(layout string) bool {
	lr := []rune(layout)
	for i := 0; i < len(lr); i++ {
		if lr[i] == '\\' {
			i++
			continue
		}
		if strings.ContainsRune(timeOfDayFields, lr[i]) {
			return true
		}
	}
	return false
}

// CheckLayout reports layouts no value can ever match. A backslash must be
// followed by the character it escapes.
func CheckLayout(layout string) error {
	lr := []rune(layout)
	for i := 0; i < len(lr); i++ {
		if lr[i] != '\\' {
			continue
		}
		i++
		if i >= len(lr) {
			return fmt.Errorf("%w: trailing backslash in %q", ErrBadLayout, layout)
		}
	}
	return nil
}

// Format renders t with a native layout. Characters without a meaning are
// copied as is; a backslash escapes the next character.
func Format(t time.Time, layout string) string {
	var b strings.Builder
	lr := []rune(layout)
	for i := 0; i < len(lr); i++ {
		c := lr[i]
		switch c {
		case 'd':
			b.WriteString(pad(t.Day(), 2))
		case 'j':
			b.WriteString(strconv.Itoa(t.Day()))
		case 'D':
			b.WriteString(dayNames[t.Weekday()][:3])
		case 'l':
			b.WriteString(dayNames[t.Weekday()])
		case 'S':
			b.WriteString(ordinalSuffix(t.Day()))
		case 'z':
			b.WriteString(strconv.Itoa(t.YearDay() - 1))
		case 'm':
			b.WriteString(pad(int(t.Month()), 2))
		case 'n':
			b.WriteString(strconv.Itoa(int(t.Month())))
		case 'M':
			b.WriteString(monthNames[t.Month()-1][:3])
		case 'F':
			b.WriteString(monthNames[t.Month()-1])
		case 'Y':
			b.WriteString(pad(t.Year(), 4))
		case 'y':
			b.WriteString(pad(t.Year()%100, 2))
		case 'a':
			b.WriteString(strings.ToLower(meridiemOf(t)))
		case 'A':
			b.WriteString(meridiemOf(t))
		case 'g':
			b.WriteString(strconv.Itoa(hour12(t)))
		case 'h':
			b.WriteString(pad(hour12(t), 2))
		case 'G':
			b.WriteString(strconv.Itoa(t.Hour()))
		case 'H':
			b.WriteString(pad(t.Hour(), 2))
		case 'i':
			b.WriteString(pad(t.Minute(), 2))
		case 's':
			b.WriteString(pad(t.Second(), 2))
		case 'v':
			b.WriteString(pad(t.Nanosecond()/int(time.Millisecond), 3))
		case 'u':
			b.WriteString(pad(t.Nanosecond()/int(time.Microsecond), 6))
		case 'e':
			b.WriteString(t.Location().String())
		case 'T':
			name, _ := t.Zone()
			b.WriteString(name)
		case 'O':
			b.WriteString(t.Format("-0700"))
		case 'P':
			b.WriteString(t.Format("-07:00"))
		case 'p':
			if _, off := t.Zone(); off == 0 {
				b.WriteByte('Z')
			} else {
				b.WriteString(t.Format("-07:00"))
			}
		case 'U':
			b.WriteString(strconv.FormatInt(t.Unix(), 10))
		case '\\':
			i++
			if i < len(lr) {
				b.WriteRune(lr[i])
			}
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

func meridiemOf(t time.Time) string {
	if t.Hour() < 12 {
		return "AM"
	}
	return "PM"
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

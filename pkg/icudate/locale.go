package icudate

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/datevalidator/pkg/dateformat"
)

//go:embed locales.yaml
var bundledLocales []byte

type nameSet struct {
	Wide        []string `yaml:"wide"`
	Abbreviated []string `yaml:"abbreviated"`
}

func (n nameSet) empty() bool {
	return len(n.Wide) == 0 && len(n.Abbreviated) == 0
}

// Locale holds the calendar names and default patterns of one locale.
type Locale struct {
	Tag              string            `yaml:"tag"`
	Parent           string            `yaml:"parent"`
	Months           nameSet           `yaml:"months"`
	MonthsStandalone nameSet           `yaml:"months_standalone"`
	Weekdays         nameSet           `yaml:"weekdays"`
	DayPeriods       []string          `yaml:"day_periods"`
	Eras             []string          `yaml:"eras"`
	DateFormats      map[string]string `yaml:"date_formats"`
}

type localeFile struct {
	Locales []*Locale `yaml:"locales"`
}

// Pattern returns the default date pattern of the given style.
func (l *Locale) Pattern(style dateformat.Style) (string, error) {
	p, ok := l.DateFormats[style.String()]
	if !ok || p == "" {
		return "", fmt.Errorf("%w: %d", ErrUnknownStyle, style)
	}
	return p, nil
}

func (l *Locale) inherit(parent *Locale) {
	if l.Months.empty() {
		l.Months = parent.Months
	}
	if l.MonthsStandalone.empty() {
		l.MonthsStandalone = parent.MonthsStandalone
	}
	if l.Weekdays.empty() {
		l.Weekdays = parent.Weekdays
	}
	if len(l.DayPeriods) == 0 {
		l.DayPeriods = parent.DayPeriods
	}
	if len(l.Eras) == 0 {
		l.Eras = parent.Eras
	}
	if l.DateFormats == nil {
		l.DateFormats = parent.DateFormats
	}
}

func (l *Locale) validate() error {
	switch {
	case len(l.Months.Wide) != 12 || len(l.Months.Abbreviated) != 12:
		return fmt.Errorf("%s: months need 12 wide and 12 abbreviated names", l.Tag)
	case !l.MonthsStandalone.empty() && (len(l.MonthsStandalone.Wide) != 12 || len(l.MonthsStandalone.Abbreviated) != 12):
		return fmt.Errorf("%s: stand-alone months need 12 wide and 12 abbreviated names", l.Tag)
	case len(l.Weekdays.Wide) != 7 || len(l.Weekdays.Abbreviated) != 7:
		return fmt.Errorf("%s: weekdays need 7 wide and 7 abbreviated names", l.Tag)
	case len(l.DayPeriods) != 2:
		return fmt.Errorf("%s: day periods need exactly 2 names", l.Tag)
	case len(l.Eras) != 2:
		return fmt.Errorf("%s: eras need exactly 2 names", l.Tag)
	}
	for _, style := range []dateformat.Style{dateformat.StyleFull, dateformat.StyleLong, dateformat.StyleMedium, dateformat.StyleShort} {
		if _, err := l.Pattern(style); err != nil {
			return fmt.Errorf("%s: %w", l.Tag, err)
		}
	}
	return nil
}

// standaloneMonths falls back to the format names when a locale has no
// separate stand-alone forms.
func (l *Locale) standaloneMonths() nameSet {
	if l.MonthsStandalone.empty() {
		return l.Months
	}
	return l.MonthsStandalone
}

// catalog is the parsed locale table together with its matcher.
type catalog struct {
	locales []*Locale
	tags    []language.Tag
	matcher language.Matcher
}

func loadCatalog(data []byte) (*catalog, error) {
	var file localeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(ErrLocaleData, err)
	}
	if len(file.Locales) == 0 {
		return nil, errors.Join(ErrLocaleData, errors.New("no locales defined"))
	}

	byTag := make(map[string]*Locale, len(file.Locales))
	c := &catalog{}
	for _, l := range file.Locales {
		tag, err := language.Parse(l.Tag)
		if err != nil {
			return nil, errors.Join(ErrLocaleData, err)
		}
		if l.Parent != "" {
			parent, ok := byTag[l.Parent]
			if !ok {
				return nil, errors.Join(ErrLocaleData, fmt.Errorf("%s: parent %q must be defined first", l.Tag, l.Parent))
			}
			l.inherit(parent)
		}
		if err := l.validate(); err != nil {
			return nil, errors.Join(ErrLocaleData, err)
		}
		byTag[l.Tag] = l
		c.locales = append(c.locales, l)
		c.tags = append(c.tags, tag)
	}
	c.matcher = language.NewMatcher(c.tags)

	return c, nil
}

// lookup finds the closest supported locale. An unsupported but well-formed
// locale falls back to the first locale of the table.
func (c *catalog) lookup(locale string) (*Locale, error) {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return c.locales[0], nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return c.locales[0], nil
	}
	return c.locales[idx], nil
}

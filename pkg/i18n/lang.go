package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no loaded language matches a locale.
const DefaultLanguage = "en"

// MatchLanguage returns the entry of supported closest to locale. Locales may
// use either "-" or "_" between subtags (de-AT, ru_RU). When locale is empty,
// malformed or matches nothing, defaultLang is returned.
func MatchLanguage(locale string, supported []string, defaultLang string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" || len(supported) == 0 {
		return defaultLang
	}

	for _, lang := range supported {
		if strings.EqualFold(lang, locale) {
			return lang
		}
	}

	want, err := language.Parse(locale)
	if err != nil {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, lang := range supported {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, lang)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	_, idx, conf := language.NewMatcher(tags).Match(want)
	if conf == language.No {
		return defaultLang
	}
	return names[idx]
}

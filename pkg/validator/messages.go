package validator

import (
	"context"
	"embed"
	"fmt"
	"regexp"

	"github.com/dmitrymomot/datevalidator/pkg/i18n"
)

// Translation keys of the default messages.
const (
	KeyDateInvalid  = "validation.date_invalid"
	KeyDateTooSmall = "validation.date_too_small"
	KeyDateTooBig   = "validation.date_too_big"
)

// valueAttribute names the value in messages produced by ValidateValue.
const valueAttribute = "the input value"

type message struct {
	key  string
	text string
}

type messageSet struct {
	invalid  message
	tooSmall message
	tooBig   message
}

var defaultMessages = messageSet{
	invalid:  message{key: KeyDateInvalid, text: "The format of %{attribute} is invalid."},
	tooSmall: message{key: KeyDateTooSmall, text: "%{attribute} must be no less than %{min}."},
	tooBig:   message{key: KeyDateTooBig, text: "%{attribute} must be no greater than %{max}."},
}

var shortPlaceholder = regexp.MustCompile(`%?\{(?:attribute|min|max)\}`)

// customMessage keeps tmpl as the translation key and rewrites {name}
// placeholders to the %{name} form i18n.Sprintf renders.
func customMessage(tmpl string) message {
	text := shortPlaceholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if match[0] == '%' {
			return match
		}
		return "%" + match
	})
	return message{key: tmpl, text: text}
}

func (v *DateValidator) newError(field, attribute string, res Result) ValidationError {
	var (
		msg    message
		values = map[string]any{"attribute": attribute}
		params = map[string]string{"attribute": attribute}
	)

	switch res {
	case ResultTooSmall:
		msg = v.messages.tooSmall
		values["min"] = v.min.display
		params["min"] = v.min.display
	case ResultTooBig:
		msg = v.messages.tooBig
		values["max"] = v.max.display
		params["max"] = v.max.display
	default:
		msg = v.messages.invalid
	}

	return ValidationError{
		Field:             field,
		Result:            res,
		Message:           i18n.Sprintf(msg.text, params),
		TranslationKey:    msg.key,
		TranslationValues: values,
	}
}

//go:embed translations/*.yaml
var translations embed.FS

// NewTranslator returns a translator loaded with the bundled message catalogs.
// Messages of extra, when not nil, override or add to the bundled ones.
func NewTranslator(ctx context.Context, extra i18n.TranslationAdapter, opts ...i18n.Option) (*i18n.Translator, error) {
	bundled := i18n.NewFSAdapter(i18n.NewYAMLParser(), translations, "translations")
	return i18n.NewTranslator(ctx, i18n.Merge(bundled, extra), opts...)
}

// MessageTranslator is the part of i18n.Translator Translate needs.
type MessageTranslator interface {
	Language(locale string) string
	HasTranslation(lang, key string) bool
	T(lang, key string, args ...string) string
}

// Translate renders err in the language best matching locale. The untranslated
// message is returned when no catalog has the key.
func Translate(tr MessageTranslator, locale string, err ValidationError) string {
	if tr == nil || err.TranslationKey == "" {
		return err.Message
	}
	lang := tr.Language(locale)
	if !tr.HasTranslation(lang, err.TranslationKey) {
		return err.Message
	}

	args := make([]string, 0, 2*len(err.TranslationValues))
	for k, val := range err.TranslationValues {
		args = append(args, k, fmt.Sprint(val))
	}
	return tr.T(lang, err.TranslationKey, args...)
}

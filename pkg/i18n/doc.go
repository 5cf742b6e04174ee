// Package i18n provides message catalogs with named placeholders for
// validation messages and CLI output.
//
// Catalogs are maps keyed by language, loaded through a TranslationAdapter:
// MapAdapter for in-memory data, FileAdapter for a single YAML or JSON file
// and FSAdapter for a directory inside an fs.FS such as an embed.FS. Merge
// layers several adapters, later ones overriding keys of earlier ones.
//
// # Usage
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), translations, "translations")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//
//	lang := tr.Language("de_AT") // "de"
//	msg := tr.T(lang, "validation.date_too_small", "attribute", "Birthday", "min", "1900-01-01")
//
// Templates use %{name} placeholders; Sprintf renders one without a catalog.
// Keys containing dots address nested maps, so "validation.date_invalid"
// reads messages["validation"]["date_invalid"] unless a flat key of that name
// exists.
//
// # Language matching
//
// MatchLanguage and Translator.Language pick the closest loaded language with
// golang.org/x/text/language, so regional variants fall back to their base
// language and unknown locales to the default language.
//
// # Error Handling
//
// Loading errors wrap sentinel values (ErrFailedToReadFile,
// ErrFailedToParseYAML, ErrNoTranslationFiles, ...) for use with errors.Is.
// Lookups never fail: missing translations fall back to the key or to "".
package i18n

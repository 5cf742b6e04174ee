package dateformat

import "strings"

// NativePrefix marks a format string as a native pattern.
const NativePrefix = "php:"

// nativeAltPrefix is accepted as a synonym of NativePrefix.
const nativeAltPrefix = "native:"

// Kind identifies the dialect of a resolved format.
type Kind int

const (
	// KindICUPattern is a symbolic pattern such as "yyyy-MM-dd".
	KindICUPattern Kind = iota
	// KindICUAlias is one of the locale default styles.
	KindICUAlias
	// KindNative is a createFromFormat pattern such as "Y-m-d".
	KindNative
)

func (k Kind) String() string {
	switch k {
	case KindICUPattern:
		return "icu"
	case KindICUAlias:
		return "alias"
	case KindNative:
		return "native"
	default:
		return "unknown"
	}
}

// Style is the verbosity of a locale default pattern.
// The ordinals match the ones used by ICU date formatters.
type Style int

const (
	StyleFull   Style = 0
	StyleLong   Style = 1
	StyleMedium Style = 2
	StyleShort  Style = 3
)

var styleNames = map[string]Style{
	"full":   StyleFull,
	"long":   StyleLong,
	"medium": StyleMedium,
	"short":  StyleShort,
}

// ParseStyle maps an alias name to its Style. Matching is exact.
func ParseStyle(name string) (Style, bool) {
	s, ok := styleNames[name]
	return s, ok
}

func (s Style) String() string {
	switch s {
	case StyleFull:
		return "full"
	case StyleLong:
		return "long"
	case StyleMedium:
		return "medium"
	case StyleShort:
		return "short"
	default:
		return "unknown"
	}
}

// Spec is a resolved format. It is a plain value and safe to share.
type Spec struct {
	Kind    Kind
	Pattern string // empty for KindICUAlias
	Style   Style  // only meaningful for KindICUAlias
}

// Resolve classifies a raw format string.
func Resolve(raw string) Spec {
	if rest, ok := strings.CutPrefix(raw, NativePrefix); ok {
		return Spec{Kind: KindNative, Pattern: rest}
	}
	if rest, ok := strings.CutPrefix(raw, nativeAltPrefix); ok {
		return Spec{Kind: KindNative, Pattern: rest}
	}
	if style, ok := ParseStyle(raw); ok {
		return Spec{Kind: KindICUAlias, Style: style}
	}
	return Spec{Kind: KindICUPattern, Pattern: raw}
}

// String returns the canonical raw form of the spec.
func (s Spec) String() string {
	switch s.Kind {
	case KindNative:
		return NativePrefix + s.Pattern
	case KindICUAlias:
		return s.Style.String()
	default:
		return s.Pattern
	}
}

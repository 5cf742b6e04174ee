package dateformat

import (
	"fmt"
	"strings"
	"unicode"
)

// nativeSpecials are characters with a meaning in native patterns even though
// they are not letters.
const nativeSpecials = `\!|?*+#`

// ICUToNative converts a symbolic pattern to the native dialect.
//
//	y, yyy, yyyy -> Y     yy -> y
//	M, L -> n    MM, LL -> m    MMM, LLL -> M    MMMM, LLLL -> F
//	d -> j       dd -> d
//	E, EE, EEE -> D       EEEE -> l
//	H -> G       HH -> H       h -> g       hh -> h
//	m, mm -> i   s, ss -> s    a -> A
//	SSS -> v     SSSSSS -> u
//	Z, ZZ, ZZZ, XX, xx -> O    ZZZZZ, xxx -> P    XXX -> p
//	z, zz, zzz -> T       VV -> e
//
// Literal text is escaped so the native parser treats it verbatim.
func ICUToNative(pattern string) (string, error) {
	tokens, err := Tokenize(pattern)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, tok := range tokens {
		if tok.IsLiteral() {
			writeNativeLiteral(&b, tok.Literal)
			continue
		}
		native, ok := nativeToken(tok.Field, tok.Count)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedToken, tok.String())
		}
		b.WriteString(native)
	}
	return b.String(), nil
}

func writeNativeLiteral(b *strings.Builder, literal string) {
	for _, r := range literal {
		if unicode.IsLetter(r) || strings.ContainsRune(nativeSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
}

func nativeToken(field rune, count int) (string, bool) {
	switch field {
	case 'y', 'u':
		if count == 2 {
			return "y", true
		}
		return "Y", true
	case 'M', 'L':
		switch count {
		case 1:
			return "n", true
		case 2:
			return "m", true
		case 3:
			return "M", true
		case 4:
			return "F", true
		}
	case 'd':
		switch count {
		case 1:
			return "j", true
		case 2:
			return "d", true
		}
	case 'E':
		switch {
		case count <= 3:
			return "D", true
		case count == 4:
			return "l", true
		}
	case 'H':
		switch count {
		case 1:
			return "G", true
		case 2:
			return "H", true
		}
	case 'h':
		switch count {
		case 1:
			return "g", true
		case 2:
			return "h", true
		}
	case 'm':
		if count <= 2 {
			return "i", true
		}
	case 's':
		if count <= 2 {
			return "s", true
		}
	case 'a':
		return "A", true
	case 'S':
		switch count {
		case 3:
			return "v", true
		case 6:
			return "u", true
		}
	case 'Z':
		switch {
		case count <= 3:
			return "O", true
		case count == 5:
			return "P", true
		}
	case 'X':
		switch count {
		case 2:
			return "O", true
		case 3:
			return "p", true
		}
	case 'x':
		switch count {
		case 2:
			return "O", true
		case 3:
			return "P", true
		}
	case 'z':
		if count <= 3 {
			return "T", true
		}
	case 'V':
		if count == 2 {
			return "e", true
		}
	}
	return "", false
}

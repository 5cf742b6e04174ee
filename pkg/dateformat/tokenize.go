package dateformat

import (
	"fmt"
	"strings"
)

// Token is one element of a tokenized ICU pattern: either a field (Field set,
// Count >= 1) or a literal run (Field == 0).
type Token struct {
	Field   rune
	Count   int
	Literal string
}

// IsLiteral reports whether the token is literal text.
func (t Token) IsLiteral() bool {
	return t.Field == 0
}

// String renders the token back in ICU syntax (literals unquoted).
func (t Token) String() string {
	if t.IsLiteral() {
		return t.Literal
	}
	return strings.Repeat(string(t.Field), t.Count)
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Tokenize splits an ICU pattern into fields and literals.
// Quoted text ('...') is literal and two consecutive quotes yield a single
// quote both inside and outside quoted sections. Adjacent literals are merged.
func Tokenize(pattern string) ([]Token, error) {
	runes := []rune(pattern)
	var (
		tokens  []Token
		literal strings.Builder
	)

	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, Token{Literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			if i+1 < len(runes) && runes[i+1] == '\'' {
				literal.WriteRune('\'')
				i += 2
				continue
			}
			j := i + 1
			closed := false
			for j < len(runes) {
				if runes[j] == '\'' {
					if j+1 < len(runes) && runes[j+1] == '\'' {
						literal.WriteRune('\'')
						j += 2
						continue
					}
					closed = true
					break
				}
				literal.WriteRune(runes[j])
				j++
			}
			if !closed {
				return nil, fmt.Errorf("%w at position %d", ErrUnterminatedQuote, i)
			}
			i = j + 1
		case isPatternLetter(r):
			flush()
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			tokens = append(tokens, Token{Field: r, Count: j - i})
			i = j
		default:
			literal.WriteRune(r)
			i++
		}
	}
	flush()

	return tokens, nil
}

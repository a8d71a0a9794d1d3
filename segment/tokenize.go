package segment

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/atlasling/phondist/phone"
)

// Normalize trims surrounding whitespace and brings the string to NFD
// form, separating base letters from their combining marks.
func Normalize(s string) string {
	return norm.NFD.String(strings.TrimSpace(s))
}

func isCombining(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// Tokenize segments a string into tokens. Multi-code-point base spellings
// are matched greedily before single code points, and every run of
// combining marks attaches to the base immediately before it. Combining
// marks with no preceding base are collected into one empty-base token, so
// no code point is silently dropped. With keepBoundaries set, the sequence
// is wrapped in boundary sentinels; an empty input then yields exactly the
// two sentinels.
func Tokenize(text string, keepBoundaries bool) []Token {
	runes := []rune(Normalize(text))

	var tokens []Token
	for i := 0; i < len(runes); {
		// Stray marks before any base (malformed input).
		if isCombining(runes[i]) {
			start := i
			for i < len(runes) && isCombining(runes[i]) {
				i++
			}
			tokens = append(tokens, Token{Base: "", Marks: NewMarks(runes[start:i])})
			continue
		}

		var base phone.Symbol
		if sym, n, ok := phone.MatchLongestPrefix(runes, i); ok {
			base = sym
			i += n
		} else {
			base = phone.Symbol(string(runes[i]))
			i++
		}

		start := i
		for i < len(runes) && isCombining(runes[i]) {
			i++
		}
		tokens = append(tokens, Token{Base: base, Marks: NewMarks(runes[start:i])})
	}

	if keepBoundaries {
		wrapped := make([]Token, 0, len(tokens)+2)
		wrapped = append(wrapped, BoundaryToken)
		wrapped = append(wrapped, tokens...)
		wrapped = append(wrapped, BoundaryToken)
		return wrapped
	}
	return tokens
}

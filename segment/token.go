// Package segment converts Unicode strings into phonetic tokens: a base
// symbol plus the set of combining marks attached to it. Input is brought
// to NFD form first, so composed letters split into base and diacritics
// before scanning.
package segment

import (
	"sort"

	"github.com/atlasling/phondist/phone"
)

// Marks is a canonical set of combining marks: the runes sorted and
// deduplicated, stored as a string so tokens stay comparable.
type Marks string

// NewMarks builds a canonical mark set from the given runes.
func NewMarks(runes []rune) Marks {
	switch len(runes) {
	case 0:
		return ""
	case 1:
		return Marks(string(runes))
	}
	rs := make([]rune, len(runes))
	copy(rs, runes)
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	out := rs[:1]
	for _, r := range rs[1:] {
		if r != out[len(out)-1] {
			out = append(out, r)
		}
	}
	return Marks(string(out))
}

// Len counts the marks in the set.
func (m Marks) Len() int {
	n := 0
	for range string(m) {
		n++
	}
	return n
}

// Runes returns the marks in sorted order.
func (m Marks) Runes() []rune {
	return []rune(string(m))
}

// Token is one segmented unit: a base symbol and its combining marks.
// Tokens are immutable values; a token with Base == phone.Boundary and no
// marks is a word-edge sentinel.
type Token struct {
	Base  phone.Symbol
	Marks Marks
}

// BoundaryToken is the word-edge sentinel emitted when boundary tracking
// is enabled.
var BoundaryToken = Token{Base: phone.Boundary}

// IsBoundary reports whether the token is the word-edge sentinel.
func (t Token) IsBoundary() bool {
	return t == BoundaryToken
}

package phone

import "sort"

// multiBases lists the symbol spellings that span more than one code point
// in NFD form: apostrophe-modified consonants and diacritic-marked rhotics.
// They must be recognized before code-point-wise segmentation, otherwise
// the trailing mark would be misread as a diacritic of the bare base.
var multiBases = []Symbol{
	"g’",
	"k’",
	"hʼ",
	"lʼ",
	"nʼ",
	"r̥",
	"r̄",
	"r̃",
	"ṙ",
}

// multiBaseRunes holds the spellings as rune slices, longest first, so a
// greedy scan prefers the longest candidate.
var multiBaseRunes = func() [][]rune {
	rs := make([][]rune, len(multiBases))
	for i, mb := range multiBases {
		rs[i] = []rune(string(mb))
	}
	sort.SliceStable(rs, func(i, j int) bool { return len(rs[i]) > len(rs[j]) })
	return rs
}()

// MaxBaseLen is the longest multi-base spelling in code points; a greedy
// match never looks further ahead than this.
var MaxBaseLen = func() int {
	n := 0
	for _, rs := range multiBaseRunes {
		if len(rs) > n {
			n = len(rs)
		}
	}
	return n
}()

// MatchLongestPrefix reports the longest multi-base spelling starting at
// position pos of the rune sequence. ok is false when no spelling matches.
func MatchLongestPrefix(runes []rune, pos int) (sym Symbol, consumed int, ok bool) {
	for _, mb := range multiBaseRunes {
		if pos+len(mb) > len(runes) {
			continue
		}
		match := true
		for k, r := range mb {
			if runes[pos+k] != r {
				match = false
				break
			}
		}
		if match {
			return Symbol(string(mb)), len(mb), true
		}
	}
	return "", 0, false
}

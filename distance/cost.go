package distance

import (
	"github.com/atlasling/phondist/phone"
	"github.com/atlasling/phondist/segment"
)

// diacriticCost charges the diacritic weight per mark in the symmetric
// difference of the two mark sets. Both sets are sorted, so one merge walk
// suffices.
func diacriticCost(a, b segment.Marks, w float64) float64 {
	if a == b {
		return 0
	}
	ra, rb := a.Runes(), b.Runes()
	diff := 0
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		switch {
		case ra[i] == rb[j]:
			i++
			j++
		case ra[i] < rb[j]:
			diff++
			i++
		default:
			diff++
			j++
		}
	}
	diff += len(ra) - i + len(rb) - j
	return w * float64(diff)
}

// indelCost is the cost of inserting or deleting one token.
func indelCost(t segment.Token, w Weights) float64 {
	f := phone.Lookup(t.Base)
	switch {
	case f.Class == phone.ClassBoundary:
		return w.BoundaryIndel
	case f.IsVowelLike():
		return w.VowelIndel
	default:
		return w.ConsonantIndel
	}
}

// substitutionCost is the cost of replacing t1 by t2. Identical bases cost
// only their diacritic difference; otherwise the base cost follows the
// category pair, with true feature comparison reserved for symbols the
// table actually classifies. Diacritic differences are charged in every
// branch.
func substitutionCost(t1, t2 segment.Token, w Weights) float64 {
	d := diacriticCost(t1.Marks, t2.Marks, w.Diacritic)
	if t1.Base == t2.Base {
		return d
	}

	f1 := phone.Lookup(t1.Base)
	f2 := phone.Lookup(t2.Base)

	if f1.Class == phone.ClassBoundary || f2.Class == phone.ClassBoundary {
		if f1.Class == f2.Class {
			return d
		}
		return w.BoundaryOther + d
	}

	if f1.IsVowelLike() != f2.IsVowelLike() {
		return w.CrossCategory + d
	}
	if f1.Class == phone.ClassUnknown || f2.Class == phone.ClassUnknown {
		return w.UnknownSameCategory + d
	}

	if f1.Class == phone.ClassVowel {
		c := 0.0
		if f1.Height != f2.Height {
			c += w.HeightDiff
		}
		if f1.Backness != f2.Backness {
			c += w.BacknessDiff
		}
		if f1.Rounded != f2.Rounded {
			c += w.RoundDiff
		}
		return c + d
	}

	c := 0.0
	if f1.Voiced != f2.Voiced {
		c += w.VoiceDiff
	}
	if f1.Place != f2.Place {
		c += w.PlaceDiff
	}
	if f1.Manner != f2.Manner {
		c += w.MannerDiff
	}
	return c + d
}

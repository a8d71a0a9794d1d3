// Package distance computes the feature-weighted edit distance between
// token sequences and its normalized similarity. Substitution cost depends
// on how far apart two symbols are phonologically rather than being a flat
// constant, so dialectal spelling variants score close even when the
// character sequences differ.
package distance

import "fmt"

// Weights collects every tunable cost of the model. The zero value is not
// usable; start from Default and adjust.
type Weights struct {
	// Diacritic is charged once per combining mark present on exactly
	// one of the two tokens.
	Diacritic float64

	// Indel costs per token category.
	VowelIndel     float64
	ConsonantIndel float64
	BoundaryIndel  float64

	// Flat substitution costs.
	CrossCategory       float64 // vowel versus consonant
	UnknownSameCategory float64 // same category, at least one symbol unclassified
	BoundaryOther       float64 // boundary versus anything else

	// Vowel feature mismatch costs.
	HeightDiff   float64
	BacknessDiff float64
	RoundDiff    float64

	// Consonant feature mismatch costs.
	VoiceDiff  float64
	PlaceDiff  float64
	MannerDiff float64
}

// Default returns the standard weight set. With these values a
// same-category substitution costs between 0.2 and 1.2 before diacritics.
func Default() Weights {
	return Weights{
		Diacritic:           0.1,
		VowelIndel:          1.0,
		ConsonantIndel:      1.1,
		BoundaryIndel:       0.2,
		CrossCategory:       1.3,
		UnknownSameCategory: 0.9,
		BoundaryOther:       0.2,
		HeightDiff:          0.4,
		BacknessDiff:        0.4,
		RoundDiff:           0.2,
		VoiceDiff:           0.2,
		PlaceDiff:           0.4,
		MannerDiff:          0.6,
	}
}

// Validate rejects weight sets that would produce meaningless distances.
// All costs must be non-negative.
func (w Weights) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"diacriticWeight", w.Diacritic},
		{"vowelIndelCost", w.VowelIndel},
		{"consonantIndelCost", w.ConsonantIndel},
		{"boundaryIndelCost", w.BoundaryIndel},
		{"crossCategoryCost", w.CrossCategory},
		{"unknownSameCategoryCost", w.UnknownSameCategory},
		{"boundaryOtherCost", w.BoundaryOther},
		{"heightDiffCost", w.HeightDiff},
		{"backnessDiffCost", w.BacknessDiff},
		{"roundDiffCost", w.RoundDiff},
		{"voiceDiffCost", w.VoiceDiff},
		{"placeDiffCost", w.PlaceDiff},
		{"mannerDiffCost", w.MannerDiff},
	}
	for _, f := range fields {
		if f.v < 0 {
			return fmt.Errorf("weights: %s must not be negative, got %v", f.name, f.v)
		}
	}
	return nil
}

package phondist

import (
	"strings"

	"github.com/atlasling/phondist/distance"
	"github.com/atlasling/phondist/segment"
)

// VariantDelimiter separates alternative spellings inside one cell.
const VariantDelimiter = "/"

// SplitVariants breaks a cell into its variant spellings: NFD-normalized,
// trimmed, empty variants dropped. The fullwidth slash U+FF0F counts as a
// delimiter too. A cell with no usable variants (empty, or delimiters and
// whitespace only) falls back to the whole trimmed string as its sole
// variant, so every cell yields at least one.
func SplitVariants(cell string) []string {
	s := segment.Normalize(cell)
	s = strings.ReplaceAll(s, "／", VariantDelimiter)

	var variants []string
	for _, part := range strings.Split(s, VariantDelimiter) {
		part = strings.TrimSpace(part)
		if part != "" {
			variants = append(variants, part)
		}
	}
	if len(variants) == 0 {
		return []string{s}
	}
	return variants
}

// CellSimilarity scores two cells as the best match over the cross product
// of their variants. Each variant is tokenized once and reused across the
// cross product; with many variants per cell the repeated tokenization
// would otherwise dominate.
func (c *Comparer) CellSimilarity(cellA, cellB string) float64 {
	va := SplitVariants(cellA)
	vb := SplitVariants(cellB)

	ta := make([][]segment.Token, len(va))
	for i, v := range va {
		ta[i] = c.Tokenize(v)
	}
	tb := make([][]segment.Token, len(vb))
	for i, v := range vb {
		tb[i] = c.Tokenize(v)
	}

	best := -1.0
	for _, a := range ta {
		for _, b := range tb {
			if s := distance.Similarity(a, b, c.weights); s > best {
				best = s
			}
		}
	}
	return best
}

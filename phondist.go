// Package phondist scores the phonological similarity of orthographic or
// phonetic transcriptions. Strings are segmented into tokens of base symbol
// plus diacritics, compared with a feature-weighted edit distance, and the
// distance is normalized into a similarity in [0, 1]. Dialect-atlas cells
// holding several '/'-separated variant spellings resolve to their
// best-matching pair.
package phondist

import (
	"github.com/atlasling/phondist/distance"
	"github.com/atlasling/phondist/segment"
)

// Comparer bundles a weight set, the boundary-tracking choice and an
// optional tokenization cache. The zero-cost way to use the package is the
// package-level functions, which run a Comparer with default weights.
// A Comparer is safe for concurrent use.
type Comparer struct {
	weights        distance.Weights
	keepBoundaries bool
	cache          *segment.Cache
}

// Option configures a Comparer.
type Option func(*Comparer)

// WithWeights sets the cost weights.
func WithWeights(w distance.Weights) Option {
	return func(c *Comparer) {
		c.weights = w
	}
}

// WithBoundaries enables or disables word-boundary sentinels during
// tokenization.
func WithBoundaries(keep bool) Option {
	return func(c *Comparer) {
		c.keepBoundaries = keep
	}
}

// WithCache attaches a shared tokenization cache. Comparisons over corpora
// with recurring forms should share one cache across all calls.
func WithCache(cache *segment.Cache) Option {
	return func(c *Comparer) {
		c.cache = cache
	}
}

// WithConfig applies a full configuration (weights plus boundary setting).
func WithConfig(cfg Config) Option {
	return func(c *Comparer) {
		c.weights = cfg.Weights()
		c.keepBoundaries = cfg.KeepBoundaries
	}
}

// New creates a Comparer. The weight set is validated; negative costs are
// rejected here rather than surfacing as silently wrong distances later.
func New(opts ...Option) (*Comparer, error) {
	c := &Comparer{weights: distance.Default()}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.weights.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Weights returns the comparer's weight set.
func (c *Comparer) Weights() distance.Weights {
	return c.weights
}

// Tokenize segments a string under the comparer's boundary setting, going
// through the attached cache when one is present.
func (c *Comparer) Tokenize(text string) []segment.Token {
	if c.cache != nil {
		return c.cache.Tokenize(text, c.keepBoundaries)
	}
	return segment.Tokenize(text, c.keepBoundaries)
}

// EditDistance computes the weighted edit distance between two token
// sequences under the comparer's weights.
func (c *Comparer) EditDistance(seq1, seq2 []segment.Token) float64 {
	return distance.EditDistance(seq1, seq2, c.weights)
}

// FormSimilarity scores two single forms in [0, 1].
func (c *Comparer) FormSimilarity(text1, text2 string) float64 {
	return distance.Similarity(c.Tokenize(text1), c.Tokenize(text2), c.weights)
}

// defaultComparer backs the package-level functions.
var defaultComparer = &Comparer{weights: distance.Default()}

// Tokenize segments a string with the default configuration.
func Tokenize(text string, keepBoundaries bool) []segment.Token {
	return segment.Tokenize(text, keepBoundaries)
}

// EditDistance computes the weighted edit distance between two token
// sequences.
func EditDistance(seq1, seq2 []segment.Token, w distance.Weights) float64 {
	return distance.EditDistance(seq1, seq2, w)
}

// FormSimilarity scores two single forms with default weights.
func FormSimilarity(text1, text2 string) float64 {
	return defaultComparer.FormSimilarity(text1, text2)
}

// CellSimilarity scores two variant cells with default weights.
func CellSimilarity(cellA, cellB string) float64 {
	return defaultComparer.CellSimilarity(cellA, cellB)
}

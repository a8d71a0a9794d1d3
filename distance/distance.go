package distance

import (
	"math"

	"github.com/atlasling/phondist/segment"
)

// EditDistance computes the weighted edit distance between two token
// sequences with the classic dynamic program, keeping only two rows live.
// The cost model is symmetric, so EditDistance(a, b, w) == EditDistance(b,
// a, w).
func EditDistance(a, b []segment.Token, w Weights) float64 {
	// Rows run over the shorter sequence.
	if len(b) > len(a) {
		a, b = b, a
	}
	n := len(b)

	// Indel cost of each b token, reused every row.
	bIndel := make([]float64, n)
	for j, t := range b {
		bIndel[j] = indelCost(t, w)
	}

	prev := make([]float64, n+1)
	cur := make([]float64, n+1)
	for j := 1; j <= n; j++ {
		prev[j] = prev[j-1] + bIndel[j-1]
	}

	for i := 1; i <= len(a); i++ {
		ai := a[i-1]
		aIndel := indelCost(ai, w)
		cur[0] = prev[0] + aIndel
		for j := 1; j <= n; j++ {
			del := prev[j] + aIndel
			ins := cur[j-1] + bIndel[j-1]
			sub := prev[j-1] + substitutionCost(ai, b[j-1], w)
			cur[j] = min3(del, ins, sub)
		}
		prev, cur = cur, prev
	}
	return prev[n]
}

// EditDistanceBounded is EditDistance with early abandoning: once every
// cell of a row exceeds limit the final distance cannot come back below
// it, so the scan stops. The boolean is false when the limit was exceeded;
// the returned value is then a lower bound, not the exact distance.
// Results at or below the limit are identical to EditDistance.
func EditDistanceBounded(a, b []segment.Token, w Weights, limit float64) (float64, bool) {
	if len(b) > len(a) {
		a, b = b, a
	}
	n := len(b)

	bIndel := make([]float64, n)
	for j, t := range b {
		bIndel[j] = indelCost(t, w)
	}

	prev := make([]float64, n+1)
	cur := make([]float64, n+1)
	for j := 1; j <= n; j++ {
		prev[j] = prev[j-1] + bIndel[j-1]
	}

	for i := 1; i <= len(a); i++ {
		ai := a[i-1]
		aIndel := indelCost(ai, w)
		cur[0] = prev[0] + aIndel
		rowMin := cur[0]
		for j := 1; j <= n; j++ {
			del := prev[j] + aIndel
			ins := cur[j-1] + bIndel[j-1]
			sub := prev[j-1] + substitutionCost(ai, b[j-1], w)
			cur[j] = min3(del, ins, sub)
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > limit {
			return rowMin, false
		}
		prev, cur = cur, prev
	}
	d := prev[n]
	return d, d <= limit
}

// Similarity maps the edit distance of two sequences into [0, 1]. The
// distance is normalized by the worst case of deleting every token of the
// longer sequence at the higher per-token indel cost, which bounds the
// score for any weight set whose substitution costs stay at or below the
// cross-category cost. Two empty sequences are identical.
func Similarity(a, b []segment.Token, w Weights) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	d := EditDistance(a, b, w)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	denom := float64(maxLen) * math.Max(w.VowelIndel, w.ConsonantIndel)
	if denom <= 0 {
		if d == 0 {
			return 1
		}
		return 0
	}
	s := 1 - d/denom
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

package main

import (
	"math"
	"sort"
)

// Stats summarizes a sample of measurements.
type Stats struct {
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	StdDev float64
}

// Summarize computes summary statistics over the sample. An empty sample
// yields the zero value.
func Summarize(xs []float64) Stats {
	if len(xs) == 0 {
		return Stats{}
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	sum := 0.0
	for _, x := range sorted {
		sum += x
	}
	mean := sum / float64(len(sorted))

	varSum := 0.0
	for _, x := range sorted {
		d := x - mean
		varSum += d * d
	}

	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	return Stats{
		Count:  len(sorted),
		Mean:   mean,
		Median: median,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		StdDev: math.Sqrt(varSum / float64(len(sorted))),
	}
}

// Package pipeline implements the statistical heat-map pipeline: cohort
// cleaning, stabilized-listing exclusion, adaptive grid aggregation, kernel
// smoothing, and outlier clamping.
package pipeline

import "sort"

// upperMedian returns the upper median (sorted[n/2]) of the values. This is
// the convention used everywhere a median is taken in the pipeline, so even
// sample counts resolve the same way at every stage. Returns 0 for an empty
// slice; callers guarantee non-empty input.
func upperMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}

// mean returns the arithmetic mean. Returns 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

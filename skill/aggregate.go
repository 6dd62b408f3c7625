package skill

import "sort"

const (
	PeakWeightDecay = 0.65
	minPeakWeight   = 0.001
)

// AggregatePeaks sums peaks from highest to lowest, each weighted
// PeakWeightDecay times less than the one before.
func AggregatePeaks(peaks []float64) float64 {
	sorted := make([]float64, len(peaks))
	copy(sorted, peaks)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var total float64
	weight := 1.0
	for _, p := range sorted {
		if weight < minPeakWeight {
			break
		}
		total += p * weight
		weight *= PeakWeightDecay
	}
	return total
}

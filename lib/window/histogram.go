// Package window
//
// This file implements a bucketed histogram for tracking sample
// distributions with a fixed memory footprint. Samples are sorted into
// buckets along a configurable ascending boundary ladder, so the histogram
// answers distribution queries without retaining the samples themselves.
//
// Key advantages of this implementation:
//
// 1. Memory:
//   - O(buckets) regardless of how many samples are observed
//   - No allocation on the observation path
//
// 2. Queries:
//   - Percentile and median estimates from the bucket counts
//   - Per-bucket share of the total for distribution analysis
//
// The estimates are midpoint approximations: the real sample values inside
// a bucket are unknown, so a percentile resolves to the middle of its
// bucket. Accuracy therefore follows the boundary resolution.
package window

import (
	"fmt"
	"math"
	"slices"
	"sync"
)

// ----------------------------------------------------------------------------
// Histogram
// ----------------------------------------------------------------------------

// Histogram tracks the distribution of float64 samples across a fixed
// boundary ladder. A sample lands in the first bucket whose boundary it
// does not exceed; samples above the last boundary land in an overflow
// bucket.
type Histogram struct {
	mutex      sync.RWMutex
	boundaries []float64 // Ascending bucket boundaries
	buckets    []int64   // Count of samples in each bucket
	count      int64     // Total number of samples
	sum        float64   // Sum of all sampled values
}

// NewHistogram creates a histogram with the given bucket boundaries. The
// boundaries must be non-empty and strictly ascending.
func NewHistogram(boundaries []float64) (*Histogram, error) {
	if len(boundaries) == 0 {
		return nil, fmt.Errorf("histogram requires at least one bucket boundary")
	}
	for i := 1; i < len(boundaries); i++ {
		if boundaries[i] <= boundaries[i-1] {
			return nil, fmt.Errorf("histogram boundaries must be strictly ascending, got %v <= %v",
				boundaries[i], boundaries[i-1])
		}
	}

	return &Histogram{
		boundaries: slices.Clone(boundaries),
		buckets:    make([]int64, len(boundaries)+1), // +1 for the overflow bucket
	}, nil
}

// Observe adds a sample to the histogram
//
// Thread-safe: This method is safe for concurrent use
func (h *Histogram) Observe(value float64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	// Find the appropriate bucket for this value
	bucketIndex := 0
	for i, boundary := range h.boundaries {
		if value <= boundary {
			bucketIndex = i
			break
		}
		bucketIndex = len(h.boundaries) // Overflow bucket for all larger values
	}

	// Update statistics
	h.buckets[bucketIndex]++
	h.count++
	h.sum += value
}

// Count returns the total number of samples
//
// Thread-safe: This method is safe for concurrent use
func (h *Histogram) Count() int64 {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.count
}

// Mean returns the average across all samples
//
// Thread-safe: This method is safe for concurrent use
func (h *Histogram) Mean() float64 {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if h.count == 0 {
		return 0
	}
	return h.sum / float64(h.count)
}

// Percentile returns an estimate for the given percentile (0-100)
//
// Thread-safe: This method is safe for concurrent use
func (h *Histogram) Percentile(percentile int) float64 {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if h.count == 0 || percentile < 0 || percentile > 100 {
		return 0
	}

	// Calculate target count for percentile
	targetCount := int64(math.Ceil(float64(h.count) * float64(percentile) / 100.0))
	cumulativeCount := int64(0)

	for i, count := range h.buckets {
		cumulativeCount += count
		if cumulativeCount >= targetCount {
			// Found the percentile bucket
			if i == 0 {
				// For the first bucket, estimate as half of the boundary
				return h.boundaries[0] / 2
			} else if i < len(h.boundaries) {
				// For middle buckets, use the average of boundaries
				return (h.boundaries[i-1] + h.boundaries[i]) / 2
			} else {
				// For the overflow bucket, estimate as 2x the last boundary
				return h.boundaries[len(h.boundaries)-1] * 2
			}
		}
	}

	// Should never reach here
	return h.sum / float64(h.count)
}

// Distribution returns the distribution of samples across buckets
// Returns two slices: bucket boundaries and the percentage in each bucket
//
// Thread-safe: This method is safe for concurrent use
func (h *Histogram) Distribution() ([]float64, []float64) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if h.count == 0 {
		return h.boundaries, make([]float64, len(h.buckets))
	}

	// Calculate percentages
	percentages := make([]float64, len(h.buckets))
	for i, count := range h.buckets {
		percentages[i] = float64(count) * 100.0 / float64(h.count)
	}

	return h.boundaries, percentages
}

// Reset clears all histogram data
//
// Thread-safe: This method is safe for concurrent use
func (h *Histogram) Reset() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.count = 0
	h.sum = 0
	for i := range h.buckets {
		h.buckets[i] = 0
	}
}

package window

import (
	"math"
	"sync"
	"testing"
)

// TestNewHistogram tests boundary validation during creation
func TestNewHistogram(t *testing.T) {
	h, err := NewHistogram([]float64{10, 20, 30})
	if err != nil {
		t.Fatalf("NewHistogram() returned error: %v", err)
	}
	if h == nil {
		t.Fatal("NewHistogram() returned nil")
	}
	if len(h.buckets) != 4 {
		t.Errorf("Histogram should have 4 buckets (3 boundaries + overflow), but has %d", len(h.buckets))
	}

	if _, err := NewHistogram(nil); err == nil {
		t.Error("NewHistogram should reject empty boundaries")
	}
	if _, err := NewHistogram([]float64{10, 5}); err == nil {
		t.Error("NewHistogram should reject descending boundaries")
	}
	if _, err := NewHistogram([]float64{10, 10, 20}); err == nil {
		t.Error("NewHistogram should reject duplicate boundaries")
	}
}

// TestHistogramObserve tests that samples land in the right buckets
func TestHistogramObserve(t *testing.T) {
	h, _ := NewHistogram([]float64{10, 20, 30})

	h.Observe(5)   // first bucket
	h.Observe(10)  // first bucket, boundary is inclusive
	h.Observe(15)  // second bucket
	h.Observe(100) // overflow bucket

	if h.Count() != 4 {
		t.Errorf("Histogram should have 4 samples, but has %d", h.Count())
	}

	wantBuckets := []int64{2, 1, 0, 1}
	for i, want := range wantBuckets {
		if h.buckets[i] != want {
			t.Errorf("Bucket %d should have %d samples, but has %d", i, want, h.buckets[i])
		}
	}
}

// TestHistogramMean tests the running mean
func TestHistogramMean(t *testing.T) {
	h, _ := NewHistogram([]float64{100})

	if h.Mean() != 0 {
		t.Errorf("Empty histogram should have mean 0, got %f", h.Mean())
	}

	h.Observe(10)
	h.Observe(20)
	h.Observe(30)

	if h.Mean() != 20 {
		t.Errorf("Expected mean 20, got %f", h.Mean())
	}
}

// TestHistogramPercentile tests the midpoint percentile estimates
func TestHistogramPercentile(t *testing.T) {
	h, _ := NewHistogram([]float64{10, 20, 30})

	// one sample per bucket, including the overflow bucket
	h.Observe(5)
	h.Observe(15)
	h.Observe(25)
	h.Observe(99)

	tests := []struct {
		percentile int
		want       float64
	}{
		{25, 5},   // first bucket estimates as half the boundary
		{50, 15},  // middle buckets estimate as the boundary midpoint
		{75, 25},
		{100, 60}, // overflow bucket estimates as twice the last boundary
	}

	for _, tt := range tests {
		if got := h.Percentile(tt.percentile); got != tt.want {
			t.Errorf("Percentile(%d) should be %f, got %f", tt.percentile, tt.want, got)
		}
	}

	// invalid percentiles report zero
	if h.Percentile(-1) != 0 {
		t.Error("Percentile(-1) should be 0")
	}
	if h.Percentile(101) != 0 {
		t.Error("Percentile(101) should be 0")
	}
}

// TestHistogramPercentileEmpty tests percentile queries without samples
func TestHistogramPercentileEmpty(t *testing.T) {
	h, _ := NewHistogram([]float64{10})

	if h.Percentile(50) != 0 {
		t.Errorf("Percentile on an empty histogram should be 0, got %f", h.Percentile(50))
	}
}

// TestHistogramDistribution tests the per-bucket percentages
func TestHistogramDistribution(t *testing.T) {
	h, _ := NewHistogram([]float64{10, 20, 30})

	h.Observe(5)
	h.Observe(6)
	h.Observe(99)
	h.Observe(100)

	boundaries, percentages := h.Distribution()

	if len(boundaries) != 3 {
		t.Errorf("Expected 3 boundaries, got %d", len(boundaries))
	}
	if len(percentages) != 4 {
		t.Errorf("Expected 4 percentages, got %d", len(percentages))
	}

	wantPercentages := []float64{50, 0, 0, 50}
	for i, want := range wantPercentages {
		if math.Abs(percentages[i]-want) > 1e-9 {
			t.Errorf("Bucket %d should hold %.0f%% of samples, got %f", i, want, percentages[i])
		}
	}
}

// TestHistogramReset tests clearing all histogram data
func TestHistogramReset(t *testing.T) {
	h, _ := NewHistogram([]float64{10, 20})

	h.Observe(5)
	h.Observe(15)
	h.Observe(99)

	h.Reset()

	if h.Count() != 0 {
		t.Errorf("Histogram should be empty after Reset, but has %d samples", h.Count())
	}
	if h.Mean() != 0 {
		t.Errorf("Mean should be 0 after Reset, got %f", h.Mean())
	}
	for i, count := range h.buckets {
		if count != 0 {
			t.Errorf("Bucket %d should be empty after Reset, but has %d", i, count)
		}
	}

	// the histogram must stay usable after Reset
	h.Observe(5)
	if h.Count() != 1 {
		t.Errorf("Histogram should have 1 sample, but has %d", h.Count())
	}
}

// TestHistogramConcurrent tests parallel observation
func TestHistogramConcurrent(t *testing.T) {
	h, _ := NewHistogram([]float64{10, 100, 1000})

	numWorkers := 8
	samplesPerWorker := 1000

	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for w := 0; w < numWorkers; w++ {
		go func(workerId int) {
			defer wg.Done()

			for i := 0; i < samplesPerWorker; i++ {
				h.Observe(float64(i % 500))
			}
		}(w)
	}

	wg.Wait()

	want := int64(numWorkers * samplesPerWorker)
	if h.Count() != want {
		t.Errorf("Histogram should have %d samples, but has %d", want, h.Count())
	}
}

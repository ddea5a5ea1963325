package window

import (
	"sync"

	"github.com/ValentinKolb/oSeq/lib/container/ring"
)

// --------------------------------------------------------------------------
// Options
// --------------------------------------------------------------------------

// Options configures a Sliding window during initialization.
type Options struct {
	// Boundaries are the histogram bucket boundaries, strictly ascending.
	// Nil or empty selects the defaults.
	Boundaries []float64
}

// DefaultOptions returns the default window options. The default boundary
// ladder is calibrated for values spanning several orders of magnitude,
// such as latencies in milliseconds.
func DefaultOptions() *Options {
	// Using exponential bucket sizes to cover a wide range efficiently
	return &Options{
		Boundaries: []float64{
			0.5, 1, 2.5, 5, 10, // sub-millisecond to 10ms
			25, 50, 100, 250, 500, // up to half a second
			1000, 2500, 5000, 10000, // seconds range
		},
	}
}

// --------------------------------------------------------------------------
// Sliding Window
// --------------------------------------------------------------------------

// Sliding retains the most recent samples of a measurement series in a
// fixed-capacity ring and sorts every observation into a histogram. The
// ring answers questions about the recent past (exact summary statistics
// over the last n samples), the histogram answers questions about the
// whole series (percentile estimates, distribution shape) without
// retaining it.
//
// Older samples fall out of the ring automatically as new ones arrive;
// the histogram keeps counting until Reset.
//
// Thread-safety: all methods are safe for concurrent use.
type Sliding struct {
	mu      sync.Mutex
	samples *ring.Buffer[float64]
	hist    *Histogram
	total   uint64 // Observations since creation or Reset
}

// New creates a sliding window retaining the last size samples. A size
// below 1 is clamped to 1. Passing nil options selects the defaults.
func New(size int, opts *Options) (*Sliding, error) {
	if opts == nil || len(opts.Boundaries) == 0 {
		opts = DefaultOptions()
	}
	if size < 1 {
		size = 1
	}

	hist, err := NewHistogram(opts.Boundaries)
	if err != nil {
		return nil, err
	}

	return &Sliding{
		samples: ring.New[float64](size),
		hist:    hist,
	}, nil
}

// Observe records a sample. When the window is full, the oldest retained
// sample is displaced; the histogram counts it regardless.
func (w *Sliding) Observe(value float64) {
	w.mu.Lock()
	w.samples.PushBack(value)
	w.total++
	w.mu.Unlock()

	w.hist.Observe(value)
}

// Len returns the number of currently retained samples.
func (w *Sliding) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.samples.Len()
}

// Cap returns the maximum number of retained samples.
func (w *Sliding) Cap() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.samples.Cap()
}

// Total returns the number of observations since creation or Reset,
// including samples that have already been displaced from the window.
func (w *Sliding) Total() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.total
}

// Snapshot returns a copy of all retained samples, oldest first.
func (w *Sliding) Snapshot() []float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.samples.Front(0)
}

// Last returns a copy of the most recent n retained samples, oldest first.
// A non-positive n or an n beyond the retained count returns all of them.
func (w *Sliding) Last(n int) []float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.samples.Back(n)
}

// Stats computes exact summary statistics over the retained samples.
func (w *Sliding) Stats() Stats {
	return NewStats(w.Snapshot())
}

// Percentile returns a histogram estimate for the given percentile (0-100)
// over all observations since creation or Reset.
func (w *Sliding) Percentile(percentile int) float64 {
	return w.hist.Percentile(percentile)
}

// Distribution returns the histogram bucket boundaries and the percentage
// of all observations in each bucket.
func (w *Sliding) Distribution() ([]float64, []float64) {
	return w.hist.Distribution()
}

// Reset drops all retained samples and clears the histogram and the
// observation counter.
func (w *Sliding) Reset() {
	w.mu.Lock()
	w.samples.Clear()
	w.total = 0
	w.mu.Unlock()

	w.hist.Reset()
}

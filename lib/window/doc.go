// Package window provides sliding-window sample tracking for measurement
// series such as latencies, sizes, or rates.
//
// The package contains:
//   - Sliding: a fixed-capacity window over the most recent samples, backed by a ring buffer
//   - Histogram: a bucketed distribution tracker with percentile estimation and a fixed memory footprint
//   - Stats: exact summary statistics (min, max, mean, standard deviation) over a sample slice
//
// The two views complement each other: the window holds the recent samples
// themselves and computes exact statistics over them, while the histogram
// aggregates every observation into buckets and estimates percentiles over
// the full series without retaining it.
//
// This package is particularly useful for:
//   - Tracking request latencies with bounded memory
//   - Monitoring systems that report both recent and lifetime behavior
//   - Smoothing bursty measurements over the last n observations
//
// Example Usage:
//
//	w, err := window.New(1024, nil)
//	if err != nil {
//		log.Fatalf("failed to create window: %v", err)
//	}
//
//	// record a measurement
//	start := time.Now()
//	doWork()
//	w.Observe(float64(time.Since(start).Milliseconds()))
//
//	// recent behavior, exact
//	stats := w.Stats()
//	fmt.Printf("mean over last %d samples: %.2fms\n", w.Len(), stats.Mean)
//
//	// lifetime behavior, estimated
//	fmt.Printf("p99: %.2fms\n", w.Percentile(99))
package window

package cache

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

// --------------------------------------------------------------------------
// Metrics Export
// --------------------------------------------------------------------------

// RegisterMetrics exposes a cache's counters on the given metrics set under
// the provided instance name. The gauges read a fresh Stats snapshot on
// every scrape, so no extra bookkeeping is added to the hot paths.
//
// The set can be written out in Prometheus text format via its
// WritePrometheus method. Registering the same name twice on one set panics
// (by the metrics library's own duplicate check).
func RegisterMetrics[K comparable, V any](set *metrics.Set, name string, c ICache[K, V]) {
	set.NewGauge(fmt.Sprintf(`cache_entries{cache=%q}`, name), func() float64 {
		return float64(c.Stats().Entries)
	})
	set.NewGauge(fmt.Sprintf(`cache_capacity{cache=%q}`, name), func() float64 {
		return float64(c.Stats().Capacity)
	})
	set.NewGauge(fmt.Sprintf(`cache_hits_total{cache=%q}`, name), func() float64 {
		return float64(c.Stats().Hits)
	})
	set.NewGauge(fmt.Sprintf(`cache_misses_total{cache=%q}`, name), func() float64 {
		return float64(c.Stats().Misses)
	})
	set.NewGauge(fmt.Sprintf(`cache_evictions_total{cache=%q}`, name), func() float64 {
		return float64(c.Stats().Evictions)
	})
}

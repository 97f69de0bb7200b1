package javadoc

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "docjson"
	metricsSubsystem = "reader"
)

// Load outcomes reported on the loads_total counter.
const (
	OutcomeFound     = "found"
	OutcomeMissing   = "missing"
	OutcomeMalformed = "malformed"
)

type readerMetrics struct {
	hits   prometheus.Counter
	misses prometheus.Counter
	shared prometheus.Counter
	loads  *prometheus.CounterVec
}

// newReaderMetrics creates the cache counters and, when reg is non-nil,
// registers them. Counters are always usable.
func newReaderMetrics(reg prometheus.Registerer) *readerMetrics {
	m := &readerMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "cache_hits_total",
			Help:      "Number of class documentation lookups served from the cache.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "cache_misses_total",
			Help:      "Number of class documentation lookups that were not cached yet.",
		}),
		shared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "loads_shared_total",
			Help:      "Number of lookups that shared an in-flight load of the same class.",
		}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "loads_total",
			Help:      "Number of documentation files loaded, by outcome.",
		}, []string{"outcome"}),
	}

	if reg != nil {
		reg.MustRegister(m.hits, m.misses, m.shared, m.loads)
	}
	return m
}

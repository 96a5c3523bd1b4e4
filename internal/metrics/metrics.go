package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors updated by cookie jars.
// It includes counters for header parses, parsed cookies and jar mutations,
// and a histogram of parsed header sizes.
type Metrics struct {
	HeaderParses   *prometheus.CounterVec
	CookiesParsed  prometheus.Counter
	Mutations      *prometheus.CounterVec
	HeaderSizeByte prometheus.Histogram
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
// Collectors already registered with reg by an earlier call are reused, so
// jars created one per request share the same series.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		HeaderParses: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cookiejar_header_parses_total",
			Help: "Total number of Cookie headers parsed into a jar, by outcome.",
		}, []string{"status"})),
		CookiesParsed: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cookiejar_cookies_parsed_total",
			Help: "Total number of cookies read from Cookie headers.",
		})),
		Mutations: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cookiejar_mutations_total",
			Help: "Total number of jar mutations.",
		}, []string{"op"})), // op: 'add', 'remove', 'rejected'
		HeaderSizeByte: register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cookiejar_header_bytes",
			Help:    "Size of parsed Cookie headers.",
			Buckets: prometheus.ExponentialBuckets(64, 2, 8),
		})),
	}

	metrics.HeaderParses.WithLabelValues("success")
	metrics.HeaderParses.WithLabelValues("failure")

	return metrics
}

// register adds c to reg, or returns the equal collector reg already holds.
// Any other registration error panics, as promauto does.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}

	panic(err)
}

package jar

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/UnknownOlympus/cookiejar/cookie"
	"github.com/UnknownOlympus/cookiejar/internal/metrics"
)

// Option configures a Jar.
type Option func(*Jar)

// WithLogger sets the logger used for mutation and parse diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(j *Jar) {
		if log != nil {
			j.log = log
		}
	}
}

// WithRegisterer registers jar metrics with reg. Jars built with the same
// registerer share collectors, so the option can be created per request.
func WithRegisterer(reg prometheus.Registerer) Option {
	if reg == nil {
		return func(*Jar) {}
	}

	m := metrics.NewMetrics(reg)

	return func(j *Jar) {
		j.metrics = m
	}
}

// WithDefaults fills unset attributes of every added cookie from d.
func WithDefaults(d cookie.Defaults) Option {
	return func(j *Jar) {
		j.defaults = d
	}
}

// WithStrict makes Parse require RFC 7230 token cookie names.
func WithStrict(strict bool) Option {
	return func(j *Jar) {
		j.strict = strict
	}
}

package jar

import (
	"fmt"

	"github.com/UnknownOlympus/cookiejar/cookie"
	"github.com/UnknownOlympus/cookiejar/internal/lib/logger/sl"
)

// Parse builds a jar from a Cookie request header such as "a=1; b=2".
// All cookies start Unmodified. The first malformed segment aborts the parse
// and no jar is returned. When a name repeats, the first occurrence wins.
func Parse(header string, opts ...Option) (*Jar, error) {
	const opn = "Jar.Parse"

	j := New(opts...)
	log := j.initLogger(opn)

	if j.metrics != nil {
		j.metrics.HeaderSizeByte.Observe(float64(len(header)))
	}

	parseHeader := cookie.ParseHeader
	if j.strict {
		parseHeader = cookie.ParseHeaderStrict
	}

	cookies, err := parseHeader(header)
	if err != nil {
		if j.metrics != nil {
			j.metrics.HeaderParses.WithLabelValues("failure").Inc()
		}
		log.Warn("Failed to parse cookie header", sl.Err(err))

		return nil, fmt.Errorf("failed to parse cookie header: %w", err)
	}

	for _, c := range cookies {
		if _, dup := j.entries[c.Name()]; dup {
			log.Debug("duplicate cookie name skipped", "name", c.Name())
			continue
		}
		j.entries[c.Name()] = &entry{cookie: c, state: Unmodified}
		j.order = append(j.order, c.Name())
	}

	if j.metrics != nil {
		j.metrics.HeaderParses.WithLabelValues("success").Inc()
		j.metrics.CookiesParsed.Add(float64(len(cookies)))
	}
	log.Debug("cookie header parsed", "cookies", len(j.order))

	return j, nil
}

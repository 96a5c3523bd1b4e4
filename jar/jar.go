// Package jar keeps an ordered set of cookies keyed by name and records the
// additions and removals applied to it, so a server can emit the matching
// Set-Cookie values.
//
// A Jar is not safe for concurrent use. The expected pattern is one jar per
// request/response scope.
package jar

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/UnknownOlympus/cookiejar/cookie"
	"github.com/UnknownOlympus/cookiejar/internal/lib/logger/sl"
	"github.com/UnknownOlympus/cookiejar/internal/metrics"
)

type entry struct {
	cookie cookie.Cookie
	state  State
}

// Jar is an insertion-ordered collection of cookies with unique names.
type Jar struct {
	log      *slog.Logger
	metrics  *metrics.Metrics
	defaults cookie.Defaults
	strict   bool

	order   []string
	entries map[string]*entry

	removedOrder []string
	removed      map[string]cookie.Cookie
}

// New returns an empty jar.
func New(opts ...Option) *Jar {
	j := &Jar{
		log:     sl.Discard(),
		entries: make(map[string]*entry),
		removed: make(map[string]cookie.Cookie),
	}
	for _, opt := range opts {
		opt(j)
	}

	return j
}

func (j *Jar) initLogger(opn string) *slog.Logger {
	return j.log.With(
		slog.String("op", opn),
		slog.String("division", "jar"),
	)
}

// Add inserts c or replaces the cookie with the same name. A replaced cookie
// keeps its position; a new name is appended. A cookie that fails
// cookie.Validate, such as the zero Cookie, is logged and skipped.
func (j *Jar) Add(c cookie.Cookie) {
	const opn = "Jar.Add"
	log := j.initLogger(opn)

	if !j.defaults.IsZero() {
		c = j.defaults.Apply(c)
	}

	if err := c.Validate(); err != nil {
		log.Warn("invalid cookie skipped", "name", c.Name(), sl.Err(err))
		if j.metrics != nil {
			j.metrics.Mutations.WithLabelValues("rejected").Inc()
		}
		return
	}

	name := c.Name()
	if e, ok := j.entries[name]; ok {
		e.cookie = c
		if e.state == Unmodified {
			e.state = Updated
		}
		log.Debug("cookie replaced", "name", name, "state", e.state.String())
	} else {
		state := Added
		if _, wasRemoved := j.removed[name]; wasRemoved {
			j.forgetRemoval(name)
			state = Updated
		}
		j.entries[name] = &entry{cookie: c, state: state}
		j.order = append(j.order, name)
		log.Debug("cookie added", "name", name, "state", state.String())
	}

	if j.metrics != nil {
		j.metrics.Mutations.WithLabelValues("add").Inc()
	}
}

// Get returns the live cookie named name.
func (j *Jar) Get(name string) (cookie.Cookie, bool) {
	e, ok := j.entries[name]
	if !ok {
		return cookie.Cookie{}, false
	}

	return e.cookie, true
}

// Remove deletes the cookie named name. Removing an absent name does nothing.
// Removal of a cookie the peer already holds is remembered so DeltaHeaderValues
// can expire it there.
func (j *Jar) Remove(name string) {
	const opn = "Jar.Remove"
	log := j.initLogger(opn)

	e, ok := j.entries[name]
	if !ok {
		log.Debug("cookie not present, nothing to remove", "name", name)
		return
	}

	delete(j.entries, name)
	j.order = slices.DeleteFunc(j.order, func(n string) bool { return n == name })

	// A cookie added in this scope never reached the peer, so there is nothing to expire.
	if e.state != Added {
		j.removed[name] = e.cookie
		j.removedOrder = append(j.removedOrder, name)
	}

	if j.metrics != nil {
		j.metrics.Mutations.WithLabelValues("remove").Inc()
	}
	log.Debug("cookie removed", "name", name)
}

func (j *Jar) forgetRemoval(name string) {
	delete(j.removed, name)
	j.removedOrder = slices.DeleteFunc(j.removedOrder, func(n string) bool { return n == name })
}

// Len returns the number of live cookies.
func (j *Jar) Len() int {
	return len(j.order)
}

// All yields the live cookies in jar order. Each call starts a new iteration.
func (j *Jar) All() iter.Seq[cookie.Cookie] {
	return func(yield func(cookie.Cookie) bool) {
		for _, name := range j.order {
			e, ok := j.entries[name]
			if !ok {
				continue
			}
			if !yield(e.cookie) {
				return
			}
		}
	}
}

// HeaderValues formats every live cookie as one Set-Cookie value, in jar order.
func (j *Jar) HeaderValues() []string {
	values := make([]string, 0, len(j.order))
	for c := range j.All() {
		values = append(values, c.String())
	}

	return values
}

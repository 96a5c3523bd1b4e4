package jar

import "github.com/UnknownOlympus/cookiejar/cookie"

// State is the provenance of a live cookie.
type State int

const (
	// Unmodified cookies came from Parse and were not touched since.
	Unmodified State = iota
	// Added cookies did not exist in the jar before.
	Added
	// Updated cookies replaced a parsed cookie, or re-added a removed one.
	Updated
	// Removed marks a change that deletes a cookie at the peer.
	Removed
)

func (s State) String() string {
	switch s {
	case Unmodified:
		return "unmodified"
	case Added:
		return "added"
	case Updated:
		return "updated"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// expiredDate is the Expires value sent for removed cookies.
const expiredDate = "Thu, 01 Jan 1970 00:00:00 GMT"

// Change is one pending mutation. For Removed changes Cookie is the expiring
// cookie to send, with an empty value and the Domain and Path of the removed one.
type Change struct {
	State  State
	Cookie cookie.Cookie
}

// State returns the provenance of the live cookie named name.
func (j *Jar) State(name string) (State, bool) {
	e, ok := j.entries[name]
	if !ok {
		return 0, false
	}

	return e.state, true
}

// Changes lists added and updated cookies in jar order, followed by removals in
// the order they happened.
func (j *Jar) Changes() []Change {
	var changes []Change

	for _, name := range j.order {
		if e := j.entries[name]; e.state != Unmodified {
			changes = append(changes, Change{State: e.state, Cookie: e.cookie})
		}
	}

	for _, name := range j.removedOrder {
		changes = append(changes, Change{State: Removed, Cookie: expiring(j.removed[name])})
	}

	return changes
}

// DeltaHeaderValues returns the Set-Cookie values needed to bring the peer in
// line with the jar: one per added or updated cookie and one expiring value per removal.
func (j *Jar) DeltaHeaderValues() []string {
	changes := j.Changes()

	values := make([]string, 0, len(changes))
	for _, change := range changes {
		values = append(values, change.Cookie.String())
	}

	return values
}

func expiring(removed cookie.Cookie) cookie.Cookie {
	builder := cookie.NewBuilder(removed.Name(), "")
	if domain, ok := removed.Domain(); ok {
		builder.Domain(domain)
	}
	if path, ok := removed.Path(); ok {
		builder.Path(path)
	}

	// The name was validated when the cookie entered the jar.
	c, _ := builder.MaxAgeSeconds(0).Expires(expiredDate).Build()

	return c
}

package cookie

import (
	"net/http"
	"strconv"
	"time"
)

// Builder accumulates optional attributes for a cookie.
//
//	c, err := cookie.NewBuilder("session", "abc123").
//		Path("/").
//		Secure(true).
//		SameSite(cookie.SameSiteLax).
//		Build()
type Builder struct {
	cookie Cookie
}

// NewBuilder starts a cookie with the given name and value.
func NewBuilder(name, value string) *Builder {
	return &Builder{cookie: Cookie{name: name, value: value}}
}

func (b *Builder) Domain(domain string) *Builder {
	b.cookie.domain = some(domain)
	return b
}

func (b *Builder) Path(path string) *Builder {
	b.cookie.path = some(path)
	return b
}

func (b *Builder) Secure(secure bool) *Builder {
	b.cookie.secure = some(secure)
	return b
}

func (b *Builder) HTTPOnly(httpOnly bool) *Builder {
	b.cookie.httpOnly = some(httpOnly)
	return b
}

func (b *Builder) Partitioned(partitioned bool) *Builder {
	b.cookie.partitioned = some(partitioned)
	return b
}

func (b *Builder) SameSite(sameSite SameSite) *Builder {
	b.cookie.sameSite = some(sameSite)
	return b
}

// MaxAge sets the raw Max-Age attribute. The value is emitted as given.
func (b *Builder) MaxAge(maxAge string) *Builder {
	b.cookie.maxAge = some(maxAge)
	return b
}

// MaxAgeSeconds sets Max-Age from a number of seconds.
func (b *Builder) MaxAgeSeconds(seconds int64) *Builder {
	return b.MaxAge(strconv.FormatInt(seconds, 10))
}

// Expires sets the raw Expires attribute. The value is emitted as given.
func (b *Builder) Expires(expires string) *Builder {
	b.cookie.expires = some(expires)
	return b
}

// ExpiresAt sets Expires to t formatted as an HTTP date.
func (b *Builder) ExpiresAt(t time.Time) *Builder {
	return b.Expires(t.UTC().Format(http.TimeFormat))
}

// Quoted wraps the value in double quotes when the cookie is formatted.
func (b *Builder) Quoted(quoted bool) *Builder {
	b.cookie.quoted = quoted
	return b
}

// Build validates the cookie the same way New does and returns it.
func (b *Builder) Build() (Cookie, error) {
	if err := b.cookie.Validate(); err != nil {
		return Cookie{}, err
	}

	return b.cookie, nil
}

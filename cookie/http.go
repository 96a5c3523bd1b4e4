package cookie

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cast"
)

// FromHTTP converts a net/http cookie. Boolean attributes that are false in hc
// are treated as absent, because http.Cookie cannot tell the two apart.
func FromHTTP(hc *http.Cookie) (Cookie, error) {
	builder := NewBuilder(hc.Name, hc.Value).Quoted(hc.Quoted)

	if hc.Domain != "" {
		builder.Domain(hc.Domain)
	}
	if hc.Path != "" {
		builder.Path(hc.Path)
	}
	if hc.Secure {
		builder.Secure(true)
	}
	if hc.HttpOnly {
		builder.HTTPOnly(true)
	}
	if hc.Partitioned {
		builder.Partitioned(true)
	}

	switch hc.SameSite {
	case http.SameSiteStrictMode:
		builder.SameSite(SameSiteStrict)
	case http.SameSiteLaxMode:
		builder.SameSite(SameSiteLax)
	case http.SameSiteNoneMode:
		builder.SameSite(SameSiteNone)
	case http.SameSiteDefaultMode:
	}

	switch {
	case hc.MaxAge > 0:
		builder.MaxAge(strconv.Itoa(hc.MaxAge))
	case hc.MaxAge < 0:
		builder.MaxAge("0")
	}

	switch {
	case hc.RawExpires != "":
		builder.Expires(hc.RawExpires)
	case !hc.Expires.IsZero():
		builder.ExpiresAt(hc.Expires)
	}

	c, err := builder.Build()
	if err != nil {
		return Cookie{}, fmt.Errorf("failed to convert http cookie: %w", err)
	}

	return c, nil
}

// HTTP converts the cookie to a net/http cookie. Max-Age values that are not
// integers and Expires values that are not HTTP dates are dropped.
func (c Cookie) HTTP() *http.Cookie {
	hc := &http.Cookie{
		Name:   c.name,
		Value:  c.value,
		Quoted: c.quoted,
	}

	hc.Domain, _ = c.Domain()
	hc.Path, _ = c.Path()
	hc.Secure, _ = c.Secure()
	hc.HttpOnly, _ = c.HTTPOnly()
	hc.Partitioned, _ = c.Partitioned()

	if sameSite, ok := c.SameSite(); ok {
		switch sameSite {
		case SameSiteStrict:
			hc.SameSite = http.SameSiteStrictMode
		case SameSiteLax:
			hc.SameSite = http.SameSiteLaxMode
		case SameSiteNone:
			hc.SameSite = http.SameSiteNoneMode
		}
	}

	if raw, ok := c.MaxAge(); ok {
		if seconds, err := cast.ToIntE(raw); err == nil {
			if seconds <= 0 {
				hc.MaxAge = -1
			} else {
				hc.MaxAge = seconds
			}
		}
	}

	if raw, ok := c.Expires(); ok {
		if t, err := http.ParseTime(raw); err == nil {
			hc.Expires = t
			hc.RawExpires = raw
		}
	}

	return hc
}

// Package cookie models HTTP cookies: parsing of Set-Cookie strings and Cookie
// request headers, validation of cookie names, and formatting of Set-Cookie values.
package cookie

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// optional holds an attribute that may be absent. Absence differs from the zero value.
type optional[T comparable] struct {
	value T
	ok    bool
}

func some[T comparable](v T) optional[T] {
	return optional[T]{value: v, ok: true}
}

func (o optional[T]) get() (T, bool) {
	return o.value, o.ok
}

// Cookie is a single cookie record. The zero value is not a valid cookie;
// use New, NewBuilder or Parse.
type Cookie struct {
	name   string
	value  string
	quoted bool

	domain      optional[string]
	path        optional[string]
	secure      optional[bool]
	httpOnly    optional[bool]
	partitioned optional[bool]
	sameSite    optional[SameSite]
	maxAge      optional[string]
	expires     optional[string]
}

// New returns a cookie without optional attributes.
// It fails with a *ParseError if name is empty or contains control characters,
// whitespace, '=' or ';', or if value cannot be written to a Set-Cookie header
// as is (see Validate).
func New(name, value string) (Cookie, error) {
	c := Cookie{name: name, value: value}
	if err := c.Validate(); err != nil {
		return Cookie{}, err
	}

	return c, nil
}

// Name returns the cookie name.
func (c Cookie) Name() string { return c.name }

// Value returns the cookie value without surrounding quotes.
func (c Cookie) Value() string { return c.value }

// Quoted reports whether the value is wrapped in double quotes on the wire.
func (c Cookie) Quoted() bool { return c.quoted }

// Domain returns the Domain attribute. ok is false when it is absent.
func (c Cookie) Domain() (string, bool) { return c.domain.get() }

// Path returns the Path attribute. ok is false when it is absent.
func (c Cookie) Path() (string, bool) { return c.path.get() }

// Secure returns the Secure flag. ok is false when it is absent.
func (c Cookie) Secure() (bool, bool) { return c.secure.get() }

// HTTPOnly returns the HttpOnly flag. ok is false when it is absent.
func (c Cookie) HTTPOnly() (bool, bool) { return c.httpOnly.get() }

// Partitioned returns the Partitioned flag. ok is false when it is absent.
func (c Cookie) Partitioned() (bool, bool) { return c.partitioned.get() }

// SameSite returns the SameSite attribute. ok is false when it is absent.
func (c Cookie) SameSite() (SameSite, bool) { return c.sameSite.get() }

// MaxAge returns the raw Max-Age attribute. ok is false when it is absent.
func (c Cookie) MaxAge() (string, bool) { return c.maxAge.get() }

// Expires returns the raw Expires attribute. No date parsing is performed.
func (c Cookie) Expires() (string, bool) { return c.expires.get() }

// MaxAgeDuration interprets Max-Age as a number of seconds.
// ok is false when the attribute is absent.
func (c Cookie) MaxAgeDuration() (time.Duration, bool, error) {
	raw, ok := c.maxAge.get()
	if !ok {
		return 0, false, nil
	}

	seconds, err := cast.ToInt64E(raw)
	if err != nil {
		return 0, true, fmt.Errorf("failed to convert Max-Age %q: %w", raw, newParseError(ErrInvalidMaxAge, raw))
	}

	return time.Duration(seconds) * time.Second, true, nil
}

// Equal reports whether both cookies carry the same name, value and attributes.
// Domain and Path are compared ignoring ASCII case.
func (c Cookie) Equal(other Cookie) bool {
	if !equalFoldOptional(c.domain, other.domain) || !equalFoldOptional(c.path, other.path) {
		return false
	}

	return c.name == other.name &&
		c.value == other.value &&
		c.quoted == other.quoted &&
		c.secure == other.secure &&
		c.httpOnly == other.httpOnly &&
		c.partitioned == other.partitioned &&
		c.sameSite == other.sameSite &&
		c.maxAge == other.maxAge &&
		c.expires == other.expires
}

func equalFoldOptional(a, b optional[string]) bool {
	if a.ok != b.ok {
		return false
	}

	return !a.ok || strings.EqualFold(a.value, b.value)
}

// validateName rejects empty names and names containing control characters,
// whitespace, '=' or ';'. Non-ASCII names are accepted.
func validateName(name string) error {
	if name == "" {
		return newParseError(ErrEmptyName, name)
	}

	for _, r := range name {
		if r < 0x20 || r == 0x7f || unicode.IsSpace(r) || r == '=' || r == ';' {
			return newParseError(ErrInvalidName, name)
		}
	}

	return nil
}

// Validate reports whether c can be formatted and parsed back unchanged.
// The name is checked as in New. The value and the Domain, Path, Max-Age and
// Expires attributes must not contain control characters or ';', and must not
// start or end with whitespace. Surrounding whitespace is allowed in a quoted value,
// and an unquoted value must not itself be wrapped in double quotes.
func (c Cookie) Validate() error {
	if err := validateName(c.name); err != nil {
		return err
	}
	if err := validateValue(c.value, c.quoted); err != nil {
		return err
	}

	for _, attr := range []optional[string]{c.domain, c.path, c.maxAge, c.expires} {
		if value, ok := attr.get(); ok {
			if err := validateValue(value, false); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateValue(value string, quoted bool) error {
	for _, r := range value {
		if r < 0x20 || r == 0x7f || r == ';' {
			return newParseError(ErrInvalidValue, value)
		}
	}
	if quoted {
		return nil
	}

	first, _ := utf8.DecodeRuneInString(value)
	last, _ := utf8.DecodeLastRuneInString(value)
	if value != "" && (unicode.IsSpace(first) || unicode.IsSpace(last)) {
		return newParseError(ErrInvalidValue, value)
	}
	if _, wrapped := unquote(value); wrapped {
		return newParseError(ErrInvalidValue, value)
	}

	return nil
}

package cookie

import (
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/net/http/httpguts"
)

// Parse parses a single Set-Cookie value of the form Name=Value[; Attr[=Val]]*.
// Attribute names are matched ignoring case and unknown attributes are ignored.
// Control characters in the value or in attribute values are rejected.
// On failure the zero Cookie and a *ParseError are returned.
func Parse(s string) (Cookie, error) {
	return parse(s, false)
}

// ParseStrict is like Parse but also rejects unknown attributes, names that are
// not RFC 7230 tokens and non-integer Max-Age values.
func ParseStrict(s string) (Cookie, error) {
	return parse(s, true)
}

func parse(s string, strict bool) (Cookie, error) {
	segments := strings.Split(s, ";")

	c, err := parsePair(segments[0], strict)
	if err != nil {
		return Cookie{}, err
	}

	for _, segment := range segments[1:] {
		if err = c.applyAttribute(strings.TrimSpace(segment), strict); err != nil {
			return Cookie{}, err
		}
	}

	if err = c.Validate(); err != nil {
		return Cookie{}, err
	}

	return c, nil
}

// parsePair splits a Name=Value segment on its first '='.
func parsePair(segment string, strict bool) (Cookie, error) {
	segment = strings.TrimSpace(segment)

	name, value, found := strings.Cut(segment, "=")
	if !found {
		return Cookie{}, newParseError(ErrMissingEquals, segment)
	}

	name = strings.TrimSpace(name)
	if err := checkName(name, strict); err != nil {
		return Cookie{}, err
	}

	value, quoted := unquote(strings.TrimSpace(value))
	if err := validateValue(value, quoted); err != nil {
		return Cookie{}, err
	}

	return Cookie{name: name, value: value, quoted: quoted}, nil
}

func checkName(name string, strict bool) error {
	if err := validateName(name); err != nil {
		return err
	}
	if strict && !httpguts.ValidHeaderFieldName(name) {
		return newParseError(ErrInvalidName, name)
	}

	return nil
}

func unquote(value string) (string, bool) {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1], true
	}

	return value, false
}

func (c *Cookie) applyAttribute(segment string, strict bool) error {
	if segment == "" {
		return nil
	}

	name, value, hasValue := strings.Cut(segment, "=")
	name, value = strings.TrimSpace(name), strings.TrimSpace(value)

	requireValue := func() error {
		if !hasValue {
			return newParseError(ErrMissingAttributeValue, segment)
		}
		return nil
	}

	switch strings.ToLower(name) {
	case "secure":
		c.secure = some(true)
	case "httponly":
		c.httpOnly = some(true)
	case "partitioned":
		c.partitioned = some(true)
	case "domain":
		if err := requireValue(); err != nil {
			return err
		}
		c.domain = some(value)
	case "path":
		if err := requireValue(); err != nil {
			return err
		}
		c.path = some(value)
	case "expires":
		if err := requireValue(); err != nil {
			return err
		}
		c.expires = some(value)
	case "max-age":
		if err := requireValue(); err != nil {
			return err
		}
		if strict {
			if _, err := cast.ToInt64E(value); err != nil {
				return newParseError(ErrInvalidMaxAge, segment)
			}
		}
		c.maxAge = some(value)
	case "samesite":
		if err := requireValue(); err != nil {
			return err
		}
		sameSite, err := ParseSameSite(value)
		if err != nil {
			return err
		}
		c.sameSite = some(sameSite)
	default:
		if strict {
			return newParseError(ErrUnknownAttribute, name)
		}
	}

	return nil
}

package cookie

import (
	"errors"
	"fmt"
)

var (
	ErrMissingEquals         = errors.New("missing '=' between name and value")
	ErrEmptyName             = errors.New("empty cookie name")
	ErrInvalidName           = errors.New("invalid character in cookie name")
	ErrInvalidValue          = errors.New("invalid cookie or attribute value")
	ErrInvalidSameSite       = errors.New("unknown SameSite value")
	ErrMissingAttributeValue = errors.New("attribute requires a value")
	ErrUnknownAttribute      = errors.New("unknown attribute")
	ErrInvalidMaxAge         = errors.New("max-age is not an integer")
)

// ParseError reports why a cookie string or cookie name was rejected.
// Kind is one of the Err* sentinels and Segment is the offending part of the input.
type ParseError struct {
	Kind    error
	Segment string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cookie: %s: %q", e.Kind, e.Segment)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func newParseError(kind error, segment string) *ParseError {
	return &ParseError{Kind: kind, Segment: segment}
}

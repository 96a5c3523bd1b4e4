package cookie

import "strings"

// SameSite restricts cross-site transmission of a cookie.
type SameSite int

const (
	SameSiteStrict SameSite = iota + 1
	SameSiteLax
	SameSiteNone
)

const (
	sameSiteStrict = "strict"
	sameSiteLax    = "lax"
	sameSiteNone   = "none"
)

// ParseSameSite converts an attribute value to SameSite, ignoring ASCII case.
func ParseSameSite(s string) (SameSite, error) {
	switch strings.ToLower(s) {
	case sameSiteStrict:
		return SameSiteStrict, nil
	case sameSiteLax:
		return SameSiteLax, nil
	case sameSiteNone:
		return SameSiteNone, nil
	default:
		return 0, newParseError(ErrInvalidSameSite, s)
	}
}

// String returns the canonical spelling used in Set-Cookie values.
func (s SameSite) String() string {
	switch s {
	case SameSiteStrict:
		return "Strict"
	case SameSiteLax:
		return "Lax"
	case SameSiteNone:
		return "None"
	default:
		return ""
	}
}

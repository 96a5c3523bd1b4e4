package cookie

import "strings"

// ParseHeader parses a Cookie request header: name1=value1; name2=value2.
// Every segment is a name/value pair; attributes are not recognised.
// Empty segments are skipped, and the first malformed segment aborts the parse.
// A value with control characters is malformed.
func ParseHeader(s string) ([]Cookie, error) {
	return parseHeader(s, false)
}

// ParseHeaderStrict is like ParseHeader but requires RFC 7230 token names.
func ParseHeaderStrict(s string) ([]Cookie, error) {
	return parseHeader(s, true)
}

func parseHeader(s string, strict bool) ([]Cookie, error) {
	var cookies []Cookie

	for _, segment := range strings.Split(s, ";") {
		if strings.TrimSpace(segment) == "" {
			continue
		}

		c, err := parsePair(segment, strict)
		if err != nil {
			return nil, err
		}
		cookies = append(cookies, c)
	}

	return cookies, nil
}

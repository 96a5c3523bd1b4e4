package cookie

import "strings"

// String formats the cookie as a Set-Cookie value:
//
//	Name=Value; Domain=d; Path=p; Secure; HttpOnly; SameSite=s; Max-Age=n; Expires=t; Partitioned
//
// Absent attributes are omitted. Flags set to false emit nothing.
func (c Cookie) String() string {
	var b strings.Builder

	b.WriteString(c.name)
	b.WriteByte('=')
	if c.quoted {
		b.WriteByte('"')
		b.WriteString(c.value)
		b.WriteByte('"')
	} else {
		b.WriteString(c.value)
	}

	writeAttr(&b, "Domain", c.domain)
	writeAttr(&b, "Path", c.path)
	writeFlag(&b, "Secure", c.secure)
	writeFlag(&b, "HttpOnly", c.httpOnly)
	if sameSite, ok := c.sameSite.get(); ok {
		b.WriteString("; SameSite=")
		b.WriteString(sameSite.String())
	}
	writeAttr(&b, "Max-Age", c.maxAge)
	writeAttr(&b, "Expires", c.expires)
	writeFlag(&b, "Partitioned", c.partitioned)

	return b.String()
}

func writeAttr(b *strings.Builder, name string, attr optional[string]) {
	value, ok := attr.get()
	if !ok {
		return
	}
	b.WriteString("; ")
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(value)
}

func writeFlag(b *strings.Builder, name string, attr optional[bool]) {
	if value, ok := attr.get(); ok && value {
		b.WriteString("; ")
		b.WriteString(name)
	}
}

package cookie

// Defaults is an attribute template. Nil fields are left alone.
type Defaults struct {
	Domain      *string
	Path        *string
	Secure      *bool
	HTTPOnly    *bool
	Partitioned *bool
	SameSite    *SameSite
}

// Apply returns c with every attribute that c leaves unset taken from d.
// Attributes already set on c, including flags explicitly set to false, win.
func (d Defaults) Apply(c Cookie) Cookie {
	fill(&c.domain, d.Domain)
	fill(&c.path, d.Path)
	fill(&c.secure, d.Secure)
	fill(&c.httpOnly, d.HTTPOnly)
	fill(&c.partitioned, d.Partitioned)
	fill(&c.sameSite, d.SameSite)

	return c
}

// Validate checks the Domain and Path defaults the way Cookie.Validate checks
// attribute values.
func (d Defaults) Validate() error {
	for _, attr := range []*string{d.Domain, d.Path} {
		if attr == nil {
			continue
		}
		if err := validateValue(*attr, false); err != nil {
			return err
		}
	}

	return nil
}

// IsZero reports whether no default is configured.
func (d Defaults) IsZero() bool {
	return d == Defaults{}
}

func fill[T comparable](dst *optional[T], src *T) {
	if src != nil && !dst.ok {
		*dst = some(*src)
	}
}

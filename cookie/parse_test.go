package cookie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamathecxder/randomail"

	"github.com/UnknownOlympus/cookiejar/cookie"
)

func mustBuild(t *testing.T, b *cookie.Builder) cookie.Cookie {
	t.Helper()

	c, err := b.Build()
	require.NoError(t, err)

	return c
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  *cookie.Builder
	}{
		{name: "simple cookie", input: "name=value", want: cookie.NewBuilder("name", "value")},
		{name: "empty value", input: "key=", want: cookie.NewBuilder("key", "")},
		{name: "value containing equals", input: "token=a=b==", want: cookie.NewBuilder("token", "a=b==")},
		{name: "non ascii name", input: "имя=значение", want: cookie.NewBuilder("имя", "значение")},
		{
			name:  "domain",
			input: "name=value; Domain=example.com",
			want:  cookie.NewBuilder("name", "value").Domain("example.com"),
		},
		{
			name:  "path",
			input: "name=value; Path=/path/to/resource",
			want:  cookie.NewBuilder("name", "value").Path("/path/to/resource"),
		},
		{name: "secure", input: "name=value; Secure", want: cookie.NewBuilder("name", "value").Secure(true)},
		{name: "httponly", input: "name=value; HttpOnly", want: cookie.NewBuilder("name", "value").HTTPOnly(true)},
		{
			name:  "partitioned",
			input: "name=value; Partitioned",
			want:  cookie.NewBuilder("name", "value").Partitioned(true),
		},
		{name: "max-age", input: "name=value; Max-Age=3600", want: cookie.NewBuilder("name", "value").MaxAge("3600")},
		{
			name:  "expires",
			input: "name=value; Expires=Wed, 21 Oct 2025 07:28:00 GMT",
			want:  cookie.NewBuilder("name", "value").Expires("Wed, 21 Oct 2025 07:28:00 GMT"),
		},
		{
			name:  "samesite strict",
			input: "name=value; SameSite=Strict",
			want:  cookie.NewBuilder("name", "value").SameSite(cookie.SameSiteStrict),
		},
		{
			name:  "samesite lax",
			input: "name=value; SameSite=Lax",
			want:  cookie.NewBuilder("name", "value").SameSite(cookie.SameSiteLax),
		},
		{
			name:  "multiple attributes",
			input: "name=value; Domain=example.com; Path=/path; Secure; HttpOnly; SameSite=None",
			want: cookie.NewBuilder("name", "value").
				Domain("example.com").
				Path("/path").
				Secure(true).
				HTTPOnly(true).
				SameSite(cookie.SameSiteNone),
		},
		{
			name:  "unknown attribute without value",
			input: "name=value; UnknownAttr",
			want:  cookie.NewBuilder("name", "value"),
		},
		{name: "unknown attribute with value", input: "n=v; Foo=Bar", want: cookie.NewBuilder("n", "v")},
		{name: "empty attribute value", input: "name=value; Path=", want: cookie.NewBuilder("name", "value").Path("")},
		{
			name:  "case insensitive attributes",
			input: "name=value; secure; httponly; samesite=lax",
			want: cookie.NewBuilder("name", "value").
				Secure(true).
				HTTPOnly(true).
				SameSite(cookie.SameSiteLax),
		},
		{
			name:  "unexpected whitespace",
			input: " name = value ; Domain = example.com ; Path = / ; Secure ; HttpOnly ",
			want: cookie.NewBuilder("name", "value").
				Domain("example.com").
				Path("/").
				Secure(true).
				HTTPOnly(true),
		},
		{
			name:  "duplicate attributes",
			input: "name=value; Path=/first; Path=/second",
			want:  cookie.NewBuilder("name", "value").Path("/second"),
		},
		{name: "trailing semicolon", input: "name=value;", want: cookie.NewBuilder("name", "value")},
		{
			name:  "flag with value",
			input: "name=value; Secure=yes",
			want:  cookie.NewBuilder("name", "value").Secure(true),
		},
		{name: "quoted value", input: `name="a b"`, want: cookie.NewBuilder("name", "a b").Quoted(true)},
		{name: "lone quote", input: `name="abc`, want: cookie.NewBuilder("name", `"abc`)},
		{name: "lenient max-age", input: "n=v; Max-Age=soon", want: cookie.NewBuilder("n", "v").MaxAge("soon")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := cookie.Parse(tt.input)
			require.NoError(t, err)

			want := mustBuild(t, tt.want)
			assert.True(t, want.Equal(got), "want %q, got %q", want.String(), got.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		wantKind    error
		wantSegment string
	}{
		{name: "empty input", input: "", wantKind: cookie.ErrMissingEquals, wantSegment: ""},
		{name: "empty pair", input: ";", wantKind: cookie.ErrMissingEquals, wantSegment: ""},
		{name: "missing equals", input: "namevalue", wantKind: cookie.ErrMissingEquals, wantSegment: "namevalue"},
		{name: "dash instead of equals", input: "name-value", wantKind: cookie.ErrMissingEquals, wantSegment: "name-value"},
		{name: "empty name", input: "=value", wantKind: cookie.ErrEmptyName, wantSegment: ""},
		{name: "name with space", input: "my name=value", wantKind: cookie.ErrInvalidName, wantSegment: "my name"},
		{
			name:        "invalid samesite",
			input:       "name=value; SameSite=InvalidValue",
			wantKind:    cookie.ErrInvalidSameSite,
			wantSegment: "InvalidValue",
		},
		{
			name:        "domain without value",
			input:       "name=value; Domain",
			wantKind:    cookie.ErrMissingAttributeValue,
			wantSegment: "Domain",
		},
		{
			name:        "max-age without value",
			input:       "name=value; Max-Age",
			wantKind:    cookie.ErrMissingAttributeValue,
			wantSegment: "Max-Age",
		},
		{name: "control character in value", input: "n=a\x01b", wantKind: cookie.ErrInvalidValue, wantSegment: "a\x01b"},
		{
			name:        "control character in quoted value",
			input:       "n=\"a\x00\"",
			wantKind:    cookie.ErrInvalidValue,
			wantSegment: "a\x00",
		},
		{
			name:        "control character in path",
			input:       "n=v; Path=/a\x7fb",
			wantKind:    cookie.ErrInvalidValue,
			wantSegment: "/a\x7fb",
		},
		{
			name:        "samesite without value",
			input:       "name=value; SameSite",
			wantKind:    cookie.ErrMissingAttributeValue,
			wantSegment: "SameSite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := cookie.Parse(tt.input)
			require.ErrorIs(t, err, tt.wantKind)
			assert.Equal(t, cookie.Cookie{}, got, "no partially populated cookie on failure")

			var parseErr *cookie.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.wantSegment, parseErr.Segment)
			assert.Contains(t, err.Error(), tt.wantKind.Error())
		})
	}
}

func TestParseStrict(t *testing.T) {
	t.Parallel()

	got, err := cookie.ParseStrict("session=abc123; Path=/; Max-Age=60; Secure")
	require.NoError(t, err)
	assert.Equal(t, "session=abc123; Path=/; Secure; Max-Age=60", got.String())

	tests := []struct {
		name     string
		input    string
		wantKind error
	}{
		{name: "unknown attribute", input: "name=value; UnknownAttr", wantKind: cookie.ErrUnknownAttribute},
		{name: "non token name", input: "имя=значение", wantKind: cookie.ErrInvalidName},
		{name: "separator in name", input: "a(b=c", wantKind: cookie.ErrInvalidName},
		{name: "non integer max-age", input: "name=value; Max-Age=invalid", wantKind: cookie.ErrInvalidMaxAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := cookie.ParseStrict(tt.input)
			require.ErrorIs(t, err, tt.wantKind)
		})
	}
}

func TestParse_SessionFlags(t *testing.T) {
	t.Parallel()

	c, err := cookie.Parse("session=abc123; Secure; HttpOnly")
	require.NoError(t, err)

	assert.Equal(t, "session", c.Name())
	assert.Equal(t, "abc123", c.Value())

	secure, ok := c.Secure()
	assert.True(t, ok)
	assert.True(t, secure)

	httpOnly, ok := c.HTTPOnly()
	assert.True(t, ok)
	assert.True(t, httpOnly)

	_, ok = c.Domain()
	assert.False(t, ok)

	plain, err := cookie.Parse("n=v")
	require.NoError(t, err)
	_, ok = plain.Secure()
	assert.False(t, ok, "absent Secure must not read as false")
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	for range 20 {
		value := randomail.GenerateRandomEmail()

		original := mustBuild(t, cookie.NewBuilder("session", value).
			Domain("example.com").
			Path("/account").
			Secure(true).
			HTTPOnly(false).
			SameSite(cookie.SameSiteStrict).
			MaxAgeSeconds(86400).
			Expires("Wed, 21 Oct 2025 07:28:00 GMT").
			Partitioned(true))

		parsed, err := cookie.Parse(original.String())
		require.NoError(t, err)

		assert.Equal(t, original.String(), parsed.String())
		assert.Equal(t, value, parsed.Value())

		// HttpOnly=false is not representable on the wire and comes back absent.
		_, ok := parsed.HTTPOnly()
		assert.False(t, ok)
		domain, _ := parsed.Domain()
		assert.Equal(t, "example.com", domain)
	}
}

func TestParse_QuotedRoundTrip(t *testing.T) {
	t.Parallel()

	c, err := cookie.Parse(`n="quoted value"; Path=/`)
	require.NoError(t, err)
	assert.True(t, c.Quoted())
	assert.Equal(t, "quoted value", c.Value())
	assert.Equal(t, `n="quoted value"; Path=/`, c.String())
}

func TestParseSameSite(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]cookie.SameSite{
		"Strict": cookie.SameSiteStrict,
		"STRICT": cookie.SameSiteStrict,
		"lax":    cookie.SameSiteLax,
		"LaX":    cookie.SameSiteLax,
		"none":   cookie.SameSiteNone,
		"None":   cookie.SameSiteNone,
	} {
		got, err := cookie.ParseSameSite(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := cookie.ParseSameSite("sometimes")
	require.ErrorIs(t, err, cookie.ErrInvalidSameSite)

	assert.Equal(t, "Strict", cookie.SameSiteStrict.String())
	assert.Equal(t, "Lax", cookie.SameSiteLax.String())
	assert.Equal(t, "None", cookie.SameSiteNone.String())
}

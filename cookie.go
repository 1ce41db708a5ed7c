package econbrief

import "strings"

// Cookie is a single session cookie replayed on every fetch.
type Cookie struct {
	Name   string
	Value  string
	Domain string
	Path   string
}

// ParseCookies parses a raw "name=value; name2=value2" string, as copied
// from a browser's request headers, into cookies scoped to domain and path
// "/". Segments without "=" or with an empty name are dropped. The value is
// everything after the first "=".
func ParseCookies(raw string, domain string) []Cookie {
	var cookies []Cookie
	for _, segment := range strings.Split(raw, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(segment), "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		cookies = append(cookies, Cookie{
			Name:   name,
			Value:  strings.TrimSpace(value),
			Domain: domain,
			Path:   "/",
		})
	}
	return cookies
}

// CookieHeader serializes cookies into a Cookie request header value.
func CookieHeader(cookies []Cookie) string {
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}

package econbrief

import (
	"context"
	"net/url"
)

// FetchRequest describes a single page retrieval.
type FetchRequest struct {
	// URL is the absolute http(s) address of the page.
	URL string

	// Cookie is the raw session cookie string. Empty means unauthenticated,
	// which is a valid but degraded request.
	Cookie string
}

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to get past client-side
// bot challenges.
type Fetcher interface {
	// Fetch retrieves the page described by req. It never returns an error:
	// failures are reported through the returned Document's Err field so the
	// extractors can classify them. The context controls cancellation.
	Fetch(ctx context.Context, req FetchRequest) *Document
}

// ValidateURL returns EINVALID unless rawURL is absolute with an http or
// https scheme.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return Errorf(EINVALID, "URL required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Errorf(EINVALID, "invalid URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "URL must use http or https: %q", rawURL)
	}
	if u.Host == "" {
		return Errorf(EINVALID, "URL must be absolute: %q", rawURL)
	}
	return nil
}

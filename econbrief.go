// Package econbrief retrieves The Economist's daily briefing and individual
// articles from a bot-protected, paywalled website and returns them as plain
// structured text for an automated agent.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, mcp/).
package econbrief

// BaseURL is the root of the publication website.
const BaseURL = "https://www.economist.com"

// BriefingURL is the fixed listing page holding the daily briefing.
const BriefingURL = BaseURL + "/the-world-in-brief"

// CookieDomain is the domain session cookies are scoped to.
const CookieDomain = ".economist.com"

// DefaultUserAgent is a realistic desktop browser user agent.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// MinContentLength is the shortest formatted output, in characters, that
// counts as a successful extraction. Anything shorter is treated as a
// partial render or a paywall teaser.
const MinContentLength = 100

// Package rod implements econbrief.Fetcher by driving a headless Chrome
// through github.com/go-rod/rod.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/econbrief"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/ysmood/gson"
)

// Ensure Fetcher implements econbrief.Fetcher at compile time.
var _ econbrief.Fetcher = (*Fetcher)(nil)

// Defaults used by NewFetcher.
const (
	DefaultNavigationTimeout = 60 * time.Second
	DefaultContentTimeout    = 30 * time.Second
	DefaultSettleDelay       = 2 * time.Second
	DefaultViewportWidth     = 1280
	DefaultViewportHeight    = 800
)

// DefaultContentSelectors signal that the main content has rendered. The
// first one to appear ends the wait.
var DefaultContentSelectors = []string{
	"article",
	"footer",
	"[data-testid='Article']",
}

const acceptLanguage = "en-US,en;q=0.9"

const statusJS = `() => {
	try {
		const entries = performance.getEntriesByType("navigation");
		if (entries.length > 0) return entries[0].responseStatus || 0;
	} catch (e) {}
	return 0;
}`

const scrollJS = `() => window.scrollTo(0, document.body.scrollHeight)`

// Fetcher retrieves rendered HTML using a fresh Chrome process per fetch.
// Each fetch runs in an incognito context with stealth patches applied and
// the session cookie installed before navigation. Fetcher holds no browser
// state between calls and is safe for concurrent use.
type Fetcher struct {
	navigationTimeout time.Duration
	contentTimeout    time.Duration
	settleDelay       time.Duration
	userAgent         string
	viewportWidth     int
	viewportHeight    int
	browserBin        string
	headless          bool
	noSandbox         bool
	cookieDomain      string
	contentSelectors  []string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithNavigationTimeout bounds the wait for DOMContentLoaded.
func WithNavigationTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.navigationTimeout = d
	}
}

// WithContentTimeout bounds the wait for a content selector to appear.
// Running out of time here is not an error.
func WithContentTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.contentTimeout = d
	}
}

// WithSettleDelay sets the pause after scrolling, before the HTML is read.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settleDelay = d
	}
}

// WithUserAgent overrides the browser user agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithViewport sets the emulated window size.
func WithViewport(width, height int) Option {
	return func(f *Fetcher) {
		f.viewportWidth = width
		f.viewportHeight = height
	}
}

// WithBrowserBin uses the Chrome binary at path instead of the one rod
// finds or downloads.
func WithBrowserBin(path string) Option {
	return func(f *Fetcher) {
		f.browserBin = path
	}
}

// WithHeadless toggles headless mode. Fetchers are headless by default.
func WithHeadless(headless bool) Option {
	return func(f *Fetcher) {
		f.headless = headless
	}
}

// WithNoSandbox disables the Chrome sandbox, which is required when running
// as root inside containers.
func WithNoSandbox(noSandbox bool) Option {
	return func(f *Fetcher) {
		f.noSandbox = noSandbox
	}
}

// WithCookieDomain sets the domain the session cookies are installed for.
func WithCookieDomain(domain string) Option {
	return func(f *Fetcher) {
		f.cookieDomain = domain
	}
}

// WithContentSelectors replaces DefaultContentSelectors.
func WithContentSelectors(selectors ...string) Option {
	return func(f *Fetcher) {
		f.contentSelectors = selectors
	}
}

// NewFetcher creates a Fetcher. No browser is started until Fetch is called.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		navigationTimeout: DefaultNavigationTimeout,
		contentTimeout:    DefaultContentTimeout,
		settleDelay:       DefaultSettleDelay,
		userAgent:         econbrief.DefaultUserAgent,
		viewportWidth:     DefaultViewportWidth,
		viewportHeight:    DefaultViewportHeight,
		headless:          true,
		cookieDomain:      econbrief.CookieDomain,
		contentSelectors:  DefaultContentSelectors,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch loads req.URL in a new browser and returns the rendered HTML. The
// browser is torn down before Fetch returns, on every path. Failures are
// reported in Document.Err rather than as a separate error.
func (f *Fetcher) Fetch(ctx context.Context, req econbrief.FetchRequest) *econbrief.Document {
	doc := &econbrief.Document{URL: req.URL}
	if err := ctx.Err(); err != nil {
		doc.Err = err
		return doc
	}

	s, err := f.launch(ctx)
	if err != nil {
		doc.Err = err
		return doc
	}
	defer func() { _ = s.Close() }()

	page, err := f.preparePage(s.browser, req)
	if err != nil {
		doc.Err = err
		return doc
	}

	doc.StatusCode, doc.HTML, doc.Err = f.load(ctx, page, req.URL)
	return doc
}

// preparePage opens an incognito page with stealth, identity and cookies
// in place. All of it has to happen before navigation to take effect.
func (f *Fetcher) preparePage(browser *rod.Browser, req econbrief.FetchRequest) (*rod.Page, error) {
	incognito, err := browser.Incognito()
	if err != nil {
		return nil, fmt.Errorf("creating incognito context: %w", err)
	}

	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}

	if _, err := page.EvalOnNewDocument(stealth.JS); err != nil {
		return nil, fmt.Errorf("injecting stealth script: %w", err)
	}

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent:      f.userAgent,
		AcceptLanguage: acceptLanguage,
	}); err != nil {
		return nil, fmt.Errorf("setting user agent: %w", err)
	}

	if err := (proto.NetworkSetExtraHTTPHeaders{
		Headers: headers(map[string]string{"Accept-Language": acceptLanguage}),
	}).Call(page); err != nil {
		return nil, fmt.Errorf("setting headers: %w", err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             f.viewportWidth,
		Height:            f.viewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, fmt.Errorf("setting viewport: %w", err)
	}

	if params := cookieParams(econbrief.ParseCookies(req.Cookie, f.cookieDomain)); len(params) > 0 {
		if err := page.SetCookies(params); err != nil {
			return nil, fmt.Errorf("setting cookies: %w", err)
		}
	}

	return page, nil
}

// load navigates, waits for content, scrolls and captures the page.
func (f *Fetcher) load(ctx context.Context, page *rod.Page, url string) (int, string, error) {
	navCtx, cancel := context.WithTimeout(ctx, f.navigationTimeout)
	defer cancel()

	nav := page.Context(navCtx)
	wait := nav.WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	if err := nav.Navigate(url); err != nil {
		return 0, "", fmt.Errorf("navigating to %s: %w", url, err)
	}
	wait()
	if err := navCtx.Err(); err != nil {
		return 0, "", fmt.Errorf("waiting for %s to load: %w", url, err)
	}

	// Content that never shows up is left for the extractors to judge.
	f.waitContent(ctx, page)

	p := page.Context(ctx)
	_, _ = p.Eval(scrollJS)

	select {
	case <-ctx.Done():
		return 0, "", ctx.Err()
	case <-time.After(f.settleDelay):
	}

	status := 0
	if res, err := p.Eval(statusJS); err == nil {
		status = res.Value.Int()
	}

	html, err := p.HTML()
	if err != nil {
		return status, "", fmt.Errorf("reading page HTML: %w", err)
	}
	return status, html, nil
}

func (f *Fetcher) waitContent(ctx context.Context, page *rod.Page) {
	if len(f.contentSelectors) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, f.contentTimeout)
	defer cancel()

	race := page.Context(ctx).Race()
	for _, selector := range f.contentSelectors {
		race = race.Element(selector)
	}
	_, _ = race.Do()
}

// cookieParams converts cookies to the CDP form.
func cookieParams(cookies []econbrief.Cookie) []*proto.NetworkCookieParam {
	params := make([]*proto.NetworkCookieParam, 0, len(cookies))
	for _, c := range cookies {
		params = append(params, &proto.NetworkCookieParam{
			Name:   c.Name,
			Value:  c.Value,
			Domain: c.Domain,
			Path:   c.Path,
		})
	}
	return params
}

// headers converts a plain map to proto.NetworkHeaders.
func headers(m map[string]string) proto.NetworkHeaders {
	h := make(proto.NetworkHeaders, len(m))
	for k, v := range m {
		h[k] = gson.New(v)
	}
	return h
}

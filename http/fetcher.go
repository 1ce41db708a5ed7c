// Package http provides an HTTP-based implementation of econbrief.Fetcher.
// It does not execute JavaScript, so it only gets through when the site
// serves the content without a browser challenge.
package http

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/econbrief"
	utls "github.com/refraction-networking/utls"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 60 * time.Second

// MaxBodySize caps how much of a response body is read.
const MaxBodySize = 10 << 20

const (
	acceptHeader         = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"
	acceptLanguageHeader = "en-US,en;q=0.9"
)

// Ensure Fetcher implements econbrief.Fetcher at compile time.
var _ econbrief.Fetcher = (*Fetcher)(nil)

// chromeH1Spec builds Chrome's ClientHello with ALPN limited to http/1.1,
// since http.Transport cannot speak h2 over a utls connection. Specs hold
// extension state, so each connection gets a fresh one.
func chromeH1Spec() (*utls.ClientHelloSpec, error) {
	spec, err := utls.UTLSIdToSpec(utls.HelloChrome_Auto)
	if err != nil {
		return nil, err
	}
	for _, ext := range spec.Extensions {
		if alpn, ok := ext.(*utls.ALPNExtension); ok {
			alpn.AlpnProtocols = []string{"http/1.1"}
			break
		}
	}
	return &spec, nil
}

// Fetcher retrieves HTML with plain GET requests that present a Chrome TLS
// fingerprint and browser-like headers.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	domain    string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: econbrief.DefaultUserAgent,
		domain:    econbrief.CookieDomain,
	}
	for _, opt := range opts {
		opt(f)
	}

	// No proxy: HTTPS through a proxy would skip DialTLSContext and lose
	// the Chrome fingerprint.
	f.client = &http.Client{
		Timeout: f.timeout,
		Transport: &http.Transport{
			DialTLSContext:    dialChrome,
			ForceAttemptHTTP2: false,
		},
	}

	return f
}

// Fetch retrieves req.URL. Transport errors and non-2xx responses are
// reported in Document.Err; the status is recorded either way. The body of
// a non-2xx response is kept so a challenge page can still be recognised.
func (f *Fetcher) Fetch(ctx context.Context, req econbrief.FetchRequest) *econbrief.Document {
	doc := &econbrief.Document{URL: req.URL}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		doc.Err = fmt.Errorf("building request: %w", err)
		return doc
	}
	httpReq.Header.Set("User-Agent", f.userAgent)
	httpReq.Header.Set("Accept", acceptHeader)
	httpReq.Header.Set("Accept-Language", acceptLanguageHeader)
	if cookie := econbrief.CookieHeader(econbrief.ParseCookies(req.Cookie, f.domain)); cookie != "" {
		httpReq.Header.Set("Cookie", cookie)
	}

	resp, err := f.client.Do(httpReq)
	if err != nil {
		doc.Err = err
		return doc
	}
	defer resp.Body.Close()

	doc.StatusCode = resp.StatusCode
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		doc.Err = fmt.Errorf("reading body: %w", err)
		return doc
	}
	doc.HTML = string(body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		doc.Err = fmt.Errorf("HTTP %d for %s", resp.StatusCode, req.URL)
	}
	return doc
}

// dialChrome opens a TLS connection whose handshake looks like Chrome's.
func dialChrome(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	var tlsConn *utls.UConn
	if spec, err := chromeH1Spec(); err == nil {
		tlsConn = utls.UClient(conn, &utls.Config{ServerName: host}, utls.HelloCustom)
		if err := tlsConn.ApplyPreset(spec); err != nil {
			conn.Close()
			return nil, fmt.Errorf("applying TLS preset: %w", err)
		}
	} else {
		tlsConn = utls.UClient(conn, &utls.Config{ServerName: host, NextProtos: []string{"http/1.1"}}, utls.HelloGolang)
	}

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return tlsConn, nil
}

// Package http provides an HTTP-based implementation of seoscan.Fetcher
// for retrieving the HTML document to be scanned.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/seoscan/seoscan"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the tool to the server being scanned.
const DefaultUserAgent = "seoscan/1.0"

// maxBodySize caps how much of a response body is read. Documents beyond
// this size are truncated rather than exhausting memory.
const maxBodySize = 10 << 20 // 10 MiB

// Ensure Fetcher implements seoscan.Fetcher at compile time.
var _ seoscan.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using a single blocking GET.
// It performs no retries and no caching.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
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

// WithUserAgent sets the User-Agent header sent with requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", seoscan.Errorf(seoscan.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", seoscan.Errorf(seoscan.EINVALID, "fetch failed for %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", seoscan.Errorf(seoscan.EINVALID, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", seoscan.Errorf(seoscan.EINTERNAL, "failed to read response from %s: %v", url, err)
	}

	return string(body), nil
}

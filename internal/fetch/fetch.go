package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/html/charset"
)

// RawDocument is one fetched page: the body decoded to UTF-8 plus the URL it
// came from. It is created here, consumed once by the extractor, and discarded.
type RawDocument struct {
	URL  string
	HTML string
}

// Classified fetch failures. A single attempt per call; the caller decides
// whether to prompt for another URL or abort.
var (
	ErrTimeout    = errors.New("fetch: timed out")
	ErrConnection = errors.New("fetch: connection failed")
	ErrUnknown    = errors.New("fetch: unknown error")
)

// StatusError reports a 4xx/5xx response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch: http status %d", e.Code)
}

// DefaultUserAgent mimics a desktop browser to reduce the chance of being
// blocked by naive anti-scraping heuristics.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// DefaultTimeout bounds the whole request including body read.
const DefaultTimeout = 10 * time.Second

// Client issues a single HTTP GET per Fetch call with a bounded wait and a
// browser-like identity. The zero value is usable.
type Client struct {
	// HTTPClient, when nil, falls back to a plain http.Client. Connection
	// reuse across calls is allowed but not required.
	HTTPClient *http.Client
	UserAgent  string
	Timeout    time.Duration
}

// Fetch retrieves rawURL and decodes the body per the response's advertised
// charset, falling back to UTF-8 sniffing. Malformed URLs surface through the
// same classified errors as network failures, not as a separate precondition
// check.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*RawDocument, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, classify(err)
	}
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	// Standard browser headers help with servers that 403 bare clients.
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		// Undecodable charset label: fall back to the raw bytes.
		reader = resp.Body
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, classify(err)
	}
	return &RawDocument{URL: rawURL, HTML: string(body)}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{}
}

// classify maps transport-layer errors onto the package's failure taxonomy.
// Timeouts are checked first because url.Error wraps them too.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	var oe *net.OpError
	if errors.As(err, &oe) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return fmt.Errorf("%w: %v", ErrUnknown, err)
}

package feed

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopnet/backend/internal/infrastructure/config"
)

// Fetch errors
var (
	ErrStatusNotOK = errors.New("feed server returned non-OK status")
	ErrFeedTooBig  = errors.New("feed exceeds maximum allowed size")
)

// Fetcher downloads partner price lists over HTTP.
// Responses may be gzip-compressed; the fetch is bounded both in time
// (request context) and in size.
type Fetcher struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
	maxSize   int64
}

// NewFetcher creates a fetcher from import configuration
func NewFetcher(cfg config.ImportConfig) *Fetcher {
	return &Fetcher{
		client:    &http.Client{},
		userAgent: "shopnet-feed-importer/1.0",
		timeout:   cfg.FetchTimeout,
		maxSize:   cfg.MaxFeedSize,
	}
}

// NewFetcherWithClient creates a fetcher with a custom HTTP client, used in tests
func NewFetcherWithClient(client *http.Client, timeout time.Duration, maxSize int64) *Fetcher {
	return &Fetcher{
		client:    client,
		userAgent: "shopnet-feed-importer/1.0",
		timeout:   timeout,
		maxSize:   maxSize,
	}
}

// Fetch downloads the feed at url and returns its raw bytes.
// Redirects are followed by the underlying client.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "application/x-yaml, text/yaml, text/plain")
	req.Header.Add("Accept-Encoding", "gzip")
	req.Header.Add("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrStatusNotOK, resp.StatusCode)
	}

	body := resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		decompressed, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("can't decompress response: %w", err)
		}
		defer func() { _ = decompressed.Close() }()
		body = decompressed
	}

	// Read one byte past the limit to detect oversized feeds
	data, err := io.ReadAll(io.LimitReader(body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("can't read feed body: %w", err)
	}
	if int64(len(data)) > f.maxSize {
		return nil, ErrFeedTooBig
	}

	return data, nil
}

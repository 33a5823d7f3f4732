package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/qyinm/bites/types"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultCacheTTL is how long a fetched gallery page is reused.
const DefaultCacheTTL = 10 * time.Minute

// Fetcher downloads gallery pages over HTTP and decodes them with DecodeHTML.
// Parsed results are cached per URL for TTL, or until ClearCache.
type Fetcher struct {
	client *http.Client
	cache  map[string]cachedResult
	mu     sync.Mutex

	// TTL bounds cache reuse; zero or less disables caching.
	TTL time.Duration
	now func() time.Time
}

type cachedResult struct {
	items     []types.Item
	timestamp time.Time
}

// NewFetcher creates a Fetcher with a 10 second HTTP timeout and an empty
// cache kept for DefaultCacheTTL.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: make(map[string]cachedResult),
		TTL:   DefaultCacheTTL,
		now:   time.Now,
	}
}

// Fetch retrieves and parses the gallery page at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]types.Item, error) {
	f.mu.Lock()
	if cached, ok := f.cache[url]; ok && f.now().Sub(cached.timestamp) < f.TTL {
		f.mu.Unlock()
		return cached.items, nil
	}
	f.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch gallery: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	items, err := DecodeHTML(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse gallery: %w", err)
	}

	f.mu.Lock()
	f.cache[url] = cachedResult{items: items, timestamp: f.now()}
	f.mu.Unlock()
	return items, nil
}

// ClearCache clears the in-memory cache.
func (f *Fetcher) ClearCache() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache = make(map[string]cachedResult)
}

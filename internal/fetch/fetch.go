// Package fetch retrieves raw HTML for candidate URLs with browser-like
// headers, bounded redirects, and per-host politeness spacing.
package fetch

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/time/rate"

	"github.com/leadforge/leadscan-cli/internal/model"
)

// Cache is an optional read-through store for fetched pages.
type Cache interface {
	Get(ctx context.Context, url string) (*model.FetchResult, bool, error)
	Put(ctx context.Context, url string, res *model.FetchResult) error
}

// Options configures the Fetcher.
type Options struct {
	UserAgent       string
	Timeout         time.Duration
	MaxRedirects    int
	MaxBodyBytes    int64
	PolitenessDelay time.Duration
}

// Fetcher issues single-attempt GET requests. Retry policy, if any, belongs
// to the caller.
type Fetcher struct {
	client *http.Client
	opts   Options
	cache  Cache

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// New creates a Fetcher with the given options, filling in defaults.
func New(opts Options) *Fetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.MaxRedirects == 0 {
		opts.MaxRedirects = 5
	}
	if opts.MaxBodyBytes == 0 {
		opts.MaxBodyBytes = 512 * 1024
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "Mozilla/5.0 (compatible; leadscan/1.0)"
	}

	f := &Fetcher{
		opts:     opts,
		limiters: make(map[string]*rate.Limiter),
	}
	f.client = &http.Client{
		Timeout: opts.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// Fail closed once the hop budget is spent.
			if len(via) >= opts.MaxRedirects {
				return eris.Errorf("fetch: stopped after %d redirects", opts.MaxRedirects)
			}
			return nil
		},
	}
	return f
}

// WithCache attaches a read-through page cache.
func (f *Fetcher) WithCache(c Cache) *Fetcher {
	f.cache = c
	return f
}

// limiterFor returns the politeness limiter for a host, creating it on
// first use. A zero politeness delay disables spacing.
func (f *Fetcher) limiterFor(host string) *rate.Limiter {
	if f.opts.PolitenessDelay <= 0 {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	lim, ok := f.limiters[host]
	if !ok {
		lim = rate.NewLimiter(rate.Every(f.opts.PolitenessDelay), 1)
		f.limiters[host] = lim
	}
	return lim
}

// Fetch retrieves the page at rawURL. One attempt per call; redirects are
// followed up to the configured hop limit.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*model.FetchResult, error) {
	normalized, err := normalizeURL(rawURL)
	if err != nil {
		return nil, eris.Wrap(err, "fetch: parse url")
	}

	if f.cache != nil {
		if res, ok, cacheErr := f.cache.Get(ctx, normalized); cacheErr != nil {
			zap.L().Warn("fetch: cache lookup failed", zap.String("url", normalized), zap.Error(cacheErr))
		} else if ok {
			zap.L().Debug("fetch: cache hit", zap.String("url", normalized))
			return res, nil
		}
	}

	u, err := url.Parse(normalized)
	if err != nil {
		return nil, eris.Wrap(err, "fetch: parse url")
	}
	if lim := f.limiterFor(u.Host); lim != nil {
		if err := lim.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "fetch: politeness wait")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, normalized, nil)
	if err != nil {
		return nil, eris.Wrap(err, "fetch: create request")
	}
	// Many business sites block obvious non-browser clients.
	req.Header.Set("User-Agent", f.opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, eris.Wrap(err, "fetch: timeout")
		}
		return nil, eris.Wrap(err, "fetch: request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, eris.Errorf("fetch: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.opts.MaxBodyBytes))
	if err != nil {
		if isTimeout(err) {
			return nil, eris.Wrap(err, "fetch: timeout")
		}
		return nil, eris.Wrap(err, "fetch: read body")
	}

	html := decodeBody(body, resp.Header.Get("Content-Type"))

	result := &model.FetchResult{
		RawHTML:    html,
		FinalURL:   resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
	}

	if f.cache != nil {
		if err := f.cache.Put(ctx, normalized, result); err != nil {
			zap.L().Warn("fetch: cache write failed", zap.String("url", normalized), zap.Error(err))
		}
	}

	return result, nil
}

// decodeBody converts the body to UTF-8 using the charset declared in the
// Content-Type header. Unknown or missing charsets pass through unchanged.
func decodeBody(body []byte, contentType string) string {
	if contentType == "" {
		return string(body)
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return string(body)
	}
	charset := strings.ToLower(params["charset"])
	if charset == "" || charset == "utf-8" {
		return string(body)
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return string(body)
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return string(body)
	}
	return string(decoded)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne interface{ Timeout() bool }
	if errors.As(err, &ne) {
		return ne.Timeout()
	}
	return false
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", eris.New("empty url")
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", eris.New("missing host")
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String(), nil
}

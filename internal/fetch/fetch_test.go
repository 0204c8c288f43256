package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadforge/leadscan-cli/internal/model"
)

func TestFetch_OK(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>Hello</body></html>"))
	}))
	defer srv.Close()

	f := New(Options{UserAgent: "test-agent"})
	res, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "test-agent", gotUA)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.RawHTML, "Hello")
	assert.Contains(t, res.FinalURL, srv.URL)
}

func TestFetch_FollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/end", http.StatusFound)
	})
	mux.HandleFunc("/end", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>landed</html>"))
	})

	f := New(Options{})
	res, err := f.Fetch(context.Background(), srv.URL+"/start")
	require.NoError(t, err)
	assert.Contains(t, res.RawHTML, "landed")
	assert.Contains(t, res.FinalURL, "/end")
}

func TestFetch_RedirectLoopFailsClosed(t *testing.T) {
	var srv *httptest.Server
	hops := 0
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hops++
		http.Redirect(w, r, fmt.Sprintf("/loop-%d", hops), http.StatusMovedPermanently)
	}))
	defer srv.Close()

	f := New(Options{MaxRedirects: 3})
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redirects")
	assert.LessOrEqual(t, hops, 5)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	f := New(Options{})
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	f := New(Options{Timeout: 50 * time.Millisecond})
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestFetch_TransportError(t *testing.T) {
	f := New(Options{Timeout: time.Second})
	// Port 1 on loopback; connection should be refused fast.
	_, err := f.Fetch(context.Background(), "http://127.0.0.1:1")
	assert.Error(t, err)
}

func TestNormalizeURL(t *testing.T) {
	u, err := normalizeURL("example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/", u)

	u, err = normalizeURL("http://example.com/contact")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/contact", u)

	_, err = normalizeURL("")
	assert.Error(t, err)
}

func TestFetch_EmptyURL(t *testing.T) {
	f := New(Options{})
	_, err := f.Fetch(context.Background(), "   ")
	assert.Error(t, err)
}

func TestFetch_BodyCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for range 1000 {
			_, _ = w.Write([]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
		}
	}))
	defer srv.Close()

	f := New(Options{MaxBodyBytes: 128})
	res, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, res.RawHTML, 128)
}

func TestFetch_PolitenessSpacesSameHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := New(Options{PolitenessDelay: 120 * time.Millisecond})

	start := time.Now()
	for range 3 {
		_, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
	}
	// First request is free (burst 1); the next two wait one delay each.
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
}

func TestDecodeBody_Latin1(t *testing.T) {
	// "café" in ISO-8859-1.
	body := []byte{'c', 'a', 'f', 0xe9}
	out := decodeBody(body, `text/html; charset=iso-8859-1`)
	assert.Equal(t, "café", out)
}

func TestDecodeBody_UnknownCharsetPassthrough(t *testing.T) {
	body := []byte("plain")
	assert.Equal(t, "plain", decodeBody(body, "text/html; charset=bogus-enc"))
	assert.Equal(t, "plain", decodeBody(body, ""))
}

type memCache struct {
	mu   sync.Mutex
	data map[string]*model.FetchResult
	puts int
}

func (m *memCache) Get(_ context.Context, url string) (*model.FetchResult, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.data[url]
	return res, ok, nil
}

func (m *memCache) Put(_ context.Context, url string, res *model.FetchResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]*model.FetchResult)
	}
	m.data[url] = res
	m.puts++
	return nil
}

func TestFetch_CacheReadThrough(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte("<html>fresh</html>"))
	}))
	defer srv.Close()

	cache := &memCache{}
	f := New(Options{}).WithCache(cache)

	first, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	second, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, cache.puts)
	assert.Equal(t, first.RawHTML, second.RawHTML)
}

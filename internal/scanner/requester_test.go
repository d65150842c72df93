package scanner

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/maxvaer/dirscan/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequester(t *testing.T, target string, timeout time.Duration) *Requester {
	t.Helper()
	opts := config.Defaults()
	opts.URL = target
	opts.Timeout = timeout
	req, err := NewRequester(&opts)
	require.NoError(t, err)
	return req
}

func TestJoinURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"no slashes", "http://host:3000", "admin", "http://host:3000/admin"},
		{"leading slash on path", "http://host:3000", "/admin", "http://host:3000/admin"},
		{"trailing slash on base", "http://host:3000/", "admin", "http://host:3000/admin"},
		{"both slashes", "http://host:3000/", "/admin", "http://host:3000/admin"},
		{"repeated slashes", "http://host:3000//", "//admin", "http://host:3000/admin"},
		{"base with path", "http://host/app", "login", "http://host/app/login"},
		{"trailing slash on path kept", "http://host", "admin/", "http://host/admin/"},
		{"absolute url stays on base host", "http://host", "//evil.example/x", "http://host/evil.example/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinURL(tt.base, tt.path))
		})
	}
}

func TestNewRequester_AddsScheme(t *testing.T) {
	opts := config.Defaults()
	opts.URL = "localhost:3000"
	req, err := NewRequester(&opts)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", req.baseURL)
}

func TestNewRequester_SchemeCase(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"HTTP://127.0.0.1:3000", "http://127.0.0.1:3000"},
		{"Https://host", "https://host"},
		{"hTTp://host/app/", "http://host/app/"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			opts := config.Defaults()
			opts.URL = tt.target
			req, err := NewRequester(&opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.baseURL)
		})
	}
}

func TestProbe_UpperCaseSchemeReachesServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	req := newTestRequester(t, "HTTP://"+strings.TrimPrefix(srv.URL, "http://"), 5*time.Second)
	res := req.Probe(context.Background(), "admin")
	assert.Equal(t, Status(200), res.Outcome, "err: %v", res.Err)
}

func TestNewRequester_DropsQueryAndFragment(t *testing.T) {
	for _, target := range []string{"http://h/?a=1", "http://h/#top", "http://h/?"} {
		opts := config.Defaults()
		opts.URL = target
		req, err := NewRequester(&opts)
		require.NoError(t, err, target)
		assert.Equal(t, "http://h/admin", JoinURL(req.baseURL, "admin"), target)
	}
}

func TestNewRequester_InvalidURL(t *testing.T) {
	for _, target := range []string{"http://", "http://[::1", "ftp://host", "file:///etc/passwd"} {
		opts := config.Defaults()
		opts.URL = target
		_, err := NewRequester(&opts)
		require.Error(t, err, target)
		var cfgErr *config.Error
		assert.ErrorAs(t, err, &cfgErr)
	}
}

func TestProbe_SendsHeadWithUserAgent(t *testing.T) {
	var gotMethod, gotUA, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotUA = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	req := newTestRequester(t, srv.URL+"/", 5*time.Second)
	res := req.Probe(context.Background(), "/admin")

	assert.Equal(t, http.MethodHead, gotMethod)
	assert.Equal(t, "DirScan-Simple/1.0", gotUA)
	assert.Equal(t, "/admin", gotPath)
	assert.Equal(t, Status(403), res.Outcome)
	assert.Equal(t, srv.URL+"/admin", res.URL)
	assert.Equal(t, "/admin", res.Path)
	assert.NoError(t, res.Err)
}

func TestProbe_DoesNotFollowRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, "/new", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	req := newTestRequester(t, srv.URL, 5*time.Second)
	res := req.Probe(context.Background(), "old")
	assert.Equal(t, Status(302), res.Outcome)
}

func TestProbe_SelfSignedTLS(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	req := newTestRequester(t, srv.URL, 5*time.Second)
	res := req.Probe(context.Background(), "index.html")
	assert.Equal(t, Status(200), res.Outcome)
}

func TestProbe_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	req := newTestRequester(t, srv.URL, 50*time.Millisecond)
	res := req.Probe(context.Background(), "slow")
	assert.Equal(t, Timeout, res.Outcome)
	assert.Error(t, res.Err)
}

func TestProbe_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	target := srv.URL
	srv.Close()

	req := newTestRequester(t, target, time.Second)
	res := req.Probe(context.Background(), "admin")
	assert.Equal(t, Error, res.Outcome)
	assert.Error(t, res.Err)
}

func TestEscapeStrayPercent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"admin", "admin"},
		{"100%", "100%25"},
		{"%zz", "%25zz"},
		{"%4", "%254"},
		{"%2e%2e/etc", "%2e%2e/etc"},
		{"a%20b%", "a%20b%25"},
		{"%%41", "%25%41"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeStrayPercent(tt.in), tt.in)
	}
}

func TestProbe_StrayPercentIsSent(t *testing.T) {
	var (
		mu   sync.Mutex
		uris []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		uris = append(uris, r.RequestURI)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	req := newTestRequester(t, srv.URL, 5*time.Second)
	for _, path := range []string{"100%", "%zz"} {
		res := req.Probe(context.Background(), path)
		assert.Equal(t, Status(200), res.Outcome, "%s: %v", path, res.Err)
		assert.Equal(t, path, res.Path, "bucketed path keeps the wordlist entry")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/100%25", "/%25zz"}, uris)
}

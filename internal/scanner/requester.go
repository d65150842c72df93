package scanner

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/maxvaer/dirscan/internal/config"
)

// Prober sends one probe for a path and classifies it.
type Prober interface {
	Probe(ctx context.Context, path string) Result
}

// Requester wraps an HTTP client that issues HEAD probes against a base URL.
type Requester struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewRequester creates a Requester from the provided options. Certificate
// verification is disabled: targets are lab hosts with self-signed certs.
func NewRequester(opts *config.Options) (*Requester, error) {
	target := opts.URL
	if !strings.Contains(target, "://") {
		target = "http://" + target
	}
	// url.Parse lowercases the scheme, so "HTTP://" and "Https://" pass.
	base, err := url.Parse(target)
	if err != nil {
		return nil, &config.Error{Op: "parse url", Path: opts.URL, Err: err}
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, &config.Error{Op: "parse url", Path: opts.URL, Err: fmt.Errorf("unsupported scheme %q", base.Scheme)}
	}
	if base.Host == "" {
		return nil, &config.Error{Op: "parse url", Path: opts.URL, Err: errors.New("missing host")}
	}
	// Entries are appended to the path; a query or fragment on the base
	// would swallow them.
	base.RawQuery = ""
	base.ForceQuery = false
	base.Fragment = ""
	base.RawFragment = ""

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		DialContext: (&net.Dialer{
			Timeout: timeout,
		}).DialContext,
		MaxIdleConnsPerHost: 1,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = config.DefaultUserAgent
	}

	return &Requester{
		client:    client,
		baseURL:   base.String(),
		userAgent: ua,
	}, nil
}

// JoinURL appends path to base with exactly one separator between them.
// The path is never resolved as an absolute reference, so "//evil.example"
// stays on the base host.
func JoinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// escapeStrayPercent rewrites every '%' that does not start a valid
// escape sequence as "%25", so entries like "100%" are still sent.
func escapeStrayPercent(path string) string {
	if !strings.Contains(path, "%") {
		return path
	}
	var b strings.Builder
	b.Grow(len(path) + 4)
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == '%' && !(i+2 < len(path) && isHex(path[i+1]) && isHex(path[i+2])) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// Probe sends a single HEAD request for path. Failures are folded into the
// Error and Timeout outcomes; Probe itself never fails.
func (r *Requester) Probe(ctx context.Context, path string) Result {
	targetURL := JoinURL(r.baseURL, escapeStrayPercent(path))
	result := Result{Path: path, URL: targetURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		result.Outcome = Error
		result.Err = fmt.Errorf("building request for %s: %w", path, err)
		return result
	}
	req.Header.Set("User-Agent", r.userAgent)

	start := time.Now()
	resp, err := r.client.Do(req)
	result.Duration = time.Since(start)
	if err != nil {
		result.Outcome = classify(err)
		result.Err = err
		return result
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	result.Outcome = Status(resp.StatusCode)
	return result
}

func classify(err error) Outcome {
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Timeout
	}
	return Error
}

package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

const (
	// BaseConnectTimeout is the connect timeout before the per-attempt step.
	BaseConnectTimeout = 2 * time.Second
	// ConnectTimeoutStep is added to the connect timeout for every attempt.
	ConnectTimeoutStep = time.Second
)

// ConnectTimeout returns the TCP connect timeout for the given 1-based
// attempt: 3s for the first attempt, then one second more per attempt.
func ConnectTimeout(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return BaseConnectTimeout + time.Duration(attempt)*ConnectTimeoutStep
}

// MirrorHost returns the host used for the given 1-based attempt.
// Attempt 1 uses host itself; attempt k uses www<k>.<host>.
func MirrorHost(host string, attempt int) string {
	if attempt <= 1 {
		return host
	}
	return fmt.Sprintf("www%d.%s", attempt, host)
}

// mirrorURL rewrites the host of rawURL for the given attempt, keeping
// scheme, path and query unchanged.
func mirrorURL(rawURL string, attempt int) string {
	if attempt <= 1 {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Host = MirrorHost(u.Host, attempt)
	return u.String()
}

type connectTimeoutKey struct{}

func withConnectTimeout(ctx context.Context, timeout time.Duration) context.Context {
	return context.WithValue(ctx, connectTimeoutKey{}, timeout)
}

func connectTimeoutFrom(ctx context.Context) time.Duration {
	if timeout, ok := ctx.Value(connectTimeoutKey{}).(time.Duration); ok && timeout > 0 {
		return timeout
	}
	return ConnectTimeout(1)
}

// newTransport returns the keep-alive transport owned by a dispatcher. Its
// dialer reads the attempt's connect timeout from the request context.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		d := &net.Dialer{
			Timeout:   connectTimeoutFrom(ctx),
			KeepAlive: 30 * time.Second,
		}
		return d.DialContext(ctx, network, addr)
	}
	return t
}

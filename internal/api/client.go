package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultHost is the primary gateway host. Mirrors are derived from it.
	DefaultHost = "smsc.ru"
	// DefaultTimeout bounds a single HTTP exchange end to end.
	DefaultTimeout = 20 * time.Second
	// MaxAttempts is the number of hosts tried per request, primary included.
	MaxAttempts = 5
	// MaxGETURLLength is the longest URL sent as a GET; longer requests are POSTed.
	MaxGETURLLength = 2000
)

// responseFormat selects JSON answers from the gateway.
const responseFormat = "3"

// Logger receives diagnostic output from the dispatcher.
type Logger interface {
	Debugf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
}

// DiscardLogger is the default logger that discards its input.
var DiscardLogger Logger = logDiscarder{}

type logDiscarder struct{}

func (logDiscarder) Debugf(format string, v ...interface{}) {}

func (logDiscarder) Warnf(format string, v ...interface{}) {}

// Client is the HTTP dispatcher for gateway commands.
type Client struct {
	login         string
	password      string
	charset       Charset
	useHTTPS      bool
	methodPost    bool
	host          string
	httpClient    *http.Client
	ownsTransport bool
	logger        Logger
}

// Option configures the API client.
type Option func(*Client)

// WithHTTPS selects https (true) or http (false) for every attempt.
func WithHTTPS(enabled bool) Option {
	return func(c *Client) {
		c.useHTTPS = enabled
	}
}

// WithMethodPost forces multipart POST requests even for short queries.
func WithMethodPost(enabled bool) Option {
	return func(c *Client) {
		c.methodPost = enabled
	}
}

// WithCharset sets the charset used for parameters and responses.
func WithCharset(cs Charset) Option {
	return func(c *Client) {
		c.charset = cs
	}
}

// WithHost overrides the primary host. Mirrors become www<N>.<host>.
func WithHost(host string) Option {
	return func(c *Client) {
		c.host = host
	}
}

// WithTimeout sets the overall timeout of a single attempt. It only applies
// to the HTTP client owned by the dispatcher.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.ownsTransport {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the dispatcher's HTTP client. The caller keeps
// ownership of it, and per-attempt connect timeouts are no longer applied.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
			c.ownsTransport = false
		}
	}
}

// WithLogger sets the logger used for attempt diagnostics.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a dispatcher for the given account.
func New(login, password string, opts ...Option) (*Client, error) {
	if login == "" {
		return nil, fmt.Errorf("login is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	c := &Client{
		login:    login,
		password: password,
		charset:  CharsetUTF8,
		useHTTPS: true,
		host:     DefaultHost,
		httpClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: newTransport(),
		},
		ownsTransport: true,
		logger:        DiscardLogger,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.charset.validate(); err != nil {
		return nil, err
	}
	if c.host == "" {
		return nil, fmt.Errorf("host is required")
	}

	return c, nil
}

// Charset returns the configured charset.
func (c *Client) Charset() Charset {
	return c.charset
}

// Close releases idle connections held by a dispatcher-owned transport.
// A caller-supplied HTTP client is left untouched.
func (c *Client) Close() {
	if c.ownsTransport {
		c.httpClient.CloseIdleConnections()
	}
}

// Do sends a gateway command, failing over across mirrors until one attempt
// yields an OK response or [MaxAttempts] is reached.
func (c *Client) Do(ctx context.Context, cmd string, params url.Values, files []string) (*Response, error) {
	data, err := c.mergeParams(params)
	if err != nil {
		return nil, err
	}

	baseURL := c.commandURL(cmd)
	usePost := c.methodPost || len(files) > 0 || len(baseURL+"?"+data.Encode()) > MaxGETURLLength

	var body []byte
	var contentType string
	if usePost {
		body, contentType, err = buildMultipart(data, files, c.logger)
		if err != nil {
			return nil, err
		}
	}

	var resp *Response
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		target := mirrorURL(baseURL, attempt)

		if err := ctx.Err(); err != nil {
			return nil, &NetworkError{Err: err, URL: target, Attempt: attempt}
		}

		req, err := c.newRequest(ctx, attempt, target, data, body, contentType)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		c.logger.Debugf("smsc: %s %s (attempt %d/%d)", req.Method, target, attempt, MaxAttempts)

		resp, err = c.exchange(req)
		if err != nil {
			var decodeErr *DecodeError
			if errors.As(err, &decodeErr) {
				return nil, err
			}
			if ctx.Err() != nil || attempt == MaxAttempts {
				return nil, &NetworkError{Err: err, URL: target, Attempt: attempt}
			}
			c.logger.Warnf("smsc: attempt %d failed: %v", attempt, err)
			continue
		}

		if resp.IsOK() {
			return resp, nil
		}
		if attempt < MaxAttempts {
			c.logger.Warnf("smsc: attempt %d rejected: HTTP %d, error code %s", attempt, resp.StatusCode(), resp.errorCodeString())
		}
	}

	return resp, nil
}

// mergeParams copies caller parameters and adds the credential parameters.
// Reserved keys in caller input are rejected.
func (c *Client) mergeParams(params url.Values) (url.Values, error) {
	data := make(url.Values, len(params)+4)
	for key, values := range params {
		if isReservedParam(key) {
			return nil, &ReservedParamError{Key: key}
		}
		encoded := make([]string, len(values))
		for i, v := range values {
			encoded[i] = c.charset.Encode(v)
		}
		data[key] = encoded
	}

	data.Set("login", c.charset.Encode(c.login))
	data.Set("psw", c.charset.Encode(c.password))
	data.Set("fmt", responseFormat)
	data.Set("charset", string(c.charset))
	return data, nil
}

func (c *Client) commandURL(cmd string) string {
	scheme := "http"
	if c.useHTTPS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/sys/%s.php", scheme, c.host, url.PathEscape(cmd))
}

func (c *Client) newRequest(ctx context.Context, attempt int, target string, data url.Values, body []byte, contentType string) (*http.Request, error) {
	ctx = withConnectTimeout(ctx, ConnectTimeout(attempt))

	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", contentType)
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, target+"?"+data.Encode(), nil)
		if err != nil {
			return nil, err
		}
	}

	req.Header.Set("Accept", "application/json")
	return req, nil
}

// exchange performs one HTTP round trip and wraps the result.
func (c *Client) exchange(req *http.Request) (*Response, error) {
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	raw, err = c.charset.Decode(raw)
	if err != nil {
		return nil, &DecodeError{
			StatusCode: httpResp.StatusCode,
			Reason:     reasonPhrase(httpResp),
			Err:        err,
		}
	}

	return NewResponse(httpResp.StatusCode, reasonPhrase(httpResp), raw)
}

func reasonPhrase(resp *http.Response) string {
	return strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" ")
}

func isReservedParam(key string) bool {
	switch key {
	case "login", "psw", "fmt", "charset":
		return true
	}
	return false
}

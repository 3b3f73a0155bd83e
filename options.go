package smsc

import (
	"net/http"
	"net/url"
	"time"

	"github.com/brandshopru/smsc-go/internal/api"
)

// Charset is the charset messages are sent in and answers are received in.
type Charset = api.Charset

// Supported charsets.
const (
	CharsetUTF8        = api.CharsetUTF8
	CharsetKOI8R       = api.CharsetKOI8R
	CharsetWindows1251 = api.CharsetWindows1251
)

// Logger receives request diagnostics. The package logger of
// github.com/apex/log satisfies it.
type Logger = api.Logger

const (
	defaultSMTPHost    = "localhost"
	defaultSMTPPort    = 25
	defaultWaitTimeout = 10 * time.Minute
	historyLimit       = 1000
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	methodPost  bool
	useHTTPS    bool
	charset     Charset
	emailSender string
	host        string
	timeout     time.Duration
	httpClient  *http.Client
	logger      Logger

	// historyWindow is how far back history queries reach when no start
	// date is given. Zero means six calendar months.
	historyWindow time.Duration

	smtpHost     string
	smtpPort     int
	smtpUser     string
	smtpPassword string
}

// sendConfig holds the optional arguments of send and cost requests.
type sendConfig struct {
	translit int
	time     string
	id       int
	format   Format
	sender   string
	query    url.Values
	files    []string
}

// waitConfig holds configuration for waiting on a delivery status.
type waitConfig struct {
	timeout      time.Duration
	pollInterval time.Duration
	maxInterval  time.Duration
	predicate    func(*StatusResult) bool
}

// Option configures the client.
type Option func(*clientConfig)

// SendOption configures a send or cost request.
type SendOption func(*sendConfig)

// WaitOption configures status waiting.
type WaitOption func(*waitConfig)

// WithMethodPost sends every request as a multipart POST.
func WithMethodPost(enabled bool) Option {
	return func(c *clientConfig) {
		c.methodPost = enabled
	}
}

// WithHTTPS selects https (default) or plain http.
func WithHTTPS(enabled bool) Option {
	return func(c *clientConfig) {
		c.useHTTPS = enabled
	}
}

// WithCharset sets the message charset. Default: utf-8.
func WithCharset(charset Charset) Option {
	return func(c *clientConfig) {
		c.charset = charset
	}
}

// WithEmailSender sets the From address used by [Client.SendSMSMail].
func WithEmailSender(address string) Option {
	return func(c *clientConfig) {
		c.emailSender = address
	}
}

// WithHost overrides the primary gateway host (default smsc.ru).
// Mirrors are derived as www<N>.<host>.
func WithHost(host string) Option {
	return func(c *clientConfig) {
		c.host = host
	}
}

// WithTimeout sets the overall timeout of each HTTP attempt.
// Default: 20 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. The caller owns it; Close
// does not release its connections.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(logger Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithHistoryWindow sets how far back history queries reach when no start
// date is given. Default: six months.
func WithHistoryWindow(window time.Duration) Option {
	return func(c *clientConfig) {
		c.historyWindow = window
	}
}

// WithSMTP sets the relay used by [Client.SendSMSMail].
// Default: localhost:25 without authentication.
func WithSMTP(host string, port int, username, password string) Option {
	return func(c *clientConfig) {
		c.smtpHost = host
		c.smtpPort = port
		c.smtpUser = username
		c.smtpPassword = password
	}
}

// WithTranslit sets transliteration: 0 none, 1 latin letters, 2 look-alike
// latin glyphs.
func WithTranslit(mode int) SendOption {
	return func(c *sendConfig) {
		c.translit = mode
	}
}

// WithSendTime schedules delivery. The gateway accepts DDMMYYhhmm,
// "h1-h2", "0ts" and "+m" forms.
func WithSendTime(when string) SendOption {
	return func(c *sendConfig) {
		c.time = when
	}
}

// WithScheduledAt schedules delivery at the given time.
func WithScheduledAt(at time.Time) SendOption {
	return func(c *sendConfig) {
		c.time = at.Format("0201061504")
	}
}

// WithMessageID sets the caller-chosen message ID (1..2147483647).
func WithMessageID(id int) SendOption {
	return func(c *sendConfig) {
		c.id = id
	}
}

// WithFormat selects the message kind.
func WithFormat(format Format) SendOption {
	return func(c *sendConfig) {
		c.format = format
	}
}

// WithSender sets the sender ID.
func WithSender(sender string) SendOption {
	return func(c *sendConfig) {
		c.sender = sender
	}
}

// WithQuery adds extra gateway parameters such as valid, maxsms or tz.
// They never override the message fields set by the call itself.
func WithQuery(query url.Values) SendOption {
	return func(c *sendConfig) {
		c.query = query
	}
}

// WithFiles attaches local files to an MMS or e-mail message.
func WithFiles(paths ...string) SendOption {
	return func(c *sendConfig) {
		c.files = append(c.files, paths...)
	}
}

// WithWaitTimeout sets the maximum time to wait for a final status.
// Zero or negative values select the default of 10 minutes.
func WithWaitTimeout(timeout time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.timeout = timeout
	}
}

// WithPollInterval sets the initial polling interval. Default: 2 seconds.
func WithPollInterval(interval time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.pollInterval = interval
	}
}

// WithMaxPollInterval caps the polling backoff. Default: 30 seconds.
func WithMaxPollInterval(interval time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.maxInterval = interval
	}
}

// WithStatusPredicate replaces the final-status check used by
// [Client.WaitForStatus].
func WithStatusPredicate(fn func(*StatusResult) bool) WaitOption {
	return func(c *waitConfig) {
		c.predicate = fn
	}
}

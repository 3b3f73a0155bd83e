package smsc

import (
	"context"
	"errors"
	"time"

	"github.com/brandshopru/smsc-go/internal/api"
)

// Client talks to the SMSC.RU gateway on behalf of one account.
// It is safe for concurrent use.
type Client struct {
	apiClient *api.Client

	login       string
	password    string
	charset     Charset
	emailSender string

	historyWindow time.Duration
	now           func() time.Time

	mailer       mailDialer
	smtpHost     string
	smtpPort     int
	smtpUser     string
	smtpPassword string
}

// buildAPIClient creates and configures a dispatcher from the given config.
func buildAPIClient(login, password string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithHTTPS(cfg.useHTTPS),
		api.WithMethodPost(cfg.methodPost),
		api.WithCharset(cfg.charset),
	}
	if cfg.host != "" {
		apiOpts = append(apiOpts, api.WithHost(cfg.host))
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(cfg.logger))
	}
	return api.New(login, password, apiOpts...)
}

// New creates a client for the given account.
func New(login, password string, opts ...Option) (*Client, error) {
	if login == "" {
		return nil, ErrMissingLogin
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	cfg := &clientConfig{
		useHTTPS: true,
		charset:  CharsetUTF8,
		smtpHost: defaultSMTPHost,
		smtpPort: defaultSMTPPort,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(login, password, cfg)
	if err != nil {
		return nil, err
	}

	c := &Client{
		apiClient:     apiClient,
		login:         login,
		password:      password,
		charset:       cfg.charset,
		emailSender:   cfg.emailSender,
		historyWindow: cfg.historyWindow,
		now:           time.Now,
		smtpHost:      cfg.smtpHost,
		smtpPort:      cfg.smtpPort,
		smtpUser:      cfg.smtpUser,
		smtpPassword:  cfg.smtpPassword,
	}
	c.mailer = newSMTPDialer(c.smtpHost, c.smtpPort, c.smtpUser, c.smtpPassword)
	return c, nil
}

// Close releases idle connections of the client-owned transport.
func (c *Client) Close() error {
	c.apiClient.Close()
	return nil
}

// Charset returns the configured charset.
func (c *Client) Charset() Charset {
	return c.charset
}

// SendSMS sends a message to one or more comma-separated phone numbers and
// reports its cost and the remaining balance. Decode the answer into a
// [SendResult].
//
// A response that is not OK is returned as a value; check [Response.IsOK]
// or [Response.Err].
func (c *Client) SendSMS(ctx context.Context, phones, message string, opts ...SendOption) (*Response, error) {
	cfg := newSendConfig(opts)
	params, err := buildSendParams(phones, message, cfg)
	if err != nil {
		return nil, err
	}
	resp, err := c.apiClient.Do(ctx, api.CommandSend, params, cfg.files)
	return resp, wrapError("send", err)
}

// GetSMSCost prices a message without sending it. Decode the answer into a
// [CostResult].
func (c *Client) GetSMSCost(ctx context.Context, phones, message string, opts ...SendOption) (*Response, error) {
	cfg := newSendConfig(opts)
	params, err := buildCostParams(phones, message, cfg)
	if err != nil {
		return nil, err
	}
	resp, err := c.apiClient.Do(ctx, api.CommandSend, params, nil)
	return resp, wrapError("cost", err)
}

// GetStatus asks for the delivery status of message id sent to phone.
// all selects the detail level: 0 status only, 1 full info, 2 full info
// with country and operator. Decode the answer into a [StatusResult].
func (c *Client) GetStatus(ctx context.Context, id, phone string, all int) (*Response, error) {
	params, err := buildStatusParams(id, phone, all)
	if err != nil {
		return nil, err
	}
	resp, err := c.apiClient.Do(ctx, api.CommandStatus, params, nil)
	return resp, wrapError("status", err)
}

// GetBalance asks for the account balance. Decode the answer into a
// [BalanceResult].
func (c *Client) GetBalance(ctx context.Context) (*Response, error) {
	resp, err := c.apiClient.Do(ctx, api.CommandBalance, nil, nil)
	return resp, wrapError("balance", err)
}

// GetHistory lists sent messages. A zero q.Start reaches back by the
// client's history window and a zero q.End means today. Decode the answer
// into a []HistoryMessage.
func (c *Client) GetHistory(ctx context.Context, q HistoryQuery) (*Response, error) {
	if q.Start.IsZero() {
		q.Start = c.historyStart()
	}
	if q.End.IsZero() {
		q.End = c.now()
	}
	params, err := buildHistoryParams(q)
	if err != nil {
		return nil, err
	}
	resp, err := c.apiClient.Do(ctx, api.CommandGet, params, nil)
	return resp, wrapError("history", err)
}

// GetSMSHistory lists SMS sent to phone between start and end. A zero start
// reaches back by the history window and a zero end means today.
func (c *Client) GetSMSHistory(ctx context.Context, phone string, start, end time.Time) (*Response, error) {
	return c.GetHistory(ctx, HistoryQuery{
		Start:  start,
		End:    end,
		Phone:  phone,
		Format: FormatSMS,
	})
}

// GetStatistics asks for sending statistics over a period. A zero start
// reaches back by the history window. Decode the answer into [Statistics].
func (c *Client) GetStatistics(ctx context.Context, start, end time.Time) (*Response, error) {
	if start.IsZero() {
		start = c.historyStart()
	}
	params, err := buildStatisticsParams(start, end)
	if err != nil {
		return nil, err
	}
	resp, err := c.apiClient.Do(ctx, api.CommandGet, params, nil)
	return resp, wrapError("statistics", err)
}

// Send sends a message and decodes the answer. Vendor errors are returned
// as *APIError.
func (c *Client) Send(ctx context.Context, phones, message string, opts ...SendOption) (*SendResult, error) {
	resp, err := c.SendSMS(ctx, phones, message, opts...)
	if err != nil {
		return nil, err
	}
	var result SendResult
	if err := decodeResult(resp, &result); err != nil {
		return nil, wrapError("send", err)
	}
	return &result, nil
}

// Status fetches and decodes the delivery status of a message.
func (c *Client) Status(ctx context.Context, id, phone string, all int) (*StatusResult, error) {
	resp, err := c.GetStatus(ctx, id, phone, all)
	if err != nil {
		return nil, err
	}
	var result StatusResult
	if err := decodeResult(resp, &result); err != nil {
		return nil, wrapError("status", err)
	}
	return &result, nil
}

// Balance fetches and decodes the account balance.
func (c *Client) Balance(ctx context.Context) (*BalanceResult, error) {
	resp, err := c.GetBalance(ctx)
	if err != nil {
		return nil, err
	}
	var result BalanceResult
	if err := decodeResult(resp, &result); err != nil {
		return nil, wrapError("balance", err)
	}
	return &result, nil
}

func decodeResult(resp *Response, v any) error {
	if err := resp.Err(); err != nil {
		return err
	}
	return resp.Decode(v)
}

func (c *Client) historyStart() time.Time {
	now := c.now()
	if c.historyWindow > 0 {
		return now.Add(-c.historyWindow)
	}
	return now.AddDate(0, -6, 0)
}

func newSendConfig(opts []SendOption) *sendConfig {
	cfg := &sendConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// IsVendorError reports whether err carries the given vendor error code.
func IsVendorError(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

package smsc

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
)

// dateLayout is the gateway's date format (dd.mm.yyyy).
const dateLayout = "02.01.2006"

// Cost modes of the send command.
const (
	costOnly     = 1 // price the message, do not send
	costWithSend = 3 // send and report cost and balance
)

type sendQuery struct {
	Cost     int    `url:"cost"`
	Phones   string `url:"phones"`
	Message  string `url:"mes"`
	Translit int    `url:"translit"`
	ID       int    `url:"id"`
}

type costQuery struct {
	Cost     int    `url:"cost"`
	Phones   string `url:"phones"`
	Message  string `url:"mes"`
	Translit int    `url:"translit"`
}

type statusQuery struct {
	Phone string `url:"phone"`
	ID    string `url:"id"`
	All   int    `url:"all"`
}

type historyQuery struct {
	GetMessages int    `url:"get_messages"`
	Start       string `url:"start"`
	End         string `url:"end,omitempty"`
	Phone       string `url:"phone,omitempty"`
	Email       string `url:"email,omitempty"`
	Format      int    `url:"format"`
	Count       int    `url:"cnt"`
	PrevID      int64  `url:"prev_id,omitempty"`
}

type statisticsQuery struct {
	GetStat int    `url:"get_stat"`
	Start   string `url:"start"`
	End     string `url:"end,omitempty"`
}

// HistoryQuery selects messages for [Client.GetHistory].
type HistoryQuery struct {
	// Start is the first day of the period. Zero means the client's
	// history window back from today.
	Start time.Time
	// End is the last day of the period. Zero means today.
	End time.Time
	// Phone is a phone number or comma-separated list of numbers.
	Phone string
	// Email is an address or comma-separated list of addresses.
	Email string
	// Format selects SMS (FormatSMS) or e-mail (FormatMail) history.
	Format Format
	// Limit caps the number of messages returned, at most 1000.
	Limit int
	// PrevID returns messages sent before the one with this int_id.
	PrevID int64
}

// FormatDate formats t the way the gateway expects dates (dd.mm.yyyy).
// The zero time formats as "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func encodeQuery(v interface{}) (url.Values, error) {
	values, err := query.Values(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode parameters: %w", err)
	}
	return values, nil
}

// messageParams layers the send arguments: extra query first, then format,
// sender and time, then the fixed message fields, each overriding the last.
func messageParams(fixed interface{}, cfg *sendConfig, withTime bool) (url.Values, error) {
	params := url.Values{}
	for key, values := range cfg.query {
		params[key] = append([]string(nil), values...)
	}

	cfg.format.apply(params)
	if cfg.sender != "" {
		params.Set("sender", cfg.sender)
	}
	if withTime && cfg.time != "" {
		params.Set("time", cfg.time)
	}

	fields, err := encodeQuery(fixed)
	if err != nil {
		return nil, err
	}
	for key, values := range fields {
		params[key] = values
	}
	return params, nil
}

func buildSendParams(phones, message string, cfg *sendConfig) (url.Values, error) {
	return messageParams(sendQuery{
		Cost:     costWithSend,
		Phones:   phones,
		Message:  message,
		Translit: cfg.translit,
		ID:       cfg.id,
	}, cfg, true)
}

func buildCostParams(phones, message string, cfg *sendConfig) (url.Values, error) {
	return messageParams(costQuery{
		Cost:     costOnly,
		Phones:   phones,
		Message:  message,
		Translit: cfg.translit,
	}, cfg, false)
}

func buildStatusParams(id, phone string, all int) (url.Values, error) {
	return encodeQuery(statusQuery{Phone: phone, ID: id, All: all})
}

func buildHistoryParams(q HistoryQuery) (url.Values, error) {
	limit := q.Limit
	if limit <= 0 || limit > historyLimit {
		limit = historyLimit
	}
	return encodeQuery(historyQuery{
		GetMessages: 1,
		Start:       FormatDate(q.Start),
		End:         FormatDate(q.End),
		Phone:       q.Phone,
		Email:       q.Email,
		Format:      int(q.Format),
		Count:       limit,
		PrevID:      q.PrevID,
	})
}

func buildStatisticsParams(start, end time.Time) (url.Values, error) {
	return encodeQuery(statisticsQuery{
		GetStat: 1,
		Start:   FormatDate(start),
		End:     FormatDate(end),
	})
}

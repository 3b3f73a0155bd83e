package smsc

import (
	"encoding/json"

	"github.com/brandshopru/smsc-go/internal/api"
)

// Response is the gateway's answer to one request. Use [Response.IsOK] to
// check for vendor errors and [Response.Decode] to read a typed result.
type Response = api.Response

// SendResult is the answer to [Client.SendSMS].
type SendResult struct {
	ID      int         `json:"id"`
	Count   int         `json:"cnt"`
	Cost    json.Number `json:"cost"`
	Balance json.Number `json:"balance"`
}

// CostResult is the answer to [Client.GetSMSCost].
type CostResult struct {
	Cost  json.Number `json:"cost"`
	Count int         `json:"cnt"`
}

// BalanceResult is the answer to [Client.GetBalance].
type BalanceResult struct {
	Balance  json.Number `json:"balance"`
	Credit   json.Number `json:"credit,omitempty"`
	Currency string      `json:"currency,omitempty"`
}

// Message statuses reported by the status command.
const (
	StatusNotFound       = -3
	StatusStopped        = -2
	StatusPending        = -1
	StatusSentToOperator = 0
	StatusDelivered      = 1
	StatusRead           = 2
	StatusExpired        = 3
	StatusLinkClicked    = 4
	StatusUndeliverable  = 20
	StatusWrongNumber    = 22
	StatusProhibited     = 23
	StatusNoFunds        = 24
	StatusUnavailable    = 25
)

// StatusResult is the answer to [Client.GetStatus] for a single message.
// Fields past LastTimestamp are only filled when requested with all=1 or
// all=2, or for HLR requests.
type StatusResult struct {
	Status        int    `json:"status"`
	LastDate      string `json:"last_date"`
	LastTimestamp int64  `json:"last_timestamp"`
	Err           int    `json:"err"`

	SendDate   string      `json:"send_date,omitempty"`
	Phone      string      `json:"phone,omitempty"`
	Cost       json.Number `json:"cost,omitempty"`
	SenderID   string      `json:"sender_id,omitempty"`
	StatusName string      `json:"status_name,omitempty"`
	Message    string      `json:"message,omitempty"`
	Country    string      `json:"country,omitempty"`
	Operator   string      `json:"operator,omitempty"`
	Region     string      `json:"region,omitempty"`

	IMSI           string `json:"imsi,omitempty"`
	MSC            string `json:"msc,omitempty"`
	MCC            int    `json:"mcc,omitempty"`
	MNC            int    `json:"mnc,omitempty"`
	CountryName    string `json:"cn,omitempty"`
	NetworkName    string `json:"net,omitempty"`
	RoamingName    string `json:"rcn,omitempty"`
	RoamingNetwork string `json:"rnet,omitempty"`
}

// Final reports whether the status will not change any more.
func (s *StatusResult) Final() bool {
	switch s.Status {
	case StatusNotFound, StatusDelivered, StatusRead, StatusExpired, StatusLinkClicked,
		StatusUndeliverable, StatusWrongNumber, StatusProhibited,
		StatusNoFunds, StatusUnavailable:
		return true
	}
	return false
}

// Delivered reports whether the message reached the recipient.
func (s *StatusResult) Delivered() bool {
	return s.Status == StatusDelivered || s.Status == StatusRead || s.Status == StatusLinkClicked
}

// HistoryMessage is one entry of [Client.GetHistory].
type HistoryMessage struct {
	IntID         int64       `json:"int_id"`
	ID            int         `json:"id"`
	SendDate      string      `json:"send_date"`
	SendTimestamp int64       `json:"send_timestamp"`
	LastDate      string      `json:"last_date,omitempty"`
	LastTimestamp int64       `json:"last_timestamp,omitempty"`
	Phone         string      `json:"phone"`
	Email         string      `json:"email,omitempty"`
	Cost          json.Number `json:"cost"`
	SenderID      string      `json:"sender_id"`
	Status        int         `json:"status"`
	StatusName    string      `json:"status_name,omitempty"`
	Err           int         `json:"err,omitempty"`
	Message       string      `json:"message"`
	Count         int         `json:"cnt,omitempty"`
	Format        int         `json:"format,omitempty"`
}

// Statistics is the answer to [Client.GetStatistics]. Its fields depend on
// the account type, so it is kept as a generic map.
type Statistics map[string]any

package smsc

import (
	"errors"
	"fmt"

	"github.com/brandshopru/smsc-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingLogin is returned when no login is provided.
	ErrMissingLogin = errors.New("login is required")

	// ErrMissingPassword is returned when no password is provided.
	ErrMissingPassword = errors.New("password is required")

	// ErrMissingEmailSender is returned by SendSMSMail when no sender address is configured.
	ErrMissingEmailSender = errors.New("e-mail sender is required")

	// ErrStatusTimeout is returned when a message does not reach a final status in time.
	ErrStatusTimeout = errors.New("timed out waiting for message status")

	// ErrInvalidCharset is returned for charsets other than utf-8, koi8-r and windows-1251.
	ErrInvalidCharset = api.ErrInvalidCharset

	// ErrReservedParam is returned when extra parameters collide with login, psw, fmt or charset.
	ErrReservedParam = api.ErrReservedParam

	// ErrDecode is returned when the gateway answer is not usable JSON.
	ErrDecode = api.ErrDecode
)

// Vendor error codes as sentinels. An *APIError matches the one for its code.
var (
	ErrInvalidParams     = api.ErrInvalidParams
	ErrUnauthorized      = api.ErrUnauthorized
	ErrInsufficientFunds = api.ErrInsufficientFunds
	ErrIPBlocked         = api.ErrIPBlocked
	ErrInvalidDate       = api.ErrInvalidDate
	ErrMessageForbidden  = api.ErrMessageForbidden
	ErrInvalidPhone      = api.ErrInvalidPhone
	ErrUndeliverable     = api.ErrUndeliverable
	ErrRateLimited       = api.ErrRateLimited
)

// SMSCError is implemented by all SDK errors.
type SMSCError interface {
	error
	SMSCError() // marker method
}

// APIError is a request the gateway answered but did not accept.
type APIError = api.APIError

// NetworkError is a transport failure on the last mirror tried.
type NetworkError = api.NetworkError

// DecodeError is an answer whose body was not usable JSON.
type DecodeError = api.DecodeError

// ReservedParamError names an extra parameter that collides with a
// credential parameter.
type ReservedParamError = api.ReservedParamError

// StatusTimeoutError is returned by WaitForStatus when the wait ends before
// the message reaches a final status.
type StatusTimeoutError struct {
	ID      string
	Phone   string
	Last    *StatusResult
	Timeout string
}

func (e *StatusTimeoutError) Error() string {
	if e.Last != nil {
		return fmt.Sprintf("message %s to %s: no final status after %s (last status %d)", e.ID, e.Phone, e.Timeout, e.Last.Status)
	}
	return fmt.Sprintf("message %s to %s: no final status after %s", e.ID, e.Phone, e.Timeout)
}

// Is implements errors.Is for sentinel error matching.
func (e *StatusTimeoutError) Is(target error) bool {
	return target == ErrStatusTimeout
}

// SMSCError implements the SMSCError interface.
func (e *StatusTimeoutError) SMSCError() {}

// wrapError annotates err with the operation that failed. SDK error types
// are kept reachable through errors.As.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

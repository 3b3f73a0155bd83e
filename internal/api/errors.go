package api

import (
	"errors"
	"fmt"
)

// Errors that can be checked with errors.Is.
var (
	// ErrDecode indicates a completed exchange whose body was not usable JSON.
	ErrDecode = errors.New("unable to decode JSON response")
	// ErrReservedParam indicates a caller parameter collides with a credential parameter.
	ErrReservedParam = errors.New("reserved parameter")
	// ErrInvalidCharset indicates an unsupported charset.
	ErrInvalidCharset = errors.New("invalid charset")

	// ErrInvalidParams indicates the gateway rejected the request parameters (code 1).
	ErrInvalidParams = errors.New("invalid parameters")
	// ErrUnauthorized indicates an invalid login or password (code 2).
	ErrUnauthorized = errors.New("invalid login or password")
	// ErrInsufficientFunds indicates the account balance is too low (code 3).
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrIPBlocked indicates the client IP is temporarily blocked (code 4).
	ErrIPBlocked = errors.New("IP address temporarily blocked")
	// ErrInvalidDate indicates a malformed date parameter (code 5).
	ErrInvalidDate = errors.New("invalid date format")
	// ErrMessageForbidden indicates the message was refused by moderation (code 6).
	ErrMessageForbidden = errors.New("message forbidden")
	// ErrInvalidPhone indicates a malformed phone number (code 7).
	ErrInvalidPhone = errors.New("invalid phone number")
	// ErrUndeliverable indicates the message cannot be delivered (code 8).
	ErrUndeliverable = errors.New("message cannot be delivered")
	// ErrRateLimited indicates too many concurrent or identical requests (code 9).
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents a request the gateway answered but did not accept,
// either by a non-2xx status or by an error code in the body.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	switch {
	case e.Code != 0 && e.Message != "":
		return fmt.Sprintf("smsc error %d: %s", e.Code, e.Message)
	case e.Code != 0:
		return fmt.Sprintf("smsc error %d", e.Code)
	case e.Message != "":
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// SMSCError implements the SMSCError marker interface.
func (e *APIError) SMSCError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.Code {
	case 1:
		return target == ErrInvalidParams
	case 2:
		return target == ErrUnauthorized
	case 3:
		return target == ErrInsufficientFunds
	case 4:
		return target == ErrIPBlocked
	case 5:
		return target == ErrInvalidDate
	case 6:
		return target == ErrMessageForbidden
	case 7:
		return target == ErrInvalidPhone
	case 8:
		return target == ErrUndeliverable
	case 9:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a transport failure on the final attempt.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error on attempt %d (%s): %v", e.Attempt, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// SMSCError implements the SMSCError marker interface.
func (e *NetworkError) SMSCError() {}

// DecodeError represents a response body that could not be decoded.
type DecodeError struct {
	StatusCode int
	Reason     string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode JSON: %v (HTTP %d %s)", e.Err, e.StatusCode, e.Reason)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// SMSCError implements the SMSCError marker interface.
func (e *DecodeError) SMSCError() {}

// ReservedParamError reports a caller parameter that would override a
// credential parameter.
type ReservedParamError struct {
	Key string
}

func (e *ReservedParamError) Error() string {
	return fmt.Sprintf("parameter %q is reserved for credentials", e.Key)
}

// Is implements errors.Is for sentinel error matching.
func (e *ReservedParamError) Is(target error) bool {
	return target == ErrReservedParam
}

// SMSCError implements the SMSCError marker interface.
func (e *ReservedParamError) SMSCError() {}

// CharsetError reports an unsupported charset.
type CharsetError struct {
	Charset string
}

func (e *CharsetError) Error() string {
	return fmt.Sprintf("unsupported charset %q (want utf-8, koi8-r or windows-1251)", e.Charset)
}

// Is implements errors.Is for sentinel error matching.
func (e *CharsetError) Is(target error) bool {
	return target == ErrInvalidCharset
}

// SMSCError implements the SMSCError marker interface.
func (e *CharsetError) SMSCError() {}

package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Response is the validated envelope around one completed HTTP exchange.
// It is immutable once constructed.
type Response struct {
	statusCode int
	reason     string
	raw        string
	content    any
}

// NewResponse decodes body and wraps it with the exchange's status line.
// It fails with a [*DecodeError] when body is empty, is not valid JSON,
// or decodes to an empty value (null, false, 0, "", {} or []).
func NewResponse(statusCode int, reason string, body []byte) (*Response, error) {
	content, err := decodeContent(body)
	if err != nil {
		return nil, &DecodeError{
			StatusCode: statusCode,
			Reason:     reason,
			Err:        err,
		}
	}
	return &Response{
		statusCode: statusCode,
		reason:     reason,
		raw:        string(body),
		content:    content,
	}, nil
}

func decodeContent(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.New("empty response body")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var content any
	if err := dec.Decode(&content); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after JSON value")
	}
	if !truthy(content) {
		return nil, errors.New("empty JSON value")
	}
	return content, nil
}

// truthy reports whether v is a non-empty decoded JSON value.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "0"
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	}
	return true
}

// IsOK reports whether the HTTP status is 2xx and the body carries no
// error code.
func (r *Response) IsOK() bool {
	if r.statusCode < 200 || r.statusCode > 299 {
		return false
	}
	_, hasCode := r.ErrorCode()
	return !hasCode
}

// ErrorCode returns the vendor error code, if the body carries one.
func (r *Response) ErrorCode() (int, bool) {
	v, ok := r.field("error_code")
	if !ok || !truthy(v) {
		return 0, false
	}
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n), true
		}
		if f, err := t.Float64(); err == nil {
			return int(f), true
		}
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n, true
		}
	case bool:
		return 1, true
	}
	return 0, true
}

// ErrorMessage returns the vendor error text with its first letter
// capitalized and a trailing period, or "" when there is no error.
func (r *Response) ErrorMessage() string {
	if _, hasCode := r.ErrorCode(); !hasCode {
		return ""
	}
	v, ok := r.field("error")
	if !ok || v == nil {
		return ""
	}
	msg, isString := v.(string)
	if !isString {
		msg = fmt.Sprint(v)
	}
	return upperFirst(msg) + "."
}

// Content returns the decoded JSON body.
func (r *Response) Content() any {
	return r.content
}

// RawContent returns the response body as received (after charset decoding).
func (r *Response) RawContent() string {
	return r.raw
}

// IsEmpty reports whether the raw body is empty.
func (r *Response) IsEmpty() bool {
	return r.raw == ""
}

// StatusCode returns the HTTP status code.
func (r *Response) StatusCode() int {
	return r.statusCode
}

// ReasonPhrase returns the HTTP reason phrase.
func (r *Response) ReasonPhrase() string {
	return r.reason
}

// Decode unmarshals the raw body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal([]byte(r.raw), v); err != nil {
		return &DecodeError{StatusCode: r.statusCode, Reason: r.reason, Err: err}
	}
	return nil
}

// Err returns an [*APIError] describing a response that is not OK, or nil.
func (r *Response) Err() error {
	if r.IsOK() {
		return nil
	}
	code, _ := r.ErrorCode()
	return &APIError{
		StatusCode: r.statusCode,
		Code:       code,
		Message:    r.ErrorMessage(),
	}
}

func (r *Response) field(key string) (any, bool) {
	obj, ok := r.content.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := obj[key]
	return v, ok
}

func (r *Response) errorCodeString() string {
	if code, ok := r.ErrorCode(); ok {
		return strconv.Itoa(code)
	}
	return "none"
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

// Package api provides the HTTP dispatcher for the SMSC.RU gateway API.
// It merges account credentials into every request, chooses between a GET
// query string and a multipart POST body, and fails over across the
// gateway's mirror hosts when an attempt does not produce a usable answer.
//
// # Dispatching
//
// [Client.Do] turns a command name ("send", "status", "balance", "get") and
// its parameters into at most [MaxAttempts] HTTP exchanges:
//
//   - Attempt 1 targets the primary host (smsc.ru by default).
//   - Attempt k (k >= 2) targets the mirror www<k>.smsc.ru with the same path
//     and parameters.
//   - Each attempt gets a connect timeout one second longer than the
//     previous one; the overall request timeout stays fixed.
//
// The loop stops at the first [Response] for which [Response.IsOK] reports
// true. When every attempt is rejected by the gateway, the last [Response]
// is returned as a value so callers can inspect the vendor error code.
//
// # Error Handling
//
// Only two conditions are returned as errors:
//
//   - [*NetworkError]: the HTTP exchange on the final attempt did not
//     complete (connection refused, timeout, TLS failure), or the context
//     was cancelled.
//   - [*DecodeError]: an exchange completed but its body was not usable
//     JSON. Decode failures are never retried.
//
// Vendor-reported failures are exposed by [Response.Err] as [*APIError],
// which matches sentinels such as [ErrUnauthorized] with errors.Is.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Its configuration is
// immutable after [New] returns.
package api

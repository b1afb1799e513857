package jina

import (
	"context"
	"encoding/json"
	"errors"
	"net"
)

// Error is the single error type returned by the client.
//
// Code is one of:
//   - "config_error": missing API key at construction
//   - "invalid_request", "request_error": a request that cannot be
//     built, reported before any network I/O
//   - "network_error", "timeout", "canceled": transport failure
//     before an HTTP status was received
//   - "http_error": a non-2xx status; Status is set and Payload holds
//     the vendor error body when it was valid JSON
//   - "read_error", "decode_error": a 2xx response whose body could
//     not be read or did not match the expected shape
type Error struct {
	Code    string
	Status  int
	Payload json.RawMessage
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return "jina: " + e.Message
	}
	return "jina: " + e.Code
}

func (e *Error) Unwrap() error { return e.Cause }

func classifyNetworkErr(err error) string {
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return "timeout"
	}
	return "network_error"
}

// IsHTTP reports whether err is a non-2xx response, and its status.
func IsHTTP(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.Code == "http_error" {
		return e.Status, true
	}
	return 0, false
}

func IsRateLimited(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == 429
}

func IsAuth(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Status == 401 || e.Status == 403)
}

func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) &&
		(e.Code == "network_error" || e.Code == "timeout" || e.Code == "canceled")
}

func IsTimeout(err error) bool {
	var e *Error
	if errors.As(err, &e) && e.Code == "timeout" {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func IsCanceled(err error) bool {
	var e *Error
	if errors.As(err, &e) && e.Code == "canceled" {
		return true
	}
	return errors.Is(err, context.Canceled)
}

package api

import (
	"errors"
	"fmt"
)

// ErrorKind buckets every failure surfaced by this library so callers have a
// single taxonomy to match against, regardless of whether the failure
// originated locally, on the wire, or inside the exchange.
type ErrorKind int8

// These are the available error kinds
const (
	// ErrorKindInvalidRequestParameter is returned for malformed parameters
	// caught before any network call, and for 4xx rejections of the request.
	ErrorKindInvalidRequestParameter ErrorKind = iota
	// ErrorKindAuthentication is returned when the exchange rejects the
	// credentials, signature, or stamp (HTTP 401/403). A correct key/secret
	// pair can still land here when the client clock is skewed.
	ErrorKindAuthentication
	// ErrorKindRequestLimitExceeded is returned on rate limiting (HTTP 429).
	ErrorKindRequestLimitExceeded
	// ErrorKindInternalServer is returned for 5xx responses, response bodies
	// that do not parse as JSON, and transport-level failures.
	ErrorKindInternalServer
)

// String is the stringer function
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindInvalidRequestParameter:
		return "invalid request parameter"
	case ErrorKindAuthentication:
		return "authentication failed"
	case ErrorKindRequestLimitExceeded:
		return "request limit exceeded"
	case ErrorKindInternalServer:
		return "internal server error"
	}
	return "error, unrecognized error kind"
}

// Error is the error value returned by every operation of this library. It is
// immutable once constructed.
type Error struct {
	// Kind classifies the failure (see ErrorKind)
	Kind ErrorKind
	// Message is a human-readable description, preferring the server's own
	// message when one was available
	Message string
	// Code is the server-provided error code normalized to a string, "" when
	// the server sent none or the failure was local
	Code string
	// RawBody is the raw response body for diagnostics, nil when the failure
	// happened before a response was received
	RawBody []byte

	cause error
}

// Error is the error interface impl.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (code=%s)", e.Kind, e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause when the failure wraps another error,
// such as a transport failure.
func (e *Error) Unwrap() error {
	return e.cause
}

// MakeInvalidRequestParameterError is a factory method
func MakeInvalidRequestParameterError(message string, code string, rawBody []byte) *Error {
	return &Error{
		Kind:    ErrorKindInvalidRequestParameter,
		Message: message,
		Code:    code,
		RawBody: rawBody,
	}
}

// MakeAuthenticationError is a factory method
func MakeAuthenticationError(message string, code string, rawBody []byte) *Error {
	return &Error{
		Kind:    ErrorKindAuthentication,
		Message: message,
		Code:    code,
		RawBody: rawBody,
	}
}

// MakeRequestLimitExceededError is a factory method
func MakeRequestLimitExceededError(message string, code string, rawBody []byte) *Error {
	return &Error{
		Kind:    ErrorKindRequestLimitExceeded,
		Message: message,
		Code:    code,
		RawBody: rawBody,
	}
}

// MakeInternalServerError is a factory method
func MakeInternalServerError(message string, code string, rawBody []byte) *Error {
	return &Error{
		Kind:    ErrorKindInternalServer,
		Message: message,
		Code:    code,
		RawBody: rawBody,
	}
}

// MakeTransportError wraps a network-level failure (dial, TLS, timeout, read)
// in the internal server kind so callers never see the transport's native
// error type at the top level.
func MakeTransportError(cause error) *Error {
	return &Error{
		Kind:    ErrorKindInternalServer,
		Message: fmt.Sprintf("could not reach the exchange: %s", cause),
		cause:   cause,
	}
}

func kindOf(err error) (ErrorKind, bool) {
	var apiError *Error
	if errors.As(err, &apiError) {
		return apiError.Kind, true
	}
	return 0, false
}

// IsInvalidRequestParameter returns true if the error carries the invalid
// request parameter kind.
func IsInvalidRequestParameter(err error) bool {
	k, ok := kindOf(err)
	return ok && k == ErrorKindInvalidRequestParameter
}

// IsAuthentication returns true if the error carries the authentication kind.
func IsAuthentication(err error) bool {
	k, ok := kindOf(err)
	return ok && k == ErrorKindAuthentication
}

// IsRequestLimitExceeded returns true if the error carries the request limit
// exceeded kind.
func IsRequestLimitExceeded(err error) bool {
	k, ok := kindOf(err)
	return ok && k == ErrorKindRequestLimitExceeded
}

// IsInternalServer returns true if the error carries the internal server kind.
func IsInternalServer(err error) bool {
	k, ok := kindOf(err)
	return ok && k == ErrorKindInternalServer
}

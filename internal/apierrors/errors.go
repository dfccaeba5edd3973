package apierrors

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies a failure at an operation boundary.
type ErrorKind string

const (
	// KindConfiguration means a required credential or identifier is missing.
	// The caller's deployment is broken, not the request.
	KindConfiguration ErrorKind = "configuration"
	// KindProvider means the remote service responded with a failure status
	// or a malformed payload.
	KindProvider ErrorKind = "provider"
	// KindNetwork means a transport-level failure, including timeout.
	KindNetwork ErrorKind = "network"
	// KindDecode means the response body was not parseable.
	KindDecode ErrorKind = "decode"
	// KindInternal is the catch-all for anything unanticipated.
	KindInternal ErrorKind = "internal"
)

// APIError is the error type every operation converts its failures into.
// It carries a stable HTTP status code and a human-readable message.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	err        error
}

func (e *APIError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.err
}

// ConfigurationError reports a missing credential or identifier as a 500.
func ConfigurationError(message string) *APIError {
	return &APIError{
		Kind:       KindConfiguration,
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}

// ConfigurationUnavailable reports a missing credential as a 503. Used when
// the operation should read as "service unavailable" to callers rather than
// a server fault they might retry differently.
func ConfigurationUnavailable(message string) *APIError {
	return &APIError{
		Kind:       KindConfiguration,
		StatusCode: http.StatusServiceUnavailable,
		Message:    message,
	}
}

// ProviderError carries the remote service's own failure status through to
// the caller. Status codes outside the valid HTTP range are clamped to 502.
func ProviderError(statusCode int, message string) *APIError {
	if statusCode < 100 || statusCode > 599 {
		statusCode = http.StatusBadGateway
	}
	return &APIError{
		Kind:       KindProvider,
		StatusCode: statusCode,
		Message:    message,
	}
}

// MalformedResponse reports a well-formed-JSON response that lacks required
// fields. Distinct from a provider-reported error: the provider said OK but
// the payload shape is wrong.
func MalformedResponse(message string) *APIError {
	return &APIError{
		Kind:       KindProvider,
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}

// NetworkError reports a transport-level failure (connection, DNS, TLS,
// timeout) as a 503.
func NetworkError(message string, err error) *APIError {
	return &APIError{
		Kind:       KindNetwork,
		StatusCode: http.StatusServiceUnavailable,
		Message:    message,
		err:        err,
	}
}

// DecodeError reports an unparseable response body as a 502.
func DecodeError(message string, err error) *APIError {
	return &APIError{
		Kind:       KindDecode,
		StatusCode: http.StatusBadGateway,
		Message:    message,
		err:        err,
	}
}

// InternalError wraps anything unanticipated as a sanitized 500.
func InternalError(err error) *APIError {
	return &APIError{
		Kind:       KindInternal,
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal server error",
		err:        err,
	}
}

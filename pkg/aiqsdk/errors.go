package aiqsdk

import (
	"errors"
	"fmt"
	"net/http"
)

// ============================================================================
// Failure Kinds
// ============================================================================

// FailureKind classifies why a supervisor operation failed.
type FailureKind string

const (
	// KindInvalidInput means a required parameter (URL, organization,
	// username, password, action) was blank or could not be encoded into a
	// valid URI. Detected before any network call.
	KindInvalidInput FailureKind = "invalid_input"

	// KindTransportFailure means the HTTP request could not be completed at
	// all (connection failure, timeout, broken response stream).
	KindTransportFailure FailureKind = "transport_failure"

	// KindAuthenticationRejected means the supervisor answered with a
	// non-200 status. The message carries the server's error_description
	// when one was provided (HTTP 400), otherwise the status text.
	KindAuthenticationRejected FailureKind = "authentication_rejected"

	// KindMalformedResponse means the response body was not valid JSON, a
	// required field path was absent or not a string, or a value that must
	// be non-empty (such as the access token) was empty.
	KindMalformedResponse FailureKind = "malformed_response"
)

// ============================================================================
// Failure - classified SDK error type
// ============================================================================

// Failure is the error type returned by every SDK operation. It pairs a
// FailureKind with a human-readable message so callers can branch on the
// kind without parsing text. Failures are terminal for the current call;
// the SDK never retries internally.
type Failure struct {
	// Kind is the failure classification.
	Kind FailureKind

	// StatusCode is the HTTP status that triggered the failure, or 0 when
	// the failure happened before or outside an HTTP exchange.
	StatusCode int

	// Message is a human-readable description of the failure.
	Message string

	// cause is the underlying error, if any.
	cause error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As chains.
func (f *Failure) Unwrap() error {
	return f.cause
}

// KindOf returns the FailureKind carried by err, or the empty string when
// err is nil or not a Failure produced by this package.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}

// ============================================================================
// Constructors
// ============================================================================

// invalidInput reports a blank or unusable required parameter. The name is
// the parameter's user-facing name ("URL", "organization", ...).
func invalidInput(name string) *Failure {
	return &Failure{
		Kind:    KindInvalidInput,
		Message: "invalid " + name,
	}
}

// invalidInputErr is invalidInput with an underlying cause, used when URI
// assembly fails on syntactically broken input.
func invalidInputErr(name string, err error) *Failure {
	return &Failure{
		Kind:    KindInvalidInput,
		Message: fmt.Sprintf("invalid %s: %v", name, err),
		cause:   err,
	}
}

// transportFailure wraps an I/O level error from the HTTP round trip.
func transportFailure(err error) *Failure {
	return &Failure{
		Kind:    KindTransportFailure,
		Message: fmt.Sprintf("request failed: %v", err),
		cause:   err,
	}
}

// malformedResponse reports an unusable response body. The cause may be nil
// when the body parsed fine but a required field was missing or empty.
func malformedResponse(msg string, err error) *Failure {
	f := &Failure{
		Kind:    KindMalformedResponse,
		Message: msg,
		cause:   err,
	}
	if err != nil {
		f.Message = fmt.Sprintf("%s: %v", msg, err)
	}
	return f
}

// ============================================================================
// Status Classification
// ============================================================================

// classifyStatus turns a non-200 supervisor response into a Failure. On
// HTTP 400 the body is expected to carry an OAuth-style error_description
// field; when it does, that text becomes the message. Every other status
// (and a 400 with an unreadable body) falls back to the HTTP status text.
func classifyStatus(statusCode int, body []byte) *Failure {
	message := http.StatusText(statusCode)
	if statusCode == http.StatusBadRequest {
		if desc, err := stringAt(body, "error_description"); err == nil && desc != "" {
			message = desc
		}
	}

	return &Failure{
		Kind:       KindAuthenticationRejected,
		StatusCode: statusCode,
		Message:    message,
	}
}

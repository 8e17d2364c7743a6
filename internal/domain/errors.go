package domain

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the failure classes of the validate -> fetch ->
// format pipeline. The dispatch boundary matches on it explicitly instead of
// inspecting error strings.
type ErrorKind string

const (
	// KindValidation means the request shape or a cross-field rule was
	// violated before any network call. Recoverable: fix the input and retry.
	KindValidation ErrorKind = "validation"
	// KindRemote means the Gong API answered with a non-success HTTP status.
	KindRemote ErrorKind = "remote"
	// KindStructural means the response body did not match the expected
	// contract. Fatal for the call; never rendered best-effort.
	KindStructural ErrorKind = "structural"
	// KindNotFound means the API call succeeded but the requested resource
	// was absent from the result set.
	KindNotFound ErrorKind = "not_found"
)

// Error is the tagged error carried through the pipeline.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int    // set for KindRemote
	Body       string // raw response body for KindRemote
}

func (e *Error) Error() string { return e.Message }

// NewValidationError reports one or more request violations. The detail is
// expected to enumerate every offending field path and reason.
func NewValidationError(detail string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation error: " + detail}
}

// NewRemoteError reports a non-success HTTP status from the Gong API.
func NewRemoteError(statusCode int, status, body string) *Error {
	return &Error{
		Kind:       KindRemote,
		Message:    fmt.Sprintf("Gong API error: %s: %s", status, body),
		StatusCode: statusCode,
		Body:       body,
	}
}

// NewStructuralError reports a response body that failed the expected
// response contract.
func NewStructuralError(detail string) *Error {
	return &Error{Kind: KindStructural, Message: "Unexpected response from Gong API: " + detail}
}

// NewNotFoundError reports a logically missing resource on a successful call.
func NewNotFoundError(resource, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found: %s", resource, id)}
}

// KindOf extracts the ErrorKind from err, unwrapping as needed. Errors raised
// outside the pipeline report KindStructural, the generic fatal class.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStructural
}

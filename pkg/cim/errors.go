package cim

import (
	"errors"
	"fmt"
)

// errEmptyDocument marks a response body with no root element.
var errEmptyDocument = errors.New("empty XML document")

// ConfigurationError reports a missing required credential at client
// construction. It is raised synchronously, before any network activity.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: required field '%s' is missing", e.Field)
}

// ValidationError reports a request argument that an operation requires but
// was not supplied. Validation is presence-only; the remote service performs
// all deeper checking.
type ValidationError struct {
	Operation string
	Reason    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operation, e.Reason)
}

// TransportError reports a network, connection or HTTP-status failure while
// talking to the gateway. The call is never retried.
type TransportError struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: gateway returned HTTP %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s: transport failure: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that is not valid XML.
// Snippet carries the start of the offending body for debugging.
type DecodeError struct {
	Operation string
	Snippet   string
	Err       error
}

func (e *DecodeError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("%s: failed to decode response: %v. Body snippet: '%s'",
			e.Operation, e.Err, e.Snippet)
	}
	return fmt.Sprintf("%s: failed to decode response: %v", e.Operation, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// bodySnippet trims a response body down to a short prefix for error messages.
func bodySnippet(body []byte) string {
	const max = 120
	s := string(body)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

package cim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError(t *testing.T) {
	err := &ConfigurationError{Field: "login"}
	assert.Equal(t, "configuration: required field 'login' is missing", err.Error())
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Operation: "createCustomerProfile",
		Reason:    "one of merchantCustomerId, description or email is required",
	}
	assert.Equal(t,
		"createCustomerProfile: one of merchantCustomerId, description or email is required",
		err.Error())
}

func TestTransportError(t *testing.T) {
	tests := []struct {
		name     string
		err      *TransportError
		expected string
	}{
		{
			name: "connection failure",
			err: &TransportError{
				Operation: "getCustomerProfile",
				Err:       errors.New("connection refused"),
			},
			expected: "getCustomerProfile: transport failure: connection refused",
		},
		{
			name: "http status failure",
			err: &TransportError{
				Operation:  "deleteCustomerProfile",
				StatusCode: 503,
			},
			expected: "deleteCustomerProfile: gateway returned HTTP 503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	inner := errors.New("dial tcp: timeout")
	err := &TransportError{Operation: "getCustomerProfileIds", Err: inner}
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestDecodeError(t *testing.T) {
	inner := errors.New("unexpected EOF")

	withSnippet := &DecodeError{
		Operation: "getCustomerProfile",
		Snippet:   "<half a docu",
		Err:       inner,
	}
	assert.Contains(t, withSnippet.Error(), "getCustomerProfile")
	assert.Contains(t, withSnippet.Error(), "<half a docu")
	assert.Equal(t, inner, errors.Unwrap(withSnippet))

	withoutSnippet := &DecodeError{Operation: "getCustomerProfile", Err: inner}
	assert.NotContains(t, withoutSnippet.Error(), "snippet")
}

func TestBodySnippetTruncates(t *testing.T) {
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}
	snippet := bodySnippet(long)
	assert.Len(t, snippet, 123) // 120 chars plus ellipsis
	assert.Contains(t, snippet, "...")

	assert.Equal(t, "short", bodySnippet([]byte("short")))
}

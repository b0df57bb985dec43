package storefront

import (
	"errors"
	"fmt"
	"strings"
)

// TransportError means no HTTP response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("storefront: no response: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError is a response with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// GraphQLError carries the top-level "errors" of a 200 response.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	if len(e.Messages) == 0 {
		return "An error occurred!"
	}
	return strings.Join(e.Messages, ", ")
}

// First returns the first reported message, or "" when there is none.
func (e *GraphQLError) First() string {
	if len(e.Messages) == 0 {
		return ""
	}
	return e.Messages[0]
}

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

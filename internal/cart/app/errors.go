package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/shoping-storefront/internal/cart/domain"
	"github.com/dwikikusuma/shoping-storefront/pkg/storefront"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive number")

// NoCartError is returned when a write is attempted before a cart id exists.
type NoCartError struct{}

func (*NoCartError) Error() string { return "No cart id" }

type InsufficientStockError struct {
	VariantID string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Only %d items were added to your cart due to availability.", e.Available)
}

// RemoteValidationError joins the userErrors of a cart mutation.
type RemoteValidationError struct {
	Messages []string
}

func (e *RemoteValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "Unable to connect to server. Please check your network connection!"
}

func (e *TransportError) Unwrap() error { return e.Err }

type UnknownError struct {
	Err error
}

func (e *UnknownError) Error() string {
	return "An error occurred, please try again!"
}

func (e *UnknownError) Unwrap() error { return e.Err }

func newRemoteValidationError(userErrs []domain.UserError) *RemoteValidationError {
	msgs := make([]string, 0, len(userErrs))
	for _, ue := range userErrs {
		msgs = append(msgs, ue.Message)
	}
	return &RemoteValidationError{Messages: msgs}
}

// finalize maps any failure leaving a Manager operation onto the cart error
// taxonomy, so callers only ever see a message-bearing value from this file.
func finalize(err error) error {
	if err == nil {
		return nil
	}

	var (
		noCart  *NoCartError
		stock   *InsufficientStockError
		remote  *RemoteValidationError
		trans   *TransportError
		unknown *UnknownError
	)
	switch {
	case errors.Is(err, ErrInvalidQuantity),
		errors.As(err, &noCart),
		errors.As(err, &stock),
		errors.As(err, &remote),
		errors.As(err, &trans),
		errors.As(err, &unknown):
		return err
	case storefront.IsTransport(err):
		return &TransportError{Err: err}
	default:
		return &UnknownError{Err: err}
	}
}

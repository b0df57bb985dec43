package app

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dwikikusuma/shoping-storefront/pkg/storefront"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	msgBadCredentials = "Email or password is incorrect!"
	msgNoToken        = "Unable to retrieve token. Please try again!"
	msgEmailTaken     = "This email is already in use!"
	msgInvalidEmail   = "Invalid email!"
	msgUnreachable    = "Unable to connect to server. Please check your network connection!"
	msgUnknown        = "An error occurred, please try again!"
)

// Error is a failure with a message fit for the customer.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// ValidationError lists every rejected form field.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string { return strings.Join(e.Messages, " ") }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

var fieldMessages = map[string]string{
	"FirstName.required":  "Please enter first name!",
	"LastName.required":   "Please enter last name!",
	"Email.required":      "Please enter email!",
	"Email.email":         "Invalid email",
	"Password.required":   "Please enter password!",
	"RePassword.required": "Please confirm password!",
	"RePassword.eqfield":  "Passwords do not match!",
}

func newValidationError(err error) error {
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msg, ok := fieldMessages[f.Field()+"."+f.Tag()]
		if !ok {
			msg = f.Error()
		}
		msgs = append(msgs, msg)
	}
	return &ValidationError{Messages: msgs}
}

func remoteError(err error) error {
	var (
		gql     *storefront.GraphQLError
		httpErr *storefront.HTTPError
	)
	switch {
	case storefront.IsTransport(err):
		return &Error{Message: msgUnreachable, Err: err}
	case errors.As(err, &gql):
		msg := gql.First()
		if msg == "" {
			msg = "An error occurred!"
		}
		return &Error{Message: msg, Err: err}
	case errors.As(err, &httpErr):
		return &Error{Message: httpErr.Error(), Err: err}
	default:
		return &Error{Message: msgUnknown, Err: err}
	}
}

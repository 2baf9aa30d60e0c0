package contact

import (
	"errors"
	"net/http"
)

// Kind classifies submission failures. Kinds map to HTTP status codes
// downstream and are distinguishable for logging.
type Kind string

const (
	KindMissingRequiredFields Kind = "missing_required_fields"
	KindInvalidEmailFormat    Kind = "invalid_email_format"
	KindConfigurationError    Kind = "configuration_error"
	KindDeliveryFailure       Kind = "delivery_failure"
)

// Error is a classified submission failure. Message is the safe,
// localized sentence shown to the form submitter; Err carries internal
// detail for logs and is never used as the primary user message.
type Error struct {
	Err     error
	Message string
	Kind    Kind
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to the response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindMissingRequiredFields, KindInvalidEmailFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Detail returns the internal error text, or empty when there is none.
// Suitable for the debug field of failure responses.
func (e *Error) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// AsError extracts an *Error from err, or nil.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

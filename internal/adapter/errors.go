package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")
	ErrMalformedResponse   = errors.New("malformed eagle response")
)

// RemoteAPIError is returned when Eagle answers with a non-success envelope
// status. Status and Message are copied verbatim from the reply. Code holds
// the envelope code as text, whether Eagle sent a number or a string.
type RemoteAPIError struct {
	Status     string
	Message    string
	Code       string
	HTTPStatus int
}

func (e *RemoteAPIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("eagle api status %q (http %d)", e.Status, e.HTTPStatus)
	}
	return fmt.Sprintf("eagle api status %q (http %d): %s", e.Status, e.HTTPStatus, e.Message)
}

package errors

import (
	"errors"
	"fmt"
)

var (
	// Client input
	ErrMissingAttachment = errors.New("resume attachment is required")
	ErrInvalidUpload     = errors.New("uploaded file is missing or empty")
	ErrBadRequest        = errors.New("invalid request")

	// Downstream
	ErrPoolExhausted = errors.New("no database connection available, try again later")
	ErrPersistence   = errors.New("failed to store the submission")
	ErrNotification  = errors.New("failed to send the notification email")

	// Generic
	ErrNotFound = errors.New("record not found")
)

type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func (e *InvalidInputError) Is(target error) bool { return target == ErrBadRequest }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

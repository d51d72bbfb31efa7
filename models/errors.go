package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies request-level failures. The controller layer maps
// each kind onto an HTTP status; nothing below the controllers knows about
// status codes.
type ErrorKind string

const (
	ErrorKindValidation      ErrorKind = "ValidationError"
	ErrorKindDuplicate       ErrorKind = "DuplicateError"
	ErrorKindNotFound        ErrorKind = "NotFoundError"
	ErrorKindReference       ErrorKind = "ReferenceError"
	ErrorKindMalformedFilter ErrorKind = "MalformedFilterError"
)

// AppError is a recoverable request error with a kind and a human-readable
// message. Field is set for validation errors.
type AppError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// NewValidationError reports a bad, missing, or malformed field.
func NewValidationError(field, format string, args ...interface{}) *AppError {
	return &AppError{
		Kind:    ErrorKindValidation,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewDuplicateError reports an id or email collision.
func NewDuplicateError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: ErrorKindDuplicate, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError reports an unknown id for the given kind.
func NewNotFoundError(kind Kind, id string) *AppError {
	return &AppError{
		Kind:    ErrorKindNotFound,
		Message: fmt.Sprintf("%s with ID '%s' not found", kind, id),
	}
}

// NewReferenceError reports a dangling or still-referenced entity.
func NewReferenceError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: ErrorKindReference, Message: fmt.Sprintf(format, args...)}
}

// NewMalformedFilterError reports a filters parameter that is not valid
// structured data.
func NewMalformedFilterError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: ErrorKindMalformedFilter, Message: fmt.Sprintf(format, args...)}
}

// KindOfError returns the ErrorKind of err, or the empty string for
// unexpected errors.
func KindOfError(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// FieldOfError returns the offending field of a validation error, if any.
func FieldOfError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}

package models

import (
	"errors"
	"fmt"
)

// ErrorCode classifies failures so transport layers can map them uniformly.
type ErrorCode string

const (
	ErrCodeValidation     ErrorCode = "VALIDATION"
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrCodePersistence    ErrorCode = "PERSISTENCE"
	ErrCodePrecondition   ErrorCode = "PRECONDITION"
	ErrCodeConflict       ErrorCode = "CONFLICT"
)

// Error is a coded domain error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an underlying error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Common domain errors.
var (
	ErrProductNotFound   = NewError(ErrCodeNotFound, "product not found")
	ErrCommentNotFound   = NewError(ErrCodeNotFound, "comment not found")
	ErrOperationInFlight = NewError(ErrCodeConflict, "another operation is already in flight")
	ErrNotConfigured     = NewError(ErrCodePrecondition, "reddit credentials are not configured")
)

// IsCode reports whether err carries the given classification.
func IsCode(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Pipeline specific errors
	ErrSourceUnavailable   ErrorCode = "SOURCE_UNAVAILABLE"
	ErrInsufficientContent ErrorCode = "INSUFFICIENT_CONTENT"
	ErrMalformedCandidate  ErrorCode = "MALFORMED_CANDIDATE"
	ErrCacheUnavailable    ErrorCode = "CACHE_UNAVAILABLE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewSourceUnavailableError(err error) *DomainError {
	return NewError(ErrSourceUnavailable, "Reference content source unavailable", err)
}

func NewInsufficientContentError(message string) *DomainError {
	return NewError(ErrInsufficientContent, message, nil)
}

func NewMalformedCandidateError(message string) *DomainError {
	return NewError(ErrMalformedCandidate, message, nil)
}

func NewCacheUnavailableError(err error) *DomainError {
	return NewError(ErrCacheUnavailable, "Quiz cache unavailable", err)
}

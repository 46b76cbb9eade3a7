package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidPage is returned for page numbers below 1.
var ErrInvalidPage = errors.New("page must be >= 1")

// ErrorClass classifies fetch failures for logs and metrics.
type ErrorClass string

const (
	// ErrorClassNetwork covers transport failures and timeouts.
	ErrorClassNetwork ErrorClass = "network"

	// ErrorClassClient covers 4xx responses.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer covers 5xx and other non-2xx responses.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassDecode covers bodies that are not a valid artworks page.
	ErrorClassDecode ErrorClass = "decode"
)

// APIError is a failed catalog read.
type APIError struct {
	StatusCode int
	Class      ErrorClass
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog %s error (status %d): %s: %v", e.Class, e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("catalog %s error (status %d): %s", e.Class, e.StatusCode, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// ClassOf returns the class of err, or "" when err is not an *APIError.
func ClassOf(err error) ErrorClass {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Class
	}
	return ""
}

func classifyStatus(code int) ErrorClass {
	if code >= 400 && code < 500 {
		return ErrorClassClient
	}
	return ErrorClassServer
}

func statusError(code int, body string) *APIError {
	msg := http.StatusText(code)
	if body != "" {
		msg += ": " + body
	}
	return &APIError{StatusCode: code, Class: classifyStatus(code), Message: msg}
}

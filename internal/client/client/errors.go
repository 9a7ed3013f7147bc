package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/brainly/internal/common"
)

var (
	// ErrUnauthenticated means no session token is stored; the request was
	// not sent.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrUnauthorized means the server rejected the token or credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnavailable means the request did not reach the server or no
	// response was read back.
	ErrUnavailable = errors.New("server unavailable")
	// ErrTimeout means the per-request deadline expired before a response.
	ErrTimeout = errors.New("request timed out")
	// ErrEmptyResponse means a 2xx response lacked a required field.
	ErrEmptyResponse = errors.New("empty response")
)

// APIError is a non-2xx answer from the API. Message holds the server's
// "message" field when the body carried one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap lets callers match auth and not-found failures with errors.Is.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	default:
		return nil
	}
}

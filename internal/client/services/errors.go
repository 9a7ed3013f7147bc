package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/brainly/internal/client/client"
	"github.com/dmitrijs2005/brainly/internal/common"
)

// ValidationError is an input problem caught before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return common.ErrorEmptyField }

func required(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Message: field + " is required"}
	}
	return nil
}

// MessageOf turns err into a line suitable for an inline error banner.
// Server-provided messages win; unknown failures collapse to fallback.
func MessageOf(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	switch {
	case errors.Is(err, client.ErrUnauthenticated):
		return "You are not signed in"
	case errors.Is(err, client.ErrUnauthorized):
		return "Session rejected, please sign in again"
	case errors.Is(err, client.ErrTimeout):
		return "Request timed out"
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable"
	}
	return fallback
}

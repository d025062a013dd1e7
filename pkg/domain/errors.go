package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	// ErrFetchFailure covers network errors and non-2xx upstream responses.
	ErrFetchFailure = errors.New("upstream fetch failed")
	// ErrParseFailure covers bodies that are not the expected JSON.
	ErrParseFailure = errors.New("upstream response could not be parsed")
	ErrNotLoaded    = errors.New("artists not loaded")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// StatusError is returned when the upstream answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrFetchFailure
}

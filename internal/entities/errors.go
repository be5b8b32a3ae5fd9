// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrProjectNotFound is returned when a project filter matches nothing.
	ErrProjectNotFound = errors.New("project not found")
	// ErrUpstream signals a failed call to the issue tracker.
	ErrUpstream = errors.New("upstream error")
)

// UpstreamError is a non-2xx answer from the issue tracker.
type UpstreamError struct {
	StatusCode int
	Status     string
	Path       string
	Body       string
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%d %s", e.StatusCode, e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return fmt.Sprintf("youtrack api error (%s): %s", e.Path, msg)
}

// Unwrap lets errors.Is match ErrUpstream.
func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

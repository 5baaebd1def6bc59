package errs

import (
	"errors"
	"fmt"
)

// ServiceCommunicationError is the single terminal failure surfaced when
// the remote call, response parsing, or record mapping goes wrong. Message
// is safe to show to the host; Debug carries the underlying detail and
// belongs in logs only.
type ServiceCommunicationError struct {
	Message string
	Debug   string
	Err     error
}

func (e *ServiceCommunicationError) Error() string { return e.Message }

func (e *ServiceCommunicationError) Unwrap() error { return e.Err }

func NewServiceCommunication(err error) *ServiceCommunicationError {
	return &ServiceCommunicationError{
		Message: "unable to fetch data from the reporting service",
		Debug:   fmt.Sprintf("columbo request failed: %v", err),
		Err:     err,
	}
}

// UnresolvedFieldError marks a requested field id the catalog does not
// know. It is raised before any remote call is made.
type UnresolvedFieldError struct {
	ID string
}

func (e *UnresolvedFieldError) Error() string {
	return fmt.Sprintf("unknown field id: %s", e.ID)
}

func IsServiceCommunication(err error) bool {
	var target *ServiceCommunicationError
	return errors.As(err, &target)
}

func IsUnresolvedField(err error) bool {
	var target *UnresolvedFieldError
	return errors.As(err, &target)
}

package api

import (
	"fmt"
)

// Error describes a failed backend call. Unwrap yields the domain sentinel
// (domain.ErrUnauthorized, domain.ErrNotFound, ...) and the transport cause.
type Error struct {
	Sentinel  error
	Operation string
	Status    int
	Message   string
	Err       error
}

func (e *Error) Error() string {
	msg := e.Operation
	switch {
	case e.Message != "":
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	case e.Sentinel != nil:
		msg = fmt.Sprintf("%s: %v", msg, e.Sentinel)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Sentinel != nil {
		errs = append(errs, e.Sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

package booking

import (
	"errors"
	"fmt"
)

// Error codes for the booking workflow. The first two are user-correctable
// and surface as 4xx responses; the last two are internal and must only ever
// reach the client as a generic failure.
const (
	CodeMalformedRequest  = "malformedRequest"
	CodeLeadTimeViolation = "leadTimeViolation"
	CodeRenderError       = "renderError"
	CodeDispatchError     = "dispatchError"
)

// WorkflowError is the error type returned by every step of the booking
// workflow. Code identifies the failure class; Err carries the underlying
// cause, if any.
type WorkflowError struct {
	Code    string
	Message string
	Err     error
}

func (e *WorkflowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}

func NewMalformedRequestError(msg string) error {
	return &WorkflowError{
		Code:    CodeMalformedRequest,
		Message: msg,
	}
}

func NewLeadTimeViolationError() error {
	return &WorkflowError{
		Code:    CodeLeadTimeViolation,
		Message: "Bookings must be made at least 24 hours in advance",
	}
}

func NewRenderError(msg string) error {
	return &WorkflowError{
		Code:    CodeRenderError,
		Message: msg,
	}
}

func NewDispatchError(err error) error {
	return &WorkflowError{
		Code:    CodeDispatchError,
		Message: "failed to send booking confirmation",
		Err:     err,
	}
}

// HasCode reports whether err is a WorkflowError carrying the given code.
func HasCode(err error, code string) bool {
	var we *WorkflowError
	return errors.As(err, &we) && we.Code == code
}

// UserMessage returns the message a WorkflowError carries for the end user,
// or an empty string if err is not a WorkflowError.
func UserMessage(err error) string {
	var we *WorkflowError
	if errors.As(err, &we) {
		return we.Message
	}
	return ""
}

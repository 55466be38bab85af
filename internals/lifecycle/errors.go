// file: internals/lifecycle/errors.go
package lifecycle

import (
	"errors"
	"fmt"
)

// =========================================================
// ERROR TAXONOMY — every engine failure is one of these codes
// =========================================================

type ErrorCode string

const (
	CodeUnknownStatus      ErrorCode = "UNKNOWN_STATUS"
	CodeInvalidSourceState ErrorCode = "INVALID_SOURCE_STATE"
	CodeMissingField       ErrorCode = "MISSING_FIELD"
	CodeUnauthorizedActor  ErrorCode = "UNAUTHORIZED_ACTOR"
	CodeTenantMismatch     ErrorCode = "TENANT_MISMATCH"
	CodeConflict           ErrorCode = "CONFLICT"
	CodeTimeout            ErrorCode = "TIMEOUT"
)

// Error is returned as a value; controllers translate Code to an HTTP status.
// Message is diagnostic, not presentation text.
type Error struct {
	Code    ErrorCode
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// =========================================================
// CONSTRUCTORS
// =========================================================

func ErrUnknownStatus(e Entity, raw string) *Error {
	return &Error{
		Code:    CodeUnknownStatus,
		Message: fmt.Sprintf("status %q is not a valid %s status", raw, e),
	}
}

func ErrInvalidSourceState(e Entity, action Action, current Status) *Error {
	return &Error{
		Code:    CodeInvalidSourceState,
		Message: fmt.Sprintf("action %q is not allowed while %s is %q", action, e, current),
	}
}

func ErrMissingField(field string) *Error {
	return &Error{
		Code:    CodeMissingField,
		Field:   field,
		Message: fmt.Sprintf("field %q is required for this transition", field),
	}
}

func ErrUnauthorizedActor(action Action) *Error {
	return &Error{
		Code:    CodeUnauthorizedActor,
		Message: fmt.Sprintf("actor is not allowed to perform %q", action),
	}
}

func ErrTenantMismatch() *Error {
	return &Error{
		Code:    CodeTenantMismatch,
		Message: "entity does not belong to the caller's tenant scope",
	}
}

func ErrConflict() *Error {
	return &Error{
		Code:    CodeConflict,
		Message: "entity was modified concurrently, reload and retry",
	}
}

func ErrTimeout() *Error {
	return &Error{
		Code:    CodeTimeout,
		Message: "command exceeded its deadline",
	}
}

// =========================================================
// INSPECTION
// =========================================================

// CodeOf extracts the taxonomy code, or "" for foreign errors.
func CodeOf(err error) ErrorCode {
	var le *Error
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}

func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

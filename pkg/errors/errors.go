// Package errors provides the unified error type and factory functions for
// the pubchem-go client.  Every layer (request construction, transport,
// decoding, domain views, CLI) uses AppError as the single carrier for
// structured error information so that callers can branch on typed codes
// with errors.Is / errors.As instead of string matching.
package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// stackDepth is the maximum number of frames captured per error.
const stackDepth = 16

// captureStack returns a formatted call-stack string starting two frames
// above the caller, skipping captureStack itself and the factory that
// invoked it.
func captureStack(skip int) string {
	pcs := make([]uintptr, stackDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		f, more := frames.Next()
		if !strings.Contains(f.File, "runtime/") {
			fmt.Fprintf(&sb, "\n\t%s:%d %s", f.File, f.Line, f.Function)
		}
		if !more {
			break
		}
	}
	return sb.String()
}

// AppError is the structured error type used throughout pubchem-go.  It
// satisfies the standard error interface and supports error wrapping so
// errors.Is / errors.As / errors.Unwrap work across the whole chain.
//
// Usage:
//
//	return errors.New(errors.ErrCodeResponseParse, "error parsing atom elements")
//	return errors.Wrap(err, errors.ErrCodeSerialization, "decoding record")
//	if errors.IsNotFound(err) { ... }
type AppError struct {
	// Code is the typed error code identifying the failure category.
	Code ErrorCode

	// Message is the primary human-readable description.
	Message string

	// Detail carries supplementary context (identifiers, paths, fault
	// detail strings) that aids debugging.
	Detail string

	// Cause is the underlying error, if any.
	Cause error

	// Stack is the call stack captured at creation.  It is excluded from
	// Error() output; structured loggers may read the field directly.
	Stack string
}

// Error implements the standard error interface.
// Format: "[<code>] <message>: <detail>", detail omitted when empty.
func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail returns a shallow copy of the receiver with Detail set.
// Safe to call on a nil pointer.
func (e *AppError) WithDetail(detail string) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Detail = detail
	return &clone
}

// WithCause returns a shallow copy of the receiver with Cause set to err.
func (e *AppError) WithCause(err error) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Cause = err
	return &clone
}

// New constructs a fresh AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Stack:   captureStack(1),
	}
}

// NewFromCode constructs an AppError carrying the code's default message.
func NewFromCode(code ErrorCode) *AppError {
	return &AppError{
		Code:    code,
		Message: DefaultMessageForCode(code),
		Stack:   captureStack(1),
	}
}

// Wrap constructs an AppError wrapping an existing error.  Returns nil when
// err is nil so it can be used inline on call results.  When err is already
// an *AppError and code is CodeUnknown, the original code is preserved.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	if code == CodeUnknown {
		var ae *AppError
		if errors.As(err, &ae) {
			code = ae.Code
		}
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
		Stack:   captureStack(1),
	}
}

// IsCode reports whether any error in err's chain is an *AppError with the
// given code.
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) && ae.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsNotFound reports whether err represents a 404 from the service.  The
// decode layer relies on this to convert not-found responses into empty
// results.
func IsNotFound(err error) bool {
	return IsCode(err, ErrCodeNotFound)
}

// GetCode extracts the ErrorCode from the first *AppError in err's chain,
// returning CodeOK for nil and CodeUnknown when no AppError is present.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

// InvalidParam constructs an ErrCodeInvalidParam AppError.
func InvalidParam(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidParam,
		Message: message,
		Stack:   captureStack(1),
	}
}

// ResponseParse constructs an ErrCodeResponseParse AppError.  Used when a
// decoded response does not match the expected JSON shape.
func ResponseParse(message string) *AppError {
	return &AppError{
		Code:    ErrCodeResponseParse,
		Message: message,
		Stack:   captureStack(1),
	}
}

// FileExists constructs an ErrCodeFileExists AppError for download
// destination conflicts.
func FileExists(path string) *AppError {
	return &AppError{
		Code:    ErrCodeFileExists,
		Message: DefaultMessageForCode(ErrCodeFileExists),
		Detail:  path,
		Stack:   captureStack(1),
	}
}

// Internal constructs an ErrCodeInternal AppError for unexpected failures
// where no more specific code applies.
func Internal(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Stack:   captureStack(1),
	}
}

// FromStatus constructs the AppError for an HTTP status code returned by
// the service, carrying the code's default message.  faultDetail, when
// non-empty, is the first detail string extracted from the service's fault
// envelope and is attached as Detail.
func FromStatus(status int, faultDetail string) *AppError {
	code := CodeForStatus(status)
	return &AppError{
		Code:    code,
		Message: DefaultMessageForCode(code),
		Detail:  faultDetail,
		Stack:   captureStack(1),
	}
}

package errors

import "net/http"

// ErrorCode identifies a failure category.  Codes are grouped by layer:
// COMMON_* for generic client-side failures, PUG_* for service responses,
// IO_* for local filesystem conflicts.
type ErrorCode string

const (
	// CodeOK is returned by GetCode for a nil error.
	CodeOK ErrorCode = "OK"

	// CodeUnknown is returned by GetCode when no AppError is present in the
	// chain, and tells Wrap to preserve an existing AppError's code.
	CodeUnknown ErrorCode = "UNKNOWN"

	// ErrCodeInternal marks unexpected client-side failures.
	ErrCodeInternal ErrorCode = "COMMON_001"

	// ErrCodeInvalidParam marks invalid caller input detected before any
	// request is issued.
	ErrCodeInvalidParam ErrorCode = "COMMON_002"

	// ErrCodeSerialization marks JSON encode/decode failures.
	ErrCodeSerialization ErrorCode = "COMMON_003"

	// The PUG_* family mirrors the HTTP statuses documented for the service.
	ErrCodeBadRequest       ErrorCode = "PUG_400"
	ErrCodeNotFound         ErrorCode = "PUG_404"
	ErrCodeMethodNotAllowed ErrorCode = "PUG_405"
	ErrCodeServerError      ErrorCode = "PUG_500"
	ErrCodeUnimplemented    ErrorCode = "PUG_501"
	ErrCodeServerTimeout    ErrorCode = "PUG_504"

	// ErrCodeResponseParse marks a well-formed response whose JSON shape
	// does not match the record format.
	ErrCodeResponseParse ErrorCode = "PUG_PARSE"

	// ErrCodeFileExists marks a download destination conflict.
	ErrCodeFileExists ErrorCode = "IO_EXISTS"
)

// statusCode maps service HTTP statuses to their codes.
var statusCode = map[int]ErrorCode{
	http.StatusBadRequest:          ErrCodeBadRequest,
	http.StatusNotFound:            ErrCodeNotFound,
	http.StatusMethodNotAllowed:    ErrCodeMethodNotAllowed,
	http.StatusInternalServerError: ErrCodeServerError,
	http.StatusNotImplemented:      ErrCodeUnimplemented,
	http.StatusGatewayTimeout:      ErrCodeServerTimeout,
}

// codeStatus is the reverse of statusCode, extended with statuses for the
// client-side codes.
var codeStatus = map[ErrorCode]int{
	ErrCodeInvalidParam:     http.StatusBadRequest,
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrCodeFileExists:       http.StatusConflict,
	ErrCodeServerError:      http.StatusInternalServerError,
	ErrCodeUnimplemented:    http.StatusNotImplemented,
	ErrCodeServerTimeout:    http.StatusGatewayTimeout,
}

// codeMessage holds the default message per code, matching the wording the
// service documents for each status.
var codeMessage = map[ErrorCode]string{
	ErrCodeInternal:         "internal error",
	ErrCodeInvalidParam:     "invalid parameter",
	ErrCodeSerialization:    "serialization failed",
	ErrCodeBadRequest:       "request is improperly formed",
	ErrCodeNotFound:         "the input record was not found",
	ErrCodeMethodNotAllowed: "request not allowed",
	ErrCodeServerError:      "some problem on the server side",
	ErrCodeUnimplemented:    "the requested operation has not (yet) been implemented",
	ErrCodeServerTimeout:    "the request timed out, from server overload or too broad a request",
	ErrCodeResponseParse:    "failed to parse response",
	ErrCodeFileExists:       "destination file already exists",
}

// CodeForStatus maps an HTTP status to its error code.  Unlisted 5xx
// statuses collapse to ErrCodeServerError; everything else falls back to
// ErrCodeBadRequest.
func CodeForStatus(status int) ErrorCode {
	if code, ok := statusCode[status]; ok {
		return code
	}
	if status >= 500 {
		return ErrCodeServerError
	}
	return ErrCodeBadRequest
}

// HTTPStatusForCode returns the HTTP status a code corresponds to, falling
// back to 500 for codes without one.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default human-readable message for a
// code.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := codeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

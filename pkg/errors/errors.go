package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Error codes exposed at the HTTP boundary. Each pipeline failure mode
// maps to exactly one code so callers can tell them apart.
const (
	CodeUnsupportedFormat   = "UNSUPPORTED_FORMAT"
	CodeConversionFailed    = "CONVERSION_FAILED"
	CodeTranscriptionFailed = "TRANSCRIPTION_FAILED"
	CodeMissingCredential   = "MISSING_CREDENTIAL"
	CodeRemoteJobFailed     = "REMOTE_JOB_FAILED"
	CodeJobTimeout          = "JOB_TIMEOUT"
	CodeUpstream            = "UPSTREAM_ERROR"
	CodeInternal            = "INTERNAL_ERROR"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on code so wrapped instances compare equal to the
// predefined sentinels.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// ErrMissingCredential signals that an optional external branch has no
// API key configured. The orchestrator treats it as a skip, never as a
// pipeline failure.
var ErrMissingCredential = &AppError{
	Code:    CodeMissingCredential,
	Message: "API credential not configured",
	Status:  http.StatusBadRequest,
}

func UnsupportedFormat(ext string) *AppError {
	return &AppError{
		Code:    CodeUnsupportedFormat,
		Message: fmt.Sprintf("unsupported input format %q", ext),
		Status:  http.StatusBadRequest,
	}
}

func ConversionFailed(err error, exitCode int) *AppError {
	return &AppError{
		Code:    CodeConversionFailed,
		Message: fmt.Sprintf("media conversion failed (exit code %d)", exitCode),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func TranscriptionFailed(err error) *AppError {
	return &AppError{
		Code:    CodeTranscriptionFailed,
		Message: "transcription failed",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func RemoteJobFailed(service, body string) *AppError {
	return &AppError{
		Code:    CodeRemoteJobFailed,
		Message: fmt.Sprintf("%s reported job failure: %s", service, body),
		Status:  http.StatusBadGateway,
	}
}

func JobTimeout(service string, budget time.Duration) *AppError {
	return &AppError{
		Code:    CodeJobTimeout,
		Message: fmt.Sprintf("%s job did not complete within %s", service, budget),
		Status:  http.StatusGatewayTimeout,
	}
}

func Upstream(service string, err error) *AppError {
	return &AppError{
		Code:    CodeUpstream,
		Message: fmt.Sprintf("%s request failed", service),
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

// AsAppError unwraps err to the nearest AppError, if any.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// ErrorResponse is the common error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

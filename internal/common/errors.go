package common

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind identifies where in the request lifecycle a failure occurred.
// The kind determines the HTTP status class surfaced to the caller.
type ErrorKind string

const (
	// Client-side failures (4xx).
	KindValidation        ErrorKind = "VALIDATION"
	KindNoFile            ErrorKind = "NO_FILE"
	KindUnsupportedFormat ErrorKind = "UNSUPPORTED_FORMAT"
	KindEmptyContent      ErrorKind = "EMPTY_CONTENT"

	// Environmental failures (5xx).
	KindExtraction        ErrorKind = "EXTRACTION"
	KindAnalysis          ErrorKind = "ANALYSIS"
	KindMalformedAnalysis ErrorKind = "MALFORMED_ANALYSIS"
	KindInternal          ErrorKind = "INTERNAL"
)

// PipelineError is a stage-tagged error. Every pipeline failure is wrapped in
// exactly one of these at the stage boundary where it occurred.
type PipelineError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

func NewError(kind ErrorKind, message string, cause error) *PipelineError {
	return &PipelineError{Kind: kind, Message: message, Cause: cause}
}

func Errorf(kind ErrorKind, format string, args ...any) *PipelineError {
	return &PipelineError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the error kind, defaulting to KindInternal for untyped errors.
func KindOf(err error) ErrorKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindInternal
}

// MessageOf returns the human-readable message without the cause chain, so
// internal detail is not leaked to clients for server-side failures.
func MessageOf(err error) string {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return "internal error"
}

// HTTPStatus maps an error to the status code surfaced at the HTTP boundary.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindNoFile, KindUnsupportedFormat:
		return http.StatusBadRequest
	case KindEmptyContent:
		return http.StatusUnprocessableEntity
	case KindExtraction, KindAnalysis, KindInternal:
		return http.StatusInternalServerError
	case KindMalformedAnalysis:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

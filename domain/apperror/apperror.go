package apperror

import (
	"errors"
	"fmt"
)

// Kind tags a failure with the category the HTTP layer translates into a
// status code and a fixed client-facing message.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindTranscriptUnavailable
	KindSummarization
)

// String returns the log-friendly name of the kind
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindTranscriptUnavailable:
		return "transcript_unavailable"
	case KindSummarization:
		return "summarization"
	default:
		return "internal"
	}
}

// AppError carries a tagged failure across layer boundaries
type AppError struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// InvalidInput builds a client-input failure
func InvalidInput(op, message string, err error) *AppError {
	return &AppError{Kind: KindInvalidInput, Op: op, Message: message, Err: err}
}

// TranscriptUnavailable builds a transcript retrieval failure
func TranscriptUnavailable(op, message string, err error) *AppError {
	return &AppError{Kind: KindTranscriptUnavailable, Op: op, Message: message, Err: err}
}

// Summarization builds a model-call failure
func Summarization(op, message string, err error) *AppError {
	return &AppError{Kind: KindSummarization, Op: op, Message: message, Err: err}
}

// Internal builds an unhandled failure
func Internal(op, message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Op: op, Message: message, Err: err}
}

// KindOf reports the Kind carried by err. Errors without an AppError in
// their chain are internal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

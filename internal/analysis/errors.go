package analysis

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an analysis cycle ended without a result.
type ErrorKind int

const (
	KindEmptyInput ErrorKind = iota + 1
	KindService
	KindMalformed
	KindNoAnalysis
)

func (k ErrorKind) String() string {
	switch k {
	case KindEmptyInput:
		return "EmptyInput"
	case KindService:
		return "ServiceError"
	case KindMalformed:
		return "MalformedResponse"
	case KindNoAnalysis:
		return "NoAnalysis"
	default:
		return "Unknown"
	}
}

// Sentinels matched through errors.Is on *Error.
var (
	ErrEmptyInput        = errors.New("empty input")
	ErrService           = errors.New("analysis service error")
	ErrMalformedResponse = errors.New("malformed analysis response")
	ErrNoAnalysis        = errors.New("no analysis available")
)

// Error is returned for every failed analysis cycle. Message is the text shown
// to the user; Err is the underlying cause, if any.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *Error) Unwrap() []error {
	var errs []error
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindEmptyInput:
		return ErrEmptyInput
	case KindService:
		return ErrService
	case KindMalformed:
		return ErrMalformedResponse
	case KindNoAnalysis:
		return ErrNoAnalysis
	default:
		return nil
	}
}

// UserMessage returns the text to show for err. Errors that are not *Error
// fall back to a generic message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "An unknown error occurred."
}

// KindOf returns the ErrorKind carried by err, or 0.
func KindOf(err error) ErrorKind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}

// EmptyInputError is returned for blank submissions.
func EmptyInputError() *Error {
	return &Error{Kind: KindEmptyInput, Message: "Please enter a word or phrase to analyze."}
}

func newServiceError(provider string, cause error) *Error {
	return &Error{
		Kind:    KindService,
		Message: fmt.Sprintf("Failed to get analysis from %s. Please check your API key and try again.", provider),
		Err:     cause,
	}
}

func newMalformedError(provider string, cause error) *Error {
	return &Error{
		Kind:    KindMalformed,
		Message: fmt.Sprintf("Failed to parse the analysis from %s. The format was unexpected.", provider),
		Err:     cause,
	}
}

func newNoAnalysisError(term string) *Error {
	return &Error{
		Kind:    KindNoAnalysis,
		Message: fmt.Sprintf("Could not analyze %q. It may be a typo or a made-up word. Please check the spelling.", term),
	}
}

package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrStatusIsTerminal    = errors.New("status is terminal")
	ErrPayloadIsMalformed  = errors.New("payload is malformed")
	ErrUpstreamUnavailable = errors.New("upstream is unavailable")
)

// ObjectNotFoundError is returned when a lookup by identifier finds nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails a format or business check.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a value falls outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a mandatory value is empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// StatusIsTerminalError is returned when a transition is requested from a
// status that does not allow it.
type StatusIsTerminalError struct {
	ID     any
	Status string
	Cause  error
}

func NewStatusIsTerminalError(id any, status string) *StatusIsTerminalError {
	return &StatusIsTerminalError{
		ID:     id,
		Status: status,
	}
}

func NewStatusIsTerminalErrorWithCause(id any, status string, cause error) *StatusIsTerminalError {
	return &StatusIsTerminalError{
		ID:     id,
		Status: status,
		Cause:  cause,
	}
}

func (e *StatusIsTerminalError) Error() string {
	msg := fmt.Sprintf("%s: ID is: %v, status is: %s", ErrStatusIsTerminal, e.ID, sanitize(e.Status))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *StatusIsTerminalError) Unwrap() error {
	return ErrStatusIsTerminal
}

// PayloadIsMalformedError is returned when data received from outside the
// process cannot be decoded into the expected shape.
type PayloadIsMalformedError struct {
	Source string
	Cause  error
}

func NewPayloadIsMalformedError(source string) *PayloadIsMalformedError {
	return &PayloadIsMalformedError{Source: source}
}

func NewPayloadIsMalformedErrorWithCause(source string, cause error) *PayloadIsMalformedError {
	return &PayloadIsMalformedError{
		Source: source,
		Cause:  cause,
	}
}

func (e *PayloadIsMalformedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrPayloadIsMalformed, e.Source, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPayloadIsMalformed, e.Source)
}

func (e *PayloadIsMalformedError) Unwrap() error {
	return ErrPayloadIsMalformed
}

// UpstreamUnavailableError is returned when the backend cannot be reached or
// answers with a non-success status. StatusCode is zero for transport failures.
type UpstreamUnavailableError struct {
	Target     string
	StatusCode int
	Cause      error
}

func NewUpstreamUnavailableError(target string, statusCode int) *UpstreamUnavailableError {
	return &UpstreamUnavailableError{
		Target:     target,
		StatusCode: statusCode,
	}
}

func NewUpstreamUnavailableErrorWithCause(target string, cause error) *UpstreamUnavailableError {
	return &UpstreamUnavailableError{
		Target: target,
		Cause:  cause,
	}
}

func (e *UpstreamUnavailableError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrUpstreamUnavailable, e.Target)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(", status code is %d", e.StatusCode)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return ErrUpstreamUnavailable
}

func sanitize(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return strings.Join(strings.Fields(s), " ")
}

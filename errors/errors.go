// Package errors provides standardized error handling for containerkit
// components. It includes error classification, typed domain errors for
// value conversion and wire parsing, and helper functions for consistent
// error wrapping across the system.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorTransient represents temporary errors that may be retried
	ErrorTransient ErrorClass = iota
	// ErrorInvalid represents errors due to invalid input or configuration
	ErrorInvalid
	// ErrorFatal represents unrecoverable errors that should stop processing
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorTransient:
		return "transient"
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Value and conversion errors
	ErrValueNotFound     = errors.New("value not found")
	ErrInvalidConversion = errors.New("invalid type conversion")
	ErrValueOutOfRange   = errors.New("value out of range")

	// Wire format errors
	ErrInvalidDataFormat = errors.New("invalid data format")
	ErrUnterminatedBlock = errors.New("unterminated block")
	ErrUnknownTypeCode   = errors.New("unknown type code")
	ErrMalformedField    = errors.New("malformed field")

	// Resource errors
	ErrLimitExceeded    = errors.New("value limit exceeded")
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
)

// ConversionError reports a failed type conversion, including the
// offending value for diagnostics.
type ConversionError struct {
	From  string
	To    string
	Value string
}

func (e *ConversionError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid type conversion: cannot convert %s %q to %s", e.From, e.Value, e.To)
	}
	return fmt.Sprintf("invalid type conversion: cannot convert %s to %s", e.From, e.To)
}

// Is reports whether this error matches ErrInvalidConversion.
func (e *ConversionError) Is(target error) bool {
	return target == ErrInvalidConversion
}

// NewConversionError creates a ConversionError between two type names.
func NewConversionError(from, to, value string) *ConversionError {
	return &ConversionError{From: from, To: to, Value: value}
}

// RangeError reports a value that cannot be represented in the target type.
type RangeError struct {
	Type  string
	Value string
	Min   string
	Max   string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value out of range for %s: %s (valid range [%s, %s])", e.Type, e.Value, e.Min, e.Max)
}

// Is reports whether this error matches ErrValueOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrValueOutOfRange
}

// NewRangeError creates a RangeError for the named type and offending value.
func NewRangeError(typeName, value, min, max string) *RangeError {
	return &RangeError{Type: typeName, Value: value, Min: min, Max: max}
}

// NotFoundError reports a missing value name in a container or store.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("value not found: %q", e.Name)
}

// Is reports whether this error matches ErrValueNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrValueNotFound
}

// NewNotFoundError creates a NotFoundError for the given value name.
func NewNotFoundError(name string) *NotFoundError {
	return &NotFoundError{Name: name}
}

// FormatError reports malformed wire, JSON, or XML input. Offset is the
// byte position where parsing failed, or -1 when not applicable.
type FormatError struct {
	Reason string
	Offset int
	Kind   error // ErrUnterminatedBlock, ErrUnknownTypeCode, ErrMalformedField, ErrMaxDepthExceeded, or nil
}

func (e *FormatError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("invalid data format at byte %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("invalid data format: %s", e.Reason)
}

// Is reports whether this error matches ErrInvalidDataFormat or its Kind.
func (e *FormatError) Is(target error) bool {
	if target == ErrInvalidDataFormat {
		return true
	}
	return e.Kind != nil && target == e.Kind
}

// NewFormatError creates a FormatError with a byte offset (-1 when unknown).
func NewFormatError(reason string, offset int) *FormatError {
	return &FormatError{Reason: reason, Offset: offset}
}

// NewFormatErrorKind creates a FormatError that also matches a specific
// terminal parse error such as ErrUnterminatedBlock.
func NewFormatErrorKind(kind error, reason string, offset int) *FormatError {
	return &FormatError{Reason: reason, Offset: offset, Kind: kind}
}

// LimitError reports a rejected insert that would exceed a container's
// configured value cap.
type LimitError struct {
	Max       int
	Attempted int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("value limit exceeded: %d values attempted, maximum is %d", e.Attempted, e.Max)
}

// Is reports whether this error matches ErrLimitExceeded.
func (e *LimitError) Is(target error) bool {
	return target == ErrLimitExceeded
}

// NewLimitError creates a LimitError for the given cap and attempted count.
func NewLimitError(max, attempted int) *LimitError {
	return &LimitError{Max: max, Attempted: attempted}
}

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsInvalid checks if an error is due to invalid input
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	return errors.Is(err, ErrInvalidConversion) ||
		errors.Is(err, ErrValueOutOfRange) ||
		errors.Is(err, ErrInvalidDataFormat) ||
		errors.Is(err, ErrMaxDepthExceeded) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrMissingConfig)
}

// IsFatal checks if an error is fatal and should stop processing
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	return errors.Is(err, ErrLimitExceeded)
}

// IsTransient checks if an error is transient and should be retried
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorTransient
	}

	return false
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if IsFatal(err) {
		return ErrorFatal
	}
	if IsTransient(err) {
		return ErrorTransient
	}
	// Unknown errors default to invalid: every fallible operation in this
	// module is a bounded, input-driven computation with nothing to retry.
	return ErrorInvalid
}

// newClassified creates a new classified error
// This is an internal helper - use WrapInvalid() or WrapFatal() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}

// WrapTransient wraps an error as transient with context
func WrapTransient(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorTransient, wrappedErr, component, method, wrappedErr.Error())
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// Re-exported so callers need only this package.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
// Re-exported so callers need only this package.
func New(text string) error {
	return errors.New(text)
}

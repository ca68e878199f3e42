// Package perrors implements the error taxonomy of §7: a flat classification
// (input, asset, structural, fatal) carried on a single structured error type
// that knows its pipeline stage and whether the caller can recover by
// retrying with different input.
package perrors

import (
	"errors"
	"fmt"
)

// Class is the flat error taxonomy from §7.
type Class string

const (
	ClassInput      Class = "input"      // recoverable by the user (bad TSX, bad config)
	ClassAsset      Class = "asset"      // recoverable with different assets (font decode failure)
	ClassStructural Class = "structural" // non-recoverable (box solver divergence, pagination stuck)
	ClassFatal      Class = "fatal"      // allocation failure, propagated as-is
)

// Code enumerates the §6 ConversionError codes.
type Code string

const (
	CodeTSXParseError       Code = "TSX_PARSE_ERROR"
	CodeInvalidTSXStructure Code = "INVALID_TSX_STRUCTURE"
	CodeInvalidConfig       Code = "INVALID_CONFIG"
	CodeMemoryLimitExceeded Code = "MEMORY_LIMIT_EXCEEDED"
	CodeFontDecodeError     Code = "FONT_DECODE_ERROR"
	CodePDFAssemblyError    Code = "PDF_ASSEMBLY_ERROR"
)

// ConversionError is the structured error every pipeline stage returns.
// It satisfies error and Unwrap so errors.As/errors.Is composition works
// the way the teacher's PrintError/APIError did.
type ConversionError struct {
	Code        Code
	Class       Class
	Message     string
	Stage       string
	Recoverable bool
	Suggestions []string
	Metadata    map[string]interface{}
	Cause       error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s [%s/%s]: %s (caused by: %v)", e.Code, e.Class, e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s [%s/%s]: %s", e.Code, e.Class, e.Stage, e.Message)
}

func (e *ConversionError) Unwrap() error { return e.Cause }

// WithDetail attaches a metadata key/value pair and returns the receiver for
// chaining.
func (e *ConversionError) WithDetail(key string, value interface{}) *ConversionError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithSuggestion appends a user-facing remediation hint.
func (e *ConversionError) WithSuggestion(s string) *ConversionError {
	e.Suggestions = append(e.Suggestions, s)
	return e
}

func newError(code Code, class Class, stage, message string, cause error) *ConversionError {
	return &ConversionError{
		Code:        code,
		Class:       class,
		Message:     message,
		Stage:       stage,
		Recoverable: class == ClassInput || class == ClassAsset,
		Cause:       cause,
	}
}

// Input-class constructors.
func NewTSXParseError(stage, message string, cause error) *ConversionError {
	return newError(CodeTSXParseError, ClassInput, stage, message, cause).
		WithSuggestion("ensure all tags are closed")
}

func NewInvalidStructure(stage, message string) *ConversionError {
	return newError(CodeInvalidTSXStructure, ClassInput, stage, message, nil)
}

func NewInvalidConfig(stage, message string) *ConversionError {
	return newError(CodeInvalidConfig, ClassInput, stage, message, nil)
}

func NewMemoryLimitExceeded(stage string, limit, actual int) *ConversionError {
	return newError(CodeMemoryLimitExceeded, ClassInput, stage,
		fmt.Sprintf("input exceeds limit of %d bytes (got %d)", limit, actual), nil)
}

// Asset-class constructor. Per §7 policy this is never fatal to the whole
// conversion; callers log it via the progress channel and fall back to a
// Standard-14 substitute instead of aborting.
func NewFontDecodeError(stage, message string, cause error) *ConversionError {
	return newError(CodeFontDecodeError, ClassAsset, stage, message, cause)
}

// Structural-class constructor: §7 says this should be extremely rare.
func NewPDFAssemblyError(stage, message string, cause error) *ConversionError {
	return newError(CodePDFAssemblyError, ClassStructural, stage, message, cause)
}

// Fatal wraps an unrecoverable error (e.g. allocation failure) for
// propagation without reclassification.
func Fatal(stage string, cause error) *ConversionError {
	e := newError("", ClassFatal, stage, cause.Error(), cause)
	e.Recoverable = false
	return e
}

// Is reports whether err is (or wraps) a ConversionError of the given code.
func Is(err error, code Code) bool {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

// IsRecoverable reports whether err, if a ConversionError, is marked
// recoverable.
func IsRecoverable(err error) bool {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Recoverable
	}
	return false
}

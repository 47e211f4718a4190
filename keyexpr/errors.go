package keyexpr

import (
	"errors"
	"fmt"
)

// ValidationErrorCode categorizes grammar violations.
type ValidationErrorCode string

const (
	// ErrCodeEmptyChunk indicates an empty chunk: a leading or trailing
	// slash, or "//".
	ErrCodeEmptyChunk ValidationErrorCode = "EMPTY_CHUNK"

	// ErrCodeBareSubstringWildcard indicates a chunk that is exactly "$*",
	// which must be written "*" to reach canon form.
	ErrCodeBareSubstringWildcard ValidationErrorCode = "BARE_SUBSTRING_WILDCARD"

	// ErrCodeRepeatedFullWildcard indicates "**/**", which must collapse to
	// a single "**" to reach canon form.
	ErrCodeRepeatedFullWildcard ValidationErrorCode = "REPEATED_FULL_WILDCARD"

	// ErrCodeMisorderedWildcards indicates "**/*", which must be written
	// "*/**" to reach canon form.
	ErrCodeMisorderedWildcards ValidationErrorCode = "MISORDERED_WILDCARDS"

	// ErrCodeMalformedFullWildcard indicates "**" concatenated with other
	// chunk content.
	ErrCodeMalformedFullWildcard ValidationErrorCode = "MALFORMED_FULL_WILDCARD"

	// ErrCodeForbiddenCharacter indicates '#' or '?', malformed '$' usage,
	// or text that is not well-formed UTF-8.
	ErrCodeForbiddenCharacter ValidationErrorCode = "FORBIDDEN_CHARACTER"
)

// ValidationError is returned when raw text violates the key-expression
// grammar or its canonical-form invariants. It carries the offending input
// and a code distinguishing the offense kind. Validation errors are never
// retryable: they indicate malformed caller input.
type ValidationError struct {
	// Code identifies the violated invariant.
	Code ValidationErrorCode

	// Input is the full text that failed validation.
	Input string

	// Message is a human-readable description of the violation.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid key expression %q: %s", e.Input, e.Message)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrorCode extracts the ValidationErrorCode from err.
// Returns "" if err is not a ValidationError.
func ErrorCode(err error) ValidationErrorCode {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code
	}
	return ""
}

func newValidationError(code ValidationErrorCode, input, message string) *ValidationError {
	return &ValidationError{Code: code, Input: input, Message: message}
}

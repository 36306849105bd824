// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for imagefix.

It provides a rich error type that bridges low-level filesystem errors and the
process boundary, where every failure becomes a log line and an exit status.

Architecture:

  - AppError: A struct containing a machine-readable Code and a readable message.
  - Exit Codes: Every AppError carries the status the process exits with.
  - Details: Configuration failures list the offending fields.

Every error that leaves the rewrite layer should be wrapped as an [AppError].
*/
package apperr

import (
	"errors"
	"fmt"
)

// # Error Codes

const (
	CodeReadFailure   = "READ_FAILURE"
	CodeWriteFailure  = "WRITE_FAILURE"
	CodeConfigInvalid = "CONFIG_INVALID"
)

// AppError is the canonical error type for imagefix.
//
// The Cause field holds the underlying OS error. It is reachable through
// [errors.Is] and [errors.As] so callers can still test for [fs.ErrNotExist].
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "READ_FAILURE").
	Code string
	// Message is a human-readable description.
	Message string
	// Path is the file the failure relates to, if any.
	Path string
	// ExitCode is the process exit status for this failure.
	ExitCode int
	// Cause is the underlying error.
	Cause error
	// Details holds per-field errors for CONFIG_INVALID failures.
	Details []FieldError
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the configuration field that failed validation.
	Field string
	// Message is the human-readable description of the failure.
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Constructors

// ReadFailure reports that the target artifact is missing or unreadable.
func ReadFailure(path string, cause error) *AppError {
	return &AppError{
		Code:     CodeReadFailure,
		Message:  "read " + path,
		Path:     path,
		ExitCode: 1,
		Cause:    cause,
	}
}

// WriteFailure reports that the rewritten artifact could not be persisted.
func WriteFailure(path string, cause error) *AppError {
	return &AppError{
		Code:     CodeWriteFailure,
		Message:  "write " + path,
		Path:     path,
		ExitCode: 1,
		Cause:    cause,
	}
}

// ConfigInvalid reports a configuration that cannot drive a rewrite.
func ConfigInvalid(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:     CodeConfigInvalid,
		Message:  msg,
		ExitCode: 1,
		Details:  details,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err carries an [*AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}

// ExitCode returns the exit status for err: 0 for nil, the AppError's code
// when present, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if ae := As(err); ae != nil && ae.ExitCode != 0 {
		return ae.ExitCode
	}
	return 1
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// It is used by the config layer only. The rewriter assumes the rules it is
// handed have already been validated.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/taibuivan/imagefix/internal/platform/apperr"
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// SingleLine fails if the value contains a line break.
func (v *Validator) SingleLine(field, value string) *Validator {
	if strings.ContainsAny(value, "\r\n") {
		v.add(field, "Must be a single line")
	}
	return v
}

// Pattern fails if the value is not a valid RE2 expression with exactly
// groups capture groups.
func (v *Validator) Pattern(field, value string, groups int) *Validator {
	re, err := regexp.Compile(value)
	if err != nil {
		v.add(field, "Must be a valid regular expression: "+err.Error())
		return v
	}
	if n := re.NumSubexp(); n != groups {
		v.add(field, fmt.Sprintf("Must have exactly %d capture group(s), found %d", groups, n))
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("import_line", anchor == line, "Must differ from the anchor line")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (CONFIG_INVALID) if any rules failed,
// or nil if all rules passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ConfigInvalid("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

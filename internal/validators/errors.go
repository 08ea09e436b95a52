// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName               = errors.New("name is required")
	ErrEmptyRole               = errors.New("role is required")
	ErrFieldTooLong            = errors.New("field is too long")
	ErrForbiddenCharacter      = errors.New("field contains a forbidden character")
	ErrInvalidCompatibility    = errors.New("invalid compatibility uri")
	ErrEmptyUsers              = errors.New("users list cannot be empty")
	ErrLengthMismatch          = errors.New("length does not match the number of users")
	ErrInvalidJournalOperation = errors.New("invalid journal operation")
)

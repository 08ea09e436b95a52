// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrValidationNoUsersProvided = errors.New("no users provided")
	ErrValidationLengthMismatch  = errors.New("length does not match the number of users")
	ErrInvalidFilter             = errors.New("invalid filter")
	ErrInvalidJournalFilter      = errors.New("invalid journal filter")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrJournalUnavailable = errors.New("journal is unavailable")
	ErrInvalidRetention   = errors.New("retention must be positive")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package roconuri

import "errors"

// ErrInvalidURI is returned (wrapped) whenever a string is not a well-formed
// rocon URI. Callers should match it with [errors.Is].
var ErrInvalidURI = errors.New("invalid rocon uri")

var (
	errWrongScheme      = errors.New("scheme must be 'rocon'")
	errTooManyFields    = errors.New("too many path fields")
	errEmptyAlternative = errors.New("empty alternative")
	errBadCharacter     = errors.New("invalid character")
	errMixedWildcard    = errors.New("wildcard cannot be combined with alternatives")
	errUnexpectedPart   = errors.New("unexpected user info, port or query")
)

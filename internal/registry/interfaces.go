// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"context"

	"github.com/MKhiriev/go-users-registry/models"
)

// UserBuilder validates a raw spec and constructs the canonical user with its
// identity key. Build must be pure: it is called while the table lock is held.
type UserBuilder interface {
	// Build returns an error wrapping [ErrInvalidUser] when the spec is
	// malformed.
	Build(ctx context.Context, spec models.UserSpec) (models.User, error)
}

// CompatibilityChecker decides whether a user's compatibility address is
// compatible with a reference address.
type CompatibilityChecker interface {
	// Validate returns an error if uri is not a well-formed address.
	Validate(uri string) error

	// IsCompatible reports whether candidate and reference overlap.
	IsCompatible(candidate, reference string) (bool, error)
}

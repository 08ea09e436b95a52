// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-registry/internal/utils"
	"github.com/MKhiriev/go-users-registry/internal/validators"
	"github.com/MKhiriev/go-users-registry/models"
)

type userBuilder struct {
	validator validators.Validator
}

// NewUserBuilder returns a [UserBuilder] that checks every spec with validator
// before building the user.
func NewUserBuilder(validator validators.Validator) UserBuilder {
	return &userBuilder{validator: validator}
}

// Build validates spec, fills in the default compatibility and derives the
// identity key.
func (b *userBuilder) Build(ctx context.Context, spec models.UserSpec) (models.User, error) {
	if err := b.validator.Validate(ctx, spec); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidUser, err)
	}

	compatibility := spec.Compatibility
	if compatibility == "" {
		compatibility = models.DefaultCompatibility
	}

	return models.User{
		Key:           utils.IdentityKey(spec.Name, spec.Role, spec.Namespace),
		Name:          spec.Name,
		Role:          spec.Role,
		Namespace:     spec.Namespace,
		Compatibility: compatibility,
		Description:   spec.Description,
	}, nil
}

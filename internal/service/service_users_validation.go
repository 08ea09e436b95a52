// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-users-registry/internal/validators"
	"github.com/MKhiriev/go-users-registry/models"
)

// UsersValidationService rejects malformed batch envelopes and filters
// before they reach the wrapped UsersService.
type UsersValidationService struct {
	inner     UsersService
	validator validators.Validator
}

// NewUsersValidationService returns the validating wrapper; call Wrap to
// attach it to a UsersService.
func NewUsersValidationService() UsersServiceWrapper {
	return &UsersValidationService{
		validator: validators.NewUserSpecValidator(),
	}
}

func (v *UsersValidationService) Load(ctx context.Context, request models.LoadRequest) (models.LoadResponse, error) {
	if err := v.validateBatch(ctx, request); err != nil {
		return models.LoadResponse{}, err
	}

	return v.inner.Load(ctx, request)
}

func (v *UsersValidationService) Unload(ctx context.Context, request models.UnloadRequest) (models.UnloadResponse, error) {
	if err := v.validateBatch(ctx, request); err != nil {
		return models.UnloadResponse{}, err
	}

	return v.inner.Unload(ctx, request)
}

func (v *UsersValidationService) Filter(ctx context.Context, request models.FilterRequest) ([]models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}

	return v.inner.Filter(ctx, request)
}

func (v *UsersValidationService) Names(ctx context.Context) []string {
	return v.inner.Names(ctx)
}

func (v *UsersValidationService) Roles(ctx context.Context, user string) []string {
	return v.inner.Roles(ctx, user)
}

func (v *UsersValidationService) RoleView(ctx context.Context) map[string][]models.User {
	return v.inner.RoleView(ctx)
}

func (v *UsersValidationService) Len(ctx context.Context) int {
	return v.inner.Len(ctx)
}

func (v *UsersValidationService) Wrap(wrapped UsersService) UsersService {
	v.inner = wrapped
	return v
}

// validateBatch maps validator errors onto the service's sentinel errors.
func (v *UsersValidationService) validateBatch(ctx context.Context, request any) error {
	err := v.validator.Validate(ctx, request)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrEmptyUsers):
		return ErrValidationNoUsersProvided
	case errors.Is(err, validators.ErrLengthMismatch):
		return fmt.Errorf("%w: %w", ErrValidationLengthMismatch, err)
	default:
		return fmt.Errorf("error during users batch validation: %w", err)
	}
}

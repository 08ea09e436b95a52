// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-users-registry/internal/roconuri"
	"github.com/MKhiriev/go-users-registry/models"
)

// Field name constants used to scope validation to a subset of fields.
const (
	// FieldName targets the display name of a user spec.
	FieldName = "name"

	// FieldRole targets the role of a user spec.
	FieldRole = "role"

	// FieldNamespace targets the namespace of a user spec.
	FieldNamespace = "namespace"

	// FieldCompatibility targets the rocon compatibility URI of a user spec.
	FieldCompatibility = "compatibility"

	// FieldUsers targets the list of specs in a batch request.
	FieldUsers = "users"

	// FieldLength targets the declared length of a batch request.
	FieldLength = "length"

	// FieldCompatibilityURI targets the reference URI of a filter request.
	FieldCompatibilityURI = "compatibility_uri"

	// FieldOperation targets the operation of a journal filter.
	FieldOperation = "operation"
)

// MaxFieldLength is the upper bound, in bytes, of name, role and namespace.
const MaxFieldLength = 256

// keySeparator may not appear in key-bearing fields; the identity key uses it
// to join them.
const keySeparator = "\x00"

// UserSpecValidator implements [Validator] for user specs and the batch
// requests that carry them:
//   - models.UserSpec / *models.UserSpec
//   - models.LoadRequest / *models.LoadRequest
//   - models.UnloadRequest / *models.UnloadRequest
//   - models.FilterRequest / *models.FilterRequest
//   - models.JournalFilter / *models.JournalFilter
type UserSpecValidator struct{}

// NewUserSpecValidator constructs a new UserSpecValidator and returns it as the
// Validator interface.
func NewUserSpecValidator() Validator {
	return &UserSpecValidator{}
}

// Validate dispatches validation to the type-specific method. Returns
// ErrUnsupportedType if obj does not match any known model.
func (v *UserSpecValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserSpec:
		return v.validateUserSpec(ctx, value, fields...)
	case *models.UserSpec:
		return v.validateUserSpec(ctx, *value, fields...)

	case models.LoadRequest:
		return v.validateBatch(ctx, value.Users, value.Length, fields...)
	case *models.LoadRequest:
		return v.validateBatch(ctx, value.Users, value.Length, fields...)

	case models.UnloadRequest:
		return v.validateBatch(ctx, value.Users, value.Length, fields...)
	case *models.UnloadRequest:
		return v.validateBatch(ctx, value.Users, value.Length, fields...)

	case models.FilterRequest:
		return v.validateFilterRequest(ctx, value, fields...)
	case *models.FilterRequest:
		return v.validateFilterRequest(ctx, *value, fields...)

	case models.JournalFilter:
		return v.validateJournalFilter(ctx, value, fields...)
	case *models.JournalFilter:
		return v.validateJournalFilter(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUserSpec validates a single raw spec.
//
// Default validated fields: Name, Role, Namespace, Compatibility. An empty
// compatibility is accepted; the builder substitutes the root URI.
func (v *UserSpecValidator) validateUserSpec(_ context.Context, spec models.UserSpec, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldRole, FieldNamespace, FieldCompatibility}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(spec.Name) == "" {
				return ErrEmptyName
			}
			if err := validateKeyField(FieldName, spec.Name); err != nil {
				return err
			}
		case FieldRole:
			if strings.TrimSpace(spec.Role) == "" {
				return ErrEmptyRole
			}
			if err := validateKeyField(FieldRole, spec.Role); err != nil {
				return err
			}
		case FieldNamespace:
			if err := validateKeyField(FieldNamespace, spec.Namespace); err != nil {
				return err
			}
		case FieldCompatibility:
			if spec.Compatibility == "" {
				continue
			}
			if _, err := roconuri.Parse(spec.Compatibility); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidCompatibility, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateKeyField(field, value string) error {
	if len(value) > MaxFieldLength {
		return fmt.Errorf("%w: %s exceeds %d bytes", ErrFieldTooLong, field, MaxFieldLength)
	}
	if strings.Contains(value, keySeparator) {
		return fmt.Errorf("%w: %s", ErrForbiddenCharacter, field)
	}
	return nil
}

// validateBatch validates the envelope of a load or unload request. Specs
// themselves are not validated here: a malformed spec in a load is reported
// as rejected, never as a failed request.
//
// A zero length is treated as undeclared and is not compared.
//
// Default validated fields: Users, Length.
func (v *UserSpecValidator) validateBatch(_ context.Context, users []models.UserSpec, length int, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsers, FieldLength}
	}

	for _, f := range fields {
		switch f {
		case FieldUsers:
			if len(users) == 0 {
				return ErrEmptyUsers
			}
		case FieldLength:
			// zero means the caller did not declare a length
			if length != 0 && length != len(users) {
				return fmt.Errorf("%w: length=%d users=%d", ErrLengthMismatch, length, len(users))
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateFilterRequest checks the reference URI of a filter. Roles are
// free-form; an empty list is valid and disables role filtering.
func (v *UserSpecValidator) validateFilterRequest(_ context.Context, req models.FilterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCompatibilityURI}
	}

	for _, f := range fields {
		switch f {
		case FieldCompatibilityURI:
			if req.CompatibilityURI == "" {
				continue
			}
			if _, err := roconuri.Parse(req.CompatibilityURI); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserSpecValidator) validateJournalFilter(_ context.Context, filter models.JournalFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOperation}
	}

	for _, f := range fields {
		switch f {
		case FieldOperation:
			if filter.Operation != "" && !filter.Operation.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidJournalOperation, filter.Operation)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

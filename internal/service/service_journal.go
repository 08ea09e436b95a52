// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/internal/store"
	"github.com/MKhiriev/go-users-registry/internal/validators"
	"github.com/MKhiriev/go-users-registry/models"
)

type journalService struct {
	repository store.JournalRepository
	validator  validators.Validator
	logger     *logger.Logger
	now        func() time.Time
}

// NewJournalService constructs a JournalService over repository.
func NewJournalService(repository store.JournalRepository, logger *logger.Logger) JournalService {
	return &journalService{
		repository: repository,
		validator:  validators.NewUserSpecValidator(),
		logger:     logger,
		now:        time.Now,
	}
}

// List returns the newest journal entries first.
func (s *journalService) List(ctx context.Context, filter models.JournalFilter) ([]models.JournalEntry, error) {
	if err := s.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJournalFilter, err)
	}

	entries, err := s.repository.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*journalService.List").Msg("error listing journal")
		return nil, fmt.Errorf("%w: %w", ErrJournalUnavailable, err)
	}

	return entries, nil
}

// Prune deletes entries older than retention.
func (s *journalService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, ErrInvalidRetention
	}

	n, err := s.repository.Prune(ctx, s.now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrJournalUnavailable, err)
	}

	return n, nil
}
